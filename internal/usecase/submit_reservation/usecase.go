package submit_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/clubelmeta/CEM-SalonService/internal/domain"
	catalogRepo "github.com/clubelmeta/CEM-SalonService/internal/infra/storage/catalog"
	venueRepo "github.com/clubelmeta/CEM-SalonService/internal/infra/storage/venue"
	"github.com/clubelmeta/CEM-SalonService/internal/service/pricing"
	"github.com/clubelmeta/CEM-SalonService/pkg/money"
)

// UseCase use case для подачи заявки на резервацию салона
type UseCase struct {
	venueRepo       VenueRepository
	reservationRepo ReservationRepository
	catalogRepo     CatalogRepository
	availability    AvailabilityService
	pricing         PricingService
	notifier        Notifier
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	venueRepo VenueRepository,
	reservationRepo ReservationRepository,
	catalogRepo CatalogRepository,
	availability AvailabilityService,
	pricingService PricingService,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		venueRepo:       venueRepo,
		reservationRepo: reservationRepo,
		catalogRepo:     catalogRepo,
		availability:    availability,
		pricing:         pricingService,
		notifier:        notifier,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case подачи заявки на резервацию.
// Проверка доступности и создание записи выполняются в одной
// сериализуемой транзакции. Все причины отклонения накапливаются
// и возвращаются одной ошибкой RejectionError.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitReservation: configuration=%d, client=%s, date=%s, duration=%s, partySize=%d",
		req.ConfigurationID, req.ClientName, req.EventDate.Format(domain.DateFormat), req.Duration, req.PartySize)

	// 1. Получаем текущее время
	now := uc.timeProvider.Now()

	// 2. Валидация полей заявки, все ошибки собираются разом
	if fields := validateRequest(req, now); len(fields) > 0 {
		uc.logger.Warn("SubmitReservation: validation failed with %d field errors", len(fields))
		return nil, &RejectionError{Fields: fields}
	}

	// 3. Проверяем код членства. Неподтверждённый код отклоняет
	// заявку целиком, без молчаливого понижения до NON_MEMBER
	clientType := domain.ClientType(req.ClientType)
	if clientType == domain.ClientMember {
		code := strings.TrimSpace(*req.MembershipCode)
		if _, err := uc.catalogRepo.GetActiveMembershipCode(ctx, code); err != nil {
			if errors.Is(err, catalogRepo.ErrMembershipCodeNotFound) {
				uc.logger.Warn("SubmitReservation: membership code not valid for client=%s", req.ClientName)
				return nil, ErrInvalidMembershipCode
			}
			uc.logger.Error("SubmitReservation: failed to check membership code: %v", err)
			return nil, fmt.Errorf("%w: failed to check membership code: %v", ErrInternal, err)
		}
	}

	// 4. Получаем конфигурацию салона
	config, err := uc.venueRepo.GetConfigurationByID(ctx, req.ConfigurationID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrConfigurationNotFound) {
			uc.logger.Warn("SubmitReservation: configuration id=%d not found", req.ConfigurationID)
			return nil, ErrConfigurationNotFound
		}
		uc.logger.Error("SubmitReservation: failed to get configuration id=%d: %v", req.ConfigurationID, err)
		return nil, fmt.Errorf("%w: failed to get configuration: %v", ErrInternal, err)
	}

	// 5. Разбираем сумму, заданную персоналом, если она есть
	var manualTotal money.Cents
	if req.Total != nil {
		manualTotal, _ = money.Parse(*req.Total)
	}

	var result *domain.Reservation
	var quote *pricing.Quote

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Проверяем доступность даты под блокировкой.
		// Все причины недоступности накапливаются
		reasons, err := uc.availability.Check(txCtx, config, req.EventDate, req.PartySize)
		if err != nil {
			uc.logger.Error("SubmitReservation: availability check failed: %v", err)
			return fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
		}
		if len(reasons) > 0 {
			uc.logger.Warn("SubmitReservation: date unavailable with %d reasons", len(reasons))
			return &RejectionError{Reasons: reasons}
		}

		// 6.2. Перечитываем резервации этой даты с блокировкой (FOR UPDATE).
		// Пересечение дат не отклоняется: несколько резерваций на один
		// день допустимы, решение остаётся за персоналом
		filter := domain.ReservationFilter{
			ConfigurationID: &req.ConfigurationID,
			StartDate:       &req.EventDate,
			EndDate:         &req.EventDate,
			IncludeInactive: false,
		}
		existing, err := uc.reservationRepo.ListWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("SubmitReservation: failed to list same-date reservations: %v", err)
			return fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
		}
		if len(existing) > 0 {
			uc.logger.Info("SubmitReservation: date %s already has %d active reservations for configuration=%d",
				req.EventDate.Format(domain.DateFormat), len(existing), req.ConfigurationID)
		}

		// 6.3. Рассчитываем стоимость. Сумма, заданная персоналом,
		// сохраняется как есть; позиции услуг фиксируют цены каталога
		// в любом случае
		addOnRequests := make([]pricing.AddOnRequest, 0, len(req.AddOns))
		for _, item := range req.AddOns {
			addOnRequests = append(addOnRequests, pricing.AddOnRequest{
				AddOnID:  item.AddOnID,
				Quantity: item.Quantity,
				Notes:    item.Notes,
			})
		}

		var total money.Cents
		var lines []domain.ReservationAddOn

		if manualTotal.IsZero() {
			quote, err = uc.pricing.ResolveTotal(txCtx, config, clientType, domain.Duration(req.Duration), addOnRequests)
			if err != nil {
				return uc.mapPricingError(err)
			}
			total = quote.TotalCents
			lines = quote.LineItems
		} else {
			lines, err = uc.pricing.BuildLineItems(txCtx, addOnRequests)
			if err != nil {
				return uc.mapPricingError(err)
			}
			total = manualTotal
		}

		// 6.4. Создаем резервацию в статусе PENDING
		reservation := &domain.Reservation{
			ConfigurationID: req.ConfigurationID,
			ClientName:      strings.TrimSpace(req.ClientName),
			ClientEmail:     req.ClientEmail,
			ClientPhone:     req.ClientPhone,
			ClientType:      clientType,
			EntityName:      req.EntityName,
			EventDate:       req.EventDate,
			StartTime:       req.StartTime,
			Duration:        domain.Duration(req.Duration),
			DecorationHours: req.DecorationHours,
			PartySize:       req.PartySize,
			TotalCents:      total,
			Status:          domain.StatusPending,
			Notes:           req.Notes,
			AddOns:          lines,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("SubmitReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("SubmitReservation: successfully created reservation id=%d with total=%s",
		result.ID, result.TotalCents.String())

	// 7. Уведомление о приёме заявки отправляется после фиксации
	// транзакции в фоне: ошибки отправки логируются, но заявка уже создана
	go func(reservation *domain.Reservation, config *domain.VenueConfiguration) {
		if err := uc.notifier.ReservationSubmitted(context.Background(), reservation, config); err != nil {
			uc.logger.Error("SubmitReservation: submission notification failed for reservation id=%d: %v", reservation.ID, err)
		}
	}(result, config)

	// 8. Конвертируем в response
	resp := &Response{
		ID:              result.ID,
		ConfigurationID: result.ConfigurationID,
		VenueName:       config.VenueName,
		Arrangement:     string(config.Arrangement),
		EventDate:       result.EventDate,
		StartTime:       result.StartTime,
		Duration:        string(result.Duration),
		PartySize:       result.PartySize,
		Status:          string(result.Status),
		Total:           result.TotalCents.String(),
		CreatedAt:       result.CreatedAt,
	}

	if quote != nil {
		resp.Base = quote.BaseCents.String()
		resp.Addons = quote.AddonsCents.String()
	} else {
		// Сумма задана персоналом, базовая ставка не раскладывается
		var addons money.Cents
		for _, line := range result.AddOns {
			addons = addons.Add(line.SubtotalCents)
		}
		resp.Addons = addons.String()
	}

	for _, line := range result.AddOns {
		resp.LineItems = append(resp.LineItems, LineItem{
			AddOnID:   line.AddOnID,
			AddOnName: line.AddOnName,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPriceCents.String(),
			Subtotal:  line.SubtotalCents.String(),
		})
	}

	return resp, nil
}

// mapPricingError конвертирует ошибки сервиса расчёта в ошибки usecase
func (uc *UseCase) mapPricingError(err error) error {
	switch {
	case errors.Is(err, pricing.ErrRateNotConfigured):
		uc.logger.Error("SubmitReservation: %v", err)
		return ErrRateNotConfigured
	case errors.Is(err, pricing.ErrAddOnNotFound), errors.Is(err, pricing.ErrInvalidQuantity):
		uc.logger.Warn("SubmitReservation: %v", err)
		return fmt.Errorf("%w: %v", ErrAddOnNotFound, err)
	default:
		uc.logger.Error("SubmitReservation: pricing failed: %v", err)
		return fmt.Errorf("%w: pricing failed: %v", ErrInternal, err)
	}
}
