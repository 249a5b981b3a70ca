package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/clubelmeta/CEM-SalonService/internal/domain"
	catalogRepo "github.com/clubelmeta/CEM-SalonService/internal/infra/storage/catalog"
	venueRepo "github.com/clubelmeta/CEM-SalonService/internal/infra/storage/venue"
	"github.com/clubelmeta/CEM-SalonService/pkg/money"
)

// AddOnRequest запрошенная позиция дополнительной услуги
type AddOnRequest struct {
	AddOnID  int64
	Quantity int
	Notes    string
}

// Quote детализация расчёта стоимости резервации
type Quote struct {
	BaseCents   money.Cents
	AddonsCents money.Cents
	TotalCents  money.Cents
	LineItems   []domain.ReservationAddOn
}

// Service сервис расчёта стоимости резерваций
type Service struct {
	catalogRepo CatalogRepository
	venueRepo   VenueRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса расчёта стоимости
func NewService(catalogRepo CatalogRepository, venueRepo VenueRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		venueRepo:   venueRepo,
		logger:      logger,
	}
}

// ResolveBasePrice определяет базовую ставку аренды для конфигурации.
// Для восьмичасовых мероприятий без отдельного тарифа используется
// четырёхчасовая ставка. Нулевая ставка означает незаполненный тариф.
func (s *Service) ResolveBasePrice(config *domain.VenueConfiguration, clientType domain.ClientType, duration domain.Duration) (money.Cents, error) {
	var rate money.Cents
	if clientType == domain.ClientMember {
		rate = config.MemberRate(duration)
	} else {
		rate = config.NonMemberRate(duration)
	}

	if rate.IsZero() || rate.IsNegative() {
		s.logger.Error("ResolveBasePrice: no rate configured for configuration=%d, clientType=%s, duration=%s", config.ID, clientType, duration)
		return 0, fmt.Errorf("%w: configuration=%d clientType=%s duration=%s", ErrRateNotConfigured, config.ID, clientType, duration)
	}

	return rate, nil
}

// BuildLineItems превращает запрошенные услуги в позиции резервации,
// фиксируя текущую цену каталога. Последующие изменения каталога не
// влияют на уже созданные позиции.
func (s *Service) BuildLineItems(ctx context.Context, requests []AddOnRequest) ([]domain.ReservationAddOn, error) {
	lines := make([]domain.ReservationAddOn, 0, len(requests))

	for _, req := range requests {
		if req.Quantity <= 0 || req.Quantity > domain.MaxAddOnQuantity {
			s.logger.Warn("BuildLineItems: invalid quantity=%d for addon=%d", req.Quantity, req.AddOnID)
			return nil, fmt.Errorf("%w: addon=%d quantity=%d", ErrInvalidQuantity, req.AddOnID, req.Quantity)
		}

		addon, err := s.catalogRepo.GetActiveAddOnByID(ctx, req.AddOnID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrAddOnNotFound) {
				s.logger.Warn("BuildLineItems: addon=%d not found or inactive", req.AddOnID)
				return nil, fmt.Errorf("%w: addon=%d", ErrAddOnNotFound, req.AddOnID)
			}
			s.logger.Error("BuildLineItems: repository error for addon=%d: %v", req.AddOnID, err)
			return nil, fmt.Errorf("%w: BuildLineItems - repository error: %v", ErrInternal, err)
		}

		lines = append(lines, domain.ReservationAddOn{
			AddOnID:        addon.ID,
			AddOnName:      addon.Name,
			Quantity:       req.Quantity,
			UnitPriceCents: addon.UnitPriceCents,
			SubtotalCents:  addon.UnitPriceCents.MulQty(req.Quantity),
			Notes:          req.Notes,
		})
	}

	return lines, nil
}

// ResolveAddonsSubtotal суммирует зафиксированные позиции услуг
func (s *Service) ResolveAddonsSubtotal(lines []domain.ReservationAddOn) money.Cents {
	var subtotal money.Cents
	for _, line := range lines {
		subtotal = subtotal.Add(line.SubtotalCents)
	}
	return subtotal
}

// ResolveTotal рассчитывает полную стоимость резервации:
// базовая ставка аренды плюс сумма позиций услуг.
// Расчёт детерминирован: повторный вызов с теми же входными
// данными даёт тот же результат.
func (s *Service) ResolveTotal(ctx context.Context, config *domain.VenueConfiguration, clientType domain.ClientType, duration domain.Duration, requests []AddOnRequest) (*Quote, error) {
	base, err := s.ResolveBasePrice(config, clientType, duration)
	if err != nil {
		return nil, err
	}

	lines, err := s.BuildLineItems(ctx, requests)
	if err != nil {
		return nil, err
	}

	addons := s.ResolveAddonsSubtotal(lines)

	return &Quote{
		BaseCents:   base,
		AddonsCents: addons,
		TotalCents:  base.Add(addons),
		LineItems:   lines,
	}, nil
}

// QuoteByConfiguration рассчитывает предварительную стоимость для
// конфигурации без создания резервации. Расчёт использует тот же
// путь, что и подача заявки: повторная подача с теми же параметрами
// даст ту же сумму.
func (s *Service) QuoteByConfiguration(ctx context.Context, configurationID int64, clientType domain.ClientType, duration domain.Duration, requests []AddOnRequest) (*Quote, *domain.VenueConfiguration, error) {
	config, err := s.venueRepo.GetConfigurationByID(ctx, configurationID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrConfigurationNotFound) {
			s.logger.Warn("QuoteByConfiguration: configuration=%d not found", configurationID)
			return nil, nil, ErrConfigurationNotFound
		}
		s.logger.Error("QuoteByConfiguration: failed to get configuration=%d: %v", configurationID, err)
		return nil, nil, fmt.Errorf("%w: QuoteByConfiguration - repository error: %v", ErrInternal, err)
	}

	quote, err := s.ResolveTotal(ctx, config, clientType, duration, requests)
	if err != nil {
		return nil, nil, err
	}

	return quote, config, nil
}

// ListActiveAddOns получает активные услуги каталога для выдачи клиенту
func (s *Service) ListActiveAddOns(ctx context.Context) ([]*domain.AddOnService, error) {
	addons, err := s.catalogRepo.ListActiveAddOns(ctx)
	if err != nil {
		s.logger.Error("ListActiveAddOns: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListActiveAddOns - repository error: %v", ErrInternal, err)
	}
	return addons, nil
}
