package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clubelmeta/CEM-SalonService/internal/domain"
	blackoutRepo "github.com/clubelmeta/CEM-SalonService/internal/infra/storage/blackout"
	venueRepo "github.com/clubelmeta/CEM-SalonService/internal/infra/storage/venue"
)

// Service сервис проверки доступности салонов
type Service struct {
	blackoutRepo BlackoutRepository
	venueRepo    VenueRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(blackoutRepo BlackoutRepository, venueRepo VenueRepository, logger Logger) *Service {
	return &Service{
		blackoutRepo: blackoutRepo,
		venueRepo:    venueRepo,
		logger:       logger,
	}
}

// Check проверяет доступность конфигурации на дату.
// Все применимые причины недоступности накапливаются и возвращаются
// вместе, чтобы клиент мог исправить заявку за один проход.
// Пустой список означает, что дата доступна.
func (s *Service) Check(ctx context.Context, config *domain.VenueConfiguration, date time.Time, partySize int) ([]domain.BlockReason, error) {
	reasons := make([]domain.BlockReason, 0)

	// Проверка вместимости выбранной расстановки
	if partySize > config.Capacity {
		reasons = append(reasons, domain.BlockReason{
			Code:    domain.BlockCapacityExceeded,
			Message: fmt.Sprintf("party size %d exceeds capacity %d for %s arrangement", partySize, config.Capacity, config.Arrangement),
		})
	}

	// Проверка блокировок салона: блокировка на дату закрывает
	// весь день независимо от времени начала мероприятия
	blackouts, err := s.blackoutRepo.ListActiveByVenue(ctx, config.VenueID)
	if err != nil {
		s.logger.Error("Check: failed to list blackouts for venue=%d: %v", config.VenueID, err)
		return nil, fmt.Errorf("%w: Check - repository error: %v", ErrInternal, err)
	}

	for _, b := range blackouts {
		if !b.Contains(date) {
			continue
		}
		reason := b.Reason
		from := b.StartDate
		until := b.EndDate
		reasons = append(reasons, domain.BlockReason{
			Code:           domain.BlockVenueBlocked,
			Message:        fmt.Sprintf("venue is blocked from %s to %s: %s", from.Format(domain.DateFormat), until.Format(domain.DateFormat), b.Description),
			BlackoutReason: &reason,
			BlockedFrom:    &from,
			BlockedUntil:   &until,
		})
	}

	if len(reasons) > 0 {
		s.logger.Info("Check: configuration=%d date=%s unavailable with %d reasons", config.ID, date.Format(domain.DateFormat), len(reasons))
	}

	return reasons, nil
}

// CheckConfiguration проверяет доступность по ID конфигурации.
// Точка входа для запроса доступности без подачи заявки.
func (s *Service) CheckConfiguration(ctx context.Context, configurationID int64, date time.Time, partySize int) ([]domain.BlockReason, *domain.VenueConfiguration, error) {
	config, err := s.venueRepo.GetConfigurationByID(ctx, configurationID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrConfigurationNotFound) {
			s.logger.Warn("CheckConfiguration: configuration=%d not found", configurationID)
			return nil, nil, ErrConfigurationNotFound
		}
		s.logger.Error("CheckConfiguration: failed to get configuration=%d: %v", configurationID, err)
		return nil, nil, fmt.Errorf("%w: CheckConfiguration - repository error: %v", ErrInternal, err)
	}

	reasons, err := s.Check(ctx, config, date, partySize)
	if err != nil {
		return nil, nil, err
	}

	return reasons, config, nil
}

// IsBlocked проверяет, закрыт ли салон на дату.
// Возвращает первую совпавшую блокировку или nil, если салон открыт.
func (s *Service) IsBlocked(ctx context.Context, venueID int64, date time.Time) (*domain.BlackoutPeriod, error) {
	blackouts, err := s.blackoutRepo.ListActiveByVenue(ctx, venueID)
	if err != nil {
		s.logger.Error("IsBlocked: failed to list blackouts for venue=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: IsBlocked - repository error: %v", ErrInternal, err)
	}

	for _, b := range blackouts {
		if b.Contains(date) {
			return b, nil
		}
	}

	return nil, nil
}

// ListBlackouts получает актуальные и будущие блокировки салона
func (s *Service) ListBlackouts(ctx context.Context, venueID int64, today time.Time) ([]*domain.BlackoutPeriod, error) {
	if _, err := s.venueRepo.GetVenueByID(ctx, venueID); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("ListBlackouts: venue=%d not found", venueID)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("ListBlackouts: failed to fetch venue=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: ListBlackouts - repository error: %v", ErrInternal, err)
	}

	blackouts, err := s.blackoutRepo.ListUpcomingByVenue(ctx, venueID, today)
	if err != nil {
		s.logger.Error("ListBlackouts: failed to list blackouts for venue=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: ListBlackouts - repository error: %v", ErrInternal, err)
	}

	return blackouts, nil
}

// CreateBlackout регистрирует новую блокировку салона
func (s *Service) CreateBlackout(ctx context.Context, b *domain.BlackoutPeriod) (*domain.BlackoutPeriod, error) {
	if !domain.IsValidBlackoutReason(b.Reason) {
		s.logger.Warn("CreateBlackout: invalid reason=%s for venue=%d", b.Reason, b.VenueID)
		return nil, fmt.Errorf("%w: unknown reason %q", ErrInvalidBlackout, b.Reason)
	}
	if b.StartDate.IsZero() || b.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: start and end dates are required", ErrInvalidBlackout)
	}
	if b.EndDate.Before(b.StartDate) {
		return nil, fmt.Errorf("%w: end date precedes start date", ErrInvalidBlackout)
	}

	if _, err := s.venueRepo.GetVenueByID(ctx, b.VenueID); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("CreateBlackout: venue=%d not found", b.VenueID)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("CreateBlackout: failed to fetch venue=%d: %v", b.VenueID, err)
		return nil, fmt.Errorf("%w: CreateBlackout - repository error: %v", ErrInternal, err)
	}

	b.Active = true
	created, err := s.blackoutRepo.Create(ctx, b)
	if err != nil {
		s.logger.Error("CreateBlackout: failed to create blackout for venue=%d: %v", b.VenueID, err)
		return nil, fmt.Errorf("%w: CreateBlackout - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBlackout: created blackout id=%d for venue=%d (%s - %s)", created.ID, created.VenueID, created.StartDate.Format(domain.DateFormat), created.EndDate.Format(domain.DateFormat))
	return created, nil
}

// DeactivateBlackout снимает блокировку, не удаляя запись.
// Деактивированные блокировки сохраняются для истории.
func (s *Service) DeactivateBlackout(ctx context.Context, id int64) error {
	err := s.blackoutRepo.Deactivate(ctx, id)
	if err != nil {
		if errors.Is(err, blackoutRepo.ErrBlackoutNotFound) {
			s.logger.Warn("DeactivateBlackout: blackout id=%d not found", id)
			return ErrBlackoutNotFound
		}
		s.logger.Error("DeactivateBlackout: failed to deactivate blackout id=%d: %v", id, err)
		return fmt.Errorf("%w: DeactivateBlackout - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeactivateBlackout: deactivated blackout id=%d", id)
	return nil
}
