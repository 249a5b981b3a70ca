package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/clubelmeta/CEM-SalonService/internal/domain"
	catalogRepo "github.com/clubelmeta/CEM-SalonService/internal/infra/storage/catalog"
	reservationRepo "github.com/clubelmeta/CEM-SalonService/internal/infra/storage/reservation"
	"github.com/clubelmeta/CEM-SalonService/internal/service/reservations/models"
)

// Service сервис чтения и сопровождения резерваций
type Service struct {
	reservationRepo ReservationRepository
	catalogRepo     CatalogRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса резерваций
func NewService(
	reservationRepo ReservationRepository,
	catalogRepo CatalogRepository,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		catalogRepo:     catalogRepo,
		logger:          logger,
	}
}

// GetByID получает резервацию по ID вместе с позициями услуг
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation), nil
}

// List получает резервации с гибкой фильтрацией для персонала.
//
// Примеры использования:
// - Все активные резервации: List(ctx, &ListReservationsRequest{})
// - Резервации салона: указать VenueID
// - Резервации на дату: StartDate и EndDate указывают на одну дату
// - Только подтверждённые: указать Status = "CONFIRMED"
// - Включая отменённые: IncludeInactive = true
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	reservations, err := s.reservationRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// UpdateNotes обновляет заметки резервации.
// Сохранённая сумма при этом не пересчитывается.
func (s *Service) UpdateNotes(ctx context.Context, id int64, notes string) (*models.ReservationResponse, error) {
	if len(notes) > domain.MaxNotesLength {
		s.logger.Warn("UpdateNotes: notes too long for reservation id=%d (%d chars)", id, len(notes))
		return nil, fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	err := s.reservationRepo.UpdateNotes(ctx, id, notes)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdateNotes: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("UpdateNotes: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateNotes - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateNotes: updated notes for reservation id=%d", id)
	return s.GetByID(ctx, id)
}

// CountsByStatus агрегирует резервации по статусам для панели персонала
func (s *Service) CountsByStatus(ctx context.Context, req *models.ListReservationsRequest) (*models.StatusCountsResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("CountsByStatus: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	counts, err := s.reservationRepo.CountsByStatus(ctx, filter)
	if err != nil {
		s.logger.Error("CountsByStatus: repository error: %v", err)
		return nil, fmt.Errorf("%w: CountsByStatus - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStatusCounts(counts), nil
}

// ValidateMembership проверяет код членства.
// Неактивные и неизвестные коды не подтверждаются.
func (s *Service) ValidateMembership(ctx context.Context, code string) (*models.MembershipResponse, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: membership code is required", ErrInvalidInput)
	}

	mc, err := s.catalogRepo.GetActiveMembershipCode(ctx, code)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrMembershipCodeNotFound) {
			s.logger.Info("ValidateMembership: code not valid")
			return &models.MembershipResponse{Valid: false}, nil
		}
		s.logger.Error("ValidateMembership: repository error: %v", err)
		return nil, fmt.Errorf("%w: ValidateMembership - repository error: %v", ErrInternal, err)
	}

	return &models.MembershipResponse{
		Valid:      true,
		HolderName: mc.HolderName,
	}, nil
}
