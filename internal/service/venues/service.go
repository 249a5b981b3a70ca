package venues

import (
	"context"
	"errors"
	"fmt"

	venueRepo "github.com/clubelmeta/CEM-SalonService/internal/infra/storage/venue"
	"github.com/clubelmeta/CEM-SalonService/internal/service/venues/models"
)

// Service сервис чтения салонов и их конфигураций
type Service struct {
	venueRepo VenueRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса салонов
func NewService(venueRepo VenueRepository, logger Logger) *Service {
	return &Service{
		venueRepo: venueRepo,
		logger:    logger,
	}
}

// ListVenues получает доступные салоны вместе с их конфигурациями
func (s *Service) ListVenues(ctx context.Context) (*models.VenueListResponse, error) {
	venues, err := s.venueRepo.ListAvailableVenues(ctx)
	if err != nil {
		s.logger.Error("ListVenues: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListVenues - repository error: %v", ErrInternal, err)
	}

	result := make([]models.VenueResponse, 0, len(venues))
	for _, v := range venues {
		resp := models.FromDomainVenue(v)

		configs, err := s.venueRepo.ListConfigurationsByVenue(ctx, v.ID)
		if err != nil {
			s.logger.Error("ListVenues: failed to list configurations for venue=%d: %v", v.ID, err)
			return nil, fmt.Errorf("%w: ListVenues - repository error: %v", ErrInternal, err)
		}
		resp.Configurations = models.FromDomainConfigurationList(configs)

		result = append(result, *resp)
	}

	return &models.VenueListResponse{Venues: result}, nil
}

// GetVenue получает салон по ID вместе с конфигурациями
func (s *Service) GetVenue(ctx context.Context, id int64) (*models.VenueResponse, error) {
	venue, err := s.venueRepo.GetVenueByID(ctx, id)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("GetVenue: venue=%d not found", id)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("GetVenue: repository error for venue=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetVenue - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainVenue(venue)

	configs, err := s.venueRepo.ListConfigurationsByVenue(ctx, id)
	if err != nil {
		s.logger.Error("GetVenue: failed to list configurations for venue=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetVenue - repository error: %v", ErrInternal, err)
	}
	resp.Configurations = models.FromDomainConfigurationList(configs)

	return resp, nil
}
