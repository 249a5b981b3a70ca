package get_reservations

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/clubelmeta/CEM-SalonService/internal/domain"
	"github.com/clubelmeta/CEM-SalonService/internal/service/reservations/models"
)

// parseListQuery разбирает query-параметры фильтрации списка резерваций.
//
// Поддерживаемые параметры:
//   - venueId          фильтр по салону
//   - configurationId  фильтр по конфигурации
//   - startDate        начало периода, YYYY-MM-DD
//   - endDate          конец периода, YYYY-MM-DD
//   - status           PENDING | CONFIRMED | CANCELLED | COMPLETED
//   - includeInactive  true включает отменённые резервации
func parseListQuery(query url.Values) (*models.ListReservationsRequest, error) {
	req := &models.ListReservationsRequest{}

	if v := query.Get("venueId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid venueId: %q", v)
		}
		req.VenueID = &id
	}

	if v := query.Get("configurationId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid configurationId: %q", v)
		}
		req.ConfigurationID = &id
	}

	if v := query.Get("startDate"); v != "" {
		date, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate: %q", v)
		}
		req.StartDate = &date
	}

	if v := query.Get("endDate"); v != "" {
		date, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate: %q", v)
		}
		req.EndDate = &date
	}

	if v := query.Get("status"); v != "" {
		req.Status = &v
	}

	if v := query.Get("includeInactive"); v != "" {
		include, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive: %q", v)
		}
		req.IncludeInactive = include
	}

	return req, nil
}
