package venue

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/clubelmeta/CEM-SalonService/internal/domain"
	"github.com/clubelmeta/CEM-SalonService/pkg/psqlbuilder"
	"github.com/clubelmeta/CEM-SalonService/pkg/txmanager"
)

// Repository репозиторий для работы с салонами и их конфигурациями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория салонов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetVenueByID получает салон по ID
func (r *Repository) GetVenueByID(ctx context.Context, id int64) (*domain.Venue, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"description",
		"available",
		"length_m",
		"width_m",
		"height_m",
		"diameter_m",
		"created_at",
		"updated_at",
	).
		From("venues").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetVenueByID - build select query: %v", ErrBuildQuery, err)
	}

	var v domain.Venue
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&v.ID,
		&v.Name,
		&v.Description,
		&v.Available,
		&v.LengthM,
		&v.WidthM,
		&v.HeightM,
		&v.DiameterM,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetVenueByID - scan venue: %v", ErrScanRow, err)
	}

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return &v, nil
}

// GetConfigurationByID получает конфигурацию салона по ID.
// Возвращает ErrConfigurationNotFound, если конфигурация не существует
// или её салон помечен как недоступный - флоу бронирования не должен
// видеть отключённые салоны.
func (r *Repository) GetConfigurationByID(ctx context.Context, id int64) (*domain.VenueConfiguration, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"c.id",
		"c.venue_id",
		"v.name",
		"c.arrangement",
		"c.capacity",
		"c.member_rate_4h",
		"c.member_rate_8h",
		"c.nonmember_rate_4h",
		"c.nonmember_rate_8h",
		"c.created_at",
		"c.updated_at",
	).
		From("venue_configurations c").
		Join("venues v ON v.id = c.venue_id").
		Where(squirrel.Eq{"c.id": id, "v.available": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetConfigurationByID - build select query: %v", ErrBuildQuery, err)
	}

	cfg, err := scanConfiguration(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrConfigurationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfigurationByID - scan configuration: %v", ErrScanRow, err)
	}

	return cfg, nil
}

// ListConfigurationsByVenue получает все конфигурации салона
func (r *Repository) ListConfigurationsByVenue(ctx context.Context, venueID int64) ([]*domain.VenueConfiguration, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"c.id",
		"c.venue_id",
		"v.name",
		"c.arrangement",
		"c.capacity",
		"c.member_rate_4h",
		"c.member_rate_8h",
		"c.nonmember_rate_4h",
		"c.nonmember_rate_8h",
		"c.created_at",
		"c.updated_at",
	).
		From("venue_configurations c").
		Join("venues v ON v.id = c.venue_id").
		Where(squirrel.Eq{"c.venue_id": venueID}).
		OrderBy("c.arrangement ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListConfigurationsByVenue - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListConfigurationsByVenue - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	configs := make([]*domain.VenueConfiguration, 0)
	for rows.Next() {
		cfg, err := scanConfiguration(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListConfigurationsByVenue - scan row: %v", ErrScanRow, err)
		}
		configs = append(configs, cfg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListConfigurationsByVenue - rows error: %v", ErrScanRow, err)
	}

	return configs, nil
}

// ListAvailableVenues получает все доступные салоны, упорядоченные по имени
func (r *Repository) ListAvailableVenues(ctx context.Context) ([]*domain.Venue, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"description",
		"available",
		"length_m",
		"width_m",
		"height_m",
		"diameter_m",
		"created_at",
		"updated_at",
	).
		From("venues").
		Where(squirrel.Eq{"available": true}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailableVenues - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailableVenues - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	venues := make([]*domain.Venue, 0)
	for rows.Next() {
		var v domain.Venue
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&v.ID,
			&v.Name,
			&v.Description,
			&v.Available,
			&v.LengthM,
			&v.WidthM,
			&v.HeightM,
			&v.DiameterM,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListAvailableVenues - scan row: %v", ErrScanRow, err)
		}

		v.CreatedAt = createdAt.Time
		v.UpdatedAt = updatedAt.Time
		venues = append(venues, &v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAvailableVenues - rows error: %v", ErrScanRow, err)
	}

	return venues, nil
}

// rowScanner покрывает *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanConfiguration(row rowScanner) (*domain.VenueConfiguration, error) {
	var cfg domain.VenueConfiguration
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&cfg.ID,
		&cfg.VenueID,
		&cfg.VenueName,
		&cfg.Arrangement,
		&cfg.Capacity,
		&cfg.MemberRate4H,
		&cfg.MemberRate8H,
		&cfg.NonMemberRate4H,
		&cfg.NonMemberRate8H,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}
