package blackout

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/clubelmeta/CEM-SalonService/internal/domain"
	"github.com/clubelmeta/CEM-SalonService/pkg/psqlbuilder"
	"github.com/clubelmeta/CEM-SalonService/pkg/txmanager"
	"github.com/clubelmeta/CEM-SalonService/pkg/types"
)

// Repository репозиторий реестра блокировок салонов.
// Все методы чтения нормализуют диапазоны дат на границе чтения:
// записи с fecha_fin раньше fecha_inicio встречаются в исторических
// данных и трактуются как однодневные блокировки.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActiveByVenue получает все активные блокировки салона
func (r *Repository) ListActiveByVenue(ctx context.Context, venueID int64) ([]*domain.BlackoutPeriod, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := selectBlackouts().
		Where(squirrel.Eq{"venue_id": venueID, "active": true}).
		OrderBy("start_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByVenue - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryBlackouts(ctx, executor, query, args, "ListActiveByVenue")
}

// ListUpcomingByVenue получает активные блокировки салона, которые ещё
// не завершились на дату today. Условие включает и записи с
// некорректной end_date (start_date >= today), чтобы кривые данные
// не скрывали будущие блокировки из календаря.
func (r *Repository) ListUpcomingByVenue(ctx context.Context, venueID int64, today time.Time) ([]*domain.BlackoutPeriod, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := selectBlackouts().
		Where(squirrel.Eq{"venue_id": venueID, "active": true}).
		Where(squirrel.Or{
			squirrel.GtOrEq{"end_date": today},
			squirrel.GtOrEq{"start_date": today},
		}).
		OrderBy("start_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListUpcomingByVenue - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryBlackouts(ctx, executor, query, args, "ListUpcomingByVenue")
}

// Create создает новую блокировку
func (r *Repository) Create(ctx context.Context, b *domain.BlackoutPeriod) (*domain.BlackoutPeriod, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	var startTime, endTime interface{}
	if !b.StartTime.IsZero() {
		startTime = b.StartTime.String()
	}
	if !b.EndTime.IsZero() {
		endTime = b.EndTime.String()
	}

	query, args, err := psqlbuilder.Insert("blackout_periods").
		Columns(
			"venue_id",
			"start_date",
			"end_date",
			"start_time",
			"end_time",
			"reason",
			"description",
			"active",
		).
		Values(
			b.VenueID,
			b.StartDate,
			b.EndDate,
			startTime,
			endTime,
			b.Reason,
			b.Description,
			b.Active,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	return b, nil
}

// Deactivate снимает блокировку, не удаляя запись.
// Неактивная блокировка никогда не ограничивает доступность.
func (r *Repository) Deactivate(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("blackout_periods").
		Set("active", false).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Deactivate - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Deactivate - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Deactivate - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlackoutNotFound
	}

	return nil
}

func selectBlackouts() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"venue_id",
		"start_date",
		"end_date",
		"start_time",
		"end_time",
		"reason",
		"description",
		"active",
		"created_at",
	).From("blackout_periods")
}

func (r *Repository) queryBlackouts(ctx context.Context, executor DBExecutor, query string, args []interface{}, method string) ([]*domain.BlackoutPeriod, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}
	defer rows.Close()

	blackouts := make([]*domain.BlackoutPeriod, 0)

	for rows.Next() {
		var b domain.BlackoutPeriod
		var startTime, endTime sql.NullString
		var createdAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.VenueID,
			&b.StartDate,
			&b.EndDate,
			&startTime,
			&endTime,
			&b.Reason,
			&b.Description,
			&b.Active,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, method, err)
		}

		if startTime.Valid {
			b.StartTime = types.TimeString(startTime.String)
		}
		if endTime.Valid {
			b.EndTime = types.TimeString(endTime.String)
		}
		b.CreatedAt = createdAt.Time

		// Нормализация на границе чтения: end_date < start_date
		b.Normalize()

		blackouts = append(blackouts, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return blackouts, nil
}
