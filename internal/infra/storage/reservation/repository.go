package reservation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/clubelmeta/CEM-SalonService/internal/domain"
	"github.com/clubelmeta/CEM-SalonService/pkg/psqlbuilder"
	"github.com/clubelmeta/CEM-SalonService/pkg/txmanager"
	"github.com/clubelmeta/CEM-SalonService/pkg/types"
)

var reservationColumns = []string{
	"r.id",
	"r.configuration_id",
	"r.client_name",
	"r.client_email",
	"r.client_phone",
	"r.client_type",
	"r.entity_name",
	"r.event_date",
	"r.start_time",
	"r.duration",
	"r.decoration_hours",
	"r.party_size",
	"r.total_cents",
	"r.status",
	"r.notes",
	"r.created_at",
	"r.updated_at",
}

// Repository репозиторий для работы с резервациями и их позициями услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория резерваций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает резервацию вместе с позициями дополнительных услуг.
// Вызывается внутри сериализуемой транзакции usecase-а подачи заявки,
// чтобы вставка резервации и её позиций были атомарными.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	var startTime interface{}
	if !res.StartTime.IsZero() {
		startTime = res.StartTime.String()
	}

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"configuration_id",
			"client_name",
			"client_email",
			"client_phone",
			"client_type",
			"entity_name",
			"event_date",
			"start_time",
			"duration",
			"decoration_hours",
			"party_size",
			"total_cents",
			"status",
			"notes",
		).
		Values(
			res.ConfigurationID,
			res.ClientName,
			res.ClientEmail,
			res.ClientPhone,
			res.ClientType,
			res.EntityName,
			res.EventDate,
			startTime,
			res.Duration,
			res.DecorationHours,
			res.PartySize,
			res.TotalCents,
			res.Status,
			res.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	// Вставляем позиции услуг с зафиксированными ценами
	for i := range res.AddOns {
		line := &res.AddOns[i]
		line.ReservationID = res.ID

		query, args, err := psqlbuilder.Insert("reservation_addons").
			Columns(
				"reservation_id",
				"addon_id",
				"addon_name",
				"quantity",
				"unit_price_cents",
				"subtotal_cents",
				"notes",
			).
			Values(
				line.ReservationID,
				line.AddOnID,
				line.AddOnName,
				line.Quantity,
				line.UnitPriceCents,
				line.SubtotalCents,
				line.Notes,
			).
			Suffix("RETURNING id").
			ToSql()

		if err != nil {
			return nil, fmt.Errorf("%w: Create - build addon insert: %v", ErrBuildQuery, err)
		}

		if err := executor.QueryRowContext(ctx, query, args...).Scan(&line.ID); err != nil {
			return nil, fmt.Errorf("%w: Create - insert addon line: %v", ErrExecQuery, err)
		}
	}

	return res, nil
}

// GetByID получает резервацию по ID вместе с позициями услуг
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations r").
		Where(squirrel.Eq{"r.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	addons, err := r.listAddOns(ctx, executor, id)
	if err != nil {
		return nil, err
	}
	res.AddOns = addons

	return res, nil
}

// ListWithFilter получает резервации с гибкой фильтрацией.
// Поддерживает фильтрацию по салону, конфигурации, периоду и статусу.
// Внутри транзакции для конкретной даты добавляется FOR UPDATE -
// usecase подачи заявки перечитывает состояние дня под блокировкой.
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations r")

	// Фильтр по салону требует join через конфигурации
	if filter.VenueID != nil {
		selectBuilder = selectBuilder.
			Join("venue_configurations c ON c.id = r.configuration_id").
			Where(squirrel.Eq{"c.venue_id": *filter.VenueID})
	}

	if filter.ConfigurationID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.configuration_id": *filter.ConfigurationID})
	}

	// Фильтрация по периоду
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"r.event_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"r.event_date": *filter.EndDate})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.status": *filter.Status})
	} else if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"r.status": string(domain.StatusCancelled)})
	}

	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate) {
		selectBuilder = selectBuilder.OrderBy("r.start_time ASC NULLS FIRST")
	} else {
		selectBuilder = selectBuilder.OrderBy("r.event_date DESC, r.created_at DESC")
	}

	if txmanager.IsInTransaction(ctx) && filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF r")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListWithFilter - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// UpdateStatus обновляет статус резервации.
// Валидность перехода проверяет usecase, репозиторий только пишет.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// UpdateNotes обновляет заметки резервации.
// Сознательно не трогает total_cents: сохранённая сумма авторитетна
// и не пересчитывается при правках несвязанных полей.
func (r *Repository) UpdateNotes(ctx context.Context, id int64, notes string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("notes", notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateNotes - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateNotes - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateNotes - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// CountsByStatus агрегирует количество резерваций и выручку по статусам.
// Выручка считается только по подтверждённым и завершённым.
func (r *Repository) CountsByStatus(ctx context.Context, filter domain.ReservationFilter) (*domain.StatusCounts, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"COUNT(*) FILTER (WHERE r.status = 'PENDING')",
		"COUNT(*) FILTER (WHERE r.status = 'CONFIRMED')",
		"COUNT(*) FILTER (WHERE r.status = 'CANCELLED')",
		"COUNT(*) FILTER (WHERE r.status = 'COMPLETED')",
		"COALESCE(SUM(r.total_cents) FILTER (WHERE r.status IN ('CONFIRMED','COMPLETED')), 0)",
	).From("reservations r")

	if filter.VenueID != nil {
		selectBuilder = selectBuilder.
			Join("venue_configurations c ON c.id = r.configuration_id").
			Where(squirrel.Eq{"c.venue_id": *filter.VenueID})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"r.event_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"r.event_date": *filter.EndDate})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CountsByStatus - build select query: %v", ErrBuildQuery, err)
	}

	var counts domain.StatusCounts
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&counts.Pending,
		&counts.Confirmed,
		&counts.Cancelled,
		&counts.Completed,
		&counts.RevenueCents,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: CountsByStatus - scan counts: %v", ErrScanRow, err)
	}

	return &counts, nil
}

func (r *Repository) listAddOns(ctx context.Context, executor DBExecutor, reservationID int64) ([]domain.ReservationAddOn, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"reservation_id",
		"addon_id",
		"addon_name",
		"quantity",
		"unit_price_cents",
		"subtotal_cents",
		"notes",
	).
		From("reservation_addons").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		OrderBy("addon_name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: listAddOns - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listAddOns - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	addons := make([]domain.ReservationAddOn, 0)
	for rows.Next() {
		var line domain.ReservationAddOn
		err := rows.Scan(
			&line.ID,
			&line.ReservationID,
			&line.AddOnID,
			&line.AddOnName,
			&line.Quantity,
			&line.UnitPriceCents,
			&line.SubtotalCents,
			&line.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: listAddOns - scan row: %v", ErrScanRow, err)
		}
		addons = append(addons, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: listAddOns - rows error: %v", ErrScanRow, err)
	}

	return addons, nil
}

// rowScanner покрывает *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var startTime sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.ConfigurationID,
		&res.ClientName,
		&res.ClientEmail,
		&res.ClientPhone,
		&res.ClientType,
		&res.EntityName,
		&res.EventDate,
		&startTime,
		&res.Duration,
		&res.DecorationHours,
		&res.PartySize,
		&res.TotalCents,
		&res.Status,
		&res.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if startTime.Valid {
		res.StartTime = types.TimeString(startTime.String)
	}
	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}
