package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/clubelmeta/CEM-SalonService/internal/domain"
	"github.com/clubelmeta/CEM-SalonService/pkg/psqlbuilder"
	"github.com/clubelmeta/CEM-SalonService/pkg/txmanager"
)

var addonColumns = []string{
	"id",
	"name",
	"description",
	"unit_price_cents",
	"unit_label",
	"active",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога: дополнительные услуги и коды членства
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActiveAddOnByID получает активную услугу по ID.
// Неактивные услуги не возвращаются: снимать цену можно
// только с действующей позиции каталога.
func (r *Repository) GetActiveAddOnByID(ctx context.Context, id int64) (*domain.AddOnService, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(addonColumns...).
		From("addon_services").
		Where(squirrel.Eq{"id": id, "active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveAddOnByID - build select query: %v", ErrBuildQuery, err)
	}

	addon, err := scanAddOn(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAddOnNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveAddOnByID - scan row: %v", ErrScanRow, err)
	}

	return addon, nil
}

// ListActiveAddOns получает все активные услуги каталога
func (r *Repository) ListActiveAddOns(ctx context.Context) ([]*domain.AddOnService, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(addonColumns...).
		From("addon_services").
		Where(squirrel.Eq{"active": true}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveAddOns - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveAddOns - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	addons := make([]*domain.AddOnService, 0)
	for rows.Next() {
		addon, err := scanAddOn(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActiveAddOns - scan row: %v", ErrScanRow, err)
		}
		addons = append(addons, addon)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveAddOns - rows error: %v", ErrScanRow, err)
	}

	return addons, nil
}

// GetActiveMembershipCode получает активный код членства.
// Поиск регистронезависимый, неактивные коды не подтверждаются.
func (r *Repository) GetActiveMembershipCode(ctx context.Context, code string) (*domain.MembershipCode, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"code",
		"holder_name",
		"email",
		"active",
		"created_at",
	).
		From("membership_codes").
		Where(squirrel.Expr("UPPER(code) = UPPER(?)", code)).
		Where(squirrel.Eq{"active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveMembershipCode - build select query: %v", ErrBuildQuery, err)
	}

	var mc domain.MembershipCode
	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&mc.ID,
		&mc.Code,
		&mc.HolderName,
		&mc.Email,
		&mc.Active,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrMembershipCodeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveMembershipCode - scan row: %v", ErrScanRow, err)
	}

	mc.CreatedAt = createdAt.Time

	return &mc, nil
}

// rowScanner покрывает *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAddOn(row rowScanner) (*domain.AddOnService, error) {
	var addon domain.AddOnService
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&addon.ID,
		&addon.Name,
		&addon.Description,
		&addon.UnitPriceCents,
		&addon.UnitLabel,
		&addon.Active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	addon.CreatedAt = createdAt.Time
	addon.UpdatedAt = updatedAt.Time

	return &addon, nil
}
