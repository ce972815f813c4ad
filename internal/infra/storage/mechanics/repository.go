package mechanics

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GarageService/pkg/psqlbuilder"
)

const mechanicColumns = "id, user_id, name, address, city, rating, created_at"

// Repository репозиторий для работы с профилями гаражей
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория механиков
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает профиль гаража
func (r *Repository) Create(ctx context.Context, mechanic *domain.Mechanic) (*domain.Mechanic, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("mechanics").
		Columns(
			"user_id",
			"name",
			"address",
			"city",
			"rating",
		).
		Values(
			mechanic.UserID,
			mechanic.Name,
			mechanic.Address,
			mechanic.City,
			mechanic.Rating,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&mechanic.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	mechanic.CreatedAt = createdAt.Time
	return mechanic, nil
}

// GetByID получает механика по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Mechanic, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(mechanicColumns).
		From("mechanics").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var mechanic domain.Mechanic
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&mechanic.ID,
		&mechanic.UserID,
		&mechanic.Name,
		&mechanic.Address,
		&mechanic.City,
		&mechanic.Rating,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrMechanicNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan mechanic: %v", ErrScanRow, err)
	}

	mechanic.CreatedAt = createdAt.Time
	return &mechanic, nil
}

// Exists проверяет существование механика
// Используется генератором слотов перед нарезкой окна
func (r *Repository) Exists(ctx context.Context, id int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("mechanics").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: Exists - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// List получает всех механиков, отсортированных по рейтингу
func (r *Repository) List(ctx context.Context) ([]*domain.Mechanic, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(mechanicColumns).
		From("mechanics").
		OrderBy("rating DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	mechanics := make([]*domain.Mechanic, 0)

	for rows.Next() {
		var mechanic domain.Mechanic
		var createdAt sql.NullTime

		err := rows.Scan(
			&mechanic.ID,
			&mechanic.UserID,
			&mechanic.Name,
			&mechanic.Address,
			&mechanic.City,
			&mechanic.Rating,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		mechanic.CreatedAt = createdAt.Time
		mechanics = append(mechanics, &mechanic)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return mechanics, nil
}
