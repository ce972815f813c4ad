package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GarageService/pkg/psqlbuilder"
)

const serviceColumns = "id, mechanic_id, name, price, duration, created_at"

// Repository репозиторий для работы с услугами механиков
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает услугу механика
func (r *Repository) Create(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("services").
		Columns(
			"mechanic_id",
			"name",
			"price",
			"duration",
		).
		Values(
			service.MechanicID,
			service.Name,
			service.Price,
			service.Duration,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&service.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	service.CreatedAt = createdAt.Time
	return service, nil
}

// GetByMechanic получает услугу, принадлежащую конкретному механику.
// Возвращает ErrServiceNotFound и когда услуги нет, и когда она
// принадлежит другому механику.
func (r *Repository) GetByMechanic(ctx context.Context, serviceID, mechanicID int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns).
		From("services").
		Where(squirrel.Eq{"id": serviceID, "mechanic_id": mechanicID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByMechanic - build select query: %v", ErrBuildQuery, err)
	}

	var service domain.Service
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&service.ID,
		&service.MechanicID,
		&service.Name,
		&service.Price,
		&service.Duration,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByMechanic - scan service: %v", ErrScanRow, err)
	}

	service.CreatedAt = createdAt.Time
	return &service, nil
}

// ListByMechanic получает все услуги механика
func (r *Repository) ListByMechanic(ctx context.Context, mechanicID int64) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns).
		From("services").
		Where(squirrel.Eq{"mechanic_id": mechanicID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByMechanic - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByMechanic - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Service, 0)

	for rows.Next() {
		var service domain.Service
		var createdAt sql.NullTime

		err := rows.Scan(
			&service.ID,
			&service.MechanicID,
			&service.Name,
			&service.Price,
			&service.Duration,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByMechanic - scan row: %v", ErrScanRow, err)
		}

		service.CreatedAt = createdAt.Time
		result = append(result, &service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByMechanic - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
