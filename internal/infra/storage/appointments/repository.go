package appointments

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GarageService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с записями на обслуживание
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись на обслуживание.
// Аллокатор вызывает его внутри транзакции бронирования: вставка записи
// и мутация слотов видны снаружи только вместе.
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"client_id",
			"mechanic_id",
			"service_id",
			"date",
			"time",
			"status",
			"start_time",
			"end_time",
		).
		Values(
			appointment.ClientID,
			appointment.MechanicID,
			appointment.ServiceID,
			appointment.Date,
			appointment.Time,
			appointment.Status,
			appointment.StartTime,
			appointment.EndTime,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&appointment.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appointment.CreatedAt = createdAt.Time
	return appointment, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"client_id",
		"mechanic_id",
		"service_id",
		"date",
		"time",
		"status",
		"start_time",
		"end_time",
		"created_at",
	).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var appointment domain.Appointment
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appointment.ID,
		&appointment.ClientID,
		&appointment.MechanicID,
		&appointment.ServiceID,
		&appointment.Date,
		&appointment.Time,
		&appointment.Status,
		&appointment.StartTime,
		&appointment.EndTime,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	appointment.CreatedAt = createdAt.Time
	return &appointment, nil
}
