package slots

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GarageService/pkg/psqlbuilder"
)

const slotColumns = "id, mechanic_id, date, start_time, end_time, appointment_id, service_id, created_at"

// Repository репозиторий для работы с атомарными слотами доступности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateBatch вставляет слоты по одному, в порядке следования.
// Генератор слотов вызывает его внутри транзакции: частично созданная
// нарезка окна не должна быть видна после ошибки.
func (r *Repository) CreateBatch(ctx context.Context, slots []*domain.AtomicSlot) ([]*domain.AtomicSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for _, slot := range slots {
		query, args, err := psqlbuilder.Insert("time_slots").
			Columns(
				"mechanic_id",
				"date",
				"start_time",
				"end_time",
				"appointment_id",
				"service_id",
			).
			Values(
				slot.MechanicID,
				slot.Date,
				slot.StartTime,
				slot.EndTime,
				slot.AppointmentID,
				slot.ServiceID,
			).
			Suffix("RETURNING id, created_at").
			ToSql()

		if err != nil {
			return nil, fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
		}

		var createdAt sql.NullTime
		if err := executor.QueryRowContext(ctx, query, args...).Scan(&slot.ID, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
		}
		slot.CreatedAt = createdAt.Time
	}

	return slots, nil
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.AtomicSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns).
		From("time_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	slot, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return slot, nil
}

// GetFreeFuture получает свободные будущие слоты механика,
// отсортированные по времени начала по возрастанию
func (r *Repository) GetFreeFuture(ctx context.Context, mechanicID int64, now time.Time) ([]*domain.AtomicSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns).
		From("time_slots").
		Where(squirrel.Eq{"mechanic_id": mechanicID, "appointment_id": nil}).
		Where(squirrel.Gt{"start_time": now}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetFreeFuture - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetFreeFuture - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// GetFreeFromStart получает свободные слоты механика, начиная с указанного
// времени (start_time >= from), отсортированные по возрастанию.
// Внутри транзакции добавляет FOR UPDATE: аллокатор читает цепочку слотов
// под блокировкой, чтобы конкурирующее бронирование не забрало те же слоты.
func (r *Repository) GetFreeFromStart(ctx context.Context, mechanicID int64, from time.Time) ([]*domain.AtomicSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns).
		From("time_slots").
		Where(squirrel.Eq{"mechanic_id": mechanicID, "appointment_id": nil}).
		Where(squirrel.GtOrEq{"start_time": from}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetFreeFromStart - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetFreeFromStart - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// MarkConsumed помечает слот занятым записью appointmentID.
// Условие appointment_id IS NULL повторно проверяет свободность слота в момент
// мутации: если слот успела забрать конкурирующая транзакция, вернется
// ErrSlotAlreadyBooked и вся транзакция бронирования откатится.
func (r *Repository) MarkConsumed(ctx context.Context, slotID, appointmentID, serviceID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_slots").
		Set("appointment_id", appointmentID).
		Set("service_id", serviceID).
		Where(squirrel.Eq{"id": slotID, "appointment_id": nil}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkConsumed - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkConsumed - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkConsumed - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotAlreadyBooked
	}

	return nil
}

// ShrinkAndConsume укорачивает слот до newEnd и помечает его занятым.
// Используется для граничного слота цепочки, когда длительность услуги
// не выровнена по границе слота. Та же защита от двойного бронирования,
// что и в MarkConsumed.
func (r *Repository) ShrinkAndConsume(ctx context.Context, slotID int64, newEnd time.Time, appointmentID, serviceID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_slots").
		Set("end_time", newEnd).
		Set("appointment_id", appointmentID).
		Set("service_id", serviceID).
		Where(squirrel.Eq{"id": slotID, "appointment_id": nil}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ShrinkAndConsume - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ShrinkAndConsume - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ShrinkAndConsume - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotAlreadyBooked
	}

	return nil
}

// scanSlots сканирует результаты запроса в слайс слотов
func (r *Repository) scanSlots(rows *sql.Rows) ([]*domain.AtomicSlot, error) {
	result := make([]*domain.AtomicSlot, 0)

	for rows.Next() {
		var slot domain.AtomicSlot
		var createdAt sql.NullTime

		err := rows.Scan(
			&slot.ID,
			&slot.MechanicID,
			&slot.Date,
			&slot.StartTime,
			&slot.EndTime,
			&slot.AppointmentID,
			&slot.ServiceID,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}

		slot.CreatedAt = createdAt.Time
		result = append(result, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

func scanSlot(row *sql.Row) (*domain.AtomicSlot, error) {
	var slot domain.AtomicSlot
	var createdAt sql.NullTime

	err := row.Scan(
		&slot.ID,
		&slot.MechanicID,
		&slot.Date,
		&slot.StartTime,
		&slot.EndTime,
		&slot.AppointmentID,
		&slot.ServiceID,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	slot.CreatedAt = createdAt.Time
	return &slot, nil
}
