package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	slotRepository "github.com/m04kA/SMC-GarageService/internal/infra/storage/slots"
	"github.com/m04kA/SMC-GarageService/pkg/types"
)

type consumedCall struct {
	slotID        int64
	appointmentID int64
}

type shrinkCall struct {
	slotID int64
	newEnd time.Time
}

type fakeSlotRepo struct {
	anchor     *domain.AtomicSlot
	anchorErr  error
	free       []*domain.AtomicSlot
	markErr    error
	consumed   []consumedCall
	shrunk     []shrinkCall
	remainders []*domain.AtomicSlot
}

func (f *fakeSlotRepo) GetByID(_ context.Context, _ int64) (*domain.AtomicSlot, error) {
	return f.anchor, f.anchorErr
}

func (f *fakeSlotRepo) GetFreeFromStart(_ context.Context, _ int64, _ time.Time) ([]*domain.AtomicSlot, error) {
	return f.free, nil
}

func (f *fakeSlotRepo) MarkConsumed(_ context.Context, slotID, appointmentID, _ int64) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.consumed = append(f.consumed, consumedCall{slotID: slotID, appointmentID: appointmentID})
	return nil
}

func (f *fakeSlotRepo) ShrinkAndConsume(_ context.Context, slotID int64, newEnd time.Time, _, _ int64) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.shrunk = append(f.shrunk, shrinkCall{slotID: slotID, newEnd: newEnd})
	return nil
}

func (f *fakeSlotRepo) CreateBatch(_ context.Context, slots []*domain.AtomicSlot) ([]*domain.AtomicSlot, error) {
	f.remainders = append(f.remainders, slots...)
	return slots, nil
}

type fakeServiceRepo struct {
	service *domain.Service
	err     error
}

func (f *fakeServiceRepo) GetByMechanic(_ context.Context, _, _ int64) (*domain.Service, error) {
	return f.service, f.err
}

type fakeAppointmentRepo struct {
	created *domain.Appointment
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	appointment.ID = 100
	f.created = appointment
	return appointment, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func service45() *domain.Service {
	return &domain.Service{
		ID:         7,
		MechanicID: 1,
		Duration:   types.TimeString("00:45:00"),
	}
}

func validRequest() *Request {
	return &Request{
		ClientID:   5,
		MechanicID: 1,
		ServiceID:  7,
		TimeSlotID: 1,
	}
}

func TestExecute_SplitsTerminalSlot(t *testing.T) {
	anchor := slot(1, day(9, 0), day(9, 30))
	slotRepo := &fakeSlotRepo{
		anchor: anchor,
		free: []*domain.AtomicSlot{
			anchor,
			slot(2, day(9, 30), day(10, 0)),
		},
	}
	apptRepo := &fakeAppointmentRepo{}

	uc := NewUseCase(slotRepo, &fakeServiceRepo{service: service45()}, apptRepo, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.AppointmentID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.True(t, resp.StartTime.Equal(day(9, 0)))
	assert.True(t, resp.EndTime.Equal(day(9, 45)))

	// Первый слот занят целиком
	require.Len(t, slotRepo.consumed, 1)
	assert.Equal(t, consumedCall{slotID: 1, appointmentID: 100}, slotRepo.consumed[0])

	// Второй слот урезан до 09:45
	require.Len(t, slotRepo.shrunk, 1)
	assert.Equal(t, int64(2), slotRepo.shrunk[0].slotID)
	assert.True(t, slotRepo.shrunk[0].newEnd.Equal(day(9, 45)))

	// Остаток возвращается свободным слотом [09:45, 10:00)
	require.Len(t, slotRepo.remainders, 1)
	remainder := slotRepo.remainders[0]
	assert.True(t, remainder.StartTime.Equal(day(9, 45)))
	assert.True(t, remainder.EndTime.Equal(day(10, 0)))
	assert.Nil(t, remainder.AppointmentID)

	// Запись покрывает ровно длительность услуги
	require.NotNil(t, apptRepo.created)
	assert.Equal(t, domain.StatusScheduled, apptRepo.created.Status)
	assert.True(t, apptRepo.created.EndTime.Equal(day(9, 45)))
}

func TestExecute_ExactFitConsumesWholeSlots(t *testing.T) {
	anchor := slot(1, day(9, 0), day(9, 30))
	slotRepo := &fakeSlotRepo{
		anchor: anchor,
		free: []*domain.AtomicSlot{
			anchor,
			slot(2, day(9, 30), day(10, 0)),
		},
	}

	uc := NewUseCase(slotRepo, &fakeServiceRepo{service: &domain.Service{
		ID:         7,
		MechanicID: 1,
		Duration:   types.TimeString("01:00:00"),
	}}, &fakeAppointmentRepo{}, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.True(t, resp.EndTime.Equal(day(10, 0)))
	assert.Len(t, slotRepo.consumed, 2)
	assert.Empty(t, slotRepo.shrunk)
	assert.Empty(t, slotRepo.remainders)
}

func TestExecute_NoSlotsAvailable(t *testing.T) {
	slotRepo := &fakeSlotRepo{
		anchor: slot(1, day(9, 0), day(9, 30)),
		free:   nil,
	}

	uc := NewUseCase(slotRepo, &fakeServiceRepo{service: service45()}, &fakeAppointmentRepo{}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrNoSlotsAvailable)
}

func TestExecute_NotEnoughAdjacentSlots(t *testing.T) {
	anchor := slot(1, day(9, 0), day(9, 30))
	slotRepo := &fakeSlotRepo{
		anchor: anchor,
		free: []*domain.AtomicSlot{
			anchor,
			slot(2, day(10, 0), day(10, 30)), // разрыв
		},
	}
	apptRepo := &fakeAppointmentRepo{}

	uc := NewUseCase(slotRepo, &fakeServiceRepo{service: service45()}, apptRepo, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrNotEnoughAdjacentSlots)
	assert.Nil(t, apptRepo.created)
	assert.Empty(t, slotRepo.consumed)
}

func TestExecute_ConcurrentBookingConflict(t *testing.T) {
	anchor := slot(1, day(9, 0), day(9, 30))
	slotRepo := &fakeSlotRepo{
		anchor:  anchor,
		free:    []*domain.AtomicSlot{anchor, slot(2, day(9, 30), day(10, 0))},
		markErr: slotRepository.ErrSlotAlreadyBooked,
	}

	uc := NewUseCase(slotRepo, &fakeServiceRepo{service: service45()}, &fakeAppointmentRepo{}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_AnchorSlotNotFound(t *testing.T) {
	slotRepo := &fakeSlotRepo{anchorErr: slotRepository.ErrSlotNotFound}

	uc := NewUseCase(slotRepo, &fakeServiceRepo{service: service45()}, &fakeAppointmentRepo{}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeSlotRepo{}, &fakeServiceRepo{service: service45()}, &fakeAppointmentRepo{}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ClientID: 0, MechanicID: 1, ServiceID: 7, TimeSlotID: 1})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
