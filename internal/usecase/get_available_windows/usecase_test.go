package get_available_windows

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/services"
	"github.com/m04kA/SMC-GarageService/pkg/types"
)

type fakeSlotRepo struct {
	slots   []*domain.AtomicSlot
	gotFrom time.Time
}

func (f *fakeSlotRepo) GetFreeFuture(_ context.Context, _ int64, now time.Time) ([]*domain.AtomicSlot, error) {
	f.gotFrom = now
	return f.slots, nil
}

type fakeServiceRepo struct {
	service *domain.Service
	err     error
}

func (f *fakeServiceRepo) GetByMechanic(_ context.Context, _, _ int64) (*domain.Service, error) {
	return f.service, f.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_FindsWindows(t *testing.T) {
	slotRepo := &fakeSlotRepo{slots: []*domain.AtomicSlot{
		slot(1, day(9, 0), day(9, 30)),
		slot(2, day(9, 30), day(10, 0)),
	}}
	svcRepo := &fakeServiceRepo{service: &domain.Service{
		ID:         7,
		MechanicID: 1,
		Duration:   types.TimeString("00:45:00"),
	}}

	uc := NewUseCase(slotRepo, svcRepo, nopLogger{})
	now := day(8, 0)
	uc.timeProvider = &fixedTimeProvider{now: now}

	resp, err := uc.Execute(context.Background(), &Request{MechanicID: 1, ServiceID: 7})

	require.NoError(t, err)
	require.Len(t, resp.Windows, 1)
	assert.Equal(t, []int64{1, 2}, resp.Windows[0].SlotIDs)
	assert.True(t, slotRepo.gotFrom.Equal(now))
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeSlotRepo{},
		&fakeServiceRepo{err: serviceRepo.ErrServiceNotFound},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{MechanicID: 1, ServiceID: 7})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InvalidServiceDuration(t *testing.T) {
	uc := NewUseCase(
		&fakeSlotRepo{},
		&fakeServiceRepo{service: &domain.Service{
			ID:         7,
			MechanicID: 1,
			Duration:   types.TimeString("00:00:00"),
		}},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{MechanicID: 1, ServiceID: 7})

	assert.ErrorIs(t, err, ErrInvalidServiceDuration)
}

func TestExecute_NoFreeSlots(t *testing.T) {
	uc := NewUseCase(
		&fakeSlotRepo{},
		&fakeServiceRepo{service: &domain.Service{
			ID:         7,
			MechanicID: 1,
			Duration:   types.TimeString("00:30:00"),
		}},
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: day(8, 0)}

	resp, err := uc.Execute(context.Background(), &Request{MechanicID: 1, ServiceID: 7})

	require.NoError(t, err)
	assert.Empty(t, resp.Windows)
}
