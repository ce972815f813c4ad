package generate_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

type fakeSlotRepo struct {
	created []*domain.AtomicSlot
	err     error
}

func (f *fakeSlotRepo) CreateBatch(_ context.Context, slots []*domain.AtomicSlot) ([]*domain.AtomicSlot, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i, slot := range slots {
		slot.ID = int64(i + 1)
	}
	f.created = append(f.created, slots...)
	return slots, nil
}

type fakeMechanicRepo struct {
	exists bool
	err    error
}

func (f *fakeMechanicRepo) Exists(_ context.Context, _ int64) (bool, error) {
	return f.exists, f.err
}

type fakeTxManager struct{}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(slotRepo *fakeSlotRepo, mechanicRepo *fakeMechanicRepo) *UseCase {
	return NewUseCase(slotRepo, mechanicRepo, &fakeTxManager{}, nopLogger{})
}

func day(hour, minute int) time.Time {
	return time.Date(2025, 10, 15, hour, minute, 0, 0, time.UTC)
}

func TestExecute_TilesWindowIntoSlots(t *testing.T) {
	slotRepo := &fakeSlotRepo{}
	uc := newTestUseCase(slotRepo, &fakeMechanicRepo{exists: true})

	resp, err := uc.Execute(context.Background(), &Request{
		MechanicID: 1,
		Date:       day(0, 0),
		StartTime:  day(9, 0),
		EndTime:    day(11, 0),
	})

	require.NoError(t, err)
	assert.Equal(t, "created", resp.Status)
	require.Len(t, resp.Slots, 4)

	// Слоты идут подряд без разрывов, каждый ровно 30 минут
	for i, slot := range resp.Slots {
		expectedStart := day(9, 0).Add(time.Duration(i) * domain.SlotDuration)
		assert.True(t, slot.StartTime.Equal(expectedStart), "slot %d start", i)
		assert.True(t, slot.EndTime.Equal(expectedStart.Add(domain.SlotDuration)), "slot %d end", i)
	}
}

func TestExecute_DropsPartialTail(t *testing.T) {
	slotRepo := &fakeSlotRepo{}
	uc := newTestUseCase(slotRepo, &fakeMechanicRepo{exists: true})

	// Окно 65 минут: два целых слота, хвост в 5 минут отбрасывается
	resp, err := uc.Execute(context.Background(), &Request{
		MechanicID: 1,
		Date:       day(0, 0),
		StartTime:  day(9, 0),
		EndTime:    day(10, 5),
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)
	assert.True(t, resp.Slots[1].EndTime.Equal(day(10, 0)))
}

func TestExecute_WindowShorterThanSlot(t *testing.T) {
	slotRepo := &fakeSlotRepo{}
	uc := newTestUseCase(slotRepo, &fakeMechanicRepo{exists: true})

	resp, err := uc.Execute(context.Background(), &Request{
		MechanicID: 1,
		Date:       day(0, 0),
		StartTime:  day(9, 0),
		EndTime:    day(9, 20),
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.Empty(t, slotRepo.created)
}

func TestExecute_EndNotAfterStart(t *testing.T) {
	uc := newTestUseCase(&fakeSlotRepo{}, &fakeMechanicRepo{exists: true})

	_, err := uc.Execute(context.Background(), &Request{
		MechanicID: 1,
		Date:       day(0, 0),
		StartTime:  day(10, 0),
		EndTime:    day(10, 0),
	})

	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestExecute_MechanicNotFound(t *testing.T) {
	slotRepo := &fakeSlotRepo{}
	uc := newTestUseCase(slotRepo, &fakeMechanicRepo{exists: false})

	_, err := uc.Execute(context.Background(), &Request{
		MechanicID: 42,
		Date:       day(0, 0),
		StartTime:  day(9, 0),
		EndTime:    day(10, 0),
	})

	assert.ErrorIs(t, err, ErrMechanicNotFound)
	// Ни один слот не создается до проверки механика
	assert.Empty(t, slotRepo.created)
}

func TestTileWindow_ExactFit(t *testing.T) {
	slots := tileWindow(&Request{
		MechanicID: 1,
		Date:       day(0, 0),
		StartTime:  day(9, 0),
		EndTime:    day(10, 0),
	})

	require.Len(t, slots, 2)
	assert.True(t, slots[0].StartTime.Equal(day(9, 0)))
	assert.True(t, slots[1].EndTime.Equal(day(10, 0)))
}
