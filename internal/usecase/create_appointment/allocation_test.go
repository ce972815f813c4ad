package create_appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

func day(hour, minute int) time.Time {
	return time.Date(2025, 10, 15, hour, minute, 0, 0, time.UTC)
}

func slot(id int64, start, end time.Time) *domain.AtomicSlot {
	return &domain.AtomicSlot{
		ID:         id,
		MechanicID: 1,
		Date:       day(0, 0),
		StartTime:  start,
		EndTime:    end,
	}
}

func TestSelectChain_CoversRequiredDuration(t *testing.T) {
	slots := []*domain.AtomicSlot{
		slot(1, day(9, 0), day(9, 30)),
		slot(2, day(9, 30), day(10, 0)),
		slot(3, day(10, 0), day(10, 30)),
	}

	chain, err := selectChain(slots, time.Hour)

	require.NoError(t, err)
	// Берутся ровно два слота: час набран, третий не нужен
	require.Len(t, chain, 2)
	assert.Equal(t, int64(1), chain[0].ID)
	assert.Equal(t, int64(2), chain[1].ID)
}

func TestSelectChain_GapFailsAllocation(t *testing.T) {
	slots := []*domain.AtomicSlot{
		slot(1, day(9, 0), day(9, 30)),
		slot(2, day(10, 0), day(10, 30)), // разрыв после первого слота
	}

	_, err := selectChain(slots, time.Hour)

	assert.ErrorIs(t, err, ErrNotEnoughAdjacentSlots)
}

func TestSelectChain_StartsAtFirstSlot(t *testing.T) {
	slots := []*domain.AtomicSlot{
		slot(1, day(9, 0), day(9, 30)),
		slot(2, day(10, 0), day(10, 30)),
	}

	chain, err := selectChain(slots, 30*time.Minute)

	require.NoError(t, err)
	require.Len(t, chain, 1)
	assert.Equal(t, int64(1), chain[0].ID)
}

func TestSelectChain_NotEnoughTotal(t *testing.T) {
	slots := []*domain.AtomicSlot{
		slot(1, day(9, 0), day(9, 30)),
	}

	_, err := selectChain(slots, 45*time.Minute)

	assert.ErrorIs(t, err, ErrNotEnoughAdjacentSlots)
}

func TestPlanConsumption_SplitsTerminalSlot(t *testing.T) {
	chain := []*domain.AtomicSlot{
		slot(1, day(9, 0), day(9, 30)),
		slot(2, day(9, 30), day(10, 0)),
	}

	plan := planConsumption(chain, 45*time.Minute)

	require.Len(t, plan, 2)
	assert.False(t, plan[0].Partial)
	assert.True(t, plan[1].Partial)
	assert.True(t, plan[1].SplitAt.Equal(day(9, 45)))
}

func TestPlanConsumption_ExactFitNoSplit(t *testing.T) {
	chain := []*domain.AtomicSlot{
		slot(1, day(9, 0), day(9, 30)),
		slot(2, day(9, 30), day(10, 0)),
	}

	plan := planConsumption(chain, time.Hour)

	require.Len(t, plan, 2)
	assert.False(t, plan[0].Partial)
	assert.False(t, plan[1].Partial)
}
