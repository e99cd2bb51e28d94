package inventory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestGuard() *Guard {
	return NewGuard(zap.NewNop())
}

func TestGuardReserveThenConflict(t *testing.T) {
	g := newTestGuard()
	slot := "2024-01-01T18:00"

	err := g.Reserve(slot, []string{"A1", "A2"}, uuid.New())
	require.NoError(t, err)

	err = g.Reserve(slot, []string{"A2", "A3"}, uuid.New())
	require.Error(t, err)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, slot, conflict.Slot)
	assert.Equal(t, []string{"A2"}, conflict.Seats)

	// The losing request must not have claimed its free seat
	_, held := g.Holder(slot, "A3")
	assert.False(t, held, "conflicting reserve must be all-or-nothing")

	err = g.Reserve(slot, []string{"A3"}, uuid.New())
	require.NoError(t, err)
}

func TestGuardConflictListsEverySharedSeat(t *testing.T) {
	g := newTestGuard()

	require.NoError(t, g.Reserve("slot-1", []string{"B1", "B2", "B3"}, uuid.New()))

	err := g.Reserve("slot-1", []string{"B3", "B4", "B1"}, uuid.New())
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []string{"B1", "B3"}, conflict.Seats)
}

func TestGuardReleaseMakesSeatsClaimable(t *testing.T) {
	g := newTestGuard()

	require.NoError(t, g.Reserve("slot-1", []string{"A1", "A2"}, uuid.New()))
	require.NoError(t, g.Release("slot-1", []string{"A1", "A2"}))

	require.NoError(t, g.Reserve("slot-1", []string{"A1", "A2"}, uuid.New()))
}

func TestGuardSlotsArePartitioned(t *testing.T) {
	g := newTestGuard()

	// Same seat identifier in different slots is a different resource
	require.NoError(t, g.Reserve("slot-1", []string{"A1"}, uuid.New()))
	require.NoError(t, g.Reserve("slot-2", []string{"A1"}, uuid.New()))
}

func TestGuardWarmClaimsSeat(t *testing.T) {
	g := newTestGuard()
	id := uuid.New()

	g.Warm("slot-1", "A1", id)

	holder, held := g.Holder("slot-1", "A1")
	require.True(t, held)
	assert.Equal(t, id, holder)

	err := g.Reserve("slot-1", []string{"A1"}, uuid.New())
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestGuardConcurrentDisjointSeatsAllGranted(t *testing.T) {
	g := newTestGuard()
	const n = 64

	var wg sync.WaitGroup
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			seat := fmt.Sprintf("S%d", i)
			errs[i] = g.Reserve("slot-1", []string{seat}, uuid.New())
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "request %d on a disjoint seat must succeed", i)
	}
}

func TestGuardConcurrentOverlappingSeatExactlyOneWins(t *testing.T) {
	g := newTestGuard()
	const n = 64

	// Repeat to give interleavings a chance to show up
	for round := 0; round < 20; round++ {
		slot := fmt.Sprintf("slot-%d", round)

		var wg sync.WaitGroup
		errs := make([]error, n)

		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				errs[i] = g.Reserve(slot, []string{"A1", "A2"}, uuid.New())
			}(i)
		}
		wg.Wait()

		granted := 0
		for _, err := range errs {
			if err == nil {
				granted++
				continue
			}
			var conflict *ConflictError
			require.ErrorAs(t, err, &conflict)
			assert.Equal(t, []string{"A1", "A2"}, conflict.Seats)
		}
		assert.Equal(t, 1, granted, "round %d: exactly one request may win", round)
	}
}

func TestGuardDuplicateReserveAlwaysConflicts(t *testing.T) {
	g := newTestGuard()

	require.NoError(t, g.Reserve("slot-1", []string{"A1", "A2"}, uuid.New()))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := g.Reserve("slot-1", []string{"A2"}, uuid.New())
			assert.Error(t, err)
		}()
	}
	wg.Wait()
}
