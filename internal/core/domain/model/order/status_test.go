package order_test

import (
	"testing"

	"foodtruck/internal/core/domain/model/order"
	"foodtruck/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []order.Status {
	return []order.Status{
		order.Pending, order.Preparing, order.Ready, order.Completed, order.Cancelled,
	}
}

func TestStatus_TransitionTable(t *testing.T) {
	allowed := map[order.Status][]order.Status{
		order.Pending:   {order.Preparing, order.Cancelled},
		order.Preparing: {order.Ready, order.Cancelled},
		order.Ready:     {order.Completed},
		order.Completed: {},
		order.Cancelled: {},
	}

	for _, from := range allStatuses() {
		for _, to := range allStatuses() {
			isAllowed := false
			for _, next := range allowed[from] {
				if next == to {
					isAllowed = true
				}
			}

			got, err := from.TransitionTo(to)
			if isAllowed {
				require.NoError(t, err, "%s -> %s should be allowed", from, to)
				assert.Equal(t, to, got)
			} else {
				require.ErrorIs(t, err, errs.ErrInvalidTransition, "%s -> %s should be rejected", from, to)
			}
		}
	}
}

func TestStatus_TransitionTo_InvalidTarget(t *testing.T) {
	_, err := order.Pending.TransitionTo(order.Unknown)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.Pending.TransitionTo(order.Status(99))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_Bump(t *testing.T) {
	t.Run("pending bumps to preparing", func(t *testing.T) {
		next, err := order.Pending.Bump()
		require.NoError(t, err)
		assert.Equal(t, order.Preparing, next)
	})

	t.Run("preparing bumps to ready", func(t *testing.T) {
		next, err := order.Preparing.Bump()
		require.NoError(t, err)
		assert.Equal(t, order.Ready, next)
	})

	t.Run("bumping ready is a no-op", func(t *testing.T) {
		next, err := order.Ready.Bump()
		require.NoError(t, err)
		assert.Equal(t, order.Ready, next)

		// a second tap gives the same answer
		next, err = next.Bump()
		require.NoError(t, err)
		assert.Equal(t, order.Ready, next)
	})

	t.Run("terminal statuses cannot be bumped", func(t *testing.T) {
		_, err := order.Completed.Bump()
		require.ErrorIs(t, err, errs.ErrInvalidTransition)

		_, err = order.Cancelled.Bump()
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestStatus_Strings(t *testing.T) {
	cases := map[order.Status]string{
		order.Unknown:   "unknown",
		order.Pending:   "pending",
		order.Preparing: "preparing",
		order.Ready:     "ready",
		order.Completed: "completed",
		order.Cancelled: "cancelled",
	}
	for status, str := range cases {
		assert.Equal(t, str, status.String())
	}
	assert.Equal(t, "unknown", order.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("round-trips valid statuses", func(t *testing.T) {
		for _, s := range allStatuses() {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		for _, input := range []string{"", "unknown", "Pending", "done"} {
			_, err := order.StatusFromString(input)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "input %q", input)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range allStatuses() {
		require.NoError(t, s.Validate())
	}
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(99).Validate())
}

func TestStatus_Classification(t *testing.T) {
	assert.True(t, order.Pending.IsActive())
	assert.True(t, order.Preparing.IsActive())
	assert.False(t, order.Ready.IsActive())
	assert.False(t, order.Completed.IsActive())

	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Ready.IsTerminal())
}
