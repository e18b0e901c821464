package trades

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDispatcherCommands(t *testing.T) {
	svc, cleanup := setupService(t, Options{})
	defer cleanup()

	d := NewDispatcher(svc)
	for _, name := range []string{"offer", "accept", "complete", "last"} {
		_, ok := d.Lookup(name)
		require.True(t, ok, "command %q should be registered", name)
	}
	require.Len(t, d.commands, 4)
}

func TestDispatcherFlow(t *testing.T) {
	svc, cleanup := setupService(t, Options{})
	defer cleanup()
	ctx := context.Background()

	d := NewDispatcher(svc)

	reply, err := d.Dispatch(ctx, "offer", Invocation{
		UserID:   "100",
		UserName: "Doug",
		Args:     "Anvil Blueprint",
	})
	require.NoError(t, err)
	require.Len(t, reply.Offers, 1)
	require.Equal(t, "Anvil", reply.Offers[0].Item)

	reply, err = d.Dispatch(ctx, "accept", Invocation{
		UserID:   "200",
		UserName: "Ava",
		Args:     "anvil from Doug",
	})
	require.NoError(t, err)
	require.Equal(t, StatusAccepted, reply.Offers[0].Status)

	reply, err = d.Dispatch(ctx, "complete", Invocation{
		UserID: "200",
		Args:   "anvil",
	})
	require.NoError(t, err)
	require.Equal(t, StatusCompleted, reply.Offers[0].Status)

	reply, err = d.Dispatch(ctx, "last", Invocation{UserID: "200", Args: "1"})
	require.NoError(t, err)
	require.Len(t, reply.Offers, 1)
}

func TestDispatcherUnknownCommand(t *testing.T) {
	svc, cleanup := setupService(t, Options{})
	defer cleanup()

	d := NewDispatcher(svc)
	_, err := d.Dispatch(context.Background(), "yeet", Invocation{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestDispatcherLastRejectsBadCount(t *testing.T) {
	svc, cleanup := setupService(t, Options{})
	defer cleanup()

	d := NewDispatcher(svc)
	for _, args := range []string{"zero", "-3", "0"} {
		_, err := d.Dispatch(context.Background(), "last", Invocation{Args: args})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "args %q", args)
	}
}
