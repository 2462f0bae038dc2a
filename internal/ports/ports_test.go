package ports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClipboardFunc(t *testing.T) {
	t.Parallel()

	var got string
	var cb Clipboard = ClipboardFunc(func(_ context.Context, text string) error {
		got = text
		return nil
	})

	require.NoError(t, cb.WriteText(context.Background(), "kind: Secret"))
	assert.Equal(t, "kind: Secret", got)
}

func TestClipboardFunc_PropagatesError(t *testing.T) {
	t.Parallel()

	cb := ClipboardFunc(func(_ context.Context, _ string) error {
		return ErrClipboardUnavailable
	})

	assert.ErrorIs(t, cb.WriteText(context.Background(), "x"), ErrClipboardUnavailable)
}

func TestNotifierFunc(t *testing.T) {
	t.Parallel()

	var seen []Notification
	n := NotifierFunc(func(_ context.Context, note Notification) error {
		seen = append(seen, note)
		return nil
	})

	require.NoError(t, n.Notify(context.Background(), Notification{Title: "done"}))
	require.Len(t, seen, 1)
	assert.Equal(t, "done", seen[0].Title)
}
