package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSpinner(t *testing.T) {
	t.Parallel()

	spinner := NewSpinner()

	assert.Empty(t, spinner.Message())
	assert.NotNil(t, spinner.Tick())
}

func TestSpinner_SetMessage(t *testing.T) {
	t.Parallel()

	spinner := NewSpinner().SetMessage("Cloning...")

	assert.Equal(t, "Cloning...", spinner.Message())
	assert.Contains(t, spinner.View(), "Cloning...")
}

func TestSpinner_Update(t *testing.T) {
	t.Parallel()

	spinner := NewSpinner()
	msg := spinner.Tick()()

	_, cmd := spinner.Update(msg)
	assert.NotNil(t, cmd)
}
