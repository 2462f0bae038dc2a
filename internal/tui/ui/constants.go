package ui

import "time"

// Default component dimensions.
const (
	// DefaultWidth is used before the first WindowSizeMsg arrives.
	DefaultWidth = 100

	// DefaultHeight is used before the first WindowSizeMsg arrives.
	DefaultHeight = 30

	// MinCardWidth is the narrowest a flow stage card is drawn.
	MinCardWidth = 18

	// ModalMargin is the horizontal space left around overlays.
	ModalMargin = 4

	// InputCharLimit caps the clone dialog input.
	InputCharLimit = 200

	// ToastDuration is how long a notification stays on screen.
	ToastDuration = 4 * time.Second
)
