package action

import (
	"time"

	"github.com/amenflux/gitopsview/internal/ports"
	"github.com/google/uuid"
)

// Success notification text.
const (
	SuccessTitle       = "Repository Cloned Successfully"
	SuccessDescription = "The project has been cloned to your GitHub repository."
)

// SuccessNotification builds the notification emitted once per successful
// run.
func SuccessNotification(now time.Time) ports.Notification {
	return ports.Notification{
		ID:          uuid.NewString(),
		Title:       SuccessTitle,
		Description: SuccessDescription,
		CreatedAt:   now,
	}
}
