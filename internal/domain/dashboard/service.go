package dashboard

import (
	"context"

	"github.com/attendly/attendance-backend-go/internal/domain/user"
)

type DashboardService interface {
	// Overview returns the admin dashboard counters plus the latest
	// registrations and attendance activity.
	Overview(ctx context.Context) (Overview, error)

	// Users returns the full roster for the admin users page.
	Users(ctx context.Context) (user.RosterResponse, error)
}
