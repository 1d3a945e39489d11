package ports

import (
	"context"

	"github.com/storedemo/store-api/internal/core/domain"
)

// ActivityRepository persists customer activity audit records.
type ActivityRepository interface {
	Insert(ctx context.Context, ev *domain.ActivityEvent) error
}
