package platform

import (
	"context"

	"github.com/marcos-nsantos/zapgo-backend/internal/domain/entity"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/platform_mocks.go -package=mocks

// FixHandler receives a non-empty, oldest-first batch of fixes. It may be
// called from any goroutine.
type FixHandler func(batch []entity.Fix)

// LocationService is the host platform's push-based location provider.
type LocationService interface {
	// RequestPermission asks for foreground location access. It returns
	// domain.ErrPermissionDenied when the user refuses.
	RequestPermission(ctx context.Context) error
	Subscribe(ctx context.Context, handler FixHandler) error
	Unsubscribe() error
}
