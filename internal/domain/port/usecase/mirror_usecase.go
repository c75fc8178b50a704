package usecase

import (
	"context"

	"github.com/amirhossein-jamali/payledger/internal/domain/entity"
)

// MirrorUseCase defines the remote side of a sync round-trip
type MirrorUseCase interface {
	// Apply stores a device snapshot idempotently and returns the authoritative view
	Apply(ctx context.Context, req *entity.SyncRequest) (*entity.SyncResponse, error)
}
