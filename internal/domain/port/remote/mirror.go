package remote

import (
	"context"

	"github.com/amirhossein-jamali/payledger/internal/domain/entity"
)

// Mirror is the remote side of a sync round-trip
type Mirror interface {
	// Submit sends the local snapshot and returns the mirror's authoritative view
	Submit(ctx context.Context, req *entity.SyncRequest) (*entity.SyncResponse, error)
}
