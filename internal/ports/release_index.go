package ports

import (
	"context"

	"bloom-vcpkg/internal/types"
)

// ReleaseIndexPort reads the rosdistro release index.
type ReleaseIndexPort interface {
	GetIndex(ctx context.Context) (types.Index, error)
	GetDistributionFile(ctx context.Context, index types.Index, distro string) (types.DistributionFile, error)
}
