//go:build !gcp

package blobstore

import (
	"context"
	"fmt"

	"pcg_compliance/internal/config"
	"pcg_compliance/internal/usecase/interfaces"
)

func newGCSStore(_ context.Context, _ *config.Config) (interfaces.IBlobStore, error) {
	return nil, fmt.Errorf("GCS storage is not enabled in this build (use -tags gcp)")
}
