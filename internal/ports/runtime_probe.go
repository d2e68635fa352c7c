package ports

import (
	"context"

	"github.com/bnema/sentiment-setup/internal/domain"
)

type RuntimeProbe interface {
	Version(ctx context.Context) (domain.Version, error)
}
