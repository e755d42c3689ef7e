package repo

import (
	"context"

	"github.com/Skyedown/pohoda-skalite/internal/domain"
)

type AdminSettingsRepository interface {
	Get(ctx context.Context) (domain.AdminOverride, error)
	Save(ctx context.Context, override domain.AdminOverride) (domain.AdminOverride, error)
}
