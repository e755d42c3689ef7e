package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Skyedown/pohoda-skalite/internal/domain"
	"github.com/Skyedown/pohoda-skalite/internal/ordering"
	"github.com/Skyedown/pohoda-skalite/internal/repo"
	"go.uber.org/zap"
)

var ErrInvalidSettings = errors.New("invalid admin settings")

const maxCustomNoteLength = 500

// AdminService reads and updates the operator override. Saving triggers an
// eager re-evaluation of the ordering status so the new mode is visible
// before the next poll tick.
type AdminService struct {
	settings repo.AdminSettingsRepository
	poller   *ordering.Poller
	logger   *zap.SugaredLogger
}

func NewAdminService(settings repo.AdminSettingsRepository, poller *ordering.Poller, logger *zap.SugaredLogger) *AdminService {
	return &AdminService{
		settings: settings,
		poller:   poller,
		logger:   logger,
	}
}

// Get returns the stored override, degrading to the default "off" mode when
// the store is unreachable.
func (s *AdminService) Get(ctx context.Context) domain.AdminOverride {
	override, err := s.settings.Get(ctx)
	if err != nil {
		s.logger.Warnw("failed to load admin settings, using defaults", "error", err)
		return domain.DefaultAdminOverride()
	}
	return override
}

// Save validates and persists the override, then refreshes the status
// poller so subscribers see the change immediately.
func (s *AdminService) Save(ctx context.Context, override domain.AdminOverride) (domain.AdminOverride, error) {
	if err := validateOverride(override); err != nil {
		return domain.AdminOverride{}, err
	}

	saved, err := s.settings.Save(ctx, override)
	if err != nil {
		return domain.AdminOverride{}, fmt.Errorf("failed to save admin settings: %w", err)
	}

	s.logger.Infow("admin settings updated", "mode", saved.Mode, "wait_time_minutes", saved.WaitTimeMinutes)

	s.poller.Refresh(ctx)

	return saved, nil
}

func validateOverride(override domain.AdminOverride) error {
	if !override.Mode.Valid() {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidSettings, override.Mode)
	}
	if override.WaitTimeMinutes < 0 {
		return fmt.Errorf("%w: waitTimeMinutes must not be negative", ErrInvalidSettings)
	}
	if len(override.CustomNote) > maxCustomNoteLength {
		return fmt.Errorf("%w: custom note too long (max %d characters)", ErrInvalidSettings, maxCustomNoteLength)
	}
	return nil
}
