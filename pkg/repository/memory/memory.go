package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/atelier/pkg/domain/interfaces"
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/repository"
)

type settingsRepository struct {
	mu       sync.RWMutex
	settings *model.Settings
}

// New creates a new in-memory settings repository
func New() interfaces.SettingsRepository {
	return &settingsRepository{}
}

func (x *settingsRepository) Load(_ context.Context) (*model.Settings, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	if x.settings == nil {
		return nil, goerr.Wrap(repository.ErrNotFound, "no saved settings")
	}

	settings := *x.settings
	return &settings, nil
}

func (x *settingsRepository) Save(_ context.Context, settings *model.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	saved := *settings
	x.settings = &saved
	return nil
}
