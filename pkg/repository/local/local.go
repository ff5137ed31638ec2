package local

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/atelier/pkg/domain/interfaces"
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/repository"
)

type settingsRepository struct {
	path string
}

// New creates a settings repository backed by a JSON file.
func New(path string) interfaces.SettingsRepository {
	return &settingsRepository{path: path}
}

// DefaultPath is the settings location under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", goerr.Wrap(err, "failed to resolve user config directory")
	}
	return filepath.Join(dir, "atelier", "settings.json"), nil
}

func (x *settingsRepository) Load(_ context.Context) (*model.Settings, error) {
	data, err := os.ReadFile(filepath.Clean(x.path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(repository.ErrNotFound, "no saved settings", goerr.V("path", x.path))
		}
		return nil, goerr.Wrap(err, "failed to read settings file", goerr.V("path", x.path))
	}

	var settings model.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, goerr.Wrap(err, "failed to parse settings file", goerr.V("path", x.path))
	}

	return &settings, nil
}

func (x *settingsRepository) Save(_ context.Context, settings *model.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(x.path), 0700); err != nil {
		return goerr.Wrap(err, "failed to create settings directory", goerr.V("path", x.path))
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to encode settings")
	}

	// The token lives in this file, keep it private to the user.
	if err := os.WriteFile(x.path, data, 0600); err != nil {
		return goerr.Wrap(err, "failed to write settings file", goerr.V("path", x.path))
	}

	return nil
}
