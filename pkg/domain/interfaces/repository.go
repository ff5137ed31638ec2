package interfaces

//go:generate moq -out ../mock/repository.go -pkg mock . SettingsRepository

import (
	"context"

	"github.com/secmon-lab/atelier/pkg/domain/model"
)

// SettingsRepository persists the repository configuration across
// restarts. Load returns repository.ErrNotFound when nothing has been
// saved yet.
type SettingsRepository interface {
	Load(ctx context.Context) (*model.Settings, error)
	Save(ctx context.Context, settings *model.Settings) error
}
