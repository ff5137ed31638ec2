package usecase

import (
	"github.com/secmon-lab/atelier/pkg/domain/interfaces"
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/infra"
)

type UseCase struct {
	clients *infra.Clients
	cfg     *model.RepoConfig
}

var _ interfaces.UseCase = (*UseCase)(nil)

func New(clients *infra.Clients, cfg *model.RepoConfig) *UseCase {
	return &UseCase{
		clients: clients,
		cfg:     cfg,
	}
}
