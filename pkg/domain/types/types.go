package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	ArtworkID  string
	BranchName string
	RequestID  string

	GitHubToken         string
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppPrivateKey string
	OpenAIAPIKey        string
)

func NewArtworkID() ArtworkID {
	return ArtworkID(uuid.NewString())
}

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}

func (x OpenAIAPIKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x OpenAIAPIKey) String() string {
	return "***********"
}
