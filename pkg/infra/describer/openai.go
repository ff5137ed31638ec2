package describer

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/atelier/pkg/domain/interfaces"
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
	"github.com/secmon-lab/atelier/pkg/utils/safe"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-mini"
)

const systemPrompt = `You are an assistant for an artist's portfolio site. Given an artwork image, respond with a JSON object of exactly these fields: "title" (a short evocative title), "description" (2-3 sentences for a gallery label), "medium" (the apparent medium, e.g. "Oil on canvas"), "tags" (3-6 lowercase keywords). Respond with JSON only.`

// Client drafts artwork metadata from image bytes with an OpenAI vision
// model. The response is constrained to a fixed JSON object matching
// model.ArtworkMetadata.
type Client struct {
	apiKey     types.OpenAIAPIKey
	model      string
	baseURL    string
	httpClient HTTPClient
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

var _ interfaces.Describer = (*Client)(nil)

type Option func(*Client)

func WithModel(name string) Option {
	return func(x *Client) {
		x.model = name
	}
}

// WithBaseURL overrides the API endpoint. Used by tests.
func WithBaseURL(rawURL string) Option {
	return func(x *Client) {
		x.baseURL = rawURL
	}
}

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

func New(apiKey types.OpenAIAPIKey, options ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "API key is empty")
	}

	client := &Client{
		apiKey:     apiKey,
		model:      defaultModel,
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range options {
		opt(client)
	}
	return client, nil
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (x *Client) Describe(ctx context.Context, input *interfaces.DescribeInput) (*model.ArtworkMetadata, error) {
	if len(input.Data) == 0 {
		return nil, goerr.Wrap(types.ErrInvalidInput, "image data is empty")
	}
	mimeType := input.MIMEType
	if mimeType == "" {
		mimeType = http.DetectContentType(input.Data)
	}

	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(input.Data))

	reqBody := chatRequest{
		Model: x.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: []contentPart{
				{Type: "text", Text: "Describe this artwork."},
				{Type: "image_url", ImageURL: &imageURL{URL: dataURL}},
			}},
		},
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal describe request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, x.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build describe request")
	}
	req.Header.Set("Authorization", "Bearer "+string(x.apiKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to call OpenAI API")
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, goerr.New("OpenAI API returned an error",
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(respBody)),
		)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, goerr.Wrap(types.ErrMalformedContent, "failed to decode OpenAI response")
	}
	if len(chatResp.Choices) == 0 {
		return nil, goerr.Wrap(types.ErrMalformedContent, "OpenAI response has no choices")
	}

	var meta model.ArtworkMetadata
	if err := json.Unmarshal([]byte(chatResp.Choices[0].Message.Content), &meta); err != nil {
		return nil, goerr.Wrap(types.ErrMalformedContent, "metadata is not valid JSON",
			goerr.V("content", chatResp.Choices[0].Message.Content),
		)
	}
	if meta.Title == "" {
		return nil, goerr.Wrap(types.ErrMalformedContent, "metadata has no title")
	}

	return &meta, nil
}
