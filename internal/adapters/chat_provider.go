package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"healthsync-service/internal/domain/dtos"
)

// ChatProviderClient forwards a conversation to the LLM provider and returns
// the assistant reply.
type ChatProviderClient interface {
	Complete(ctx context.Context, messages []dtos.ChatMessage) (string, error)
}

// HTTPChatProvider implements ChatProviderClient against an OpenAI-style
// chat-completions endpoint.
type HTTPChatProvider struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPChatProvider creates a new chat provider client.
func NewHTTPChatProvider(baseURL, apiKey, model string, logger *zap.Logger) ChatProviderClient {
	return &HTTPChatProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
		logger:  logger,
	}
}

func (p *HTTPChatProvider) Complete(ctx context.Context, messages []dtos.ChatMessage) (string, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"model":    p.model,
		"messages": messages,
	})
	if err != nil {
		return "", fmt.Errorf("encoding chat payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("building chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling chat provider: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading chat provider response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		p.logger.Warn("chat provider returned non-200 status",
			zap.Int("status", resp.StatusCode))
		return "", fmt.Errorf("chat provider returned status %d", resp.StatusCode)
	}

	reply := gjson.GetBytes(body, "choices.0.message.content").String()
	if reply == "" {
		return "", errors.New("chat provider response missing content")
	}
	return reply, nil
}
