// Package adapters holds the clients for the service's external
// collaborators: the identity provider, the LLM chat provider and the
// object storage backing attachment uploads.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// IdentityProviderClient exchanges a mini-program login code for the
// provider-side user identity.
type IdentityProviderClient interface {
	ExchangeCode(ctx context.Context, code string) (string, error)
}

// HTTPIdentityProvider implements IdentityProviderClient against the
// provider's code2session endpoint.
type HTTPIdentityProvider struct {
	baseURL   string
	appID     string
	appSecret string
	client    *http.Client
	logger    *zap.Logger
}

// NewHTTPIdentityProvider creates a new identity provider client.
func NewHTTPIdentityProvider(baseURL, appID, appSecret string, logger *zap.Logger) IdentityProviderClient {
	return &HTTPIdentityProvider{
		baseURL:   baseURL,
		appID:     appID,
		appSecret: appSecret,
		client:    &http.Client{Timeout: 10 * time.Second},
		logger:    logger,
	}
}

// ExchangeCode resolves a one-time login code into the provider openid. Any
// provider-reported errcode or transport failure is an error; no session is
// established from a rejected code.
func (p *HTTPIdentityProvider) ExchangeCode(ctx context.Context, code string) (string, error) {
	endpoint := fmt.Sprintf("%s/sns/jscode2session?appid=%s&secret=%s&js_code=%s&grant_type=authorization_code",
		p.baseURL,
		url.QueryEscape(p.appID),
		url.QueryEscape(p.appSecret),
		url.QueryEscape(code))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("building code exchange request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling identity provider: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading identity provider response: %w", err)
	}

	if errcode := gjson.GetBytes(body, "errcode"); errcode.Exists() && errcode.Int() != 0 {
		p.logger.Warn("code exchange rejected by provider",
			zap.Int64("errcode", errcode.Int()),
			zap.String("errmsg", gjson.GetBytes(body, "errmsg").String()))
		return "", fmt.Errorf("provider rejected code: errcode %d", errcode.Int())
	}

	openID := gjson.GetBytes(body, "openid").String()
	if openID == "" {
		return "", errors.New("identity provider response missing openid")
	}
	return openID, nil
}
