package adapters

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"healthsync-service/internal/domain/dtos"
)

func TestHTTPChatProvider_Complete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer key-1", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, "test-model", gjson.GetBytes(body, "model").String())
		assert.Equal(t, "hello", gjson.GetBytes(body, "messages.0.content").String())

		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hi there"}}]}`))
	}))
	defer server.Close()

	provider := NewHTTPChatProvider(server.URL, "key-1", "test-model", zap.NewNop())
	reply, err := provider.Complete(context.Background(), []dtos.ChatMessage{
		{Role: "user", Content: "hello"},
	})
	require.NoError(t, err)
	assert.Equal(t, "hi there", reply)
}

func TestHTTPChatProvider_Complete_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	provider := NewHTTPChatProvider(server.URL, "key-1", "test-model", zap.NewNop())
	_, err := provider.Complete(context.Background(), []dtos.ChatMessage{
		{Role: "user", Content: "hello"},
	})
	assert.Error(t, err)
}
