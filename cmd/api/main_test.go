package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/wa-gateway/internal/config"
	"github.com/xavierca1/wa-gateway/internal/entity"
	"github.com/xavierca1/wa-gateway/internal/usecase"
)

type okMessenger struct {
	sent []entity.Address
}

func (m *okMessenger) SendMessage(_ context.Context, to entity.Address, _ entity.Payload) error {
	m.sent = append(m.sent, to)
	return nil
}

func (m *okMessenger) MediaFromURL(context.Context, string) (*entity.Media, error) {
	return &entity.Media{MimeType: "image/png", Data: []byte{1}}, nil
}

func TestNewServerServesConfiguredGateway(t *testing.T) {
	t.Setenv("PORT", "3123")
	t.Setenv("BODY_LIMIT_MB", "1")
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	messenger := &okMessenger{}
	dispatch := usecase.NewDispatchUseCase(messenger, nil, nil, zerolog.Nop())
	server := newServer(cfg, dispatch, nil, nil, zerolog.Nop())

	assert.Equal(t, ":3123", server.Addr)

	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/send-message",
		strings.NewReader(`{"number":"573001234567","message":"Hola"}`)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []entity.Address{"573001234567@c.us"}, messenger.sent)

	big := `{"number":"1","message":"` + strings.Repeat("x", 2<<20) + `"}`
	rec = httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/send-message", strings.NewReader(big)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, messenger.sent, 1)

	rec = httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
