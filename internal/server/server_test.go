package server

import (
	"testing"

	"github.com/greenjets/bladerunner-portal/internal/config"
	"github.com/greenjets/bladerunner-portal/internal/handler"
	"github.com/greenjets/bladerunner-portal/internal/logger"
	"github.com/greenjets/bladerunner-portal/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_HTTPConfigured(t *testing.T) {
	cfg := config.StructuredConfig{}
	cfg.Server.HTTPAddress = "localhost:0"

	handlers, err := handler.NewHandlers(&service.Services{}, cfg, nil, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg.Server, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, srv)
}

func TestNewServer_NoAddress(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())
	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}
