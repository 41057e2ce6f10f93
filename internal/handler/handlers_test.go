package handler

import (
	"testing"

	"github.com/greenjets/bladerunner-portal/internal/config"
	"github.com/greenjets/bladerunner-portal/internal/logger"
	"github.com/greenjets/bladerunner-portal/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers_HTTPConfigured(t *testing.T) {
	cfg := config.StructuredConfig{}
	cfg.Server.HTTPAddress = "localhost:8080"

	handlers, err := NewHandlers(&service.Services{}, cfg, nil, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, handlers.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	handlers, err := NewHandlers(&service.Services{}, config.StructuredConfig{}, nil, logger.Nop())
	assert.Nil(t, handlers)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
