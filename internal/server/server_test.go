package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/deppfellow/pos-backend/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupHTTPServer(t *testing.T) {
	logger := zerolog.Nop()
	s := &Server{
		Config: &config.Config{Server: config.ServerConfig{
			Port:         "3000",
			ReadTimeout:  30,
			WriteTimeout: 15,
			IdleTimeout:  60,
		}},
		Logger: &logger,
	}

	s.SetupHTTPServer(http.NotFoundHandler())

	require.NotNil(t, s.httpServer)
	assert.Equal(t, ":3000", s.httpServer.Addr)
	assert.Equal(t, 30*time.Second, s.httpServer.ReadTimeout)
	assert.Equal(t, 15*time.Second, s.httpServer.WriteTimeout)
	assert.Equal(t, 60*time.Second, s.httpServer.IdleTimeout)
}

func TestStartRequiresSetup(t *testing.T) {
	s := &Server{Config: &config.Config{}}

	assert.EqualError(t, s.Start(), "HTTP server not initialized")
}

func TestShutdownWithoutResources(t *testing.T) {
	assert.NoError(t, (&Server{}).Shutdown(context.Background()))
}
