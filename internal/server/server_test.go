package server

import (
	"net/http"
	"testing"

	"askgemini/internal/config"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	logger, hook := test.NewNullLogger()
	srv := New(config.Server{Host: "127.0.0.1", Port: 18080}, http.NotFoundHandler(), logger)

	assert.Equal(t, "127.0.0.1:18080", srv.Addr())
	assert.NoError(t, srv.Shutdown())
	assert.Equal(t, "Server gracefully stopped", hook.LastEntry().Message)
}
