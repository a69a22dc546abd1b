package server_test

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/Astemirdum/lab-booking/booking/config"
	"github.com/Astemirdum/lab-booking/booking/internal/server"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	_, port, err := net.SplitHostPort(l.Addr().String())
	require.NoError(t, err)
	return port
}

func TestServer_RunStop(t *testing.T) {
	cfg := config.HTTPServer{
		Host:         "127.0.0.1",
		Port:         freePort(t),
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	}
	srv := server.NewServer(cfg, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	done := make(chan error, 1)
	go func() { done <- srv.Run() }()

	url := "http://" + net.JoinHostPort(cfg.Host, cfg.Port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(url) //nolint:noctx
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusNoContent
	}, 2*time.Second, 20*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Stop(ctx))
	require.NoError(t, <-done)
}
