// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-account-gate/internal/config"
	handler "github.com/MKhiriev/go-account-gate/internal/handler/http"
	"github.com/MKhiriev/go-account-gate/internal/logger"
)

func TestNewServer_NoAddress(t *testing.T) {
	h := handler.NewHandler(handler.Controllers{}, nil, config.Server{}, logger.Nop())

	s, err := NewServer(h, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestServer_RunAndShutdownOnCancel(t *testing.T) {
	addr := freeAddress(t)
	cfg := config.Server{HTTPAddress: addr, ReadTimeout: time.Second, WriteTimeout: time.Second}
	h := handler.NewHandler(handler.Controllers{}, http.NotFoundHandler(), cfg, logger.Nop())

	s, err := NewServer(h, cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.(*server).run(ctx)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/metrics")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusNotFound
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	_, err = http.Get("http://" + addr + "/metrics")
	assert.Error(t, err)
}

func TestServer_RunReturnsListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := config.Server{HTTPAddress: busy.Addr().String(), ReadTimeout: time.Second, WriteTimeout: time.Second}
	h := handler.NewHandler(handler.Controllers{}, nil, cfg, logger.Nop())

	s, err := NewServer(h, cfg, logger.Nop())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- s.(*server).run(context.Background())
	}()

	select {
	case err := <-done:
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "address already in use")
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after listen failure")
	}
}
