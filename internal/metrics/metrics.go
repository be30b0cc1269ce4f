// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package metrics serves the registered prometheus metrics over HTTP.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/PolymeshAssociation/Polymesh-sub002/internal/httpserver"
	"github.com/PolymeshAssociation/Polymesh-sub002/internal/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ErrServerExited   = errors.New("metrics server exited unexpectedly")
	ErrServerExitTime = errors.New("metrics server exit timeout")
)

const stopTimeout = 30 * time.Second

var logger log.LeveledLogger = log.NewFromGlobal(log.AddContext("pkg", "metrics"))

// Server is a metrics http server
type Server struct {
	cancel context.CancelFunc
	server *httpserver.Server
	done   chan error
}

// NewServer is a constructor for metrics server
func NewServer(address string) (s *Server) {
	m := http.NewServeMux()
	m.Handle("/metrics", promhttp.Handler())
	return &Server{
		server: httpserver.New("metrics", address, m, logger),
	}
}

// Start will start a dedicated metrics server at the given address.
func (s *Server) Start() (err error) {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	ready := make(chan struct{})
	s.done = make(chan error)

	go s.server.Run(ctx, ready, s.done)

	select {
	case <-ready:
		logger.Infof("serving metrics at http://%s/metrics", s.server.GetAddress())
		return nil
	case err := <-s.done:
		close(s.done)
		cancel()
		if err != nil {
			return err
		}
		return ErrServerExited
	}
}

// Address returns the address the server listens on.
func (s *Server) Address() string {
	return s.server.GetAddress()
}

// Stop will stop the metrics server
func (s *Server) Stop() (err error) {
	s.cancel()
	timer := time.NewTimer(stopTimeout)
	defer timer.Stop()

	select {
	case err := <-s.done:
		close(s.done)
		return err
	case <-timer.C:
		return ErrServerExitTime
	}
}
