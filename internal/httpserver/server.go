// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
)

// Server is an HTTP server serving the handler given to it.
type Server struct {
	name       string
	address    string
	addressSet chan struct{}
	handler    http.Handler
	logger     Logger
	optional   optionalSettings
}

// New creates a new HTTP server with a name, listening on
// the address specified and using the HTTP handler provided.
func New(name, address string, handler http.Handler,
	logger Logger, options ...Option) *Server {
	return &Server{
		name:       name,
		address:    address,
		addressSet: make(chan struct{}),
		handler:    handler,
		logger:     logger,
		optional:   newOptionalSettings(options),
	}
}

// Run runs the HTTP server until ctx is canceled. The ready channel is
// closed once the server listens. The done channel receives the error
// the server stopped with, nil if stopped by ctx.
func (s *Server) Run(ctx context.Context, ready chan<- struct{}, done chan<- error) {
	server := http.Server{
		Addr:              s.address,
		Handler:           s.handler,
		ReadTimeout:       s.optional.readTimeout,
		ReadHeaderTimeout: s.optional.readHeaderTimeout,
	}

	crashed := make(chan struct{})
	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		select {
		case <-ctx.Done():
		case <-crashed:
			return
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.optional.shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(s.name + " http server shutdown error: " + err.Error())
		}
	}()

	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		close(s.addressSet)
		close(crashed)
		done <- err
		return
	}

	s.address = listener.Addr().String()
	close(s.addressSet)
	close(ready)

	s.logger.Info(s.name + " http server listening on " + s.address)
	err = server.Serve(listener)

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		close(crashed)
		done <- err
		return
	}

	<-shutdownDone
	done <- nil
}

// GetAddress returns the address the server listens on, waiting for
// it to be set by Run.
func (s *Server) GetAddress() (address string) {
	<-s.addressSet
	return s.address
}
