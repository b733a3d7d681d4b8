// package server hosts the localhost HTTP callback used during the OAuth
// authorization-code flow.
package server

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// CallbackServer is a short-lived HTTP server bound to the address of the
// configured redirect URI. It serves a single callback route and is shut
// down as soon as the authorization flow completes.
type CallbackServer struct {
	srv  *http.Server
	path string
}

// NewCallbackServer creates a server for the given redirect URI, routing the
// URI's path to handler.
func NewCallbackServer(redirectURI string, handler http.Handler) (*CallbackServer, error) {
	u, err := url.Parse(redirectURI)
	if err != nil {
		return nil, fmt.Errorf("invalid redirect URI %q: %w", redirectURI, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("redirect URI %q has no host", redirectURI)
	}

	path := u.Path
	if path == "" {
		path = "/"
	}

	mux := http.NewServeMux()
	mux.Handle(path, handler)

	return &CallbackServer{
		srv: &http.Server{
			Addr:              u.Host,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
		path: path,
	}, nil
}

// Path returns the callback route served by this server.
func (s *CallbackServer) Path() string {
	return s.path
}

// Start begins serving in a new goroutine. Listen errors other than
// [http.ErrServerClosed] are delivered on the returned channel.
func (s *CallbackServer) Start() <-chan error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()
	return errCh
}

// Shutdown gracefully stops the server.
func (s *CallbackServer) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
