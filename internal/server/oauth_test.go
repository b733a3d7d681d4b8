package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/oauth2"
)

func TestCallbackServer(t *testing.T) {
	t.Run("NewCallbackServer", func(t *testing.T) {
		t.Run("Parses Redirect URI", func(t *testing.T) {
			handler := NewOAuthHandler(func(r *http.Request) (*oauth2.Token, error) {
				return &oauth2.Token{AccessToken: "tok"}, nil
			})

			srv, err := NewCallbackServer("http://localhost:8080/callback", handler)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if srv.Path() != "/callback" {
				t.Errorf("expected /callback path, got %s", srv.Path())
			}
		})

		t.Run("Rejects Invalid URI", func(t *testing.T) {
			if _, err := NewCallbackServer("not a uri", nil); err == nil {
				t.Error("expected error for invalid URI")
			}
		})

		t.Run("Rejects URI Without Host", func(t *testing.T) {
			if _, err := NewCallbackServer("/callback", nil); err == nil {
				t.Error("expected error for URI without host")
			}
		})
	})

	t.Run("Shutdown", func(t *testing.T) {
		handler := NewOAuthHandler(func(r *http.Request) (*oauth2.Token, error) {
			return nil, errors.New("unused")
		})

		srv, err := NewCallbackServer("http://127.0.0.1:0/callback", handler)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		errCh := srv.Start()
		if err := srv.Shutdown(context.Background()); err != nil {
			t.Fatalf("shutdown failed: %v", err)
		}

		if err, ok := <-errCh; ok && err != nil {
			t.Errorf("unexpected listen error: %v", err)
		}
	})
}

func TestOAuthHandler(t *testing.T) {
	t.Run("Successful Exchange", func(t *testing.T) {
		want := &oauth2.Token{AccessToken: "access"}
		handler := NewOAuthHandler(func(r *http.Request) (*oauth2.Token, error) {
			return want, nil
		})

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/callback?code=abc&state=xyz", nil))

		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}

		result := <-handler.Result()
		if result.Error() != nil {
			t.Fatalf("expected no error, got %v", result.Error())
		}
		if result.Token.AccessToken != "access" {
			t.Errorf("expected access token, got %s", result.Token.AccessToken)
		}
	})

	t.Run("Failed Exchange", func(t *testing.T) {
		handler := NewOAuthHandler(func(r *http.Request) (*oauth2.Token, error) {
			return nil, errors.New("state mismatch")
		})

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/callback?error=access_denied", nil))

		if w.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", w.Code)
		}

		result := <-handler.Result()
		if result.Error() == nil {
			t.Error("expected error result")
		}
	})

	t.Run("Second Callback Rejected", func(t *testing.T) {
		handler := NewOAuthHandler(func(r *http.Request) (*oauth2.Token, error) {
			return &oauth2.Token{AccessToken: "tok"}, nil
		})

		first := httptest.NewRecorder()
		handler.ServeHTTP(first, httptest.NewRequest("GET", "/callback?code=abc", nil))

		second := httptest.NewRecorder()
		handler.ServeHTTP(second, httptest.NewRequest("GET", "/callback?code=abc", nil))

		if second.Code != http.StatusBadRequest {
			t.Errorf("expected 400 for repeated callback, got %d", second.Code)
		}
	})
}
