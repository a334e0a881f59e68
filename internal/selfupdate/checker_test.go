package selfupdate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	t.Run("update available", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/repos/abhisek/adaptiq/releases/latest", r.URL.Path)
			_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
		}))
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL))
		result, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.NoError(t, err)
		assert.True(t, result.UpdateAvailable)
		assert.Equal(t, "v2.0.0", result.LatestVersion)
		assert.Equal(t, "https://example.com/v2.0.0", result.ReleaseURL)
	})

	t.Run("already latest", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name":"v1.0.0","html_url":"https://example.com/v1.0.0"}`))
		}))
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL))
		result, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.NoError(t, err)
		assert.False(t, result.UpdateAvailable)
	})

	t.Run("missing v prefix normalized", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name":"1.2.0","html_url":""}`))
		}))
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL))
		result, err := checker.Check(context.Background(), &CheckInput{Version: "1.1.0"})
		require.NoError(t, err)
		assert.True(t, result.UpdateAvailable)
		assert.Equal(t, "v1.2.0", result.LatestVersion)
	})

	t.Run("dev build", func(t *testing.T) {
		checker := NewChecker()
		_, err := checker.Check(context.Background(), &CheckInput{Version: "(devel)"})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("api error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL))
		_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 403")
	})

	t.Run("bad tag", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name":"release-candidate","html_url":""}`))
		}))
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL))
		_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not valid semver")
	})
}
