package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/phrazzld/chef-assistente/internal/api/middleware"
	"github.com/phrazzld/chef-assistente/internal/config"
	"github.com/phrazzld/chef-assistente/internal/platform/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	mu    sync.Mutex
	text  string
	err   error
	calls int
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.text, s.err
}

func (s *stubGenerator) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func isolateConfigEnv(t *testing.T) {
	t.Helper()
	t.Setenv(config.SecretsDirEnv, t.TempDir())
	t.Setenv(config.CredentialKey, "")
	t.Setenv("CHEF_SERVER_PORT", "")
	t.Setenv("CHEF_SERVER_LOG_LEVEL", "")
	t.Setenv("CHEF_LLM_MODEL_NAME", "")

	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })
}

func testApp(t *testing.T, gen *stubGenerator) *application {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{Port: 0, LogLevel: "info"},
		LLM:    config.LLMConfig{GeminiAPIKey: "test-api-key", ModelName: config.DefaultModelName},
	}
	app, err := newApplicationWithGenerator(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), gen)
	require.NoError(t, err)
	return app
}

func TestInitializeApp_MissingCredentialHaltsStartup(t *testing.T) {
	isolateConfigEnv(t)

	app, err := initializeApp(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrMissingCredential))
	assert.Nil(t, app, "nothing may be built without a credential")
}

func TestInitializeApp_WithCredential(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv(config.CredentialKey, "test-api-key")

	app, err := initializeApp(context.Background())

	require.NoError(t, err)
	require.NotNil(t, app)
	gen, ok := app.generator.(*gemini.GeminiGenerator)
	require.True(t, ok, "production wiring should use the Gemini generator")
	assert.Equal(t, gemini.DefaultModel, gen.Model())
	assert.Equal(t, 8501, app.config.Server.Port)
}

func TestNewApplicationWithGeneratorRejectsNil(t *testing.T) {
	_, err := newApplicationWithGenerator(&config.Config{}, slog.Default(), nil)
	assert.Error(t, err)
}

func TestRouter(t *testing.T) {
	gen := &stubGenerator{text: "## Omelete\n### Ingredientes\n- ovo"}
	router, err := testApp(t, gen).setupRouter()
	require.NoError(t, err)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	t.Run("form_page", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get(middleware.TraceHeader))
	})

	t.Run("blank_submission", func(t *testing.T) {
		before := gen.callCount()
		resp, err := http.PostForm(server.URL+"/", url.Values{"ingredientes": {"   "}})
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, before, gen.callCount())
	})

	t.Run("form_submission", func(t *testing.T) {
		resp, err := http.PostForm(server.URL+"/", url.Values{"ingredientes": {"ovo"}})
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(body), "<h2>Omelete</h2>")
	})

	t.Run("json_api", func(t *testing.T) {
		resp, err := http.Post(server.URL+"/api/recipes", "application/json",
			strings.NewReader(`{"ingredients": "ovo"}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("health", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/health")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("unknown_route", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/nope")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestStartHTTPServer_StopsOnContextCancel(t *testing.T) {
	app := testApp(t, &stubGenerator{text: "ok"})
	router, err := app.setupRouter()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.startHTTPServer(ctx, router) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down after context cancellation")
	}
}
