package api

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/phrazzld/chef-assistente/internal/recipe"
	"github.com/stretchr/testify/require"
)

// countingGenerator is a generation.Generator double that records prompts.
type countingGenerator struct {
	mu      sync.Mutex
	text    string
	err     error
	prompts []string
}

func (g *countingGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prompts = append(g.prompts, prompt)
	return g.text, g.err
}

func (g *countingGenerator) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.prompts)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(t *testing.T, gen *countingGenerator) *recipe.Service {
	t.Helper()
	svc, err := recipe.NewService(gen, testLogger())
	require.NoError(t, err)
	return svc
}

func newTestPageHandler(t *testing.T, gen *countingGenerator) *PageHandler {
	t.Helper()
	h, err := NewPageHandler(newTestService(t, gen), NewMarkdownRenderer(), testLogger())
	require.NoError(t, err)
	return h
}
