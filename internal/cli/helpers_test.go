package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"argus/internal/config"
	"argus/internal/domain"
	"argus/internal/services"

	"github.com/stretchr/testify/require"
)

// memoryStore is a repository.Store kept in memory that can be told to fail
type memoryStore struct {
	list     domain.TaskList
	persists int
	failWith error
	closed   bool
}

func (m *memoryStore) Load(ctx context.Context) domain.TaskList {
	return m.list.Clone()
}

func (m *memoryStore) Persist(ctx context.Context, list domain.TaskList) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.list = list.Clone()
	m.persists++
	return nil
}

func (m *memoryStore) Close() error {
	m.closed = true
	return nil
}

func testConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Display.NoColor = true
	return cfg
}

// setupTestApp builds an App over a memory store seeded with descriptions,
// reading the given input
func setupTestApp(t *testing.T, input string, descriptions ...string) (*App, *memoryStore, *bytes.Buffer) {
	t.Helper()
	store := &memoryStore{}
	for _, d := range descriptions {
		_, err := store.list.Append(d)
		require.NoError(t, err)
	}

	cfg := testConfig()
	service := services.NewTaskService(context.Background(), store, cfg)
	out := &bytes.Buffer{}
	return NewApp(service, cfg, strings.NewReader(input), out), store, out
}
