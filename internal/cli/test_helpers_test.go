package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/baaaaaaaka/fast-scroller/internal/config"
)

func newTempStore(t *testing.T) *config.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	store, err := config.NewStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

// executeRoot runs the root command against the store's config file and
// returns stdout.
func executeRoot(t *testing.T, store *config.Store, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	var errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", store.Path(), "--no-color"}, args...))
	err := cmd.Execute()
	return out.String(), err
}
