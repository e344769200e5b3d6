package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPresetsListsBuiltins(t *testing.T) {
	store := newTempStore(t)
	out, err := executeRoot(t, store, "presets")
	if err != nil {
		t.Fatalf("presets: %v", err)
	}
	for _, name := range []string{"demo", "alphabet", "hangul", "digits", "preview"} {
		if !strings.Contains(out, name) {
			t.Fatalf("expected %q in output:\n%s", name, out)
		}
	}
	if !strings.Contains(out, "A B C D E F G H ...") {
		t.Fatalf("expected truncated sample, got:\n%s", out)
	}
}

func TestPresetsFileShadowsBuiltin(t *testing.T) {
	store := newTempStore(t)
	path := filepath.Join(t.TempDir(), "presets.toml")
	data := "[[preset]]\nname = \"digits\"\nchars = \"123\"\n\n[[preset]]\nname = \"vowels\"\nlabels = [\"a\", \"e\", \"i\"]\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write presets: %v", err)
	}

	out, err := executeRoot(t, store, "presets", "--file", path)
	if err != nil {
		t.Fatalf("presets: %v", err)
	}
	if strings.Count(out, "digits") != 1 {
		t.Fatalf("expected file preset to replace built-in digits:\n%s", out)
	}
	if !strings.Contains(out, "1 2 3  ["+path+"]") {
		t.Fatalf("expected file digits listed first:\n%s", out)
	}
	if !strings.Contains(out, "vowels") {
		t.Fatalf("expected vowels preset:\n%s", out)
	}
}

func TestPresetsBadFile(t *testing.T) {
	store := newTempStore(t)
	path := filepath.Join(t.TempDir(), "presets.json")
	if err := os.WriteFile(path, []byte("{}"), 0o600); err != nil {
		t.Fatalf("write presets: %v", err)
	}
	if _, err := executeRoot(t, store, "presets", "--file", path); err == nil {
		t.Fatalf("expected unsupported extension error")
	}
}
