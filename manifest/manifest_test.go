package manifest_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reoring/kdlschema/manifest"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp: %v", err)
	}
	return path
}

func TestLoad_DispatchesOnExtension(t *testing.T) {
	yamlPath := writeTemp(t, "schema.yaml", "structs:\n  - name: A\n")
	f, err := manifest.Load(yamlPath)
	if err != nil || len(f.Structs) != 1 {
		t.Fatalf("yaml load failed: %v %+v", err, f)
	}

	kdlPath := writeTemp(t, "schema.kdl", "struct \"A\"\n")
	f, err = manifest.Load(kdlPath)
	if err != nil || len(f.Structs) != 1 {
		t.Fatalf("kdl load failed: %v %+v", err, f)
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeTemp(t, "schema.toml", "")
	_, err := manifest.Load(path)
	if err == nil || !strings.Contains(err.Error(), "unsupported extension") {
		t.Fatalf("expected extension error, got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := manifest.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}
