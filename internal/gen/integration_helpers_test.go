package gen_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
)

// repoRoot returns the module root, two levels above this package.
func repoRoot(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("runs the go tool")
	}

	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go tool not on PATH")
	}

	root, err := filepath.Abs(filepath.Join("..", ".."))
	if err != nil {
		t.Fatalf("repo root: %v", err)
	}

	return root
}

// runGo runs the go tool in the repo root and fails the test with its
// output when it exits non-zero.
func runGo(t *testing.T, root string, args ...string) {
	t.Helper()

	cmd := exec.CommandContext(t.Context(), "go", args...)
	cmd.Dir = root

	b, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("go %v failed: %v\n%s", args, err, string(b))
	}
}

// generateInto runs builder-gen on pkg and writes every builder into outDir
// instead of the package directory.
func generateInto(t *testing.T, root, pkg, outDir string) []string {
	t.Helper()

	cmd := exec.CommandContext(t.Context(), "go", "run", "./cmd/builder-gen", "generate", "--output", outDir, pkg)
	cmd.Dir = root

	b, err := cmd.CombinedOutput()
	if err != nil {
		// Best-effort: dump whatever got written for easier debugging.
		if entries, readErr := os.ReadDir(outDir); readErr == nil {
			for _, e := range entries {
				p := filepath.Join(outDir, e.Name())
				if fb, rerr := os.ReadFile(p); rerr == nil {
					t.Logf("generated file %s:\n%s", p, string(fb))
				}
			}
		}

		t.Fatalf("gen failed: %v\n%s", err, string(b))
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("reading %s: %v", outDir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}

	if len(names) == 0 {
		t.Fatalf("gen wrote nothing for %s", pkg)
	}

	return names
}

// writeOverlay writes a go build -overlay file placing each generated file
// at its package path and returns the overlay file path.
func writeOverlay(t *testing.T, overlays map[string]string) string {
	t.Helper()

	b, err := json.Marshal(struct {
		Replace map[string]string
	}{Replace: overlays})
	if err != nil {
		t.Fatalf("encoding overlay: %v", err)
	}

	path := filepath.Join(t.TempDir(), "overlay.json")
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatalf("writing overlay: %v", err)
	}

	return path
}
