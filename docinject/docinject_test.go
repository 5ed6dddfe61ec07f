package docinject

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	original := `# my-tool

<!-- dispatch:begin -->
old help output
<!-- dispatch:end -->

Footer stays.
`
	if err := os.WriteFile(path, []byte(original), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Inject(path, "new help output\n"); err != nil {
		t.Fatalf("Inject() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)

	if strings.Contains(got, "old help output") {
		t.Error("old region content still present")
	}
	if !strings.Contains(got, "<!-- dispatch:begin -->\nnew help output\n<!-- dispatch:end -->") {
		t.Errorf("injected region malformed:\n%s", got)
	}
	if !strings.HasPrefix(got, "# my-tool") || !strings.Contains(got, "Footer stays.") {
		t.Errorf("text outside markers changed:\n%s", got)
	}
}

func TestInjectIsRepeatable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	content := "<!-- dispatch:begin -->\nx\n<!-- dispatch:end -->\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Inject(path, "first"); err != nil {
		t.Fatal(err)
	}
	if err := Inject(path, "second"); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	if got, want := string(data), "<!-- dispatch:begin -->\nsecond\n<!-- dispatch:end -->\n"; got != want {
		t.Errorf("after two injections:\n%q\nwant:\n%q", got, want)
	}
}

func TestInjectMissingFileIsNoop(t *testing.T) {
	if err := Inject(filepath.Join(t.TempDir(), "absent.md"), "x"); err != nil {
		t.Fatalf("Inject() on missing file = %v, want nil", err)
	}
}

func TestInjectMissingMarker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	if err := os.WriteFile(path, []byte("no markers here\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Inject(path, "x"); err == nil {
		t.Fatal("Inject() without markers = nil, want error")
	}
}
