package envfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := `# database settings
DISPATCH_TEST_HOST=localhost
DISPATCH_TEST_PORT="5432"

DISPATCH_TEST_NAME='my app'
DISPATCH_TEST_EMPTY=
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DISPATCH_TEST_HOST", "")
	t.Setenv("DISPATCH_TEST_PORT", "")
	t.Setenv("DISPATCH_TEST_NAME", "")
	t.Setenv("DISPATCH_TEST_EMPTY", "sentinel")

	if err := Load(path); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	want := map[string]string{
		"DISPATCH_TEST_HOST":  "localhost",
		"DISPATCH_TEST_PORT":  "5432",
		"DISPATCH_TEST_NAME":  "my app",
		"DISPATCH_TEST_EMPTY": "",
	}
	for key, value := range want {
		if got := os.Getenv(key); got != value {
			t.Errorf("env %s = %q, want %q", key, got, value)
		}
	}
}

func TestLoadMissingFileIsNoop(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), "does-not-exist.env")); err != nil {
		t.Fatalf("Load() on missing file = %v, want nil", err)
	}
}

func TestLoadMalformedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("NOT A PAIR\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Load(path); err == nil {
		t.Fatal("Load() on malformed line = nil, want error")
	}
}
