// Package envfile loads KEY=VALUE files into the process environment so flag
// env fallback can pick the values up.
package envfile

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Load reads the file at path and sets each KEY=VALUE pair into the process
// environment. Blank lines and lines starting with # are skipped, and values
// may be wrapped in single or double quotes. A missing file is not an error;
// a malformed line is.
func Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return fmt.Errorf("envfile %s:%d: expected KEY=VALUE, got %q", path, lineNo, line)
		}

		if err := os.Setenv(key, unquote(strings.TrimSpace(value))); err != nil {
			return fmt.Errorf("envfile %s:%d: %w", path, lineNo, err)
		}
	}
	return scanner.Err()
}

// unquote strips one matching pair of surrounding single or double quotes.
func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
