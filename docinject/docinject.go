// Package docinject keeps generated help text embedded in documentation
// files, replacing the region between a pair of HTML comment markers.
package docinject

import (
	"fmt"
	"os"
	"strings"
)

const (
	beginMarker = "<!-- dispatch:begin -->"
	endMarker   = "<!-- dispatch:end -->"
)

// Inject replaces the text between the begin and end markers in the file at
// path with content, keeping the markers themselves. A missing file is a
// silent no-op; a file missing one of the markers is an error.
func Inject(path, content string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	text := string(data)
	begin := strings.Index(text, beginMarker)
	if begin < 0 {
		return fmt.Errorf("docinject %s: missing %q marker", path, beginMarker)
	}
	after := text[begin+len(beginMarker):]
	end := strings.Index(after, endMarker)
	if end < 0 {
		return fmt.Errorf("docinject %s: missing %q marker", path, endMarker)
	}

	var b strings.Builder
	b.WriteString(text[:begin+len(beginMarker)])
	b.WriteString("\n")
	b.WriteString(strings.TrimRight(content, "\n"))
	b.WriteString("\n")
	b.WriteString(after[end:])

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(b.String()), info.Mode().Perm())
}
