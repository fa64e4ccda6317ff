// Package markdown renders matched files as Markdown list items.
package markdown

import (
	"fmt"
	"io"
	"path/filepath"
)

// Link renders path as "- [name](path)", where name is the final path
// component. path is used verbatim. When no usable final component exists
// the whole path doubles as the name.
func Link(path string) string {
	return fmt.Sprintf("- [%s](%s)", Name(path), path)
}

// Name returns the link text for path.
func Name(path string) string {
	name := filepath.Base(path)
	if name == "." || name == string(filepath.Separator) || path == "" {
		return path
	}
	return name
}

// WriteLink writes Link(path) and a newline to w.
func WriteLink(w io.Writer, path string) error {
	_, err := fmt.Fprintln(w, Link(path))
	return err
}
