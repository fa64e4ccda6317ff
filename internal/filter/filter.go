// Package filter holds the predicates mdfiles applies to each discovered file.
//
// Every predicate is a pure function of one path: it never returns an error
// and never panics past the entry it is evaluating. A file whose name or
// metadata cannot be read simply does not match.
package filter

import (
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/harrison/mdfiles/internal/fileutil"
	"github.com/harrison/mdfiles/internal/models"
)

// Predicate decides whether a discovered file is kept.
type Predicate interface {
	Matches(path string) bool
}

// Func adapts a plain function to Predicate.
type Func func(path string) bool

// Matches calls f(path).
func (f Func) Matches(path string) bool {
	return f(path)
}

// Suffix matches files whose base name ends with suffix, compared byte for
// byte. Names that are not valid UTF-8 never match.
func Suffix(suffix string) Predicate {
	return Func(func(path string) bool {
		name := filepath.Base(path)
		if !utf8.ValidString(name) {
			return false
		}
		return strings.HasSuffix(name, suffix)
	})
}

// ModifiedOn matches files whose modification time, converted to a calendar
// date in loc, is exactly date. A nil loc means time.Local.
// Files that cannot be statted do not match.
func ModifiedOn(fsys fileutil.FS, date models.Date, loc *time.Location) Predicate {
	return Func(func(path string) bool {
		info, err := fsys.Stat(path)
		if err != nil {
			return false
		}
		return models.DateOf(info.ModTime, loc) == date
	})
}

// All matches when every predicate matches. Predicates are evaluated in
// order and evaluation stops at the first miss, so put cheap ones first.
// All() with no predicates matches everything.
func All(preds ...Predicate) Predicate {
	return Func(func(path string) bool {
		for _, p := range preds {
			if !p.Matches(path) {
				return false
			}
		}
		return true
	})
}
