// Package dates resolves the target date for a run.
package dates

import (
	"time"

	"github.com/harrison/mdfiles/internal/models"
)

// Resolve converts an optional YYYY-MM-DD string into a calendar date.
// An empty input yields today's date in the local time zone, reading the
// clock through now exactly once. A nil now means time.Now.
func Resolve(input string, now func() time.Time) (models.Date, error) {
	if input == "" {
		if now == nil {
			now = time.Now
		}
		return models.DateOf(now(), time.Local), nil
	}
	return Parse(input)
}

// Parse parses s strictly as YYYY-MM-DD.
func Parse(s string) (models.Date, error) {
	if !hasDateShape(s) {
		return models.Date{}, &models.InvalidDateFormatError{Input: s}
	}

	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return models.Date{}, &models.InvalidDateFormatError{Input: s, Err: err}
	}

	// t is midnight UTC; read the fields back in the same zone.
	return models.DateOf(t, time.UTC), nil
}

// hasDateShape reports whether s is exactly NNNN-NN-NN.
func hasDateShape(s string) bool {
	if len(s) != len(models.DateLayout) {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if i == 4 || i == 7 {
			if c != '-' {
				return false
			}
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
