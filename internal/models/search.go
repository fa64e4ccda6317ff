package models

import "time"

// SearchConfig parameterizes a single run: which date to match, which file
// name suffix to match and where to start walking.
// It is built once from CLI input and passed by value.
type SearchConfig struct {
	Date   Date
	Suffix string
	Root   string

	// Location is the zone modification times are converted in before
	// comparing against Date. Nil means time.Local.
	Location *time.Location

	// ExcludeDirs lists directory names that are not descended into.
	ExcludeDirs []string
	// MaxDepth limits recursion depth (0 = unlimited, 1 = root dir only)
	MaxDepth int
}

// Loc returns the effective location for date comparison.
func (c SearchConfig) Loc() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

// SearchResult summarizes a completed run.
type SearchResult struct {
	Matched  int           // Files printed
	Scanned  int           // Regular files examined
	Duration time.Duration // Wall time of the walk
}
