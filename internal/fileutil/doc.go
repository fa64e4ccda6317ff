// Package fileutil enumerates regular files under a directory tree.
//
// Walk is the traversal source for mdfiles: it produces a lazy sequence of
// file paths built on filepath.WalkDir and never aborts because of a single
// bad entry.
//
// # Error Tolerance
//
// Entries that cannot be read (permission denied, removed mid-walk, broken
// links) are skipped. Pass WalkOptions.OnSkip to observe them. Only a
// missing root is fatal, and that is checked up front with CheckRoot.
//
// # What Is Yielded
//
// Only regular files. Directories, symlinks (to anything), sockets, named
// pipes and devices are never yielded. Symlinked directories are not
// followed.
//
// # Paths
//
// Yielded paths keep the root exactly as given, so a root of "./src" yields
// "./src/main.go" and "." yields "./main.go". Order follows WalkDir's lexical
// order but callers should not rely on it.
//
// # Usage
//
//	if err := fileutil.CheckRoot(root); err != nil {
//	    return err
//	}
//	for path := range fileutil.Walk(root, fileutil.WalkOptions{
//	    ExcludeDirs: []string{".git", "node_modules"},
//	}) {
//	    fmt.Println(path)
//	}
package fileutil
