// Package pathwalk expands command-line path arguments into the concrete
// files the engine will search. Expansion order is deterministic so the
// engine's ordered-delivery guarantee starts at the arguments.
package pathwalk

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrIsDirectory is reported for a directory argument when recursion is
// off, the way grep complains without -r.
var ErrIsDirectory = errors.New("is a directory (use --recursive)")

// Expand resolves each argument to the files to search, preserving
// argument order. With recursive set, directories are walked depth first
// in lexical order, collecting regular files and skipping hidden entries.
// Unreadable entries are handed to report and skipped rather than
// aborting the run.
func Expand(args []string, recursive bool, report func(path string, err error)) []string {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			report(arg, err)
			continue
		}

		if !info.IsDir() {
			files = append(files, arg)
			continue
		}

		if !recursive {
			report(arg, ErrIsDirectory)
			continue
		}

		walkErr := filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				report(path, err)
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if hidden(d.Name()) && path != arg {
				if d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.Type().IsRegular() {
				files = append(files, path)
			}
			return nil
		})
		if walkErr != nil {
			report(arg, walkErr)
		}
	}
	return files
}

func hidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
