// Package scan enumerates Python executables along an ordered list of
// search-path directories.
package scan

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/quantmind-br/pylaunch/internal/version"
)

// executablePrefix is the base-name prefix a directory entry must
// carry to count as a Python interpreter.
const executablePrefix = "python"

// Candidate pairs a discovered version with the absolute path it was
// found at.
type Candidate struct {
	Version version.Discovered
	Path    string
}

// Scanner lists directories and filters their entries down to Python
// interpreter candidates.
type Scanner struct {
	fs  afero.Fs
	log *zerolog.Logger
}

// New creates a Scanner reading through fs.
func New(fs afero.Fs, log *zerolog.Logger) *Scanner {
	return &Scanner{
		fs:  fs,
		log: log,
	}
}

// Directory lists dir and returns its interpreter candidates in
// enumeration order. A missing or unreadable directory is not an
// error; it simply contributes no candidates.
//
// Entries are matched by name only. Whether a candidate's target is a
// regular file is checked at selection time, so dangling symlinks
// still show up here.
func (s *Scanner) Directory(dir string) []Candidate {
	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		s.log.Debug().Str("dir", dir).Err(err).Msg("skipping unreadable search path entry")
		return nil
	}

	var candidates []Candidate
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, executablePrefix) {
			continue
		}

		discovered, err := version.ParseDiscovered(strings.TrimPrefix(name, executablePrefix))
		if err != nil {
			// Not a versioned interpreter name, e.g. python3-config.
			continue
		}

		candidates = append(candidates, Candidate{
			Version: discovered,
			Path:    filepath.Join(dir, name),
		})
	}

	return candidates
}

// IsFile reports whether path resolves to a regular file. Symlinks
// are followed, so a dangling link reads as absent.
func (s *Scanner) IsFile(path string) bool {
	info, err := s.fs.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
