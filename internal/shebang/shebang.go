// Package shebang extracts a Python version request from the `#!`
// line of a script.
package shebang

import (
	"bufio"
	"io"
	"strings"

	"github.com/spf13/afero"

	"github.com/quantmind-br/pylaunch/internal/version"
)

// Result is a version request extracted from a shebang line, plus the
// arguments the line carries for the interpreter.
type Result struct {
	Version version.Requested
	Args    []string
}

// Interpreter invocations a shebang line is allowed to name. Checked
// in order; the first prefix match wins.
var acceptedPrefixes = []string{
	"python",
	"/usr/bin/python",
	"/usr/local/bin/python",
	"/usr/bin/env python",
}

// Parse reads the start of a stream and extracts a version request
// from its shebang line, if it has one naming a Python interpreter.
//
// A missing, unrecognized or malformed shebang is a normal case, not
// an error, and yields nil. I/O failures likewise read as "no shebang
// found".
func Parse(r io.Reader) *Result {
	line, ok := firstLine(r)
	if !ok {
		return nil
	}
	return Split(line)
}

// ParseFile opens path on fs and parses its shebang line. Any open or
// read failure yields nil.
func ParseFile(fs afero.Fs, path string) *Result {
	f, err := fs.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	return Parse(f)
}

// firstLine reports the shebang line with its `#!` marker removed and
// surrounding whitespace stripped.
func firstLine(r io.Reader) (string, bool) {
	marker := make([]byte, 2)
	if n, err := io.ReadFull(r, marker); err != nil || n != 2 {
		return "", false
	}
	if marker[0] != '#' || marker[1] != '!' {
		return "", false
	}

	reader := bufio.NewReader(r)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", false
	}

	return strings.TrimSpace(line), true
}

// Split matches a stripped shebang line against the accepted
// interpreter invocations and splits it into the requested version
// and the trailing argument list.
//
// The version fragment is the run of digits and dots immediately
// after the matched prefix; an empty fragment defaults to the
// historical Python 2.
func Split(line string) *Result {
	for _, prefix := range acceptedPrefixes {
		if !strings.HasPrefix(line, prefix) {
			continue
		}

		rest := line[len(prefix):]
		fragment := versionFragment(rest)

		requested := version.Requested{Kind: version.KindMajorOnly, Major: 2}
		if fragment != "" {
			parsed, err := version.ParseRequested(fragment)
			if err != nil {
				// Malformed version, e.g. `python3.6.4`; the whole
				// shebang is ignored rather than reported.
				return nil
			}
			requested = parsed
		}

		return &Result{
			Version: requested,
			Args:    strings.Fields(rest[len(fragment):]),
		}
	}

	return nil
}

// versionFragment takes the leading characters of s that can belong
// to a version fragment.
func versionFragment(s string) string {
	end := 0
	for end < len(s) {
		c := s[end]
		if (c < '0' || c > '9') && c != '.' {
			break
		}
		end++
	}
	return s[:end]
}
