// Package resolve picks the winning interpreter for a version request
// from the candidates found along the search path.
package resolve

import (
	"errors"
	"sort"

	"github.com/rs/zerolog"

	"github.com/quantmind-br/pylaunch/internal/scan"
	"github.com/quantmind-br/pylaunch/internal/version"
)

// ErrNoInterpreter is returned when no discovered executable
// satisfies the request.
var ErrNoInterpreter = errors.New("no Python executable found")

// Resolver applies the matching and ranking rules over a candidate
// stream.
type Resolver struct {
	scanner *scan.Scanner
	log     *zerolog.Logger
}

// New creates a Resolver drawing candidates from scanner.
func New(scanner *scan.Scanner, log *zerolog.Logger) *Resolver {
	return &Resolver{
		scanner: scanner,
		log:     log,
	}
}

// Find walks dirs in order and returns the path of the single winning
// executable for requested.
//
// Loose matches accumulate, keyed by discovered version, first
// occurrence along the path winning. An exact match that exists on
// disk cannot be improved upon and stops the search immediately.
// Among the survivors the largest version wins.
func (r *Resolver) Find(requested version.Requested, dirs []string) (string, error) {
	found := make(map[version.Discovered]string)

scanning:
	for _, dir := range dirs {
		for _, candidate := range r.scanner.Directory(dir) {
			switch candidate.Version.Matches(requested) {
			case version.NotAtAll:
				continue
			case version.Loosely:
				if _, seen := found[candidate.Version]; !seen && r.scanner.IsFile(candidate.Path) {
					found[candidate.Version] = candidate.Path
				}
			case version.Exactly:
				if r.scanner.IsFile(candidate.Path) {
					found[candidate.Version] = candidate.Path
					r.log.Debug().
						Str("path", candidate.Path).
						Str("version", candidate.Version.String()).
						Msg("exact match, stopping search")
					break scanning
				}
			}
		}
	}

	winner, ok := chooseBest(found)
	if !ok {
		return "", ErrNoInterpreter
	}

	r.log.Debug().
		Str("path", winner).
		Str("requested", requested.String()).
		Msg("resolved interpreter")
	return winner, nil
}

// All walks dirs in order and returns every discovered interpreter,
// one path per version with the first occurrence along the path
// winning, sorted by ascending version.
func (r *Resolver) All(dirs []string) []scan.Candidate {
	found := make(map[version.Discovered]string)

	for _, dir := range dirs {
		for _, candidate := range r.scanner.Directory(dir) {
			if _, seen := found[candidate.Version]; seen {
				continue
			}
			if !r.scanner.IsFile(candidate.Path) {
				continue
			}
			found[candidate.Version] = candidate.Path
		}
	}

	candidates := make([]scan.Candidate, 0, len(found))
	for v, path := range found {
		candidates = append(candidates, scan.Candidate{Version: v, Path: path})
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Version.Less(candidates[j].Version)
	})

	return candidates
}

// chooseBest picks the largest version in the table.
func chooseBest(found map[version.Discovered]string) (string, bool) {
	var (
		best    version.Discovered
		path    string
		haveAny bool
	)

	for v, p := range found {
		if !haveAny || best.Less(v) {
			best = v
			path = p
			haveAny = true
		}
	}

	return path, haveAny
}
