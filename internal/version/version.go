// Package version models Python version requests and the versions
// discovered on the search path, plus the matching rules between them.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the closed set of version variants.
type Kind int

const (
	// KindAny places no constraint at all. Only valid for Requested.
	KindAny Kind = iota
	// KindMajorOnly constrains the major component (e.g. "3").
	KindMajorOnly
	// KindExact constrains major and minor (e.g. "3.6").
	KindExact
)

// Requested is the caller's version constraint, parsed from a flag,
// a shebang line, or an environment default.
type Requested struct {
	Kind  Kind
	Major uint
	Minor uint
}

// Discovered is a version parsed from an installed executable's
// filename suffix. It is always MajorOnly or Exact, never Any.
type Discovered struct {
	Kind  Kind
	Major uint
	Minor uint
}

// Match classifies how well a discovered version satisfies a request.
type Match int

const (
	// NotAtAll means the discovered version cannot satisfy the request.
	NotAtAll Match = iota
	// Loosely means compatible but not a full match; a better candidate
	// may still exist.
	Loosely
	// Exactly means every component the request specifies agrees.
	Exactly
)

// ParseRequested parses a textual version fragment.
//
// An empty fragment means "any version"; "3" constrains the major;
// "3.6" constrains major and minor. Anything else, including a
// three-component "3.6.4", is an error.
func ParseRequested(text string) (Requested, error) {
	if text == "" {
		return Requested{Kind: KindAny}, nil
	}

	majorText, minorText, hasMinor := strings.Cut(text, ".")
	major, err := parseComponent(majorText)
	if err != nil {
		return Requested{}, fmt.Errorf("invalid version %q: %w", text, err)
	}

	if !hasMinor {
		return Requested{Kind: KindMajorOnly, Major: major}, nil
	}

	minor, err := parseComponent(minorText)
	if err != nil {
		return Requested{}, fmt.Errorf("invalid version %q: %w", text, err)
	}

	return Requested{Kind: KindExact, Major: major, Minor: minor}, nil
}

// ParseDiscovered parses the numeric suffix of an executable name,
// i.e. the characters after the "python" prefix. An empty suffix is
// the historical unversioned executable and reads as Python 2.
func ParseDiscovered(text string) (Discovered, error) {
	requested, err := ParseRequested(text)
	if err != nil {
		return Discovered{}, err
	}

	switch requested.Kind {
	case KindAny:
		return Discovered{Kind: KindMajorOnly, Major: 2}, nil
	case KindMajorOnly:
		return Discovered{Kind: KindMajorOnly, Major: requested.Major}, nil
	case KindExact:
		return Discovered{Kind: KindExact, Major: requested.Major, Minor: requested.Minor}, nil
	default:
		panic(fmt.Sprintf("version: unknown kind %d", requested.Kind))
	}
}

// parseComponent parses one numeric version component. Signs, spaces
// and empty strings are rejected; strconv.ParseUint alone would let
// "+3" through.
func parseComponent(text string) (uint, error) {
	if text == "" {
		return 0, fmt.Errorf("empty version component")
	}
	for _, c := range text {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("non-digit character %q", c)
		}
	}
	n, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(n), nil
}

// String renders the fragment form that ParseRequested accepts.
func (r Requested) String() string {
	switch r.Kind {
	case KindAny:
		return ""
	case KindMajorOnly:
		return strconv.FormatUint(uint64(r.Major), 10)
	case KindExact:
		return fmt.Sprintf("%d.%d", r.Major, r.Minor)
	default:
		panic(fmt.Sprintf("version: unknown kind %d", r.Kind))
	}
}

func (d Discovered) String() string {
	switch d.Kind {
	case KindMajorOnly:
		return strconv.FormatUint(uint64(d.Major), 10)
	case KindExact:
		return fmt.Sprintf("%d.%d", d.Major, d.Minor)
	default:
		panic(fmt.Sprintf("version: unknown kind %d", d.Kind))
	}
}

// Matches classifies d against the request r.
func (d Discovered) Matches(r Requested) Match {
	switch r.Kind {
	case KindAny:
		return Loosely
	case KindMajorOnly:
		if d.Major != r.Major {
			return NotAtAll
		}
		if d.Kind == KindMajorOnly {
			// Nothing more specific to ask for: the request is
			// fully satisfied.
			return Exactly
		}
		return Loosely
	case KindExact:
		if d.Kind == KindExact && d.Major == r.Major && d.Minor == r.Minor {
			return Exactly
		}
		// An exact request is never loosely satisfied.
		return NotAtAll
	default:
		panic(fmt.Sprintf("version: unknown kind %d", r.Kind))
	}
}

// Less orders discovered versions: major first, then minor, with a
// major-only version sorting below any exact version of the same
// major. The resolver uses this to pick the largest surviving
// candidate, so Exact(3,9) > Exact(3,8) > MajorOnly(3).
func (d Discovered) Less(other Discovered) bool {
	if d.Major != other.Major {
		return d.Major < other.Major
	}
	if d.Kind != other.Kind {
		return d.Kind == KindMajorOnly
	}
	return d.Minor < other.Minor
}

func (m Match) String() string {
	switch m {
	case NotAtAll:
		return "not at all"
	case Loosely:
		return "loosely"
	case Exactly:
		return "exactly"
	default:
		panic(fmt.Sprintf("version: unknown match %d", m))
	}
}
