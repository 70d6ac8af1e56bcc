package version

import (
	"testing"
)

func TestParseRequested(t *testing.T) {
	tests := []struct {
		input string
		want  Requested
	}{
		{"", Requested{Kind: KindAny}},
		{"2", Requested{Kind: KindMajorOnly, Major: 2}},
		{"3", Requested{Kind: KindMajorOnly, Major: 3}},
		{"42", Requested{Kind: KindMajorOnly, Major: 42}},
		{"3.6", Requested{Kind: KindExact, Major: 3, Minor: 6}},
		{"3.10", Requested{Kind: KindExact, Major: 3, Minor: 10}},
		{"42.13", Requested{Kind: KindExact, Major: 42, Minor: 13}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRequested(tt.input)
			if err != nil {
				t.Fatalf("ParseRequested(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseRequested(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseRequestedErrors(t *testing.T) {
	inputs := []string{
		"3.6.4",
		"abc",
		"3.x",
		"x.6",
		".",
		"3.",
		".6",
		"-3",
		"+3",
		" 3",
		"3 ",
		"3..6",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseRequested(input); err == nil {
				t.Errorf("ParseRequested(%q) succeeded, want error", input)
			}
		})
	}
}

func TestParseRequestedRoundTrip(t *testing.T) {
	inputs := []string{"", "2", "3", "42", "3.6", "3.10", "42.13"}

	for _, input := range inputs {
		got, err := ParseRequested(input)
		if err != nil {
			t.Fatalf("ParseRequested(%q) error = %v", input, err)
		}
		if got.String() != input {
			t.Errorf("ParseRequested(%q).String() = %q", input, got.String())
		}
	}
}

func TestParseDiscovered(t *testing.T) {
	tests := []struct {
		input string
		want  Discovered
	}{
		// The unversioned executable reads as Python 2.
		{"", Discovered{Kind: KindMajorOnly, Major: 2}},
		{"3", Discovered{Kind: KindMajorOnly, Major: 3}},
		{"3.6", Discovered{Kind: KindExact, Major: 3, Minor: 6}},
		{"42.13", Discovered{Kind: KindExact, Major: 42, Minor: 13}},
	}

	for _, tt := range tests {
		got, err := ParseDiscovered(tt.input)
		if err != nil {
			t.Fatalf("ParseDiscovered(%q) error = %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseDiscovered(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}

	for _, input := range []string{"3.6.4", "abc", "3-config", "w"} {
		if _, err := ParseDiscovered(input); err == nil {
			t.Errorf("ParseDiscovered(%q) succeeded, want error", input)
		}
	}
}

func TestMatches(t *testing.T) {
	majorOnly := func(major uint) Discovered {
		return Discovered{Kind: KindMajorOnly, Major: major}
	}
	exact := func(major, minor uint) Discovered {
		return Discovered{Kind: KindExact, Major: major, Minor: minor}
	}

	tests := []struct {
		name       string
		discovered Discovered
		requested  Requested
		want       Match
	}{
		{"any matches exact loosely", exact(3, 6), Requested{Kind: KindAny}, Loosely},
		{"any matches major-only loosely", majorOnly(2), Requested{Kind: KindAny}, Loosely},
		{"major-only satisfied by same major-only", majorOnly(3), Requested{Kind: KindMajorOnly, Major: 3}, Exactly},
		{"major-only satisfied loosely by exact", exact(3, 6), Requested{Kind: KindMajorOnly, Major: 3}, Loosely},
		{"major-only rejects other major", exact(2, 7), Requested{Kind: KindMajorOnly, Major: 3}, NotAtAll},
		{"exact satisfied by same exact", exact(3, 6), Requested{Kind: KindExact, Major: 3, Minor: 6}, Exactly},
		{"exact rejects differing minor", exact(3, 6), Requested{Kind: KindExact, Major: 3, Minor: 7}, NotAtAll},
		{"exact rejects differing major", exact(2, 6), Requested{Kind: KindExact, Major: 3, Minor: 6}, NotAtAll},
		{"exact never loosely satisfied by major-only", majorOnly(3), Requested{Kind: KindExact, Major: 3, Minor: 6}, NotAtAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.discovered.Matches(tt.requested)
			if got != tt.want {
				t.Errorf("%+v.Matches(%+v) = %v, want %v", tt.discovered, tt.requested, got, tt.want)
			}
		})
	}
}

func TestDiscoveredLess(t *testing.T) {
	majorOnly3 := Discovered{Kind: KindMajorOnly, Major: 3}
	exact36 := Discovered{Kind: KindExact, Major: 3, Minor: 6}
	exact38 := Discovered{Kind: KindExact, Major: 3, Minor: 8}
	exact39 := Discovered{Kind: KindExact, Major: 3, Minor: 9}
	exact27 := Discovered{Kind: KindExact, Major: 2, Minor: 7}

	tests := []struct {
		name string
		a, b Discovered
		want bool
	}{
		{"major dominates", exact27, exact36, true},
		{"major dominates reversed", exact36, exact27, false},
		{"minor breaks ties", exact38, exact39, true},
		{"major-only below exact of same major", majorOnly3, exact36, true},
		{"exact above major-only of same major", exact36, majorOnly3, false},
		{"equal is not less", exact38, exact38, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Less(tt.b); got != tt.want {
				t.Errorf("%v.Less(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDiscoveredString(t *testing.T) {
	tests := []struct {
		in   Discovered
		want string
	}{
		{Discovered{Kind: KindMajorOnly, Major: 3}, "3"},
		{Discovered{Kind: KindExact, Major: 3, Minor: 6}, "3.6"},
		{Discovered{Kind: KindExact, Major: 42, Minor: 13}, "42.13"},
	}

	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}
