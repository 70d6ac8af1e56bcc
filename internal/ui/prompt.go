package ui

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/manifoldco/promptui"
)

// SelectOption is an entry in a selection prompt.
type SelectOption struct {
	Label  string
	Detail string
}

// SelectPrompt presents a searchable list of options and returns the
// index of the chosen one. Typing filters the list fuzzily.
func SelectPrompt(label string, options []SelectOption) (int, error) {
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}:",
		Active:   "▸ {{ .Label | cyan }} ({{ .Detail | faint }})",
		Inactive: "  {{ .Label | faint }} ({{ .Detail | faint }})",
		Selected: "▸ {{ .Label | green }}",
	}

	prompt := promptui.Select{
		Label:     label,
		Items:     options,
		Templates: templates,
		Size:      min(10, len(options)),
		Searcher: func(input string, index int) bool {
			if index < 0 || index >= len(options) {
				return false
			}
			if input == "" {
				return true
			}
			option := options[index]
			return fuzzy.MatchNormalizedFold(strings.TrimSpace(input), option.Label+" "+option.Detail)
		},
	}

	index, _, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) || errors.Is(err, promptui.ErrInterrupt) {
			return -1, fmt.Errorf("selection cancelled by user")
		}
		return -1, err
	}

	return index, nil
}

// Suggestions ranks candidates by fuzzy similarity to input and
// returns the closest ones, best first.
func Suggestions(input string, candidates []string, limit int) []string {
	ranks := fuzzy.RankFindNormalizedFold(input, candidates)
	if len(ranks) == 0 {
		return nil
	}

	sort.Sort(ranks)

	out := make([]string, 0, limit)
	for _, rank := range ranks {
		out = append(out, rank.Target)
		if len(out) == limit {
			break
		}
	}
	return out
}
