package menu

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Match is a command row found by label lookup. Variant is the cycle index
// when the match is one of the variants hosted at row 0, otherwise -1.
type Match struct {
	View       View
	Row        int
	Variant    int
	Descriptor Descriptor
}

// Commands flattens the registry into every sendable command, expanding
// cyclable rows into one match per variant.
func (r *Registry) Commands() []Match {
	var out []Match
	seen := make(map[*Descriptor]struct{})
	for _, page := range r.Pages() {
		for row, entry := range page.Entries {
			d := entry.Descriptor
			if d == nil {
				continue
			}
			if _, dup := seen[d]; dup {
				continue
			}
			seen[d] = struct{}{}
			if row == 0 && page.Variants.Len() > 0 {
				for i := range page.Variants.Variants {
					out = append(out, Match{
						View:       page.View,
						Row:        row,
						Variant:    i,
						Descriptor: ResolveVariant(*d, page.Variants, i),
					})
				}
				continue
			}
			out = append(out, Match{View: page.View, Row: row, Variant: -1, Descriptor: *d})
		}
	}
	return out
}

// ResolveVariant returns d with the label and command of variant i. The
// free-text variant becomes an input command.
func ResolveVariant(d Descriptor, table *VariantTable, i int) Descriptor {
	v := table.At(i)
	d.Label = v.Label
	d.Command = v.Command
	d.Capture = v.Capture
	if table.IsCustom(i) {
		d.NeedsInput = true
		d.InputPrompt = table.CustomPrompt
	}
	return d
}

// Search ranks commands by label against query: exact matches first, then
// prefix and substring matches, then fuzzy matches by distance.
func (r *Registry) Search(query string) []Match {
	all := r.Commands()
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return all
	}
	labels := make([]string, len(all))
	for i, m := range all {
		labels[i] = plainLabel(m.Descriptor.Label)
	}

	lower := strings.ToLower(trimmed)
	score := make(map[int]int)
	for i, label := range labels {
		l := strings.ToLower(label)
		switch {
		case l == lower:
			score[i] = 0
		case strings.HasPrefix(l, lower):
			score[i] = 1
		case strings.Contains(l, lower):
			score[i] = 2
		}
	}
	for _, rank := range fuzzy.RankFindNormalizedFold(trimmed, labels) {
		if _, ok := score[rank.OriginalIndex]; ok {
			continue
		}
		score[rank.OriginalIndex] = 3 + rank.Distance
	}

	idx := make([]int, 0, len(score))
	for i := range score {
		idx = append(idx, i)
	}
	sort.Slice(idx, func(a, b int) bool {
		if score[idx[a]] != score[idx[b]] {
			return score[idx[a]] < score[idx[b]]
		}
		return idx[a] < idx[b]
	})
	out := make([]Match, len(idx))
	for i, j := range idx {
		out[i] = all[j]
	}
	return out
}

// Best returns the highest ranked match for query.
func (r *Registry) Best(query string) (Match, bool) {
	if strings.TrimSpace(query) == "" {
		return Match{}, false
	}
	matches := r.Search(query)
	if len(matches) == 0 {
		return Match{}, false
	}
	return matches[0], true
}

// plainLabel drops the cycle arrows around variant labels.
func plainLabel(label string) string {
	label = strings.TrimPrefix(label, "< ")
	label = strings.TrimSuffix(label, " >")
	return strings.TrimSpace(label)
}
