// Package listquery provides the shared filtering and pagination primitives
// used by every content list endpoint. Filtering is pure and stable: items
// keep their input order and the input slice is never mutated.
package listquery

import (
	"strings"

	"github.com/samber/lo"
)

// Fields exposes the filterable projection of a content item. Collections
// with differing field names (category vs discipline, description vs
// summary) map themselves onto this one shape.
type Fields struct {
	Category   string
	Difficulty string
	Tags       []string
	// SearchText holds the free-text haystacks, typically title plus
	// description or summary.
	SearchText []string
}

// Filter is the optional predicate set parsed from query parameters.
// Empty dimensions are pass-through; supplied dimensions combine with
// logical AND. Within Tags the match is OR: one shared tag suffices.
type Filter struct {
	Category   string
	Difficulty string
	// Tags is the raw comma-separated query value, e.g. "layout,color".
	Tags   string
	Search string
}

// IsZero reports whether no dimension is set.
func (f Filter) IsZero() bool {
	return f.Category == "" && f.Difficulty == "" && f.Tags == "" && f.Search == ""
}

// tagList splits the raw tags value, trimming tokens and dropping empties.
// A value that trims down to nothing ("", ",", " , ") disables the tag
// dimension entirely rather than excluding every item.
func (f Filter) tagList() []string {
	if f.Tags == "" {
		return nil
	}
	parts := strings.Split(f.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// Apply returns the subsequence of items matching every supplied dimension,
// in input order. The fields func projects each item onto its filterable
// shape.
func Apply[T any](items []T, f Filter, fields func(T) Fields) []T {
	if f.IsZero() {
		return items
	}
	wantTags := f.tagList()
	search := strings.ToLower(strings.TrimSpace(f.Search))

	return lo.Filter(items, func(item T, _ int) bool {
		fl := fields(item)
		if f.Category != "" && fl.Category != f.Category {
			return false
		}
		if f.Difficulty != "" && fl.Difficulty != f.Difficulty {
			return false
		}
		if len(wantTags) > 0 && !hasAnyTag(fl.Tags, wantTags) {
			return false
		}
		if search != "" && !matchesSearch(fl.SearchText, search) {
			return false
		}
		return true
	})
}

func hasAnyTag(have, want []string) bool {
	for _, w := range want {
		if lo.Contains(have, w) {
			return true
		}
	}
	return false
}

func matchesSearch(haystacks []string, needle string) bool {
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	return false
}
