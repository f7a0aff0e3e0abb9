package entity

import "strings"

// Difficulty grades content by learner maturity.
type Difficulty string

const (
	DifficultyUnspecified Difficulty = ""
	DifficultyBase        Difficulty = "base"
	DifficultyAdvance     Difficulty = "advance"
	DifficultyStretch     Difficulty = "stretch"
)

// ParseDifficulty converts an arbitrary string into a canonical Difficulty.
// Legacy three-level values from older content modules map onto the
// canonical scale; anything unknown comes back unspecified.
func ParseDifficulty(value string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "base", "beginner":
		return DifficultyBase
	case "advance", "intermediate":
		return DifficultyAdvance
	case "stretch", "advanced":
		return DifficultyStretch
	default:
		return DifficultyUnspecified
	}
}

// Valid reports whether d is one of the canonical grades.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBase, DifficultyAdvance, DifficultyStretch:
		return true
	}
	return false
}

// ItemType identifies which content collection a user-state record points at.
type ItemType string

const (
	ItemTypeCourse     ItemType = "course"
	ItemTypeKnowledge  ItemType = "knowledge"
	ItemTypeCase       ItemType = "case"
	ItemTypePrompt     ItemType = "prompt"
	ItemTypeWorkflow   ItemType = "workflow"
	ItemTypeResource   ItemType = "resource"
	ItemTypeAssignment ItemType = "assignment"
)

// ParseItemType normalizes a raw item type string.
func ParseItemType(value string) (ItemType, bool) {
	switch ItemType(strings.ToLower(strings.TrimSpace(value))) {
	case ItemTypeCourse:
		return ItemTypeCourse, true
	case ItemTypeKnowledge:
		return ItemTypeKnowledge, true
	case ItemTypeCase:
		return ItemTypeCase, true
	case ItemTypePrompt:
		return ItemTypePrompt, true
	case ItemTypeWorkflow:
		return ItemTypeWorkflow, true
	case ItemTypeResource:
		return ItemTypeResource, true
	case ItemTypeAssignment:
		return ItemTypeAssignment, true
	default:
		return "", false
	}
}

// NormalizeTags trims tag tokens and drops the empties, preserving order.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
