// Package catalog loads the static content fixtures shipped with the
// binary and validates them once at startup. Content is immutable after
// load; every other component reads it, none mutates it.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/eslsoft/atelier/internal/entity"
	"github.com/go-playground/validator/v10"
)

//go:embed fixtures/*.json
var fixturesFS embed.FS

// Catalog holds every static content collection.
type Catalog struct {
	Courses     []entity.Course
	Knowledge   []entity.KnowledgeCard
	Cases       []entity.CaseStudy
	Prompts     []entity.Prompt
	Workflows   []entity.Workflow
	Resources   []entity.Resource
	Assignments []entity.Assignment
}

// Load decodes and validates all fixture files. Legacy difficulty values
// (beginner/intermediate/advanced) are normalized to the canonical enum
// before validation, so older content modules keep loading.
func Load() (*Catalog, error) {
	v := validator.New()
	c := &Catalog{}

	if err := loadFixture(v, "courses", &c.Courses,
		func(item *entity.Course) (*string, *entity.Difficulty) { return &item.ID, &item.Difficulty }); err != nil {
		return nil, err
	}
	if err := loadFixture(v, "knowledge", &c.Knowledge,
		func(item *entity.KnowledgeCard) (*string, *entity.Difficulty) { return &item.ID, &item.Difficulty }); err != nil {
		return nil, err
	}
	if err := loadFixture(v, "cases", &c.Cases,
		func(item *entity.CaseStudy) (*string, *entity.Difficulty) { return &item.ID, &item.Difficulty }); err != nil {
		return nil, err
	}
	if err := loadFixture(v, "prompts", &c.Prompts,
		func(item *entity.Prompt) (*string, *entity.Difficulty) { return &item.ID, &item.Difficulty }); err != nil {
		return nil, err
	}
	if err := loadFixture(v, "workflows", &c.Workflows,
		func(item *entity.Workflow) (*string, *entity.Difficulty) { return &item.ID, &item.Difficulty }); err != nil {
		return nil, err
	}
	if err := loadFixture(v, "resources", &c.Resources,
		func(item *entity.Resource) (*string, *entity.Difficulty) { return &item.ID, &item.Difficulty }); err != nil {
		return nil, err
	}
	if err := loadFixture(v, "assignments", &c.Assignments,
		func(item *entity.Assignment) (*string, *entity.Difficulty) { return &item.ID, &item.Difficulty }); err != nil {
		return nil, err
	}
	return c, nil
}

func loadFixture[T any](v *validator.Validate, name string, out *[]T, fields func(*T) (*string, *entity.Difficulty)) error {
	raw, err := fixturesFS.ReadFile("fixtures/" + name + ".json")
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode fixture %s: %w", name, err)
	}

	seen := make(map[string]bool, len(*out))
	for i := range *out {
		id, difficulty := fields(&(*out)[i])
		*difficulty = entity.ParseDifficulty(string(*difficulty))

		if err := v.Struct(&(*out)[i]); err != nil {
			return fmt.Errorf("fixture %s[%d]: %w", name, i, err)
		}
		if seen[*id] {
			return fmt.Errorf("fixture %s: duplicate id %q", name, *id)
		}
		seen[*id] = true
	}
	return nil
}
