package services

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
	"rentora/internal/models/response_models"
)

//go:embed categories.yaml
var categoriesYAML []byte

type CategoryServiceInterface interface {
	List() []response_models.Category
	// Find matches a label case-insensitively.
	Find(label string) (response_models.Category, bool)
}

type CategoryService struct {
	categories []response_models.Category
	byLabel    map[string]response_models.Category
}

func NewCategoryService() (CategoryServiceInterface, error) {
	return ParseCategories(categoriesYAML)
}

func ParseCategories(raw []byte) (*CategoryService, error) {
	var categories []response_models.Category
	if err := yaml.Unmarshal(raw, &categories); err != nil {
		return nil, fmt.Errorf("parse categories: %w", err)
	}

	byLabel := make(map[string]response_models.Category, len(categories))
	for _, c := range categories {
		key := strings.ToLower(c.Label)
		if c.Label == "" {
			return nil, fmt.Errorf("parse categories: entry without label")
		}
		if _, dup := byLabel[key]; dup {
			return nil, fmt.Errorf("parse categories: duplicate label %q", c.Label)
		}
		byLabel[key] = c
	}

	return &CategoryService{categories: categories, byLabel: byLabel}, nil
}

func (s *CategoryService) List() []response_models.Category {
	return append([]response_models.Category(nil), s.categories...)
}

func (s *CategoryService) Find(label string) (response_models.Category, bool) {
	c, ok := s.byLabel[strings.ToLower(strings.TrimSpace(label))]
	return c, ok
}
