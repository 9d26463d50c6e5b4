package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidCategory = errors.New("model: invalid task category")
	ErrInvalidTheme    = errors.New("model: invalid theme")
	ErrEmptyText       = errors.New("model: task text is required")
)

type Category string

const (
	CategoryAll    Category = "全部"
	CategoryWork   Category = "工作"
	CategoryLife   Category = "生活"
	CategoryStudy  Category = "学习"
	CategoryHealth Category = "健康"
)

var categoryAliases = map[string]Category{
	"all":    CategoryAll,
	"work":   CategoryWork,
	"life":   CategoryLife,
	"study":  CategoryStudy,
	"health": CategoryHealth,
}

// Categories returns the filter labels in display order, "All" first.
func Categories() []Category {
	return []Category{CategoryAll, CategoryWork, CategoryLife, CategoryStudy, CategoryHealth}
}

// TaskCategories returns the labels a task may carry.
func TaskCategories() []Category {
	return Categories()[1:]
}

// IsValid reports whether c is one of the five labels, including "All".
func (c Category) IsValid() bool {
	switch c {
	case CategoryAll, CategoryWork, CategoryLife, CategoryStudy, CategoryHealth:
		return true
	default:
		return false
	}
}

// IsTaskCategory reports whether c can be assigned to a task.
func (c Category) IsTaskCategory() bool {
	return c != CategoryAll && c.IsValid()
}

func ParseCategory(raw string) (Category, error) {
	trimmed := strings.TrimSpace(raw)
	if c := Category(trimmed); c.IsValid() {
		return c, nil
	}
	if c, ok := categoryAliases[strings.ToLower(trimmed)]; ok {
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, raw)
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func ParseTheme(raw string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(raw)))
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTheme, raw)
	}
	return t, nil
}

type Task struct {
	ID        string
	Text      string
	Completed bool
	Category  Category
	CreatedAt time.Time
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Text) == "" {
		return ErrEmptyText
	}
	if !t.Category.IsTaskCategory() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, t.Category)
	}
	if t.CreatedAt.IsZero() {
		return errors.New("model: task created_at is required")
	}
	return nil
}
