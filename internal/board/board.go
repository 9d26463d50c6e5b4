// Package board holds the in-memory to-do board and the operations that
// mutate it. All state changes go through Board methods; the task slice is
// replaced rather than edited in place, so a copied Board keeps seeing the
// snapshot it was copied from.
package board

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sandeepkv93/todoboard/internal/model"
)

type Options struct {
	NewID         func() string
	Now           func() time.Time
	Theme         model.Theme
	DraftCategory model.Category
	// Empty skips the example tasks.
	Empty bool
}

type Board struct {
	tasks         []model.Task
	draftText     string
	draftCategory model.Category
	active        model.Category
	theme         model.Theme
	newID         func() string
	now           func() time.Time
}

type seedTask struct {
	text      string
	completed bool
	category  model.Category
}

var seedTasks = []seedTask{
	{text: "完成项目报告", category: model.CategoryWork},
	{text: "购买生活用品", completed: true, category: model.CategoryLife},
	{text: "学习React Hooks", category: model.CategoryStudy},
	{text: "健身房锻炼", category: model.CategoryHealth},
	{text: "阅读技术文章", category: model.CategoryStudy},
}

// NewTaskID returns a UUIDv7 string. v7 ids embed the creation time and
// sort lexically in creation order.
func NewTaskID() string {
	return uuid.Must(uuid.NewV7()).String()
}

func New(opts Options) Board {
	b := Board{
		draftCategory: model.TaskCategories()[0],
		active:        model.CategoryAll,
		theme:         model.ThemeLight,
		newID:         opts.NewID,
		now:           opts.Now,
	}
	if opts.DraftCategory.IsTaskCategory() {
		b.draftCategory = opts.DraftCategory
	}
	if opts.Theme.IsValid() {
		b.theme = opts.Theme
	}
	b.ensure()
	if !opts.Empty {
		tasks := make([]model.Task, 0, len(seedTasks))
		for _, s := range seedTasks {
			tasks = append(tasks, model.Task{
				ID:        b.nextID(tasks),
				Text:      s.text,
				Completed: s.completed,
				Category:  s.category,
				CreatedAt: b.now(),
			})
		}
		b.tasks = tasks
	}
	return b
}

func (b *Board) ensure() {
	if b.newID == nil {
		b.newID = NewTaskID
	}
	if b.now == nil {
		b.now = func() time.Time { return time.Now().UTC() }
	}
	if !b.draftCategory.IsTaskCategory() {
		b.draftCategory = model.TaskCategories()[0]
	}
	if !b.active.IsValid() {
		b.active = model.CategoryAll
	}
	if !b.theme.IsValid() {
		b.theme = model.ThemeLight
	}
}

func (b *Board) nextID(existing []model.Task) string {
	id := strings.TrimSpace(b.newID())
	for id == "" || indexOf(existing, id) >= 0 {
		id = NewTaskID()
	}
	return id
}

// AddTask creates a task from the current draft. A blank draft is ignored
// and left as-is. On success the draft text is cleared and the draft
// category kept.
func (b *Board) AddTask() (model.Task, bool) {
	task, ok := b.Add(b.draftText, b.draftCategory)
	if ok {
		b.draftText = ""
	}
	return task, ok
}

// Add appends a task without touching the draft.
func (b *Board) Add(text string, category model.Category) (model.Task, bool) {
	b.ensure()
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || !category.IsTaskCategory() {
		return model.Task{}, false
	}
	task := model.Task{
		ID:        b.nextID(b.tasks),
		Text:      trimmed,
		Category:  category,
		CreatedAt: b.now(),
	}
	b.tasks = append(slices.Clip(b.tasks), task)
	return task, true
}

func (b *Board) ToggleTask(id string) bool {
	i := indexOf(b.tasks, id)
	if i < 0 {
		return false
	}
	next := slices.Clone(b.tasks)
	next[i].Completed = !next[i].Completed
	b.tasks = next
	return true
}

func (b *Board) DeleteTask(id string) bool {
	i := indexOf(b.tasks, id)
	if i < 0 {
		return false
	}
	b.tasks = slices.Delete(slices.Clone(b.tasks), i, i+1)
	return true
}

func (b *Board) SetActiveCategory(c model.Category) error {
	if !c.IsValid() {
		return fmt.Errorf("%w: %q", model.ErrInvalidCategory, c)
	}
	b.active = c
	return nil
}

// FilteredView derives the visible tasks from the full sequence and the
// active filter. The result is a fresh slice on every call.
func (b Board) FilteredView() []model.Task {
	if b.active == model.CategoryAll || b.active == "" {
		return slices.Clone(b.tasks)
	}
	out := make([]model.Task, 0, len(b.tasks))
	for _, t := range b.tasks {
		if t.Category == b.active {
			out = append(out, t)
		}
	}
	return out
}

func (b *Board) ToggleTheme() model.Theme {
	b.ensure()
	b.theme = b.theme.Toggle()
	return b.theme
}

func (b *Board) SetTheme(t model.Theme) error {
	if !t.IsValid() {
		return fmt.Errorf("%w: %q", model.ErrInvalidTheme, t)
	}
	b.theme = t
	return nil
}

// Counts reports completed and total over every task, ignoring the filter.
func (b Board) Counts() (completed, total int) {
	for _, t := range b.tasks {
		if t.Completed {
			completed++
		}
	}
	return completed, len(b.tasks)
}

func (b *Board) SetDraftText(text string) {
	b.draftText = text
}

func (b *Board) SetDraftCategory(c model.Category) error {
	if !c.IsTaskCategory() {
		return fmt.Errorf("%w: %q", model.ErrInvalidCategory, c)
	}
	b.draftCategory = c
	return nil
}

// CycleDraftCategory moves the draft selector by step, wrapping around.
func (b *Board) CycleDraftCategory(step int) model.Category {
	b.ensure()
	b.draftCategory = cycle(model.TaskCategories(), b.draftCategory, step)
	return b.draftCategory
}

// CycleActiveCategory moves the filter by step, wrapping around.
func (b *Board) CycleActiveCategory(step int) model.Category {
	b.ensure()
	b.active = cycle(model.Categories(), b.active, step)
	return b.active
}

func (b Board) Tasks() []model.Task { return slices.Clone(b.tasks) }

func (b Board) Task(id string) (model.Task, bool) {
	i := indexOf(b.tasks, id)
	if i < 0 {
		return model.Task{}, false
	}
	return b.tasks[i], true
}

func (b Board) Len() int                      { return len(b.tasks) }
func (b Board) DraftText() string             { return b.draftText }
func (b Board) DraftCategory() model.Category { return b.draftCategory }
func (b Board) ActiveCategory() model.Category {
	if b.active == "" {
		return model.CategoryAll
	}
	return b.active
}

func (b Board) Theme() model.Theme {
	if !b.theme.IsValid() {
		return model.ThemeLight
	}
	return b.theme
}

func indexOf(tasks []model.Task, id string) int {
	return slices.IndexFunc(tasks, func(t model.Task) bool { return t.ID == id })
}

func cycle(set []model.Category, current model.Category, step int) model.Category {
	i := slices.Index(set, current)
	if i < 0 {
		return set[0]
	}
	n := len(set)
	return set[((i+step)%n+n)%n]
}
