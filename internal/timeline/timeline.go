// Package timeline lays out date-ranged tasks as percentage-positioned bars
// on a fixed project window, grouped by phase for Gantt-style rendering.
package timeline

import (
	"sync"
	"time"

	"github.com/dokonepal/doko/internal/apperr"
	"github.com/dokonepal/doko/internal/models"
)

// PhaseOrder is the fixed display order for phase groups. Phases with no
// tasks are omitted from layouts, but present phases always follow this
// sequence rather than insertion order.
var PhaseOrder = []string{"Planning", "Design", "Development", "Testing", "Documentation", "Deployment"}

// Status classes assigned to bars. Completed wins over near-complete;
// anything else falls back to a priority-derived class.
const (
	StatusCompleted    = "completed"
	StatusNearComplete = "near-complete"
)

const nearCompleteProgress = 80

// Bar is one positioned task on the timeline. LeftPercent and WidthPercent
// are all a renderer needs to draw it.
type Bar struct {
	Task         models.Task `json:"task"`
	LeftPercent  float64     `json:"left_percent"`
	WidthPercent float64     `json:"width_percent"`
	Status       string      `json:"status"`
	Current      bool        `json:"current"`
}

// PhaseGroup is the set of bars belonging to one phase.
type PhaseGroup struct {
	Phase string `json:"phase"`
	Bars  []Bar  `json:"bars"`
}

// Layout is the full rendered timeline.
type Layout struct {
	WindowStart  time.Time    `json:"window_start"`
	WindowEnd    time.Time    `json:"window_end"`
	TotalDays    int          `json:"total_days"`
	Phases       []PhaseGroup `json:"phases"`
	TodayPercent float64      `json:"today_percent"`
}

// Schedule holds the working task set and the display window.
// The window is caller-supplied rather than derived from the tasks;
// a task outside the window produces a bar past the 0-100 range rather
// than rescaling every other bar.
type Schedule struct {
	mu          sync.RWMutex
	tasks       []models.Task
	windowStart time.Time
	windowEnd   time.Time
}

// NewSchedule creates a schedule over the given window, seeded with the
// default project plan.
func NewSchedule(windowStart, windowEnd time.Time) *Schedule {
	s := &Schedule{
		windowStart: dateOnly(windowStart),
		windowEnd:   dateOnly(windowEnd),
	}
	s.tasks = seedTasks()
	return s
}

// Tasks returns a copy of the current task set.
func (s *Schedule) Tasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Append adds a task with the next sequential id and zero progress.
// Timeline data is process-lifetime only; nothing is persisted.
func (s *Schedule) Append(name string, start, end time.Time, priority, assignee string) (models.Task, error) {
	t := models.Task{
		Name:     name,
		Start:    dateOnly(start),
		End:      dateOnly(end),
		Priority: priority,
		Progress: 0,
		Assignee: assignee,
	}
	if err := t.Validate(); err != nil {
		return models.Task{}, apperr.ErrInvalid
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = len(s.tasks) + 1
	s.tasks = append(s.tasks, t)
	return t, nil
}

// Reset restores the seed task set.
func (s *Schedule) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = seedTasks()
}

// Layout computes bar positions for every task, grouped by phase, with a
// marker for the reference date.
func (s *Schedule) Layout(today time.Time) Layout {
	s.mu.RLock()
	defer s.mu.RUnlock()

	today = dateOnly(today)
	totalDays := daysBetween(s.windowStart, s.windowEnd)
	if totalDays < 1 {
		totalDays = 1
	}

	byPhase := map[string][]Bar{}
	for _, t := range s.tasks {
		offsetDays := daysBetween(s.windowStart, t.Start)
		durationDays := daysBetween(t.Start, t.End) + 1 // inclusive of both endpoints

		bar := Bar{
			Task:         t,
			LeftPercent:  float64(offsetDays) / float64(totalDays) * 100,
			WidthPercent: float64(durationDays) / float64(totalDays) * 100,
			Status:       statusClass(t),
			Current:      !today.Before(t.Start) && !today.After(t.End),
		}

		phase := t.Phase
		if phase == "" {
			phase = "Development"
		}
		byPhase[phase] = append(byPhase[phase], bar)
	}

	layout := Layout{
		WindowStart:  s.windowStart,
		WindowEnd:    s.windowEnd,
		TotalDays:    totalDays,
		Phases:       []PhaseGroup{},
		TodayPercent: float64(daysBetween(s.windowStart, today)) / float64(totalDays) * 100,
	}
	for _, phase := range PhaseOrder {
		if bars, ok := byPhase[phase]; ok {
			layout.Phases = append(layout.Phases, PhaseGroup{Phase: phase, Bars: bars})
		}
	}
	return layout
}

// statusClass picks the visual state for a task: completed first, then
// near-complete, otherwise the priority class.
func statusClass(t models.Task) string {
	switch {
	case t.Progress == 100:
		return StatusCompleted
	case t.Progress >= nearCompleteProgress:
		return StatusNearComplete
	default:
		return "priority-" + t.Priority
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole days from a to b (negative if b precedes a).
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}
