package stats

import (
	"time"

	"github.com/dokonepal/doko/internal/models"
)

const deadlineHorizonDays = 7

// WireframeSummary aggregates the wireframe collection.
type WireframeSummary struct {
	TotalWireframes   int            `json:"total_wireframes"`
	ByTemplateType    map[string]int `json:"by_template_type"`
	ByComplexity      map[string]int `json:"by_complexity"`
	ByPriority        map[string]int `json:"by_priority"`
	ByStatus          map[string]int `json:"by_status"`
	AveragePages      float64        `json:"average_pages"`
	UpcomingDeadlines int            `json:"upcoming_deadlines"`
}

// SummarizeWireframes computes the wireframe summary for a snapshot.
// now anchors the upcoming-deadline window.
func SummarizeWireframes(records []models.Wireframe, now time.Time) WireframeSummary {
	s := WireframeSummary{
		TotalWireframes: len(records),
		ByTemplateType:  map[string]int{},
		ByComplexity:    map[string]int{},
		ByPriority:      map[string]int{},
		ByStatus:        map[string]int{},
	}

	var pageSum int
	for _, w := range records {
		pages := w.Pages
		if pages < 1 {
			pages = 1
		}
		pageSum += pages
		s.ByTemplateType[w.TemplateType]++
		s.ByComplexity[w.Complexity]++
		s.ByPriority[w.Priority]++
		status := w.Status
		if status == "" {
			status = models.StatusPlanning
		}
		s.ByStatus[status]++
	}
	if s.TotalWireframes > 0 {
		s.AveragePages = float64(pageSum) / float64(s.TotalWireframes)
	}
	s.UpcomingDeadlines = len(UpcomingDeadlines(records, now))
	return s
}

// UpcomingDeadlines returns records whose deadline falls inside the closed
// interval [today, today+7d]. Records without a deadline, or with one
// already past, are excluded. Deadlines are bare dates, so the comparison
// is at day granularity.
func UpcomingDeadlines(records []models.Wireframe, now time.Time) []models.Wireframe {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	horizon := today.AddDate(0, 0, deadlineHorizonDays)
	out := []models.Wireframe{}
	for _, w := range records {
		if w.Deadline == "" {
			continue
		}
		deadline, err := time.ParseInLocation("2006-01-02", w.Deadline, now.Location())
		if err != nil {
			continue
		}
		if deadline.Before(today) || deadline.After(horizon) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// ByStatus returns the wireframes currently in the given status.
func ByStatus(records []models.Wireframe, status string) []models.Wireframe {
	out := []models.Wireframe{}
	for _, w := range records {
		if w.Status == status {
			out = append(out, w)
		}
	}
	return out
}

// HighPriority returns the wireframes marked High priority.
func HighPriority(records []models.Wireframe) []models.Wireframe {
	out := []models.Wireframe{}
	for _, w := range records {
		if w.Priority == models.PriorityHigh {
			out = append(out, w)
		}
	}
	return out
}
