// Package models defines the domain types for Doko.
package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Grocery is a single inventory item.
type Grocery struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Price       float64    `json:"price"`
	Quantity    int        `json:"quantity"`
	Unit        string     `json:"unit"`
	Supplier    string     `json:"supplier"`
	Description string     `json:"description"`
	Image       string     `json:"image,omitempty"`
	DateAdded   time.Time  `json:"date_added"`
	DateUpdated *time.Time `json:"date_updated,omitempty"`
}

// TotalValue returns price × quantity for the item.
func (g Grocery) TotalValue() float64 {
	return g.Price * float64(g.Quantity)
}

// Validate checks the invariants required on create and update.
func (g Grocery) Validate() error {
	return validation.ValidateStruct(&g,
		validation.Field(&g.Name, validation.Required),
		validation.Field(&g.Category, validation.Required),
		validation.Field(&g.Price, validation.Min(0.0)),
		validation.Field(&g.Quantity, validation.Min(0)),
	)
}

// Wireframe complexity labels.
const (
	ComplexitySimple  = "Simple"
	ComplexityMedium  = "Medium"
	ComplexityComplex = "Complex"
)

// Wireframe priority labels.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// StatusPlanning is the default status for a new wireframe.
const StatusPlanning = "Planning"

// Wireframe is a project record describing a wireframing job.
type Wireframe struct {
	ID           string     `json:"id"`
	ProjectName  string     `json:"project_name"`
	TemplateType string     `json:"template_type"`
	Pages        int        `json:"pages"`
	Complexity   string     `json:"complexity"`
	Priority     string     `json:"priority"`
	Deadline     string     `json:"deadline,omitempty"` // YYYY-MM-DD, empty means none
	Features     string     `json:"features"`
	Status       string     `json:"status"`
	DateCreated  time.Time  `json:"date_created"`
	DateUpdated  *time.Time `json:"date_updated,omitempty"`
}

// Validate checks the invariants required on create and update.
func (w Wireframe) Validate() error {
	return validation.ValidateStruct(&w,
		validation.Field(&w.ProjectName, validation.Required),
		validation.Field(&w.TemplateType, validation.Required),
		validation.Field(&w.Pages, validation.Min(1)),
		validation.Field(&w.Deadline, validation.Date("2006-01-02")),
	)
}

// Activity kinds. The vocabulary is fixed; consumers switch on these tags.
const (
	ActivityGroceryAdded     = "grocery_added"
	ActivityGroceryUpdated   = "grocery_updated"
	ActivityGroceryDeleted   = "grocery_deleted"
	ActivityWireframeCreated = "wireframe_created"
	ActivityWireframeUpdated = "wireframe_updated"
	ActivityWireframeDeleted = "wireframe_deleted"
	ActivityWireframeViewed  = "wireframe_viewed"
	ActivityExport           = "export"
	ActivityLogin            = "login"
	ActivityLogout           = "logout"
)

// Activity is a single append-only log entry describing a user-visible action.
type Activity struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Task is one bar on the project timeline. Start and End are inclusive dates.
type Task struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Priority string    `json:"priority"` // high, medium, low
	Progress int       `json:"progress"` // 0–100
	Assignee string    `json:"assignee"`
	Phase    string    `json:"phase"`
	Details  string    `json:"details"`
}

// Validate checks the task date invariant.
func (t Task) Validate() error {
	if err := validation.ValidateStruct(&t,
		validation.Field(&t.Name, validation.Required),
		validation.Field(&t.Progress, validation.Min(0), validation.Max(100)),
	); err != nil {
		return err
	}
	if t.End.Before(t.Start) {
		return validation.NewError("validation_task_dates", "end date must not be before start date")
	}
	return nil
}
