package api

import (
	"github.com/dokonepal/doko/internal/models"
	"github.com/dokonepal/doko/internal/service"
)

// LoginRequest is the request body for starting a session.
type LoginRequest struct {
	Username string `json:"username" example:"demo" validate:"required"`
	Password string `json:"password" example:"demo123" validate:"required"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Token    string `json:"token" validate:"required"`
	Username string `json:"username" example:"demo" validate:"required"`
	Role     string `json:"role" example:"user" validate:"required"`
}

// GroceryListResponse wraps an inventory listing.
type GroceryListResponse struct {
	Groceries []models.Grocery `json:"groceries" validate:"required"`
	Total     int              `json:"total" example:"8" validate:"required"`
}

// WireframeListResponse wraps a wireframe listing.
type WireframeListResponse struct {
	Wireframes []models.Wireframe `json:"wireframes" validate:"required"`
	Total      int                `json:"total" example:"3" validate:"required"`
}

// ActivityResponse wraps an activity feed slice.
type ActivityResponse struct {
	Activity []models.Activity `json:"activity" validate:"required"`
}

// AppendTaskRequest is the request body for adding a timeline task.
type AppendTaskRequest struct {
	Name     string `json:"name" example:"Security Review" validate:"required"`
	Start    string `json:"start" example:"2025-08-10" validate:"required"`
	End      string `json:"end" example:"2025-08-17" validate:"required"`
	Priority string `json:"priority" example:"high"`
	Assignee string `json:"assignee" example:"Team"`
}

// Dashboard is the combined stats payload (aliased from the domain layer).
type Dashboard = service.Dashboard
