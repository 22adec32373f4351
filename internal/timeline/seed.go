package timeline

import (
	"time"

	"github.com/dokonepal/doko/internal/models"
)

// Default display window and reference date for the project plan.
var (
	DefaultWindowStart = date(2025, 5, 30)
	DefaultWindowEnd   = date(2025, 9, 5)
	DefaultToday       = date(2025, 7, 11)
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// seedTasks returns the built-in project plan.
func seedTasks() []models.Task {
	return []models.Task{
		{ID: 1, Name: "Topic Discussion", Start: date(2025, 5, 30), End: date(2025, 6, 6), Priority: "high", Progress: 100, Assignee: "Team", Phase: "Planning", Details: "Initial topic discussion and brainstorming for Online Grocery Website"},
		{ID: 2, Name: "Proposal Made", Start: date(2025, 6, 7), End: date(2025, 6, 13), Priority: "high", Progress: 100, Assignee: "Ayush", Phase: "Planning", Details: "Project proposal creation and submission"},
		{ID: 3, Name: "Group Discussion", Start: date(2025, 6, 14), End: date(2025, 6, 20), Priority: "high", Progress: 100, Assignee: "Team", Phase: "Planning", Details: "Team discussion on project scope and requirements"},
		{ID: 4, Name: "Design and Wireframe Discussion", Start: date(2025, 6, 21), End: date(2025, 6, 26), Priority: "high", Progress: 100, Assignee: "Anuskar", Phase: "Design", Details: "UI/UX design planning and wireframe creation"},
		{ID: 5, Name: "Database Design & Setup", Start: date(2025, 6, 26), End: date(2025, 7, 1), Priority: "high", Progress: 90, Assignee: "Utsab", Phase: "Development", Details: "Database schema design and initial setup"},
		{ID: 6, Name: "Frontend Development - Landing Page", Start: date(2025, 7, 1), End: date(2025, 7, 7), Priority: "high", Progress: 85, Assignee: "Anuskar", Phase: "Development", Details: "Hero section, navigation, and basic layout"},
		{ID: 7, Name: "Grocery Management System", Start: date(2025, 7, 7), End: date(2025, 7, 12), Priority: "high", Progress: 80, Assignee: "Team", Phase: "Development", Details: "CRUD operations for grocery inventory"},
		{ID: 8, Name: "User Authentication System", Start: date(2025, 7, 12), End: date(2025, 7, 19), Priority: "high", Progress: 70, Assignee: "Utsab", Phase: "Development", Details: "Login, registration, and session management"},
		{ID: 9, Name: "Shopping Cart & Checkout", Start: date(2025, 7, 19), End: date(2025, 7, 26), Priority: "high", Progress: 60, Assignee: "Anuskar", Phase: "Development", Details: "Cart functionality and payment integration"},
		{ID: 10, Name: "Order Management System", Start: date(2025, 7, 26), End: date(2025, 8, 2), Priority: "medium", Progress: 50, Assignee: "Utsab", Phase: "Development", Details: "Order tracking and management features"},
		{ID: 11, Name: "Analytics Dashboard", Start: date(2025, 8, 2), End: date(2025, 8, 9), Priority: "medium", Progress: 40, Assignee: "Ayush", Phase: "Development", Details: "Charts, reports, and business analytics"},
		{ID: 12, Name: "Mobile Responsiveness", Start: date(2025, 8, 9), End: date(2025, 8, 15), Priority: "medium", Progress: 30, Assignee: "Anuskar", Phase: "Development", Details: "Mobile optimization and responsive design"},
		{ID: 13, Name: "Unit Testing", Start: date(2025, 8, 15), End: date(2025, 8, 22), Priority: "high", Progress: 25, Assignee: "Sandhaya", Phase: "Testing", Details: "Individual component testing and bug fixes"},
		{ID: 14, Name: "Integration Testing", Start: date(2025, 8, 22), End: date(2025, 8, 29), Priority: "high", Progress: 15, Assignee: "Sandhaya", Phase: "Testing", Details: "System integration and end-to-end testing"},
		{ID: 15, Name: "Technical Documentation", Start: date(2025, 8, 29), End: date(2025, 9, 2), Priority: "medium", Progress: 10, Assignee: "Jesina", Phase: "Documentation", Details: "API documentation and technical guides"},
		{ID: 16, Name: "User Manual & Training", Start: date(2025, 9, 2), End: date(2025, 9, 5), Priority: "medium", Progress: 5, Assignee: "Jesina", Phase: "Documentation", Details: "User guides and training materials"},
		{ID: 17, Name: "Final Deployment & Launch", Start: date(2025, 9, 5), End: date(2025, 9, 5), Priority: "high", Progress: 0, Assignee: "Team", Phase: "Deployment", Details: "Final presentation and university demonstration"},
	}
}
