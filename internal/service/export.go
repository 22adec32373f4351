package service

import (
	"github.com/dokonepal/doko/internal/models"
	"github.com/dokonepal/doko/internal/stats"
)

// ExportDocument is the full data export: every collection plus the
// derived summaries, with enough metadata to identify when and by whom it
// was produced.
type ExportDocument struct {
	Metadata   ExportMetadata     `json:"metadata"`
	Groceries  []models.Grocery   `json:"groceries"`
	Wireframes []models.Wireframe `json:"wireframes"`
	Activity   []models.Activity  `json:"activity"`
	Summary    Dashboard          `json:"summary"`
}

// ExportMetadata describes one export run.
type ExportMetadata struct {
	GeneratedAt string `json:"generated_at"`
	Exporter    string `json:"exporter"`
	Version     string `json:"version"`
}

// Report is the analytics-only export, without the raw collections.
type Report struct {
	GeneratedAt string                 `json:"generated_at"`
	Summary     ReportSummary          `json:"summary"`
	Groceries   ReportGrocerySection   `json:"grocery_analytics"`
	Wireframes  ReportWireframeSection `json:"wireframe_analytics"`

	Recommendations []stats.Recommendation `json:"recommendations"`
}

// ReportSummary is the headline block of a report.
type ReportSummary struct {
	TotalGroceries  int     `json:"total_groceries"`
	TotalWireframes int     `json:"total_wireframes"`
	InventoryValue  float64 `json:"inventory_value"`
	Categories      int     `json:"categories"`
}

// ReportGrocerySection groups the grocery-side analytics.
type ReportGrocerySection struct {
	Stats    stats.GrocerySummary `json:"stats"`
	Trends   stats.Trend          `json:"trends"`
	Insights stats.Insights       `json:"insights"`
}

// ReportWireframeSection groups the wireframe-side analytics.
type ReportWireframeSection struct {
	Stats stats.WireframeSummary `json:"stats"`
}

// Export builds the full data export and records it in the activity feed.
// exporter names the session user, or "anonymous".
func (s *Service) Export(exporter, version string) ExportDocument {
	if exporter == "" {
		exporter = "anonymous"
	}
	doc := ExportDocument{
		Metadata: ExportMetadata{
			GeneratedAt: s.now().UTC().Format("2006-01-02T15:04:05Z07:00"),
			Exporter:    exporter,
			Version:     version,
		},
		Groceries:  s.Store.Groceries(),
		Wireframes: s.Store.Wireframes(),
		Activity:   s.Store.RecentActivity(0),
		Summary:    s.Dashboard(),
	}
	s.Store.RecordActivity(models.ActivityExport, "Exported groceries data")
	return doc
}

// ExportReport builds the analytics report and records it in the activity
// feed.
func (s *Service) ExportReport() Report {
	groceries := s.Store.Groceries()
	wireframes := s.Store.Wireframes()
	now := s.now()

	grocerySummary := stats.Summarize(groceries)
	wireframeSummary := stats.SummarizeWireframes(wireframes, now)
	insights := stats.InventoryInsights(groceries)

	report := Report{
		GeneratedAt: now.UTC().Format("2006-01-02T15:04:05Z07:00"),
		Summary: ReportSummary{
			TotalGroceries:  grocerySummary.TotalItems,
			TotalWireframes: wireframeSummary.TotalWireframes,
			InventoryValue:  grocerySummary.TotalValue,
			Categories:      grocerySummary.Categories,
		},
		Groceries: ReportGrocerySection{
			Stats:    grocerySummary,
			Trends:   stats.RecentTrend(groceries, now, stats.DefaultTrendWindowDays),
			Insights: insights,
		},
		Wireframes:      ReportWireframeSection{Stats: wireframeSummary},
		Recommendations: insights.Recommendations,
	}
	s.Store.RecordActivity(models.ActivityExport, "Exported analytics report")
	return report
}
