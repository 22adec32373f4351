// Package stats computes summary statistics over record store snapshots.
// Every function is pure and defined for empty input: averages are 0 and
// distributions are empty maps, never a division by zero.
package stats

import (
	"time"

	"github.com/dokonepal/doko/internal/models"
)

// DefaultLowStockThreshold is the quantity below which an item counts as low stock.
const DefaultLowStockThreshold = 5

// DefaultTrendWindowDays is the trailing window used by RecentTrend.
const DefaultTrendWindowDays = 30

// GrocerySummary aggregates the inventory collection.
type GrocerySummary struct {
	TotalItems           int             `json:"total_items"`
	TotalValue           float64         `json:"total_value"`
	Categories           int             `json:"categories"`
	AveragePrice         float64         `json:"average_price"`
	CategoryDistribution map[string]int  `json:"category_distribution"`
	Suppliers            int             `json:"suppliers"`
	MostExpensive        *models.Grocery `json:"most_expensive,omitempty"`
}

// Summarize computes the grocery summary for a snapshot.
func Summarize(items []models.Grocery) GrocerySummary {
	s := GrocerySummary{
		TotalItems:           len(items),
		CategoryDistribution: map[string]int{},
	}

	suppliers := map[string]struct{}{}
	var priceSum float64
	for i, g := range items {
		s.TotalValue += g.TotalValue()
		priceSum += g.Price
		s.CategoryDistribution[g.Category]++
		suppliers[g.Supplier] = struct{}{}
		if s.MostExpensive == nil || g.Price > s.MostExpensive.Price {
			s.MostExpensive = &items[i]
		}
	}
	s.Categories = len(s.CategoryDistribution)
	s.Suppliers = len(suppliers)
	if s.TotalItems > 0 {
		s.AveragePrice = priceSum / float64(s.TotalItems)
	}
	return s
}

// LowStock returns items whose quantity is strictly below threshold.
func LowStock(items []models.Grocery, threshold int) []models.Grocery {
	out := []models.Grocery{}
	for _, g := range items {
		if g.Quantity < threshold {
			out = append(out, g)
		}
	}
	return out
}

// AboveAveragePrice returns items priced strictly above the mean price.
func AboveAveragePrice(items []models.Grocery) []models.Grocery {
	avg := Summarize(items).AveragePrice
	out := []models.Grocery{}
	for _, g := range items {
		if g.Price > avg {
			out = append(out, g)
		}
	}
	return out
}

// MostPopularCategory returns the category with the highest item count.
// Ties break toward the category encountered first in iteration order;
// an empty snapshot yields "".
func MostPopularCategory(items []models.Grocery) string {
	counts := map[string]int{}
	best := ""
	for _, g := range items {
		counts[g.Category]++
		if best == "" || counts[g.Category] > counts[best] {
			best = g.Category
		}
	}
	return best
}

// Trend summarizes items added within a trailing window.
type Trend struct {
	TotalAdded          int     `json:"total_added"`
	AveragePrice        float64 `json:"average_price"`
	MostPopularCategory string  `json:"most_popular_category"`
}

// RecentTrend computes the trend over the windowDays before now.
func RecentTrend(items []models.Grocery, now time.Time, windowDays int) Trend {
	cutoff := now.AddDate(0, 0, -windowDays)
	recent := []models.Grocery{}
	for _, g := range items {
		if !g.DateAdded.Before(cutoff) {
			recent = append(recent, g)
		}
	}

	t := Trend{TotalAdded: len(recent)}
	if len(recent) > 0 {
		var sum float64
		for _, g := range recent {
			sum += g.Price
		}
		t.AveragePrice = sum / float64(len(recent))
	}
	t.MostPopularCategory = MostPopularCategory(recent)
	return t
}
