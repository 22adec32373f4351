package stats

import (
	"fmt"

	"github.com/dokonepal/doko/internal/models"
)

// Recommendation is an advisory line derived from the current inventory.
type Recommendation struct {
	Level   string `json:"level"` // "warning" or "info"
	Message string `json:"message"`
	Action  string `json:"action"`
}

// Insights bundles the derived inventory health indicators.
type Insights struct {
	TotalValue          float64          `json:"total_value"`
	AverageItemValue    float64          `json:"average_item_value"`
	LowStockCount       int              `json:"low_stock_count"`
	ExpensiveItemsCount int              `json:"expensive_items_count"`
	CategoryCount       int              `json:"category_count"`
	Recommendations     []Recommendation `json:"recommendations"`
}

// InventoryInsights derives health indicators and recommendations from a
// grocery snapshot.
func InventoryInsights(items []models.Grocery) Insights {
	summary := Summarize(items)
	lowStock := LowStock(items, DefaultLowStockThreshold)
	expensive := AboveAveragePrice(items)

	ins := Insights{
		TotalValue:          summary.TotalValue,
		AverageItemValue:    summary.AveragePrice,
		LowStockCount:       len(lowStock),
		ExpensiveItemsCount: len(expensive),
		CategoryCount:       summary.Categories,
		Recommendations:     []Recommendation{},
	}

	if len(lowStock) > 0 {
		ins.Recommendations = append(ins.Recommendations, Recommendation{
			Level:   "warning",
			Message: fmt.Sprintf("%d items are running low on stock", len(lowStock)),
			Action:  "Consider restocking these items",
		})
	}
	if float64(len(expensive)) > float64(len(items))*0.3 && len(items) > 0 {
		ins.Recommendations = append(ins.Recommendations, Recommendation{
			Level:   "info",
			Message: "Many items are above average price",
			Action:  "Review pricing strategy",
		})
	}
	if len(items) == 0 {
		ins.Recommendations = append(ins.Recommendations, Recommendation{
			Level:   "info",
			Message: "No groceries in inventory",
			Action:  "Start adding grocery items",
		})
	}
	return ins
}
