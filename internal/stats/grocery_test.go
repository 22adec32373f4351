package stats

import (
	"math"
	"testing"
	"time"

	"github.com/dokonepal/doko/internal/models"
)

func grocery(name, category string, price float64, quantity int) models.Grocery {
	return models.Grocery{Name: name, Category: category, Price: price, Quantity: quantity}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSummarize_Totals(t *testing.T) {
	items := []models.Grocery{
		grocery("Rice", "Grains", 850, 25),
		grocery("Milk", "Dairy", 80, 50),
		grocery("Apples", "Fruits", 320, 15),
	}
	s := Summarize(items)

	if s.TotalItems != 3 {
		t.Errorf("TotalItems = %d, want 3", s.TotalItems)
	}
	wantValue := 850*25.0 + 80*50.0 + 320*15.0
	if !almostEqual(s.TotalValue, wantValue) {
		t.Errorf("TotalValue = %v, want %v", s.TotalValue, wantValue)
	}
	wantAvg := (850 + 80 + 320.0) / 3
	if !almostEqual(s.AveragePrice, wantAvg) {
		t.Errorf("AveragePrice = %v, want %v", s.AveragePrice, wantAvg)
	}
	if s.Categories != 3 {
		t.Errorf("Categories = %d, want 3", s.Categories)
	}
	if s.MostExpensive == nil || s.MostExpensive.Name != "Rice" {
		t.Errorf("MostExpensive = %+v, want Rice", s.MostExpensive)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalItems != 0 || s.TotalValue != 0 || s.AveragePrice != 0 {
		t.Errorf("empty summary = %+v, want zeros", s)
	}
	if s.CategoryDistribution == nil || len(s.CategoryDistribution) != 0 {
		t.Errorf("CategoryDistribution = %v, want empty map", s.CategoryDistribution)
	}
	if s.MostExpensive != nil {
		t.Errorf("MostExpensive = %+v, want nil", s.MostExpensive)
	}
}

func TestLowStock_StrictThreshold(t *testing.T) {
	items := []models.Grocery{
		grocery("A", "X", 1, 4),
		grocery("B", "X", 1, 5),
		grocery("C", "X", 1, 6),
	}
	low := LowStock(items, 5)
	if len(low) != 1 || low[0].Name != "A" {
		t.Errorf("LowStock = %v, want only A (quantity < 5)", low)
	}
}

func TestAboveAveragePrice_StrictMean(t *testing.T) {
	items := []models.Grocery{
		grocery("A", "X", 10, 1),
		grocery("B", "X", 20, 1),
		grocery("C", "X", 30, 1),
	}
	// mean is 20; only C is strictly above.
	above := AboveAveragePrice(items)
	if len(above) != 1 || above[0].Name != "C" {
		t.Errorf("AboveAveragePrice = %v, want only C", above)
	}
}

func TestMostPopularCategory_TieBreaksFirstSeen(t *testing.T) {
	items := []models.Grocery{
		grocery("A", "Dairy", 1, 1),
		grocery("B", "Fruits", 1, 1),
		grocery("C", "Fruits", 1, 1),
		grocery("D", "Dairy", 1, 1),
	}
	// Both end at 2, but Fruits reaches 2 first; the later Dairy tie
	// does not displace it.
	if got := MostPopularCategory(items); got != "Fruits" {
		t.Errorf("MostPopularCategory = %q, want Fruits", got)
	}
}

func TestMostPopularCategory_Empty(t *testing.T) {
	if got := MostPopularCategory(nil); got != "" {
		t.Errorf("MostPopularCategory(nil) = %q, want empty", got)
	}
}

func TestRecentTrend_Window(t *testing.T) {
	now := time.Date(2025, 7, 11, 12, 0, 0, 0, time.UTC)
	inWindow := grocery("New", "Dairy", 100, 1)
	inWindow.DateAdded = now.AddDate(0, 0, -10)
	onEdge := grocery("Edge", "Dairy", 200, 1)
	onEdge.DateAdded = now.AddDate(0, 0, -30)
	outside := grocery("Old", "Grains", 300, 1)
	outside.DateAdded = now.AddDate(0, 0, -31)

	trend := RecentTrend([]models.Grocery{inWindow, onEdge, outside}, now, 30)
	if trend.TotalAdded != 2 {
		t.Errorf("TotalAdded = %d, want 2 (cutoff is inclusive)", trend.TotalAdded)
	}
	if !almostEqual(trend.AveragePrice, 150) {
		t.Errorf("AveragePrice = %v, want 150", trend.AveragePrice)
	}
	if trend.MostPopularCategory != "Dairy" {
		t.Errorf("MostPopularCategory = %q, want Dairy", trend.MostPopularCategory)
	}
}

func TestRecentTrend_Empty(t *testing.T) {
	trend := RecentTrend(nil, time.Now(), 30)
	if trend.TotalAdded != 0 || trend.AveragePrice != 0 || trend.MostPopularCategory != "" {
		t.Errorf("empty trend = %+v, want zeros", trend)
	}
}

func TestInventoryInsights_LowStockRecommendation(t *testing.T) {
	items := []models.Grocery{
		grocery("Chicken", "Meat", 450, 2),
		grocery("Rice", "Grains", 850, 25),
	}
	ins := InventoryInsights(items)
	if ins.LowStockCount != 1 {
		t.Errorf("LowStockCount = %d, want 1", ins.LowStockCount)
	}
	found := false
	for _, rec := range ins.Recommendations {
		if rec.Level == "warning" {
			found = true
		}
	}
	if !found {
		t.Error("expected a low-stock warning recommendation")
	}
}

func TestInventoryInsights_EmptyInventory(t *testing.T) {
	ins := InventoryInsights(nil)
	if len(ins.Recommendations) != 1 || ins.Recommendations[0].Level != "info" {
		t.Errorf("recommendations = %v, want single info entry", ins.Recommendations)
	}
}
