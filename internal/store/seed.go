package store

import (
	"time"

	"github.com/dokonepal/doko/internal/models"
)

// seedGroceries is the demo inventory loaded on first start.
func seedGroceries(newID func() string, now time.Time) []models.Grocery {
	return []models.Grocery{
		{
			ID: newID(), Name: "Organic Basmati Rice", Category: "Grains",
			Price: 850, Quantity: 25, Unit: "kg", Supplier: "Nepal Organic Foods",
			Description: "Premium quality organic basmati rice from the Himalayan region",
			Image:       "https://images.unsplash.com/photo-1586201375761-83865001e31c?w=300&h=200&fit=crop",
			DateAdded:   now,
		},
		{
			ID: newID(), Name: "Fresh Buffalo Milk", Category: "Dairy",
			Price: 80, Quantity: 50, Unit: "ltr", Supplier: "Kathmandu Dairy",
			Description: "Fresh buffalo milk delivered daily from local farms",
			Image:       "https://images.unsplash.com/photo-1563636619-e9143da7973b?w=300&h=200&fit=crop",
			DateAdded:   now,
		},
		{
			ID: newID(), Name: "Himalayan Apples", Category: "Fruits",
			Price: 320, Quantity: 15, Unit: "kg", Supplier: "Mustang Apple Farm",
			Description: "Sweet and crispy apples from the Himalayan region",
			Image:       "https://images.unsplash.com/photo-1560806887-1e4cd0b6cbd6?w=300&h=200&fit=crop",
			DateAdded:   now,
		},
		{
			ID: newID(), Name: "Fresh Spinach", Category: "Vegetables",
			Price: 45, Quantity: 10, Unit: "kg", Supplier: "Local Vegetable Market",
			Description: "Fresh green spinach rich in iron and vitamins",
			Image:       "https://images.unsplash.com/photo-1576045057995-568f588f82fb?w=300&h=200&fit=crop",
			DateAdded:   now,
		},
		{
			ID: newID(), Name: "Himalayan Salt", Category: "Spices",
			Price: 120, Quantity: 20, Unit: "kg", Supplier: "Salt Trading Company",
			Description: "Pure pink Himalayan salt with natural minerals",
			Image:       "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=300&h=200&fit=crop",
			DateAdded:   now,
		},
		{
			ID: newID(), Name: "Local Honey", Category: "Others",
			Price: 650, Quantity: 12, Unit: "kg", Supplier: "Himalayan Honey Co.",
			Description: "Pure wild honey from mountain regions",
			Image:       "https://images.unsplash.com/photo-1587049352846-4a222e784d38?w=300&h=200&fit=crop",
			DateAdded:   now,
		},
		{
			ID: newID(), Name: "Organic Tomatoes", Category: "Vegetables",
			Price: 90, Quantity: 8, Unit: "kg", Supplier: "Organic Valley Farm",
			Description: "Fresh organic tomatoes grown without pesticides",
			Image:       "https://images.unsplash.com/photo-1592924357228-91a4daadcfea?w=300&h=200&fit=crop",
			DateAdded:   now,
		},
		{
			ID: newID(), Name: "Fresh Chicken", Category: "Meat",
			Price: 450, Quantity: 5, Unit: "kg", Supplier: "Local Poultry Farm",
			Description: "Fresh free-range chicken meat",
			Image:       "https://images.unsplash.com/photo-1604503468506-a8da13d82791?w=300&h=200&fit=crop",
			DateAdded:   now,
		},
	}
}

// seedWireframes is the demo project set loaded on first start.
func seedWireframes(newID func() string, now time.Time) []models.Wireframe {
	return []models.Wireframe{
		{
			ID: newID(), ProjectName: "E-commerce Mobile App", TemplateType: "Mobile App",
			Pages: 8, Complexity: models.ComplexityComplex, Priority: models.PriorityHigh,
			Deadline: "2025-08-15",
			Features: "User authentication, product catalog, shopping cart, payment integration, order tracking",
			Status:   models.StatusPlanning, DateCreated: now,
		},
		{
			ID: newID(), ProjectName: "Restaurant Dashboard", TemplateType: "Dashboard",
			Pages: 5, Complexity: models.ComplexityMedium, Priority: models.PriorityMedium,
			Deadline: "2025-07-30",
			Features: "Order management, inventory tracking, sales analytics, staff management",
			Status:   models.StatusPlanning, DateCreated: now,
		},
		{
			ID: newID(), ProjectName: "Portfolio Website", TemplateType: "Portfolio",
			Pages: 4, Complexity: models.ComplexitySimple, Priority: models.PriorityLow,
			Deadline: "2025-08-01",
			Features: "About section, project gallery, contact form, blog section",
			Status:   models.StatusPlanning, DateCreated: now,
		},
	}
}

// seedActivity is the demo activity feed, oldest first.
func seedActivity(newID func() string, now time.Time) []models.Activity {
	return []models.Activity{
		{
			ID: newID(), Kind: models.ActivityGroceryUpdated,
			Message:   "Updated grocery item: Fresh Buffalo Milk",
			Timestamp: now.Add(-2 * time.Hour),
		},
		{
			ID: newID(), Kind: models.ActivityWireframeCreated,
			Message:   "Created wireframe: E-commerce Mobile App",
			Timestamp: now.Add(-1 * time.Hour),
		},
		{
			ID: newID(), Kind: models.ActivityGroceryAdded,
			Message:   "Added new grocery item: Organic Basmati Rice",
			Timestamp: now,
		},
	}
}
