package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// DashboardHandler serves the mock analytics endpoints. The payloads are
// fixed data and never touch storage.
type DashboardHandler struct{}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// RegisterRoutes registers the dashboard routes with the Fiber app.
func (h *DashboardHandler) RegisterRoutes(router fiber.Router) {
	dashboardRoutes := router.Group("/dashboard")
	dashboardRoutes.Get("/statistics", h.HandleGetStatistics)
	dashboardRoutes.Get("/sales", h.HandleGetSales)
	dashboardRoutes.Get("/visitors", h.HandleGetVisitors)
	dashboardRoutes.Get("/top-products", h.HandleGetTopProducts)
	dashboardRoutes.Get("/sold-products", h.HandleGetSoldProducts)
}

// HandleGetStatistics returns the headline dashboard numbers.
func (h *DashboardHandler) HandleGetStatistics(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"products": 124,
		"sales":    3912,
		"revenue":  48230.50,
		"visitors": 17840,
	})
}

// HandleGetSales returns monthly sales chart points.
func (h *DashboardHandler) HandleGetSales(c *fiber.Ctx) error {
	return c.JSON([]fiber.Map{
		{"month": "Jan", "value": 310},
		{"month": "Feb", "value": 284},
		{"month": "Mar", "value": 356},
		{"month": "Apr", "value": 402},
		{"month": "May", "value": 389},
		{"month": "Jun", "value": 431},
	})
}

// HandleGetVisitors returns visitor counts per day of the week.
func (h *DashboardHandler) HandleGetVisitors(c *fiber.Ctx) error {
	return c.JSON([]fiber.Map{
		{"day": "Mon", "count": 2210},
		{"day": "Tue", "count": 2485},
		{"day": "Wed", "count": 2390},
		{"day": "Thu", "count": 2678},
		{"day": "Fri", "count": 3014},
		{"day": "Sat", "count": 2893},
		{"day": "Sun", "count": 2170},
	})
}

// HandleGetTopProducts returns the best rated products.
func (h *DashboardHandler) HandleGetTopProducts(c *fiber.Ctx) error {
	return c.JSON([]fiber.Map{
		{"name": "Laptop", "rating": 4.8},
		{"name": "Keyboard", "rating": 4.6},
		{"name": "Mouse", "rating": 4.5},
		{"name": "Monitor", "rating": 4.3},
	})
}

// HandleGetSoldProducts returns recent sales per product.
func (h *DashboardHandler) HandleGetSoldProducts(c *fiber.Ctx) error {
	return c.JSON([]fiber.Map{
		{"name": "Laptop", "sold": 182},
		{"name": "Keyboard", "sold": 341},
		{"name": "Mouse", "sold": 420},
		{"name": "Monitor", "sold": 97},
	})
}
