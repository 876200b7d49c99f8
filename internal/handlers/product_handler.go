package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"katalog/internal/repositories"
	"katalog/internal/services"
	"katalog/internal/validation"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Post("/", h.HandleCreateProduct)
	// PUT with the id in the body; kept alongside the /:id form for
	// compatibility, both resolve to the same update operation.
	productRoutes.Put("/", h.HandleUpdateProduct)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Put("/:id", h.HandleUpdateProductByID)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.ListProducts()
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	product, err := h.service.GetProduct(c.Params("id"))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	payload, err := parsePayload(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	product, err := h.service.CreateProduct(payload)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct updates a product identified by the id in the body.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	payload, err := parsePayload(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	product, err := h.service.UpdateProduct(payload["id"], payload)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(product)
}

// HandleUpdateProductByID updates a product identified by the id in the path.
func (h *ProductHandler) HandleUpdateProductByID(c *fiber.Ctx) error {
	payload, err := parsePayload(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	product, err := h.service.UpdateProduct(c.Params("id"), payload)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product by its ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(c.Params("id")); err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "product deleted",
	})
}

// parsePayload decodes the JSON request body into an untyped map. Field
// validation happens later, at the service boundary.
func parsePayload(c *fiber.Ctx) (map[string]interface{}, error) {
	payload := make(map[string]interface{})
	if err := c.BodyParser(&payload); err != nil {
		log.Printf("Error parsing request body: %v", err)
		return nil, err
	}
	return payload, nil
}

// respondError maps the error taxonomy to HTTP statuses: validation errors
// are 400s, unresolved ids are 404s, everything else is a logged 500.
func (h *ProductHandler) respondError(c *fiber.Ctx, err error) error {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": verr.Message,
		})
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "product not found",
		})
	default:
		log.Printf("Unexpected error handling %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "internal server error",
			"details": err.Error(),
		})
	}
}
