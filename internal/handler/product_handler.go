package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"go-shop-api/internal/service"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

// GetProducts returns a catalog page
// GET /api/v1/products?limit=10&offset=0
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	products, err := h.service.FindAll(limit, offset)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(products)
}

// GetProduct looks up one product by id, title or slug
// GET /api/v1/products/:term
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.service.FindOnePlain(c.Params("term"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(product)
}

// CreateProduct adds a product with its image URLs
// POST /api/v1/products
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req service.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product, err := h.service.Create(&req)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(201).JSON(product)
}

// UpdateProduct applies a partial patch; a supplied images list replaces the
// whole image set
// PATCH /api/v1/products/:id
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var req service.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product, err := h.service.Update(id, &req)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(product)
}

// DeleteProduct removes one product
// DELETE /api/v1/products/:id
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	if err := h.service.Remove(id); err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(fiber.Map{"message": "Product deleted"})
}
