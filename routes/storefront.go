package routes

import (
	"github.com/gofiber/fiber/v2"

	"sintnew/db"
)

// Public storefront handlers. Read only; listings come back most recently
// updated first.

func getAllCategories(c *fiber.Ctx) error {
	categories, err := db.GetCategories()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch categories",
		})
	}
	return c.JSON(fiber.Map{"categories": categories, "total": len(categories)})
}

func getCategory(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid category id",
		})
	}

	category, err := db.GetCategory(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Category not found",
		})
	}
	return c.JSON(category)
}

func getAllProducts(c *fiber.Ctx) error {
	var categoryID *uint
	if raw := c.Query("categoryId"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid category id",
			})
		}
		categoryID = &id
	}

	products, err := db.GetProducts(categoryID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch products",
		})
	}
	return c.JSON(fiber.Map{"products": products, "total": len(products)})
}

func getProduct(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid product id",
		})
	}

	product, err := db.GetProduct(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}
	return c.JSON(product)
}
