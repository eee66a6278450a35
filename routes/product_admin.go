package routes

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"sintnew/db"
	"sintnew/models"
)

const productListPath = "/admin/products"

func getAdminProducts(c *fiber.Ctx) error {
	products, err := db.GetProducts(nil)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch products",
		})
	}
	return c.JSON(fiber.Map{"products": products, "total": len(products)})
}

// getAdminProduct loads the edit form data: the product (null for "new")
// plus every category for the selector.
func getAdminProduct(c *fiber.Ctx) error {
	categories, err := db.GetCategories()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch categories",
		})
	}

	idParam := c.Params("productId")
	if idParam == newEntityID {
		return c.JSON(fiber.Map{"product": nil, "categories": categories})
	}

	id, err := parseID(idParam)
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
	return c.JSON(fiber.Map{"product": product, "categories": categories})
}

// productAction mirrors categoryAction for products: intent dispatch, then
// the full-field validation pass, then upload, then the row write.
func productAction(deps *Deps, hub *eventHub) fiber.Handler {
	return func(c *fiber.Ctx) error {
		idParam := c.Params("productId")

		switch c.FormValue("intent") {
		case intentCancel:
			return c.Redirect(productListPath, fiber.StatusSeeOther)
		case intentDelete:
			return deleteProductAction(c, deps, hub, idParam)
		}

		form := productForm{
			Name:        c.FormValue("name"),
			SKU:         c.FormValue("sku"),
			Description: c.FormValue("description"),
			Status:      c.FormValue("status"),
			Price:       c.FormValue("price"),
			CategoryID:  c.FormValue("categoryId"),
		}
		file, fileErr := c.FormFile("image")

		if errs := validateProductForm(form, fileErr == nil); len(errs) > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(errs)
		}

		// Coercions happen only after the required checks pass, and fail
		// closed as validation errors.
		price, err := parsePrice(form.Price)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"price": err.Error()})
		}
		categoryID, err := parseID(form.CategoryID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"categoryId": "Category is invalid"})
		}

		// Validate the category exists before spending an upload on it.
		if _, err := db.GetCategory(categoryID); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Category not found",
			})
		}

		image, err := file.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Failed to read uploaded file",
			})
		}
		defer image.Close()

		// Upload before touching the row or the old asset. A failed upload
		// leaves the previous product and its image fully intact.
		ref, err := deps.Images.Upload(c.Context(), image, "")
		if err != nil {
			log.Println("Image upload failed:", err)
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": "Image upload failed",
			})
		}

		product := &models.Product{
			Name:          form.Name,
			SKU:           form.SKU,
			Description:   form.Description,
			Status:        form.Status,
			Price:         price,
			ImageURL:      ref.SecureURL,
			ImagePublicID: ref.PublicID,
			CategoryID:    &categoryID,
		}

		if err := validate.Struct(product); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		if idParam == newEntityID {
			if err := db.CreateProduct(product); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "Failed to create product",
				})
			}
			hub.publish(catalogEvent{Entity: "product", Action: "created", ID: product.ID})
			return c.Redirect(productListPath, fiber.StatusSeeOther)
		}

		id, err := parseID(idParam)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid product id",
			})
		}

		existing, err := db.GetProduct(id)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}

		// The new asset is already stored, so the old one can go.
		deps.Images.Delete(existing.ImagePublicID)

		if err := db.UpdateProduct(id, product); err != nil {
			if errors.Is(err, db.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "Product not found",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update product",
			})
		}
		hub.publish(catalogEvent{Entity: "product", Action: "updated", ID: id})
		return c.Redirect(productListPath, fiber.StatusSeeOther)
	}
}

// deleteProductAction destroys the remote image first, then the row. There
// is no rollback if the row delete fails after the image is gone.
func deleteProductAction(c *fiber.Ctx, deps *Deps, hub *eventHub, idParam string) error {
	id, err := parseID(idParam)
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

	deps.Images.Delete(product.ImagePublicID)

	if err := db.DeleteProduct(id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete product",
		})
	}
	hub.publish(catalogEvent{Entity: "product", Action: "deleted", ID: id})
	return c.Redirect(productListPath, fiber.StatusSeeOther)
}
