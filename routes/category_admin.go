package routes

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"sintnew/db"
	"sintnew/models"
	"sintnew/uploader"
)

const categoryListPath = "/admin/categories"

func getAdminCategories(c *fiber.Ctx) error {
	categories, err := db.GetCategories()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch categories",
		})
	}
	return c.JSON(fiber.Map{"categories": categories, "total": len(categories)})
}

// getAdminCategory loads the edit form data. The id "new" yields a null
// category for the create form.
func getAdminCategory(c *fiber.Ctx) error {
	idParam := c.Params("categoryId")
	if idParam == newEntityID {
		return c.JSON(fiber.Map{"category": nil})
	}

	id, err := parseID(idParam)
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
	return c.JSON(fiber.Map{"category": category})
}

// categoryAction dispatches a submitted category form on its intent field:
// cancel aborts with no side effects, delete destroys the remote image and
// then the row, anything else runs the validate-then-upsert path.
func categoryAction(deps *Deps, hub *eventHub) fiber.Handler {
	return func(c *fiber.Ctx) error {
		idParam := c.Params("categoryId")

		switch c.FormValue("intent") {
		case intentCancel:
			return c.Redirect(categoryListPath, fiber.StatusSeeOther)
		case intentDelete:
			return deleteCategoryAction(c, deps, hub, idParam)
		}

		name := c.FormValue("name")
		description := c.FormValue("description")
		file, fileErr := c.FormFile("image")

		if errs := validateCategoryForm(name, description, fileErr == nil); len(errs) > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(errs)
		}

		image, err := file.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Failed to read uploaded file",
			})
		}
		defer image.Close()

		// Upload before touching the row or the old asset. A failed upload
		// leaves the previous category and its image fully intact.
		ref, err := deps.Images.Upload(c.Context(), image, uploader.CategoryFolder)
		if err != nil {
			log.Println("Image upload failed:", err)
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": "Image upload failed",
			})
		}

		category := &models.Category{
			Name:          name,
			Description:   description,
			ImageURL:      ref.SecureURL,
			ImagePublicID: ref.PublicID,
		}

		if err := validate.Struct(category); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		if idParam == newEntityID {
			if err := db.CreateCategory(category); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "Failed to create category",
				})
			}
			hub.publish(catalogEvent{Entity: "category", Action: "created", ID: category.ID})
			return c.Redirect(categoryListPath, fiber.StatusSeeOther)
		}

		id, err := parseID(idParam)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid category id",
			})
		}

		existing, err := db.GetCategory(id)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Category not found",
			})
		}

		// The new asset is already stored, so the old one can go.
		deps.Images.Delete(existing.ImagePublicID)

		if err := db.UpdateCategory(id, category); err != nil {
			if errors.Is(err, db.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "Category not found",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update category",
			})
		}
		hub.publish(catalogEvent{Entity: "category", Action: "updated", ID: id})
		return c.Redirect(categoryListPath, fiber.StatusSeeOther)
	}
}

// deleteCategoryAction destroys the remote image first, then the row. There
// is no rollback if the row delete fails after the image is gone.
func deleteCategoryAction(c *fiber.Ctx, deps *Deps, hub *eventHub, idParam string) error {
	id, err := parseID(idParam)
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

	deps.Images.Delete(category.ImagePublicID)

	if err := db.DeleteCategory(id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Category not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete category",
		})
	}
	hub.publish(catalogEvent{Entity: "category", Action: "deleted", ID: id})
	return c.Redirect(categoryListPath, fiber.StatusSeeOther)
}
