package routes

import (
	"errors"
	"strconv"

	"sintnew/models"
)

// Form intents submitted by the admin UI. Anything that is not cancel or
// delete goes down the validate-then-upsert path, with create and update
// told apart by whether the id in the URL is "new".
const (
	intentCreate = "create"
	intentUpdate = "update"
	intentDelete = "delete"
	intentCancel = "cancel"
)

// Error handling policy for the admin form workflow:
//
//	validation error   -> 400 with the complete field->message map, no side effects
//	upload error       -> 502, workflow halted before any row write
//	row not found      -> 404, fatal to the request
//	image delete error -> swallowed inside the image service, mutation proceeds
//
// Validation checks every field before reporting so the admin sees the full
// error set in one pass, never just the first missing field.

func validateCategoryForm(name, description string, hasImage bool) map[string]string {
	errs := make(map[string]string)
	if name == "" {
		errs["name"] = "Name is required"
	}
	if description == "" {
		errs["description"] = "Description is required"
	}
	if !hasImage {
		errs["image"] = "Cover photo is required"
	}
	return errs
}

type productForm struct {
	Name        string
	SKU         string
	Description string
	Status      string
	Price       string
	CategoryID  string
}

func validateProductForm(form productForm, hasImage bool) map[string]string {
	errs := make(map[string]string)
	if form.Name == "" {
		errs["name"] = "Name is required"
	}
	if form.SKU == "" {
		errs["sku"] = "SKU is required"
	}
	if form.Description == "" {
		errs["description"] = "Description is required"
	}
	if form.Status == "" {
		errs["status"] = "Status is required"
	} else if form.Status != models.StatusDraft && form.Status != models.StatusPublished {
		errs["status"] = "Status must be Draft or Published"
	}
	if form.Price == "" {
		errs["price"] = "Price is required"
	}
	if form.CategoryID == "" {
		errs["categoryId"] = "Category is required"
	}
	if !hasImage {
		errs["image"] = "Cover photo is required"
	}
	return errs
}

// parsePrice coerces the raw price only after the required-field checks have
// passed. The value is an integer count of minor currency units and fails
// closed on anything else.
func parsePrice(raw string) (int64, error) {
	price, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.New("Price must be a whole number")
	}
	if price < 0 {
		return 0, errors.New("Price must not be negative")
	}
	return price, nil
}
