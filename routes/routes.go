package routes

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"sintnew/config"
	"sintnew/uploader"
)

var validate = validator.New()

// Deps carries the collaborators the handlers need. Built once in main and
// passed by reference; there is no ambient global configuration.
type Deps struct {
	Config   *config.Config
	Images   uploader.ImageService
	Sessions *session.Store
}

func SetupRoutes(app *fiber.App, deps *Deps) {
	hub := newEventHub()

	// Live admin event feed
	app.Get("/ws", hub.handler())

	app.Post("/login", loginHandler(deps))
	app.Post("/logout", logoutHandler(deps))

	// Public storefront routes
	api := app.Group("/api")

	categories := api.Group("/categories")
	categories.Get("/", getAllCategories)
	categories.Get("/:id", getCategory)

	products := api.Group("/products")
	products.Get("/", getAllProducts)
	products.Get("/:id", getProduct)

	// Admin back-office routes, session gated
	admin := app.Group("/admin", requireAdmin(deps))

	admin.Get("/categories", getAdminCategories)
	admin.Get("/categories/:categoryId", getAdminCategory)
	admin.Post("/categories/:categoryId", categoryAction(deps, hub))

	admin.Get("/products", getAdminProducts)
	admin.Get("/products/:productId", getAdminProduct)
	admin.Post("/products/:productId", productAction(deps, hub))
}

// newEntityID marks a form submission that creates an entity instead of
// updating an existing one.
const newEntityID = "new"

func parseID(param string) (uint, error) {
	id, err := strconv.ParseUint(param, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
