package routes

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"sintnew/db"
	"sintnew/models"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse defines the structure of the login response
type LoginResponse struct {
	Message string      `json:"message"`
	User    models.User `json:"user"`
}

func loginHandler(deps *Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		request := new(LoginRequest)
		if err := c.BodyParser(request); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Failed to parse request body",
			})
		}

		if err := validate.Struct(request); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		var user models.User
		if err := db.DB.Where("email = ?", request.Email).First(&user).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid email or password",
			})
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid email or password",
			})
		}

		sess, err := deps.Sessions.Get(c)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to open session",
			})
		}
		sess.Set("userID", user.ID)
		sess.Set("email", user.Email)
		if err := sess.Save(); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to save session",
			})
		}

		return c.JSON(LoginResponse{Message: "Login successful", User: user})
	}
}

func logoutHandler(deps *Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := deps.Sessions.Get(c)
		if err == nil {
			_ = sess.Destroy()
		}
		return c.JSON(fiber.Map{"message": "Logged out"})
	}
}

// requireAdmin gates every admin route. Visitors without an authenticated
// administrator principal are redirected to the login flow.
func requireAdmin(deps *Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := deps.Sessions.Get(c)
		if err != nil {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		email, _ := sess.Get("email").(string)
		if email == "" || email != deps.Config.AdminEmail {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}
