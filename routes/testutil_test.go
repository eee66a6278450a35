package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"sintnew/config"
	"sintnew/db"
	"sintnew/models"
	"sintnew/uploader"
)

const (
	testAdminEmail    = "admin@sintnew.test"
	testAdminPassword = "sintnew-admin"
)

// fakeImageService records upload and delete calls so tests can assert the
// image lifecycle contract without a remote image store.
type fakeImageService struct {
	uploads   int
	deleted   []string
	uploadErr error
}

func (f *fakeImageService) Upload(ctx context.Context, image io.Reader, folderHint string) (uploader.ImageRef, error) {
	if f.uploadErr != nil {
		return uploader.ImageRef{}, f.uploadErr
	}
	f.uploads++
	return uploader.ImageRef{
		SecureURL: fmt.Sprintf("https://res.example.com/upload/%d.jpg", f.uploads),
		PublicID:  fmt.Sprintf("test/asset-%d", f.uploads),
	}, nil
}

func (f *fakeImageService) Delete(publicID string) {
	f.deleted = append(f.deleted, publicID)
}

type testEnv struct {
	app    *fiber.App
	images *fakeImageService
	cookie *http.Cookie
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to access sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := gdb.AutoMigrate(&models.User{}, &models.Category{}, &models.Product{}); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	previous := db.DB
	db.DB = gdb
	t.Cleanup(func() {
		db.DB = previous
		_ = sqlDB.Close()
	})

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if err := db.DB.Create(&models.User{Email: testAdminEmail, PasswordHash: string(hash)}).Error; err != nil {
		t.Fatalf("failed to seed admin user: %v", err)
	}

	images := &fakeImageService{}
	app := fiber.New()
	SetupRoutes(app, &Deps{
		Config:   &config.Config{AdminEmail: testAdminEmail},
		Images:   images,
		Sessions: session.New(),
	})

	return &testEnv{app: app, images: images, cookie: login(t, app, testAdminEmail, testAdminPassword)}
}

func login(t *testing.T, app *fiber.App, email, password string) *http.Cookie {
	t.Helper()

	body, err := json.Marshal(fiber.Map{"email": email, "password": password})
	if err != nil {
		t.Fatalf("failed to encode login body: %v", err)
	}
	req := httptest.NewRequest(fiber.MethodPost, "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("login returned status %d", resp.StatusCode)
	}
	cookies := resp.Cookies()
	if len(cookies) == 0 {
		t.Fatal("login returned no session cookie")
	}
	return cookies[0]
}

// postForm submits a multipart admin form, optionally attaching a small
// image part named "image".
func (env *testEnv) postForm(t *testing.T, path string, fields map[string]string, withImage bool) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("failed to write form field %q: %v", key, err)
		}
	}
	if withImage {
		part, err := writer.CreateFormFile("image", "cover.jpg")
		if err != nil {
			t.Fatalf("failed to create image part: %v", err)
		}
		if _, err := part.Write([]byte("fake image bytes")); err != nil {
			t.Fatalf("failed to write image part: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(fiber.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.AddCookie(env.cookie)

	resp, err := env.app.Test(req)
	if err != nil {
		t.Fatalf("request to %s failed: %v", path, err)
	}
	return resp
}

func (env *testEnv) postJSON(t *testing.T, path string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(fiber.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(env.cookie)

	resp, err := env.app.Test(req)
	if err != nil {
		t.Fatalf("request to %s failed: %v", path, err)
	}
	return resp
}

func (env *testEnv) get(t *testing.T, path string, authenticated bool) *http.Response {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodGet, path, nil)
	if authenticated {
		req.AddCookie(env.cookie)
	}
	resp, err := env.app.Test(req)
	if err != nil {
		t.Fatalf("request to %s failed: %v", path, err)
	}
	return resp
}

func decodeErrorMap(t *testing.T, resp *http.Response) map[string]string {
	t.Helper()
	defer resp.Body.Close()

	errs := make(map[string]string)
	if err := json.NewDecoder(resp.Body).Decode(&errs); err != nil {
		t.Fatalf("failed to decode error map: %v", err)
	}
	return errs
}

func assertRedirect(t *testing.T, resp *http.Response, location string) {
	t.Helper()
	if resp.StatusCode != fiber.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", fiber.StatusSeeOther, resp.StatusCode)
	}
	if got := resp.Header.Get("Location"); got != location {
		t.Fatalf("expected redirect to %q, got %q", location, got)
	}
}

func countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var count int64
	if err := db.DB.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}
