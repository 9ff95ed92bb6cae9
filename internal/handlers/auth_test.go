package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/hogarlabs/hogar/internal/handlers"
	"github.com/hogarlabs/hogar/internal/middleware"
)

func formRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// loginApp wires the auth routes plus one user-gated and one
// staff-gated probe route.
func loginApp(t *testing.T) *fiber.App {
	db := setupTestDB(t)
	app := setupTestApp(t)

	handler := &handlers.AuthHandler{DB: db}
	app.Get("/login/", handler.LoginForm)
	app.Post("/login/", handler.Login)
	app.Get("/logout/", handler.Logout)

	app.Get("/", middleware.AuthUser(), func(c *fiber.Ctx) error {
		return c.SendString("dashboard")
	})
	app.Get("/announcements/", middleware.AuthStaff(), func(c *fiber.Ctx) error {
		return c.SendString("admin")
	})

	createTestUser(t, db, "ana", "secreta", false)
	createTestUser(t, db, "root", "secreta", true)

	return app
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == "hogar_session" {
			return c
		}
	}
	t.Fatal("Expected a hogar_session cookie")
	return nil
}

// TestLoginWrongCredentials tests that a failed login re-renders the
// form with a 401 and no session cookie
func TestLoginWrongCredentials(t *testing.T) {
	app := loginApp(t)

	resp, err := app.Test(formRequest("POST", "/login/", "username=ana&password=mal"))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Errorf("Expected status 401, got %d", resp.StatusCode)
	}
	for _, c := range resp.Cookies() {
		if c.Name == "hogar_session" && c.Value != "" {
			t.Error("A failed login must not create a session")
		}
	}
}

// TestLoginSuccessOpensSession tests the happy path: redirect home and
// a session cookie that passes the auth gate
func TestLoginSuccessOpensSession(t *testing.T) {
	app := loginApp(t)

	resp, err := app.Test(formRequest("POST", "/login/", "username=ana&password=secreta"))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 303 {
		t.Errorf("Expected status 303, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/" {
		t.Errorf("Expected redirect to /, got %q", loc)
	}

	cookie := sessionCookie(t, resp)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("Expected status 200 behind the gate, got %d", resp.StatusCode)
	}
}

// TestAuthUserRedirectsAnonymous tests that the gate bounces requests
// without a session to the login page
func TestAuthUserRedirectsAnonymous(t *testing.T) {
	app := loginApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 303 {
		t.Errorf("Expected status 303, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login/" {
		t.Errorf("Expected redirect to /login/, got %q", loc)
	}
}

// TestAuthStaffRejectsNonStaff tests that a regular user is sent back
// to the dashboard while a staff user passes
func TestAuthStaffRejectsNonStaff(t *testing.T) {
	app := loginApp(t)

	resp, err := app.Test(formRequest("POST", "/login/", "username=ana&password=secreta"))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	anaCookie := sessionCookie(t, resp)

	req := httptest.NewRequest("GET", "/announcements/", nil)
	req.AddCookie(anaCookie)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 303 {
		t.Errorf("Expected status 303, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/" {
		t.Errorf("Expected redirect to /, got %q", loc)
	}

	resp, err = app.Test(formRequest("POST", "/login/", "username=root&password=secreta"))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	rootCookie := sessionCookie(t, resp)

	req = httptest.NewRequest("GET", "/announcements/", nil)
	req.AddCookie(rootCookie)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("Expected status 200 for staff, got %d", resp.StatusCode)
	}
}

// TestLogoutEndsSession tests that the session cookie stops working
// after logout
func TestLogoutEndsSession(t *testing.T) {
	app := loginApp(t)

	resp, err := app.Test(formRequest("POST", "/login/", "username=ana&password=secreta"))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	cookie := sessionCookie(t, resp)

	req := httptest.NewRequest("GET", "/logout/", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 303 {
		t.Errorf("Expected status 303, got %d", resp.StatusCode)
	}

	req = httptest.NewRequest("GET", "/", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 303 {
		t.Errorf("Expected redirect after logout, got %d", resp.StatusCode)
	}
}
