package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/hogarlabs/hogar/internal/handlers"
	"github.com/hogarlabs/hogar/internal/models"
	"github.com/hogarlabs/hogar/internal/services"
)

// TestSendMessageRejectsEmptyForm tests POST /chat/send/ with neither
// text nor image
func TestSendMessageRejectsEmptyForm(t *testing.T) {
	db := setupTestDB(t)
	st := setupTestStorage(t)
	app := setupTestApp(t)
	user := createTestUser(t, db, "ana", "x", false)

	handler := &handlers.ChatHandler{DB: db, Storage: st}
	app.Post("/chat/send/", fakeAuth(user), handler.SendMessage)

	resp, err := app.Test(formRequest("POST", "/chat/send/", ""))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}

	var result map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result["status"] != "error" {
		t.Errorf("Expected status 'error', got %q", result["status"])
	}

	var count int64
	db.Model(&models.Message{}).Count(&count)
	if count != 0 {
		t.Errorf("Expected no messages written, got %d", count)
	}
}

// TestSendAndGetMessages tests the send/poll round trip
func TestSendAndGetMessages(t *testing.T) {
	db := setupTestDB(t)
	st := setupTestStorage(t)
	app := setupTestApp(t)
	ana := createTestUser(t, db, "ana", "x", false)
	ben := createTestUser(t, db, "ben", "x", false)

	handler := &handlers.ChatHandler{DB: db, Storage: st}
	app.Post("/chat/send/", fakeAuth(ana), handler.SendMessage)
	app.Get("/chat/get/", fakeAuth(ana), handler.GetMessages)

	resp, err := app.Test(formRequest("POST", "/chat/send/", "content=hola"))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	if _, err := services.SendMessage(db, ben.ID, "qué tal", ""); err != nil {
		t.Fatalf("Failed to seed message: %v", err)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/chat/get/", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	var result struct {
		Messages []services.ChatMessage `json:"messages"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(result.Messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(result.Messages))
	}
	if result.Messages[0].Content != "hola" || !result.Messages[0].IsUser {
		t.Errorf("Unexpected first message: %+v", result.Messages[0])
	}
	if result.Messages[1].User != "ben" || result.Messages[1].IsUser {
		t.Errorf("Unexpected second message: %+v", result.Messages[1])
	}
}

// TestSendMessageWithImage tests a multipart send and the resolved URL
// in the poll response
func TestSendMessageWithImage(t *testing.T) {
	db := setupTestDB(t)
	st := setupTestStorage(t)
	app := setupTestApp(t)
	user := createTestUser(t, db, "ana", "x", false)

	handler := &handlers.ChatHandler{DB: db, Storage: st}
	app.Post("/chat/send/", fakeAuth(user), handler.SendMessage)
	app.Get("/chat/get/", fakeAuth(user), handler.GetMessages)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", "pic.png")
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	if _, err := io.WriteString(part, "png-bytes"); err != nil {
		t.Fatalf("Failed to write form file: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest("POST", "/chat/send/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/chat/get/", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}

	var result struct {
		Messages []services.ChatMessage `json:"messages"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(result.Messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(result.Messages))
	}
	if result.Messages[0].ImageURL == nil {
		t.Fatal("Expected an image URL")
	}
	if got := *result.Messages[0].ImageURL; got == "" {
		t.Error("Expected a non-empty image URL")
	}
}
