package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"goblog/internal/config"
	handlers "goblog/internal/handler"
	"goblog/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		AccessSecretKey:  "test-access-secret",
		RefreshSecretKey: "test-refresh-secret",
		Algorithm:        "HS256",
		ServerPort:       8080,
		MaxUploadSize:    10 * 1024 * 1024,
	}
}

func createTestHandler(auth *MockAuthService, user *MockUserService, post *MockPostService) *handlers.Handlers {
	if auth == nil {
		auth = new(MockAuthService)
	}
	if user == nil {
		user = new(MockUserService)
	}
	if post == nil {
		post = new(MockPostService)
	}

	return &handlers.Handlers{
		AuthService: auth,
		UserService: user,
		PostService: post,
		Cfg:         testConfig(),
		Validate:    validator.New(),
	}
}

func activeUser() *models.User {
	return &models.User{
		ID:       "user-123",
		Username: "alice",
		FullName: "Alice Cooper",
		Email:    "alice@example.com",
		IsActive: true,
	}
}

// withUser puts an authorized user into the request context,
// the way auth middleware does for protected routes.
func withUser(r *http.Request, user *models.User) *http.Request {
	return r.WithContext(models.WithUser(r.Context(), user))
}

// assertJSONError checks the JSON response with an error
func assertJSONError(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int) {
	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.NotEmpty(t, response["detail"])
}

func TestNewHandlers(t *testing.T) {
	handler := createTestHandler(nil, nil, nil)

	assert.NotNil(t, handler.AuthService)
	assert.NotNil(t, handler.UserService)
	assert.NotNil(t, handler.PostService)
	assert.NotNil(t, handler.Validate)
}
