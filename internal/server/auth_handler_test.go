package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-assistant/internal/config"
	"github.com/jonathan/interview-assistant/internal/types"
)

func testAuthHandler(t *testing.T) (*AuthHandler, *fakeUserStore) {
	t.Helper()
	store := newFakeUserStore()
	userService := NewUserService(store, testPasswordConfig())
	jwtService := NewJWTService(&config.JWTConfig{
		Secret:          "test-secret-key-for-unit-tests",
		ExpirationHours: 24,
	})
	return NewAuthHandler(userService, jwtService), store
}

func postJSON(t *testing.T, handler http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestAuthHandler_Register(t *testing.T) {
	handler, _ := testAuthHandler(t)

	rec := postJSON(t, handler.Register, types.CreateUserRequest{
		Name:     "Dana",
		Email:    "dana@example.com",
		Password: "correct-horse",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp types.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "dana@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.Token)
}

func TestAuthHandler_Register_InvalidBody(t *testing.T) {
	handler, _ := testAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	handler.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	handler, store := testAuthHandler(t)

	rec := postJSON(t, handler.Register, types.CreateUserRequest{
		Name:     "Dana",
		Email:    "dana@example.com",
		Password: "short",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Password")
	assert.Empty(t, store.byEmail)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	handler, _ := testAuthHandler(t)

	req := types.CreateUserRequest{Name: "Dana", Email: "dana@example.com", Password: "correct-horse"}
	rec := postJSON(t, handler.Register, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, handler.Register, req)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	handler, _ := testAuthHandler(t)

	rec := postJSON(t, handler.Register, types.CreateUserRequest{
		Name: "Dana", Email: "dana@example.com", Password: "correct-horse",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, handler.Login, types.LoginRequest{
		Email:    "dana@example.com",
		Password: "correct-horse",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Token)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	handler, _ := testAuthHandler(t)

	rec := postJSON(t, handler.Register, types.CreateUserRequest{
		Name: "Dana", Email: "dana@example.com", Password: "correct-horse",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, handler.Login, types.LoginRequest{
		Email:    "dana@example.com",
		Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_UpdatePasswordWithUserID(t *testing.T) {
	handler, store := testAuthHandler(t)

	rec := postJSON(t, handler.Register, types.CreateUserRequest{
		Name: "Dana", Email: "dana@example.com", Password: "correct-horse",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	userID := store.byEmail["dana@example.com"].ID

	payload, err := json.Marshal(types.UpdatePasswordRequest{
		CurrentPassword: "correct-horse",
		NewPassword:     "battery-staple",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/", bytes.NewReader(payload))
	rec = httptest.NewRecorder()
	handler.UpdatePasswordWithUserID(rec, req, userID)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = postJSON(t, handler.Login, types.LoginRequest{
		Email:    "dana@example.com",
		Password: "battery-staple",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}
