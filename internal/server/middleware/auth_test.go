package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeValidator struct {
	userID uuid.UUID
	err    error
}

func (f *fakeValidator) ValidateToken(string) (UserIDGetter, error) {
	if f.err != nil {
		return nil, f.err
	}
	return fakeClaims{userID: f.userID}, nil
}

type fakeClaims struct {
	userID uuid.UUID
}

func (c fakeClaims) GetUserID() uuid.UUID { return c.userID }

func TestAuthMiddleware_ValidToken(t *testing.T) {
	userID := uuid.New()
	mw := AuthMiddleware(&fakeValidator{userID: userID})

	var gotID uuid.UUID
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := GetUserID(r)
		require.NoError(t, err)
		gotID = id
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, gotID)
}

func TestAuthMiddleware_CaseInsensitiveBearer(t *testing.T) {
	mw := AuthMiddleware(&fakeValidator{userID: uuid.New()})
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer some-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		validator TokenValidator
	}{
		{"missing header", "", &fakeValidator{}},
		{"wrong scheme", "Basic abc123", &fakeValidator{}},
		{"no token", "Bearer", &fakeValidator{}},
		{"invalid token", "Bearer bad-token", &fakeValidator{err: errors.New("invalid")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := AuthMiddleware(tt.validator)
			handler := mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				t.Fatal("handler should not be reached")
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestGetUserID_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := GetUserID(req)
	assert.Error(t, err)
}
