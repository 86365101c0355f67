package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	redisv9 "github.com/redis/go-redis/v9"
)

type stubVerifier struct {
	userID string
	err    error
}

func (v *stubVerifier) Verify(ctx context.Context, token string) (string, error) {
	if v.err != nil {
		return "", v.err
	}
	return v.userID, nil
}

func TestAuth(t *testing.T) {
	var seenUserID string
	next := func(w http.ResponseWriter, r *http.Request) {
		seenUserID, _ = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}

	tests := []struct {
		name           string
		header         string
		verifier       TokenVerifier
		expectedStatus int
		expectedUserID string
	}{
		{
			name:           "Valid bearer token",
			header:         "Bearer abc123",
			verifier:       &stubVerifier{userID: "user-1"},
			expectedStatus: http.StatusOK,
			expectedUserID: "user-1",
		},
		{
			name:           "Missing header",
			header:         "",
			verifier:       &stubVerifier{userID: "user-1"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Wrong scheme",
			header:         "Basic abc123",
			verifier:       &stubVerifier{userID: "user-1"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Invalid token",
			header:         "Bearer expired",
			verifier:       &stubVerifier{err: ErrInvalidToken},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Verifier failure",
			header:         "Bearer abc123",
			verifier:       &stubVerifier{err: errors.New("redis down")},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seenUserID = ""
			req := httptest.NewRequest(http.MethodGet, "/api/locations", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			Auth(tt.verifier, next)(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", rr.Code, tt.expectedStatus)
			}
			if seenUserID != tt.expectedUserID {
				t.Errorf("user id = %q, want %q", seenUserID, tt.expectedUserID)
			}
		})
	}
}

func TestUserIDFromContext_Unset(t *testing.T) {
	if _, ok := UserIDFromContext(context.Background()); ok {
		t.Error("empty context should carry no user id")
	}
}

func TestRedisTokenVerifier(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redisv9.NewClient(&redisv9.Options{Addr: mr.Addr()})
	verifier := &redisTokenVerifier{client: client}
	ctx := context.Background()

	mr.Set("session:tok-1", "user-42")

	userID, err := verifier.Verify(ctx, "tok-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != "user-42" {
		t.Errorf("user id = %q, want user-42", userID)
	}

	if _, err := verifier.Verify(ctx, "no-such-token"); err != ErrInvalidToken {
		t.Errorf("unknown token should be ErrInvalidToken, got %v", err)
	}
}
