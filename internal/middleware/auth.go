package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	redisv9 "github.com/redis/go-redis/v9"

	"github.com/benatkinsonstarling/tempus/internal/config"
	"github.com/benatkinsonstarling/tempus/internal/model"
	"github.com/benatkinsonstarling/tempus/internal/redis"
)

var ErrInvalidToken = errors.New("invalid or expired session token")

// TokenVerifier resolves a session token to the user id it belongs to.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

type contextKey string

const userIDKey contextKey = "userID"

// UserIDFromContext returns the authenticated user id set by Auth.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}

type redisTokenVerifier struct {
	client *redisv9.Client
}

func NewRedisTokenVerifier() TokenVerifier {
	return &redisTokenVerifier{client: redis.GetClient()}
}

func sessionKey(token string) string {
	return "session:" + token
}

func (v *redisTokenVerifier) Verify(ctx context.Context, token string) (string, error) {
	userID, err := v.client.Get(ctx, sessionKey(token)).Result()
	if err == redisv9.Nil {
		return "", ErrInvalidToken
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

// Auth requires a bearer token on the wrapped handler and stores the
// resolved user id in the request context.
func Auth(verifier TokenVerifier, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeAuthError(w, http.StatusUnauthorized, "Missing bearer token")
			return
		}

		userID, err := verifier.Verify(r.Context(), token)
		if err == ErrInvalidToken {
			writeAuthError(w, http.StatusUnauthorized, "Invalid or expired session")
			return
		}
		if err != nil {
			config.GetLogger().Errorw("Session verification failed", "error", err)
			writeAuthError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next(w, r.WithContext(ctx))
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func writeAuthError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	errMsg := message
	resp := model.Response{
		Error:   &errMsg,
		Message: http.StatusText(statusCode),
	}
	_ = json.NewEncoder(w).Encode(resp)
}
