package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"fintrack/internal/config"
	"fintrack/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupAuthRouter() *gin.Engine {
	r := gin.New()
	r.Use(AuthMiddleware())
	r.GET("/test", func(c *gin.Context) {
		userID, _ := c.Get("userID")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r
}

func doAuthRequest(r *gin.Engine, modify func(req *http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	if modify != nil {
		modify(req)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response body: %v", err)
	}
	return result
}

func TestAuthMiddleware(t *testing.T) {
	user := &models.User{Base: models.Base{ID: 42}}
	token, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	t.Run("bearer_header", func(t *testing.T) {
		r := setupAuthRouter()
		rec := doAuthRequest(r, func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+token)
		})

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got := parseBody(t, rec)["user_id"]; got != float64(42) {
			t.Errorf("expected user_id 42, got %v", got)
		}
	})

	t.Run("session_cookie", func(t *testing.T) {
		r := setupAuthRouter()
		rec := doAuthRequest(r, func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
		})

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got := parseBody(t, rec)["user_id"]; got != float64(42) {
			t.Errorf("expected user_id 42, got %v", got)
		}
	})

	t.Run("header_wins_over_cookie", func(t *testing.T) {
		otherToken, err := GenerateToken(&models.User{Base: models.Base{ID: 7}})
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}

		r := setupAuthRouter()
		rec := doAuthRequest(r, func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+token)
			req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: otherToken})
		})

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got := parseBody(t, rec)["user_id"]; got != float64(42) {
			t.Errorf("expected header token's user 42, got %v", got)
		}
	})

	t.Run("missing_token", func(t *testing.T) {
		r := setupAuthRouter()
		rec := doAuthRequest(r, nil)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("malformed_header", func(t *testing.T) {
		r := setupAuthRouter()
		rec := doAuthRequest(r, func(req *http.Request) {
			req.Header.Set("Authorization", "Token "+token)
		})

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("garbage_token", func(t *testing.T) {
		r := setupAuthRouter()
		rec := doAuthRequest(r, func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer not-a-jwt")
		})

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("expired_token", func(t *testing.T) {
		past := time.Now().Add(-2 * time.Hour)
		claims := &JWTClaims{
			UserID: user.ID,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
				IssuedAt:  jwt.NewNumericDate(past),
				Issuer:    "fintrack-api",
			},
		}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
			SignedString([]byte(config.Get().JWTSecret))
		if err != nil {
			t.Fatalf("failed to sign expired token: %v", err)
		}

		r := setupAuthRouter()
		rec := doAuthRequest(r, func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+expired)
		})

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("wrong_signing_key", func(t *testing.T) {
		claims := &JWTClaims{
			UserID: user.ID,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
			SignedString([]byte("some-other-key"))
		if err != nil {
			t.Fatalf("failed to sign forged token: %v", err)
		}

		r := setupAuthRouter()
		rec := doAuthRequest(r, func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+forged)
		})

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}
