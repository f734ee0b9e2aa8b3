package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
)

func setupErrorRouter() *gin.Engine {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/app-error", func(c *gin.Context) {
		_ = c.Error(apperrors.WithMessage(apperrors.ErrNotFound, "nothing here"))
	})
	r.GET("/plain-error", func(c *gin.Context) {
		_ = c.Error(fmt.Errorf("database exploded"))
	})
	r.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperrors.WithMessage(apperrors.ErrNotFound, "Route not found"))
	})
	return r
}

func TestErrorHandler(t *testing.T) {
	t.Run("app_error_envelope", func(t *testing.T) {
		r := setupErrorRouter()
		req := httptest.NewRequest(http.MethodGet, "/app-error", http.NoBody)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		errObj := parseBody(t, rec)["error"].(map[string]interface{})
		if errObj["code"] != "NOT_FOUND" {
			t.Errorf("expected NOT_FOUND, got %v", errObj["code"])
		}
		if errObj["message"] != "nothing here" {
			t.Errorf("expected custom message, got %v", errObj["message"])
		}
	})

	t.Run("plain_error_hidden_behind_generic_500", func(t *testing.T) {
		r := setupErrorRouter()
		req := httptest.NewRequest(http.MethodGet, "/plain-error", http.NoBody)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		errObj := parseBody(t, rec)["error"].(map[string]interface{})
		if errObj["code"] != "INTERNAL_ERROR" {
			t.Errorf("expected INTERNAL_ERROR, got %v", errObj["code"])
		}
		if errObj["message"] == "database exploded" {
			t.Error("internal error detail must not leak to the client")
		}
	})

	t.Run("unmatched_route", func(t *testing.T) {
		r := setupErrorRouter()
		req := httptest.NewRequest(http.MethodGet, "/definitely/not/a/route", http.NoBody)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		errObj := parseBody(t, rec)["error"].(map[string]interface{})
		if errObj["code"] != "NOT_FOUND" {
			t.Errorf("expected NOT_FOUND, got %v", errObj["code"])
		}
	})
}
