//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"movie-reservation/internal/handler/middleware"
	"movie-reservation/internal/pkg/jwt"
	"movie-reservation/internal/usecase"
	"movie-reservation/tests/common/httptest"
	usecasemock "movie-reservation/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(t *testing.T, validator usecase.TokenValidator) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())

	auth := middleware.NewAuthMiddleware(validator)
	router.GET("/me", auth.RequireAuth(), func(c *gin.Context) {
		identity, ok := middleware.GetCustomer(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": identity.ID.String(), "name": identity.Name})
	})
	return router
}

func TestRequireAuth(t *testing.T) {
	identity := usecase.CustomerIdentity{ID: uuid.New(), Name: "Kim Minsu"}

	t.Run("valid bearer token sets the customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := usecasemock.NewMockTokenValidator(ctrl)
		validator.EXPECT().ValidateToken("good-token").Return(identity, nil)

		rec := httptest.PerformRequest(t, newAuthRouter(t, validator), http.MethodGet, "/me", nil, "good-token")

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, identity.ID.String(), body["id"])
		assert.Equal(t, "Kim Minsu", body["name"])
	})

	t.Run("missing token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := usecasemock.NewMockTokenValidator(ctrl)

		rec := httptest.PerformRequest(t, newAuthRouter(t, validator), http.MethodGet, "/me", nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("non-bearer scheme", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := usecasemock.NewMockTokenValidator(ctrl)
		router := newAuthRouter(t, validator)

		rec := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/me", nil,
			map[string]string{"Authorization": "Basic dXNlcjpwYXNz"})

		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("rejected token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := usecasemock.NewMockTokenValidator(ctrl)
		validator.EXPECT().ValidateToken("stale").Return(usecase.CustomerIdentity{}, jwt.ErrExpiredToken)

		rec := httptest.PerformRequest(t, newAuthRouter(t, validator), http.MethodGet, "/me", nil, "stale")

		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestGetCustomer_Unset(t *testing.T) {
	c := &gin.Context{}

	_, ok := middleware.GetCustomer(c)

	assert.False(t, ok)
}
