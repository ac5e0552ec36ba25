package auth

import (
	"errors"
	"net/http"
	"testing"

	apperrors "or-caseflow-backend/internal/errors"
	"or-caseflow-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *AuthService {
	svc, err := NewAuthService("board-secret", "jwt-secret")
	require.NoError(t, err)
	return svc
}

func TestNewAuthServiceRequiresJWTSecret(t *testing.T) {
	_, err := NewAuthService("board-secret", "")
	assert.Error(t, err)
	assert.True(t, apperrors.IsConfiguration(err))
}

func TestExchangeSecret(t *testing.T) {
	svc := newTestService(t)

	t.Run("valid secret issues token", func(t *testing.T) {
		resp, err := svc.ExchangeSecret(&TokenRequest{Secret: "board-secret", Station: "or-desk-1"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "Bearer", resp.TokenType)

		claims, err := svc.ValidateJWT(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "or-desk-1", claims.Station)
		assert.Equal(t, "board", claims.Role)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		_, err := svc.ExchangeSecret(&TokenRequest{Secret: "guess", Station: "or-desk-1"})
		assert.True(t, errors.Is(err, apperrors.ErrInvalidBoardSecret))
	})

	t.Run("empty configured secret disables check", func(t *testing.T) {
		open, err := NewAuthService("", "jwt-secret")
		require.NoError(t, err)
		_, err = open.ExchangeSecret(&TokenRequest{Secret: "anything", Station: "dev"})
		assert.NoError(t, err)
	})
}

func TestValidateJWT(t *testing.T) {
	svc := newTestService(t)

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateJWT("not-a-token")
		assert.True(t, errors.Is(err, apperrors.ErrInvalidToken))
	})

	t.Run("token signed with other secret", func(t *testing.T) {
		other, err := NewAuthService("board-secret", "other-secret")
		require.NoError(t, err)
		token, err := other.GenerateJWT("or-desk-1")
		require.NoError(t, err)

		_, err = svc.ValidateJWT(token)
		assert.Error(t, err)
	})
}

func TestRequireAuthMiddleware(t *testing.T) {
	svc := newTestService(t)
	middleware := NewAuthMiddleware(svc)

	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		station, _ := GetStation(c)
		c.JSON(http.StatusOK, gin.H{"station": station})
	})

	t.Run("missing header", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/protected", nil)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		recorder := httpSuite.MakeRequestWithHeaders(http.MethodGet, "/protected", nil,
			map[string]string{"Authorization": "Basic abc"})
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("valid token passes and sets station", func(t *testing.T) {
		token, err := svc.GenerateJWT("or-desk-2")
		require.NoError(t, err)

		recorder := httpSuite.MakeRequestWithHeaders(http.MethodGet, "/protected", nil,
			map[string]string{"Authorization": "Bearer " + token})

		var body map[string]string
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &body)
		assert.Equal(t, "or-desk-2", body["station"])
	})
}

func TestOptionalAuthMiddleware(t *testing.T) {
	svc := newTestService(t)
	middleware := NewAuthMiddleware(svc)

	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/open", middleware.OptionalAuth(), func(c *gin.Context) {
		station, ok := GetStation(c)
		c.JSON(http.StatusOK, gin.H{"station": station, "authenticated": ok})
	})

	t.Run("no token still passes", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/open", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("valid token sets context", func(t *testing.T) {
		token, err := svc.GenerateJWT("or-desk-3")
		require.NoError(t, err)

		recorder := httpSuite.MakeRequestWithHeaders(http.MethodGet, "/open", nil,
			map[string]string{"Authorization": "Bearer " + token})

		var body map[string]interface{}
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &body)
		assert.Equal(t, "or-desk-3", body["station"])
		assert.Equal(t, true, body["authenticated"])
	})
}
