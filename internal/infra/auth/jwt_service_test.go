package auth

import (
	"testing"
	"time"

	"boxtrack/config"
	"boxtrack/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jwtConfig() *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: 5 * time.Minute, RefreshTokenTTL: time.Hour}}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	svc, err := NewJWTService(jwtConfig())
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, svc.GetAccessTokenDuration())

	userID := uuid.New()
	accessToken, refreshToken, err := svc.GenerateTokens(userID, []string{"ADMINISTRATOR"})
	require.NoError(t, err)

	accessClaims, err := svc.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, []string{"ADMINISTRATOR"}, accessClaims.Roles)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	refreshClaims, err := svc.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Empty(t, refreshClaims.Roles)
}

func TestJWTService_RejectsSwappedTokens(t *testing.T) {
	svc, err := NewJWTService(jwtConfig())
	require.NoError(t, err)

	accessToken, refreshToken, err := svc.GenerateTokens(uuid.New(), nil)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(refreshToken)
	assert.Error(t, err)
	_, err = svc.ValidateRefreshToken(accessToken)
	assert.Error(t, err)
	_, err = svc.ValidateAccessToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	impl, err := NewJWTService(jwtConfig())
	require.NoError(t, err)
	svc := impl.(*jwtService)

	issued := time.Now().Add(-time.Hour)
	svc.now = func() time.Time { return issued }
	accessToken, _, err := svc.GenerateTokens(uuid.New(), nil)
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateAccessToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
