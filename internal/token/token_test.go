package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipe-share/internal/config"
	"github.com/recipe-share/internal/model"
)

func newTestService(ttl time.Duration) *Service {
	return NewService(config.AuthConfig{Secret: "test-secret", TokenTTL: ttl})
}

func TestIssueAndVerify(t *testing.T) {
	svc := newTestService(time.Hour)
	userID := uuid.New()

	signed, err := svc.Issue(userID, model.RoleUser|model.RoleModerator)
	require.NoError(t, err)

	claims, err := svc.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, model.RoleUser|model.RoleModerator, claims.Role)
}

func TestVerifyExpired(t *testing.T) {
	svc := newTestService(-time.Minute)

	signed, err := svc.Issue(uuid.New(), model.RoleUser)
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyWrongSecret(t *testing.T) {
	other := NewService(config.AuthConfig{Secret: "other-secret", TokenTTL: time.Hour})
	signed, err := other.Issue(uuid.New(), model.RoleUser)
	require.NoError(t, err)

	svc := newTestService(time.Hour)
	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyGarbage(t *testing.T) {
	svc := newTestService(time.Hour)
	_, err := svc.Verify("definitely.not.a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyRejectsNonHMAC(t *testing.T) {
	// A token declaring alg=none must never verify, even unsigned.
	tok := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": uuid.New().String(),
		"role":    int(model.RoleAdmin),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	svc := newTestService(time.Hour)
	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestIssueAdminCarriesFullMask(t *testing.T) {
	svc := newTestService(time.Hour)

	signed, err := svc.IssueAdmin()
	require.NoError(t, err)

	claims, err := svc.Verify(signed)
	require.NoError(t, err)
	assert.True(t, claims.Role.Has(model.RoleUser))
	assert.True(t, claims.Role.Has(model.RoleModerator))
	assert.True(t, claims.Role.Has(model.RoleAdmin))
}
