package auth

import (
	"strings"
	"testing"
	"time"

	"develfood/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

type fakeClock struct {
	current time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.current
}

func newTestService(clock *fakeClock) *jwtService {
	return newJWTService(testSecret, time.Hour, clock.Now)
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	clock := &fakeClock{current: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestService(clock)

	token, err := svc.Issue("chef@develfood.com", 7)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "chef@develfood.com", claims.Email)
	assert.Equal(t, 7, claims.ID)
	assert.Equal(t, clock.current.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
	assert.Equal(t, clock.current.Unix(), claims.IssuedAt.Unix())
}

func TestJWTService_ValidForOneHour(t *testing.T) {
	clock := &fakeClock{current: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestService(clock)

	token, err := svc.Issue("chef@develfood.com", 1)
	require.NoError(t, err)

	clock.current = clock.current.Add(59 * time.Minute)
	_, err = svc.Verify(token)
	require.NoError(t, err)

	clock.current = clock.current.Add(2 * time.Minute)
	claims, err := svc.Verify(token)
	require.Error(t, err)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsCorruptedToken(t *testing.T) {
	clock := &fakeClock{current: time.Now()}
	svc := newTestService(clock)

	token, err := svc.Issue("chef@develfood.com", 1)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	sig := []byte(parts[2])
	mid := len(sig) / 2
	if sig[mid] == 'A' {
		sig[mid] = 'B'
	} else {
		sig[mid] = 'A'
	}
	corrupted := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = svc.Verify(corrupted)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	clock := &fakeClock{current: time.Now()}
	other := newJWTService("another-secret", time.Hour, clock.Now)

	token, err := other.Issue("chef@develfood.com", 1)
	require.NoError(t, err)

	_, err = newTestService(clock).Verify(token)
	require.Error(t, err)
}

func TestJWTService_RejectsMalformedToken(t *testing.T) {
	svc := newTestService(&fakeClock{current: time.Now()})

	claims, err := svc.Verify("clearly-not-a-jwt-token-format")
	require.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token")
}

func TestJWTService_RejectsUnexpectedAlgorithm(t *testing.T) {
	clock := &fakeClock{current: time.Now()}
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"email": "chef@develfood.com",
		"id":    1,
		"exp":   clock.current.Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = newTestService(clock).Verify(signed)
	require.Error(t, err)
}

func TestNewJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{}

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestNewJWTService_DefaultsTTLToOneHour(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	impl, ok := svc.(*jwtService)
	require.True(t, ok)
	assert.Equal(t, time.Hour, impl.ttl)
}
