package tokens

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("unit-test-secret")

func TestSignParse_Roundtrip(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	claims := NewClaims(42, "ada@example.com", RoleAdmin, now)

	token, err := Sign(claims, testSecret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := Parse(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, "ada@example.com", parsed.Email)
	assert.Equal(t, RoleAdmin, parsed.Role)
	assert.NotEmpty(t, parsed.ID)

	id, err := parsed.UserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	require.NotNil(t, parsed.ExpiresAt)
	assert.WithinDuration(t, now.Add(TTL), parsed.ExpiresAt.Time, time.Second)
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := Sign(NewClaims(1, "a@example.com", RoleUser, time.Now().UTC()), testSecret)
	require.NoError(t, err)

	_, err = Parse(token, []byte("someone-else"))
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	issued := time.Now().UTC().Add(-TTL - time.Hour)
	token, err := Sign(NewClaims(1, "a@example.com", RoleUser, issued), testSecret)
	require.NoError(t, err)

	_, err = Parse(token, testSecret)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParse_RejectsUnsignedToken(t *testing.T) {
	t.Parallel()

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, NewClaims(1, "a@example.com", RoleAdmin, time.Now().UTC())).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = Parse(unsigned, testSecret)
	require.Error(t, err)
}

func TestParse_Garbage(t *testing.T) {
	t.Parallel()

	_, err := Parse("not.a.token", testSecret)
	require.Error(t, err)
}

func TestNewClaims_UniqueJTI(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	a := NewClaims(1, "a@example.com", RoleUser, now)
	b := NewClaims(1, "a@example.com", RoleUser, now)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestRole_Can(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		role Role
		cap  Capability
		want bool
	}{
		{"admin lists users", RoleAdmin, CapListUsers, true},
		{"user cannot list users", RoleUser, CapListUsers, false},
		{"unknown role has nothing", Role("ghost"), CapListUsers, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.role.Can(tt.cap))
		})
	}
}

func TestRole_Known(t *testing.T) {
	t.Parallel()

	assert.True(t, RoleAdmin.Known())
	assert.True(t, RoleUser.Known())
	assert.False(t, Role("ghost").Known())
}
