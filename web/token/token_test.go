package token

import (
	"testing"
	"time"

	"bioanalytica/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func testUser() *model.User {
	return &model.User{Id: 7, Username: "ana"}
}

func TestMintAndVerify(t *testing.T) {
	tokenStr, err := Mint(testUser(), testSecret)
	require.NoError(t, err)

	claims, err := Verify(tokenStr, testSecret)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.Id)
	assert.Equal(t, "ana", claims.Username)
	assert.WithinDuration(t, time.Now().Add(TTL), claims.ExpiresAt.Time, time.Minute)
}

func TestVerifyFailures(t *testing.T) {
	valid, err := Mint(testUser(), testSecret)
	require.NoError(t, err)

	expired, err := MintWithTTL(testUser(), testSecret, -time.Minute)
	require.NoError(t, err)

	wrongKey, err := Mint(testUser(), []byte("another-secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.token"},
		{"expired", expired},
		{"wrong secret", wrongKey},
		{"tampered", valid[:len(valid)-2] + "xx"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Verify(tc.token, testSecret)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
