package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(7, "s3cret", time.Hour)
	require.NoError(t, err)

	uid, err := ParseUserID(token, "s3cret")
	require.NoError(t, err)
	assert.EqualValues(t, 7, uid)

	_, err = ParseUserID(token, "other")
	assert.Error(t, err)
}

func TestGenerateJWT_RequiresSecret(t *testing.T) {
	_, err := GenerateJWT(1, "", time.Hour)
	assert.Error(t, err)
}

func TestParseUserID_Rejects(t *testing.T) {
	expired, err := GenerateJWT(1, "k", -time.Minute)
	require.NoError(t, err)
	_, err = ParseUserID(expired, "k")
	assert.Error(t, err, "expired")

	noClaim, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("k"))
	require.NoError(t, err)
	_, err = ParseUserID(noClaim, "k")
	assert.Error(t, err, "missing userId")

	zero, err := GenerateJWT(0, "k", time.Hour)
	require.NoError(t, err)
	_, err = ParseUserID(zero, "k")
	assert.Error(t, err, "zero userId")

	_, err = ParseUserID("garbage", "k")
	assert.Error(t, err)
}
