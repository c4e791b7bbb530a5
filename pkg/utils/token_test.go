package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	userID := uuid.New()

	token, expiresAt, err := GenerateToken(userID, "customer", "secret", 24)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, time.Minute)

	claims, err := ParseToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "customer", claims.Role)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, _, err := GenerateToken(uuid.New(), "customer", "secret", 24)
	require.NoError(t, err)

	_, err = ParseToken(token, "other-secret")
	assert.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, CheckPasswordHash("s3cret-password", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestGenerateBarcode(t *testing.T) {
	barcode := GenerateBarcode()
	assert.Regexp(t, regexp.MustCompile(`^[0-9A-F]{32}$`), barcode)
	assert.NotEqual(t, barcode, GenerateBarcode())
}

func TestGenerateMerchantTransactionID(t *testing.T) {
	id := GenerateMerchantTransactionID()
	assert.Regexp(t, regexp.MustCompile(`^WASH-\d{8}-\d{6}-\d{4}$`), id)
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 5, ParseInt("5", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("abc", 1))
	assert.Equal(t, 10, ParseInt("-3", 10))
}
