package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productcatalog/models"
)

func TestFlashSigner_RoundTrip(t *testing.T) {
	signer := NewFlashSigner("test-key")

	token, err := signer.Encode(models.Flash{
		Error:  "",
		Errors: map[string][]string{"email": {"The email field is required."}},
		Old:    map[string]string{"name": "Jane"},
	})
	require.NoError(t, err)

	flash, err := signer.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, []string{"The email field is required."}, flash.Errors["email"])
	assert.Equal(t, "Jane", flash.Old["name"])
}

func TestFlashSigner_RejectsForeignKey(t *testing.T) {
	token, err := NewFlashSigner("one").Encode(models.Flash{Success: "ok"})
	require.NoError(t, err)

	_, err = NewFlashSigner("two").Decode(token)
	assert.Error(t, err)
}

func TestFlashSigner_RejectsExpired(t *testing.T) {
	signer := NewFlashSigner("test-key")
	issued := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	signer.now = func() time.Time { return issued }

	token, err := signer.Encode(models.Flash{Success: "Registration successful!"})
	require.NoError(t, err)

	signer.now = func() time.Time { return issued.Add(FlashTTL + time.Minute) }
	_, err = signer.Decode(token)
	assert.Error(t, err)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "electronics", Slugify("Electronics"))
	assert.Equal(t, "home-garden", Slugify("  Home & Garden "))
}

func TestParseDBDate(t *testing.T) {
	ts, err := ParseDBDate("2024-03-05 10:20:30")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05T10:20:30Z", FormatISO8601(ts))
	assert.Equal(t, "2024-03-05 10:20:30", FormatDateTimeForDB(ts))

	_, err = ParseDBDate("")
	assert.Error(t, err)
	_, err = ParseDBDate("yesterday")
	assert.Error(t, err)
}
