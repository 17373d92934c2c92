package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Kyoto", Capitalize("kyoto"))
	assert.Equal(t, "Kyoto", Capitalize("KYOTO"))
	assert.Equal(t, "Émilie", Capitalize("émilie"))
	assert.Equal(t, "", Capitalize(""))
}

func TestTrimPunctuation(t *testing.T) {
	assert.Equal(t, "Osaka", TrimPunctuation("Osaka,"))
	assert.Equal(t, "Osaka", TrimPunctuation("(Osaka)."))
	assert.Equal(t, "Saint-Malo", TrimPunctuation("Saint-Malo!"))
	assert.Equal(t, "", TrimPunctuation("..."))
}

func TestIsDigits(t *testing.T) {
	assert.True(t, IsDigits("12"))
	assert.False(t, IsDigits(""))
	assert.False(t, IsDigits("3rd"))
	assert.False(t, IsDigits("٣"))
}
