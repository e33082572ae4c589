package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserAgent_Desktop(t *testing.T) {
	info := ParseUserAgent(
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
		"en-US,en;q=0.9",
	)

	require.NotNil(t, info)
	assert.Equal(t, "Computer", info.Device)
	assert.Contains(t, info.Browser, "Chrome")
	assert.Equal(t, "en-US", info.Locale)
	assert.False(t, info.Bot)
}

func TestParseUserAgent_Empty(t *testing.T) {
	assert.Nil(t, ParseUserAgent("", "en"))
	var info *UserAgentInfo
	assert.Nil(t, info.Fields())
}

func TestPrimaryLocale(t *testing.T) {
	assert.Equal(t, "", PrimaryLocale(""))
	assert.Equal(t, "fr-CH", PrimaryLocale("fr-CH, fr;q=0.9"))
	assert.Equal(t, "de", PrimaryLocale("de;q=0.8"))
}
