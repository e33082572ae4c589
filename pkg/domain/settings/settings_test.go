package settings_test

import (
	"testing"

	"github.com/NeuralTrust/RiskGate/pkg/domain/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	s := settings.Defaults()
	assert.Equal(t, 75, s.BotScoreThreshold)
	assert.Equal(t, 50, s.SuspiciousThreshold)
	assert.Equal(t, 60, s.AlertThreshold)
	assert.False(t, s.AutoBanEnabled)
	assert.False(t, s.AutoRateLimitEnabled)
	assert.False(t, s.AutoEnforce())
	assert.Len(t, s.Indicators, 4)
}

func TestDecode_NilUsesDefaults(t *testing.T) {
	s, rejected := settings.Decode(nil)
	assert.Equal(t, settings.Defaults(), s)
	assert.Empty(t, rejected)
}

func TestDecode_WeakTypes(t *testing.T) {
	s, rejected := settings.Decode(map[string]interface{}{
		"alert_threshold":         "70",
		"auto_rate_limit_enabled": "true",
		"signatures":              []interface{}{"curl", ""},
		"limits":                  map[string]interface{}{"per_minute": 10.0},
	})
	assert.Empty(t, rejected)
	assert.Equal(t, 70, s.AlertThreshold)
	assert.True(t, s.AutoRateLimitEnabled)
	assert.Equal(t, []string{"curl"}, s.Signatures)
	assert.Equal(t, int64(10), s.Limits.PerMinute)
	assert.Equal(t, settings.DefaultLimits().PerHour, s.Limits.PerHour)
}

func TestDecode_MalformedValuesFallBack(t *testing.T) {
	s, rejected := settings.Decode(map[string]interface{}{
		"bot_score_threshold":  "high",
		"suspicious_threshold": 250,
		"alert_threshold":      -1,
		"auto_ban_enabled":     map[string]interface{}{"x": 1},
		"signatures":           []interface{}{},
		"indicators":           map[string]interface{}{"unknown": []interface{}{"x"}},
		"limits":               map[string]interface{}{"per_hour": 0, "per_day": "lots"},
	})
	d := settings.Defaults()
	assert.Equal(t, d.BotScoreThreshold, s.BotScoreThreshold)
	assert.Equal(t, d.SuspiciousThreshold, s.SuspiciousThreshold)
	assert.Equal(t, d.AlertThreshold, s.AlertThreshold)
	assert.False(t, s.AutoBanEnabled)
	assert.Equal(t, d.Signatures, s.Signatures)
	assert.Equal(t, d.Indicators, s.Indicators)
	assert.Equal(t, d.Limits, s.Limits)
	assert.ElementsMatch(t, []string{
		"bot_score_threshold", "suspicious_threshold", "alert_threshold", "auto_ban_enabled",
		"signatures", "indicators.unknown", "limits.per_hour", "limits.per_day",
	}, rejected)
}

func TestDecode_IndicatorOverride(t *testing.T) {
	s, _ := settings.Decode(map[string]interface{}{
		"indicators": map[string]interface{}{
			settings.IndicatorTestingTool: []interface{}{"k6"},
		},
	})
	assert.Equal(t, []string{"k6"}, s.Indicators[settings.IndicatorTestingTool])
	assert.Equal(t, settings.DefaultIndicators()[settings.IndicatorScrapingTool], s.Indicators[settings.IndicatorScrapingTool])
}

func TestToMap_RoundTrip(t *testing.T) {
	in := settings.Defaults()
	in.AlertThreshold = 66
	in.Limits.PerDay = 42
	raw, err := in.ToMap()
	require.NoError(t, err)
	out, rejected := settings.Decode(raw)
	assert.Empty(t, rejected)
	assert.Equal(t, in, out)
}

func TestToMap_EncodesEveryKey(t *testing.T) {
	raw, err := settings.Defaults().ToMap()
	require.NoError(t, err)

	for _, key := range []string{
		"bot_score_threshold", "suspicious_threshold", "alert_threshold",
		"auto_ban_enabled", "auto_rate_limit_enabled",
		"signatures", "indicators", "limits",
	} {
		assert.Contains(t, raw, key)
	}
	assert.Equal(t, int64(60), raw["limits"].(map[string]interface{})["per_minute"])
}

func TestDecodeWith_FallsBackToBase(t *testing.T) {
	base := settings.Defaults()
	base.AlertThreshold = 65
	base.Limits.PerMinute = 30

	s, rejected := settings.DecodeWith(base, map[string]interface{}{
		"alert_threshold": "not-a-number",
		"indicators": map[string]interface{}{
			"testing_tool": []interface{}{"k6/"},
		},
	})

	assert.Equal(t, []string{"alert_threshold"}, rejected)
	assert.Equal(t, 65, s.AlertThreshold)
	assert.Equal(t, int64(30), s.Limits.PerMinute)
	assert.Equal(t, []string{"k6/"}, s.Indicators[settings.IndicatorTestingTool])
	assert.Equal(t, settings.DefaultIndicators()[settings.IndicatorTestingTool], base.Indicators[settings.IndicatorTestingTool])
}
