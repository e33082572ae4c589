package settings

import (
	"context"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

const (
	IndicatorAutomatedTool     = "automated_tool"
	IndicatorBrowserAutomation = "browser_automation"
	IndicatorScrapingTool      = "scraping_tool"
	IndicatorTestingTool       = "testing_tool"
)

// Limits are the advisory per-IP request ceilings.
type Limits struct {
	PerMinute int64 `json:"per_minute" mapstructure:"per_minute"`
	PerHour   int64 `json:"per_hour" mapstructure:"per_hour"`
	PerDay    int64 `json:"per_day" mapstructure:"per_day"`
}

// Settings are the administrator controlled knobs of the risk engine.
type Settings struct {
	BotScoreThreshold    int                 `json:"bot_score_threshold" mapstructure:"bot_score_threshold"`
	SuspiciousThreshold  int                 `json:"suspicious_threshold" mapstructure:"suspicious_threshold"`
	AlertThreshold       int                 `json:"alert_threshold" mapstructure:"alert_threshold"`
	AutoBanEnabled       bool                `json:"auto_ban_enabled" mapstructure:"auto_ban_enabled"`
	AutoRateLimitEnabled bool                `json:"auto_rate_limit_enabled" mapstructure:"auto_rate_limit_enabled"`
	Signatures           []string            `json:"signatures" mapstructure:"signatures"`
	Indicators           map[string][]string `json:"indicators" mapstructure:"indicators"`
	Limits               Limits              `json:"limits" mapstructure:"limits"`
}

// AutoEnforce reports whether advisory rate ceilings turn into refusals.
func (s Settings) AutoEnforce() bool {
	return s.AutoRateLimitEnabled
}

func DefaultLimits() Limits {
	return Limits{PerMinute: 60, PerHour: 1000, PerDay: 10000}
}

func DefaultSignatures() []string {
	return []string{
		"bot", "crawler", "spider", "scraper",
		"curl", "wget", "python", "requests", "java/", "go-http-client", "httpclient", "okhttp", "node-fetch", "axios",
		"selenium", "webdriver", "phantomjs", "headless", "puppeteer", "playwright",
		"scrapy", "postman", "insomnia", "jmeter",
	}
}

func DefaultIndicators() map[string][]string {
	return map[string][]string{
		IndicatorAutomatedTool:     {"curl", "wget", "python", "requests", "go-http-client", "httpclient", "okhttp", "node-fetch", "axios", "java/"},
		IndicatorBrowserAutomation: {"selenium", "webdriver", "phantomjs", "headless", "puppeteer", "playwright"},
		IndicatorScrapingTool:      {"scrapy", "crawler", "spider", "scraper", "bot"},
		IndicatorTestingTool:       {"postman", "insomnia", "jmeter", "k6/"},
	}
}

func Defaults() Settings {
	return Settings{
		BotScoreThreshold:    75,
		SuspiciousThreshold:  50,
		AlertThreshold:       60,
		AutoBanEnabled:       false,
		AutoRateLimitEnabled: false,
		Signatures:           DefaultSignatures(),
		Indicators:           DefaultIndicators(),
		Limits:               DefaultLimits(),
	}
}

// Decode converts a loosely typed settings blob into Settings. Any key that is
// missing, of the wrong type or out of range keeps its default; the names of
// the rejected keys are returned so callers can report them.
func Decode(raw map[string]interface{}) (Settings, []string) {
	return DecodeWith(Defaults(), raw)
}

// DecodeWith is Decode with base in place of the built-in defaults.
func DecodeWith(base Settings, raw map[string]interface{}) (Settings, []string) {
	s := base.Clone()
	if raw == nil {
		return s, nil
	}
	var rejected []string
	reject := func(key string) { rejected = append(rejected, key) }

	if !decodeThreshold(raw, "bot_score_threshold", &s.BotScoreThreshold) {
		reject("bot_score_threshold")
	}
	if !decodeThreshold(raw, "suspicious_threshold", &s.SuspiciousThreshold) {
		reject("suspicious_threshold")
	}
	if !decodeThreshold(raw, "alert_threshold", &s.AlertThreshold) {
		reject("alert_threshold")
	}
	if !decodeField(raw, "auto_ban_enabled", &s.AutoBanEnabled) {
		reject("auto_ban_enabled")
	}
	if !decodeField(raw, "auto_rate_limit_enabled", &s.AutoRateLimitEnabled) {
		reject("auto_rate_limit_enabled")
	}

	var signatures []string
	if decodeField(raw, "signatures", &signatures) {
		if cleaned := clean(signatures); len(cleaned) > 0 {
			s.Signatures = cleaned
		} else if signatures != nil {
			reject("signatures")
		}
	} else {
		reject("signatures")
	}

	var indicators map[string][]string
	if decodeField(raw, "indicators", &indicators) {
		for category, patterns := range indicators {
			if _, known := s.Indicators[category]; !known {
				reject("indicators." + category)
				continue
			}
			if cleaned := clean(patterns); len(cleaned) > 0 {
				s.Indicators[category] = cleaned
			} else {
				reject("indicators." + category)
			}
		}
	} else {
		reject("indicators")
	}

	var limits map[string]interface{}
	if decodeField(raw, "limits", &limits) {
		if !decodeCeiling(limits, "per_minute", &s.Limits.PerMinute) {
			reject("limits.per_minute")
		}
		if !decodeCeiling(limits, "per_hour", &s.Limits.PerHour) {
			reject("limits.per_hour")
		}
		if !decodeCeiling(limits, "per_day", &s.Limits.PerDay) {
			reject("limits.per_day")
		}
	} else {
		reject("limits")
	}

	return s, rejected
}

func (s Settings) Clone() Settings {
	out := s
	out.Signatures = append([]string(nil), s.Signatures...)
	out.Indicators = make(map[string][]string, len(s.Indicators))
	for k, v := range s.Indicators {
		out.Indicators[k] = append([]string(nil), v...)
	}
	return out
}

// ToMap is the inverse of Decode.
func (s Settings) ToMap() (map[string]interface{}, error) {
	out := make(map[string]interface{})
	if err := mapstructure.Decode(s, &out); err != nil {
		return nil, fmt.Errorf("failed to encode settings: %w", err)
	}
	out["limits"] = map[string]interface{}{
		"per_minute": s.Limits.PerMinute,
		"per_hour":   s.Limits.PerHour,
		"per_day":    s.Limits.PerDay,
	}
	return out, nil
}

// decodeField returns false only when the key is present but cannot be decoded.
func decodeField[T any](raw map[string]interface{}, key string, dst *T) bool {
	v, ok := raw[key]
	if !ok || v == nil {
		return true
	}
	var out T
	if err := mapstructure.WeakDecode(v, &out); err != nil {
		return false
	}
	*dst = out
	return true
}

func decodeThreshold(raw map[string]interface{}, key string, dst *int) bool {
	current := *dst
	if !decodeField(raw, key, dst) {
		return false
	}
	if *dst < 0 || *dst > 100 {
		*dst = current
		return false
	}
	return true
}

func decodeCeiling(raw map[string]interface{}, key string, dst *int64) bool {
	current := *dst
	if !decodeField(raw, key, dst) {
		return false
	}
	if *dst <= 0 {
		*dst = current
		return false
	}
	return true
}

func clean(patterns []string) []string {
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=settings_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	Load(ctx context.Context) (map[string]interface{}, error)
	Store(ctx context.Context, raw map[string]interface{}) error
}

// Provider hands out the settings in force for the current request.
//
//go:generate mockery --name=Provider --dir=. --output=./mocks --filename=provider_mock.go --case=underscore --with-expecter
type Provider interface {
	Current(ctx context.Context) Settings
}

// Static is a Provider that always returns the same settings.
type Static Settings

func (s Static) Current(context.Context) Settings {
	return Settings(s)
}
