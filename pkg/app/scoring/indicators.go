package scoring

import (
	"strings"

	"github.com/NeuralTrust/RiskGate/pkg/domain/securityevent"
	"github.com/NeuralTrust/RiskGate/pkg/domain/settings"
)

const (
	IndicatorHighBotScore = "high_bot_score"

	categoryConfidence     = 90
	highBotScoreConfidence = 85
	highBotScoreThreshold  = 70
)

var categoryOrder = []string{
	settings.IndicatorAutomatedTool,
	settings.IndicatorBrowserAutomation,
	settings.IndicatorScrapingTool,
	settings.IndicatorTestingTool,
}

// ClassifyIndicators labels a user agent with the tool categories it matches,
// at most one indicator per category, plus high_bot_score when botScore is
// above 70. The list is diagnostic only.
func ClassifyIndicators(userAgent string, botScore int, patterns map[string][]string) []securityevent.BotIndicator {
	indicators := make([]securityevent.BotIndicator, 0, 2)
	ua := strings.ToLower(userAgent)
	if ua != "" {
		for _, category := range categoryOrder {
			for _, p := range patterns[category] {
				if p != "" && strings.Contains(ua, strings.ToLower(p)) {
					indicators = append(indicators, securityevent.BotIndicator{
						Type:       category,
						Pattern:    p,
						Confidence: categoryConfidence,
					})
					break
				}
			}
		}
	}
	if botScore > highBotScoreThreshold {
		indicators = append(indicators, securityevent.BotIndicator{
			Type:       IndicatorHighBotScore,
			Confidence: highBotScoreConfidence,
		})
	}
	return indicators
}
