package scoring

import (
	"testing"

	"github.com/NeuralTrust/RiskGate/pkg/domain/settings"
	"github.com/stretchr/testify/assert"
)

func TestClassifyIndicators_OnePerCategory(t *testing.T) {
	got := ClassifyIndicators("Scrapy/2.11 python-requests headless", 40, settings.DefaultIndicators())

	assert.Len(t, got, 3)
	assert.Equal(t, settings.IndicatorAutomatedTool, got[0].Type)
	assert.Equal(t, "python", got[0].Pattern)
	assert.Equal(t, settings.IndicatorBrowserAutomation, got[1].Type)
	assert.Equal(t, settings.IndicatorScrapingTool, got[2].Type)
	for _, ind := range got {
		assert.Equal(t, 90, ind.Confidence)
	}
}

func TestClassifyIndicators_HighBotScore(t *testing.T) {
	got := ClassifyIndicators("", 71, settings.DefaultIndicators())

	assert.Len(t, got, 1)
	assert.Equal(t, IndicatorHighBotScore, got[0].Type)
	assert.Equal(t, 85, got[0].Confidence)

	assert.Empty(t, ClassifyIndicators("", 70, settings.DefaultIndicators()))
}

func TestClassifyIndicators_BrowserHasNone(t *testing.T) {
	got := ClassifyIndicators("Mozilla/5.0 (Windows NT 10.0; Win64; x64) Firefox/126.0", 10, settings.DefaultIndicators())
	assert.Empty(t, got)
}
