// Package cost estimates OpenAI text-to-speech charges before a request is
// executed and formats amounts for the UI.
package cost

import (
	"fmt"
	"math"
	"os"
	"strconv"
)

// Published per-million-character rates in USD. tts-1 bills at half the
// tts-1-hd rate. Overridable via environment for future price changes.
var (
	StandardRatePerMillionChars = getEnvFloat("COST_RATE_STANDARD_PER_1M", 15.00)
	HDRatePerMillionChars       = getEnvFloat("COST_RATE_HD_PER_1M", 30.00)
)

func ratePerMillionChars(quality string) float64 {
	if quality == "hd" {
		return HDRatePerMillionChars
	}
	return StandardRatePerMillionChars
}

// EstimateCost returns the USD cost of synthesizing charCount characters at
// the given quality tier, rounded to 4 decimal digits.
func EstimateCost(charCount int, quality string) float64 {
	amount := float64(charCount) / 1_000_000 * ratePerMillionChars(quality)
	return math.Round(amount*10000) / 10000
}

// EstimateWordsCost estimates from a word count, assuming 5 characters per
// word (English averages ~4.7; 5 errs on the safe side).
func EstimateWordsCost(words int, quality string) float64 {
	return EstimateCost(words*5, quality)
}

// CharactersPerDollar returns how many characters one dollar buys at the
// given quality tier.
func CharactersPerDollar(quality string) int {
	return int(1_000_000 / ratePerMillionChars(quality))
}

// FormatForDisplay renders an amount with 4 decimal places below one cent,
// otherwise 2, prefixed with the currency symbol.
func FormatForDisplay(amount float64) string {
	if amount < 0.01 {
		return fmt.Sprintf("$%.4f", amount)
	}
	return fmt.Sprintf("$%.2f", amount)
}

// WarningMessage returns a non-empty advisory when amount reaches the given
// threshold, otherwise an empty string. The threshold comes from the caller;
// no default lives here.
func WarningMessage(amount, threshold float64) string {
	if amount >= threshold {
		return fmt.Sprintf("High cost warning: this generation will cost approximately %s", FormatForDisplay(amount))
	}
	return ""
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
