// Package classifier tags a complaint description with a category and a
// priority. Matching is plain case-insensitive substring search; there is no
// language model behind it and no failure mode.
package classifier

import (
	"strings"

	"github.com/swetha221234/smart-rural-connect/internal/domain"
)

// categoryRules are evaluated in order; the first match wins, so a
// description mentioning both water and road lands in Water Supply.
var categoryRules = []struct {
	keyword  string
	category domain.Category
}{
	{"water", domain.CategoryWaterSupply},
	{"road", domain.CategoryRoadIssue},
	{"electric", domain.CategoryElectricity},
	{"garbage", domain.CategorySanitation},
}

var urgentKeywords = []string{"urgent", "danger", "fire", "accident"}

// Classify maps a free-text description to (category, priority). It is pure
// and deterministic; the empty string classifies as General/Normal.
func Classify(description string) (domain.Category, domain.Priority) {
	text := strings.ToLower(description)

	category := domain.CategoryGeneral
	for _, rule := range categoryRules {
		if strings.Contains(text, rule.keyword) {
			category = rule.category
			break
		}
	}

	priority := domain.PriorityNormal
	for _, kw := range urgentKeywords {
		if strings.Contains(text, kw) {
			priority = domain.PriorityHigh
			break
		}
	}

	return category, priority
}
