// Package classify assigns a category label to a task description.
//
// Two classifiers exist. Keyword is an ordered rule chain over fixed keyword
// sets and is the default for every add path; its fallback category is
// "personal". Oracle asks the completion oracle to pick from a wider category
// list and falls back to "general" whenever the oracle fails or answers
// outside the list. Both satisfy Classifier.
package classify

import (
	"context"
	"fmt"
	"strings"

	"github.com/JDCAG/me-and-you/internal/oracle"
)

// Categories assigned by the keyword chain.
const (
	CategoryWork      = "work"
	CategoryAdmin     = "admin"
	CategoryEmotional = "emotional"
	CategoryPersonal  = "personal"
	CategoryGeneral   = "general"
)

// Classifier maps a task description to a category label.
type Classifier interface {
	Classify(ctx context.Context, description string) string
}

// rule order is the tie-break: a description matching two sets gets the
// earlier category.
var keywordRules = []struct {
	category string
	keywords []string
}{
	{CategoryWork, []string{"work", "meeting", "project", "email", "report"}},
	{CategoryAdmin, []string{"bill", "appointment", "irs", "bank", "admin"}},
	{CategoryEmotional, []string{"meditation", "journal", "connect", "feelings"}},
}

// Keyword classifies by case-insensitive substring match against the fixed
// keyword sets. It never consults the oracle.
type Keyword struct{}

func (Keyword) Classify(_ context.Context, description string) string {
	return ByKeyword(description)
}

// ByKeyword is the rule chain itself, usable without a Classifier value.
func ByKeyword(description string) string {
	lower := strings.ToLower(description)
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return CategoryPersonal
}

// oracleCategories is the whitelist the oracle must answer from.
var oracleCategories = map[string]bool{
	"personal": true, "work": true, "admin": true, "emotional": true,
	"shopping": true, "health": true, "learning": true, "finance": true,
	"home": true, "other": true, "general": true,
}

const oraclePromptFormat = `Classify the following task description into one of these categories: personal, work, admin, emotional, shopping, health, learning, finance, home, other.
Task: %q
Category:`

// Oracle classifies via the completion oracle.
type Oracle struct {
	Client oracle.Client
}

func (o Oracle) Classify(ctx context.Context, description string) string {
	if o.Client == nil {
		return CategoryGeneral
	}
	reply, err := o.Client.Complete(ctx, fmt.Sprintf(oraclePromptFormat, description))
	if err != nil {
		return CategoryGeneral
	}
	category := strings.ToLower(strings.TrimSpace(reply))
	category = strings.Trim(category, `"'`)
	if !oracleCategories[category] {
		return CategoryGeneral
	}
	return category
}
