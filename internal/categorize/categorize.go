// Package categorize assigns category labels from an ordered keyword rule set.
package categorize

import (
	"regexp"
	"strings"

	"awiese/finance-master/internal/logging"
	"awiese/finance-master/internal/models"
)

// Categorizer evaluates an ordered rule set against transaction descriptions.
type Categorizer struct {
	logger logging.Logger
}

// New creates a Categorizer.
func New(logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Categorizer{logger: logger}
}

// compileRule builds a case-insensitive whole-word disjunction over the
// rule's keywords. Keywords match as literal tokens only; `rent` does not
// hit `parent`. Boundaries are letter-based rather than \b so that
// alphanumeric merchant tags still match (`rema` hits `REMA1000`).
// Returns nil when the rule has no usable keywords.
func compileRule(rule models.CategoryRule) *regexp.Regexp {
	quoted := make([]string, 0, len(rule.Keywords))
	for _, keyword := range rule.Keywords {
		keyword = strings.TrimSpace(keyword)
		if keyword == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(keyword))
	}
	if len(quoted) == 0 {
		return nil
	}
	pattern, err := regexp.Compile(`(?i)(?:^|[^\p{L}])(?:` + strings.Join(quoted, "|") + `)(?:[^\p{L}]|$)`)
	if err != nil {
		return nil
	}
	return pattern
}

// Apply returns a copy of the transaction set with every transaction
// carrying a category. Transactions matching no rule stay Uncategorized.
//
// Rules are evaluated in the caller-supplied order against every
// transaction, and a later rule overwrites a category assigned by an earlier
// one: the last matching rule in iteration order wins. Category totals
// depend on this overwrite policy, so it must not be changed to a
// first-match gate without revisiting downstream expectations.
func (c *Categorizer) Apply(transactions []models.Transaction, ruleSet []models.CategoryRule) []models.Transaction {
	out := models.CloneAll(transactions)
	for i := range out {
		out[i].Category = models.CategoryUncategorized
	}

	for _, rule := range ruleSet {
		pattern := compileRule(rule)
		if pattern == nil {
			c.logger.Warn("Skipping rule without usable keywords",
				logging.Field{Key: logging.FieldRule, Value: rule.Name})
			continue
		}
		for i := range out {
			if pattern.MatchString(out[i].Description) {
				out[i].Category = rule.Name
			}
		}
	}

	matched := 0
	for i := range out {
		if out[i].Category != models.CategoryUncategorized {
			matched++
		}
	}
	c.logger.Debug("Categorized transactions",
		logging.Field{Key: logging.FieldCount, Value: len(out)},
		logging.Field{Key: "matched", Value: matched})

	return out
}
