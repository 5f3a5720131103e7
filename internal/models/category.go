package models

// CategoryRule is one ordered entry of the rule set: a category name and the
// case-insensitive keywords that claim a transaction for it. Rule order is
// the caller-supplied sequence and determines tie-break behavior.
type CategoryRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// RuleNames returns the category names of a rule set in rule order.
func RuleNames(rules []CategoryRule) []string {
	names := make([]string, len(rules))
	for i, rule := range rules {
		names[i] = rule.Name
	}
	return names
}

// HasRule reports whether the rule set contains a category with this name.
func HasRule(rules []CategoryRule, name string) bool {
	for _, rule := range rules {
		if rule.Name == name {
			return true
		}
	}
	return false
}
