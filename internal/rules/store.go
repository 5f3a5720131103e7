// Package rules persists the ordered category rule set. The file is a YAML
// list, not a map: list form preserves the rule order that drives tie-break
// behavior in the categorizer. The pipeline consumes the loaded rules as an
// immutable snapshot per run; editing happens through this store only.
package rules

import (
	"fmt"
	"os"
	"path/filepath"

	"awiese/finance-master/internal/logging"
	"awiese/finance-master/internal/models"

	"gopkg.in/yaml.v3"
)

// Store loads and saves the category rule set.
type Store struct {
	File   string
	logger logging.Logger
}

// NewStore creates a rule store backed by the given YAML file.
func NewStore(file string, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Store{
		File:   file,
		logger: logger,
	}
}

// Load reads the rule set in file order. A missing file yields an empty rule
// set, not an error, so a fresh installation starts with everything
// uncategorized.
func (s *Store) Load() ([]models.CategoryRule, error) {
	data, err := os.ReadFile(s.File)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Warn("Rules file not found, starting with an empty rule set",
				logging.Field{Key: logging.FieldFile, Value: s.File})
			return []models.CategoryRule{}, nil
		}
		return nil, fmt.Errorf("error reading rules file: %w", err)
	}

	var rules []models.CategoryRule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("error parsing rules file: %w", err)
	}

	for _, rule := range rules {
		if rule.Name == "" {
			return nil, fmt.Errorf("rules file %s contains a rule without a name", s.File)
		}
		if len(rule.Keywords) == 0 {
			return nil, fmt.Errorf("rule %q has no keywords", rule.Name)
		}
	}

	s.logger.Debug("Loaded category rules",
		logging.Field{Key: logging.FieldCount, Value: len(rules)},
		logging.Field{Key: logging.FieldFile, Value: s.File})
	return rules, nil
}

// Save writes the rule set back, keeping its order.
func (s *Store) Save(ruleSet []models.CategoryRule) error {
	data, err := yaml.Marshal(ruleSet)
	if err != nil {
		return fmt.Errorf("error marshaling rules: %w", err)
	}

	dir := filepath.Dir(s.File)
	if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	if err := os.WriteFile(s.File, data, models.PermissionConfigFile); err != nil {
		return fmt.Errorf("error writing rules file: %w", err)
	}

	s.logger.Debug("Saved category rules",
		logging.Field{Key: logging.FieldCount, Value: len(ruleSet)},
		logging.Field{Key: logging.FieldFile, Value: s.File})
	return nil
}

// Set updates the keywords of an existing category or appends a new rule at
// the end of the order.
func Set(ruleSet []models.CategoryRule, name string, keywords []string) []models.CategoryRule {
	for i, rule := range ruleSet {
		if rule.Name == name {
			ruleSet[i].Keywords = keywords
			return ruleSet
		}
	}
	return append(ruleSet, models.CategoryRule{Name: name, Keywords: keywords})
}

// Remove deletes a category from the rule set, preserving the order of the
// remaining rules.
func Remove(ruleSet []models.CategoryRule, name string) []models.CategoryRule {
	out := ruleSet[:0]
	for _, rule := range ruleSet {
		if rule.Name != name {
			out = append(out, rule)
		}
	}
	return out
}
