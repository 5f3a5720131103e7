package rules

import (
	"os"
	"path/filepath"
	"testing"

	"awiese/finance-master/internal/logging"
	"awiese/finance-master/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsEmptyRuleSet(t *testing.T) {
	logger := &logging.MockLogger{}
	store := NewStore(filepath.Join(t.TempDir(), "categories.yaml"), logger)

	ruleSet, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, ruleSet)
	assert.True(t, logger.HasMessage("Rules file not found, starting with an empty rule set"))
}

func TestSaveLoadPreservesOrder(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "categories.yaml"), &logging.MockLogger{})
	ruleSet := []models.CategoryRule{
		{Name: "Zebra", Keywords: []string{"zoo"}},
		{Name: "Groceries", Keywords: []string{"rema", "kiwi"}},
		{Name: "Housing", Keywords: []string{"husleie"}},
	}

	require.NoError(t, store.Save(ruleSet))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, ruleSet, loaded, "file order is the evaluation order and must round-trip")
}

func TestLoadRejectsRuleWithoutName(t *testing.T) {
	file := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(file, []byte("- keywords: [rema]\n"), 0o600))

	_, err := NewStore(file, &logging.MockLogger{}).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "without a name")
}

func TestLoadRejectsRuleWithoutKeywords(t *testing.T) {
	file := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(file, []byte("- name: Groceries\n  keywords: []\n"), 0o600))

	_, err := NewStore(file, &logging.MockLogger{}).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no keywords")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	file := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(file, []byte("{not a list"), 0o600))

	_, err := NewStore(file, &logging.MockLogger{}).Load()
	require.Error(t, err)
}

func TestSetUpdatesExistingRuleInPlace(t *testing.T) {
	ruleSet := []models.CategoryRule{
		{Name: "Groceries", Keywords: []string{"rema"}},
		{Name: "Housing", Keywords: []string{"husleie"}},
	}

	out := Set(ruleSet, "Groceries", []string{"rema", "kiwi"})
	require.Len(t, out, 2)
	assert.Equal(t, "Groceries", out[0].Name, "updating keywords must not move the rule")
	assert.Equal(t, []string{"rema", "kiwi"}, out[0].Keywords)
}

func TestSetAppendsNewRule(t *testing.T) {
	ruleSet := []models.CategoryRule{{Name: "Groceries", Keywords: []string{"rema"}}}

	out := Set(ruleSet, "Transport", []string{"ruter"})
	require.Len(t, out, 2)
	assert.Equal(t, "Transport", out[1].Name)
}

func TestRemovePreservesOrder(t *testing.T) {
	ruleSet := []models.CategoryRule{
		{Name: "A", Keywords: []string{"a"}},
		{Name: "B", Keywords: []string{"b"}},
		{Name: "C", Keywords: []string{"c"}},
	}

	out := Remove(ruleSet, "B")
	assert.Equal(t, []string{"A", "C"}, models.RuleNames(out))

	assert.Len(t, Remove(out, "unknown"), 2)
}
