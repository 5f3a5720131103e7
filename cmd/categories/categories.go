// Package categories implements rule-set management: listing, editing and
// removing category rules while preserving their order.
package categories

import (
	"fmt"
	"strings"

	"awiese/finance-master/cmd/root"
	"awiese/finance-master/internal/rules"

	"github.com/spf13/cobra"
)

// Cmd is the categories command.
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage the category rule set",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories and their keywords in rule order",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := rules.NewStore(root.RulesPath(), root.Log)
		ruleSet, err := store.Load()
		if err != nil {
			return err
		}
		for _, rule := range ruleSet {
			fmt.Printf("%s: %s\n", rule.Name, strings.Join(rule.Keywords, ", "))
		}
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set <name> <keyword>[,<keyword>...]",
	Short: "Add a category or replace an existing category's keywords",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		var keywords []string
		for _, keyword := range strings.Split(args[1], ",") {
			if keyword = strings.TrimSpace(keyword); keyword != "" {
				keywords = append(keywords, keyword)
			}
		}
		if len(keywords) == 0 {
			return fmt.Errorf("category %q needs at least one keyword", name)
		}

		store := rules.NewStore(root.RulesPath(), root.Log)
		ruleSet, err := store.Load()
		if err != nil {
			return err
		}
		return store.Save(rules.Set(ruleSet, name, keywords))
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a category from the rule set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := rules.NewStore(root.RulesPath(), root.Log)
		ruleSet, err := store.Load()
		if err != nil {
			return err
		}
		return store.Save(rules.Remove(ruleSet, args[0]))
	},
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(setCmd)
	Cmd.AddCommand(removeCmd)
}
