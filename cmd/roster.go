package cmd

import (
	"fmt"
	"strings"

	"depot-planner/core/config"
	"depot-planner/feature/roster"

	"github.com/spf13/cobra"
)

var (
	rosterFile    string
	rosterSearch  string
	rosterFilters []string
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Work with the operator roster",
}

var rosterFilterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Print the operators matching filters",
	Example: `  roster filter --where class=Guard --where elite=2
  roster filter --where mastery=0 --search "ch'en"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := rosterFile
		if path == "" {
			cfg, err := config.LoadConfig(".")
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			path = cfg.Server.RosterPath
		}

		values := make(map[string][]string)
		for _, w := range rosterFilters {
			cat, val, ok := strings.Cut(w, "=")
			if !ok {
				return fmt.Errorf("expected category=value, got %q", w)
			}
			values[cat] = append(values[cat], val)
		}
		f, err := roster.FromValues(values)
		if err != nil {
			return err
		}

		ops, err := roster.LoadFile(path)
		if err != nil {
			return err
		}
		return printJSON(roster.Apply(ops, f, rosterSearch))
	},
}

func init() {
	rosterFilterCmd.Flags().StringVar(&rosterFile, "file", "", "Roster JSON file (defaults to server.roster_path)")
	rosterFilterCmd.Flags().StringVar(&rosterSearch, "search", "", "Operator name search")
	rosterFilterCmd.Flags().StringArrayVar(&rosterFilters, "where", nil, "category=value, repeatable")

	rosterCmd.AddCommand(rosterFilterCmd)
	RootCmd.AddCommand(rosterCmd)
}
