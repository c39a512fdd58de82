package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"depot-planner/core/reconcile"
	"depot-planner/core/session"
	"depot-planner/feature/depot"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for depot gc
	gcPurge   bool
	gcDryRun  bool
	gcYes     bool
	gcAllUser bool
	gcUser    string
	gcBatch   int
)

// depotGCCmd removes depot rows whose material left the item catalog.
var depotGCCmd = &cobra.Command{
	Use:   "gc",
	Short: "Report (and optionally purge) depot rows of unknown materials",
	Long: `Compares remote depot rows against the item catalog.

Reports rows whose material is no longer in the catalog.
Optionally purge them.

Examples:
  # Report only for the session user
  depot gc

  # Report for every user
  depot gc --all

  # Purge with interactive confirmation
  depot gc --all --purge

  # Purge with auto-confirm (non-interactive)
  depot gc --all --purge --yes`,
	RunE: runDepotGC,
}

func init() {
	depotGCCmd.Flags().BoolVar(&gcPurge, "purge", false, "Delete rows of unknown materials")
	depotGCCmd.Flags().BoolVar(&gcDryRun, "dry-run", false, "Force dry-run (no mutations even with --yes)")
	depotGCCmd.Flags().BoolVar(&gcYes, "yes", false, "Auto-confirm destructive actions (non-interactive)")
	depotGCCmd.Flags().BoolVar(&gcAllUser, "all", false, "Check every user with depot rows")
	depotGCCmd.Flags().StringVar(&gcUser, "user", "", "Check one user id instead of the session user")
	depotGCCmd.Flags().IntVar(&gcBatch, "batch", reconcile.DefaultBatchSize, "Rows deleted per statement")

	depotCmd.AddCommand(depotGCCmd)
}

func runDepotGC(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	rt, err := newRuntime(true)
	if err != nil {
		return err
	}
	defer rt.close()
	l := rt.log

	users, err := gcUsers(ctx, rt)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		l.Info("No users to check")
		return nil
	}

	cat, err := rt.catalog.Catalog(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	l.Info("Catalog loaded", zap.Int("items", cat.Len()))

	plans := make(map[string]*reconcile.Plan[depot.Record], len(users))
	total := 0
	for _, userID := range users {
		rows, err := rt.remote.Select(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to load depot of %s: %w", userID, err)
		}
		plan := reconcile.Build(rows, func(r depot.Record) string { return r.MaterialID }, cat.Has)
		printPlanReport(l.With(zap.String("user_id", userID)), plan)
		plans[userID] = plan
		total += len(plan.Actions)
	}

	if !gcPurge {
		l.Info("No actions requested. Use --purge to delete rows of unknown materials.")
		return nil
	}
	if gcDryRun {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}
	if total == 0 {
		l.Info("No actions required.")
		return nil
	}
	if !confirmDestructiveAction(gcYes) {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	opts := reconcile.Options{Confirmed: true, BatchSize: gcBatch}
	executed := 0
	for userID, plan := range plans {
		purger := reconcile.PurgerFunc(func(ctx context.Context, keys []string) error {
			return rt.remote.Delete(ctx, userID, keys)
		})
		n, err := reconcile.Apply(ctx, plan, purger, opts)
		executed += n
		if err != nil {
			return fmt.Errorf("failed to purge depot of %s: %w", userID, err)
		}
	}

	l.Info("Successfully executed actions", zap.Int("count", executed))
	return nil
}

func gcUsers(ctx context.Context, rt *runtime) ([]string, error) {
	switch {
	case gcAllUser:
		return rt.remote.Users(ctx)
	case gcUser != "":
		return []string{gcUser}, nil
	}
	userID, err := session.FromConfig(rt.cfg.Session).UserID(ctx)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, fmt.Errorf("no session configured, pass --user or --all")
	}
	return []string{userID}, nil
}

// printPlanReport logs a reconciliation plan.
func printPlanReport(l *zap.Logger, plan *reconcile.Plan[depot.Record]) {
	s := plan.Summary

	l.Info("Reconciliation report",
		zap.Int("total_rows", s.TotalItems),
		zap.Int("known", s.Known),
		zap.Int("orphaned", s.Orphaned),
	)

	if len(plan.Actions) == 0 {
		return
	}

	maxShow := 5
	if len(plan.Actions) < maxShow {
		maxShow = len(plan.Actions)
	}
	for _, action := range plan.Actions[:maxShow] {
		l.Info("Sample action",
			zap.String("type", string(action.Type)),
			zap.String("key", action.Key),
			zap.String("reason", action.Reason),
		)
	}
	if len(plan.Actions) > maxShow {
		l.Info("Additional actions not shown", zap.Int("count", len(plan.Actions)-maxShow))
	}
}

// confirmDestructiveAction prompts the user for confirmation unless yes is set.
func confirmDestructiveAction(yes bool) bool {
	if yes {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to confirm destructive actions: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
