package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"depot-planner/core/session"
	"depot-planner/feature/depot"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var depotResetYes bool

// depotCmd is the parent command for depot operations.
var depotCmd = &cobra.Command{
	Use:   "depot",
	Short: "Inspect and edit the depot of the configured session",
	Long: `Operate on one depot using the configured backends.
The owner is resolved from SESSION_TOKEN; without it the local guest depot is used.`,
}

var depotShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the depot as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDepot(true, func(ctx context.Context, rt *runtime, s *depot.Store) error {
			return printJSON(map[string]interface{}{
				"depot":               s.Depot().Records(),
				"has_unsaved_changes": s.HasUnsavedChanges(),
			})
		})
	},
}

var depotPutCmd = &cobra.Command{
	Use:   "put material=amount [material=amount...]",
	Short: "Set stock values and sync them immediately",
	Example: `  depot put 30012=12 30013=0
  depot put "mtl_sl_g2= 40"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := parseAssignments(args)
		if err != nil {
			return err
		}
		return withDepot(true, func(ctx context.Context, rt *runtime, s *depot.Store) error {
			changed, err := s.Put(ctx, items, true)
			if err != nil {
				return err
			}
			if !changed {
				rt.log.Info("Nothing changed")
				return nil
			}
			rt.log.Info("Depot updated", zap.Int("items", len(items)))
			return nil
		})
	},
}

var depotResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Set every stock to zero and push the zeroed depot",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDepot(true, func(ctx context.Context, rt *runtime, s *depot.Store) error {
			rt.log.Warn("Reset sets every material to 0", zap.Int("materials", len(s.Depot())))
			if !confirmDestructiveAction(depotResetYes) {
				rt.log.Warn("Operation cancelled by user. No changes were made.")
				return nil
			}
			if err := s.Reset(ctx); err != nil {
				return err
			}
			rt.log.Info("Depot reset")
			return nil
		})
	},
}

var depotSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push the local depot snapshot to the remote table",
	Long: `Upserts every record of the local snapshot for the session user.
Use it after editing as a guest to carry the depot into an account.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDepot(false, func(ctx context.Context, rt *runtime, s *depot.Store) error {
			records := s.Depot().Records()
			if err := s.SyncNow(ctx, records); err != nil {
				return err
			}
			rt.log.Info("Local depot pushed", zap.Int("records", len(records)))
			return nil
		})
	},
}

func init() {
	depotResetCmd.Flags().BoolVar(&depotResetYes, "yes", false, "Auto-confirm the reset (non-interactive)")

	depotCmd.AddCommand(depotShowCmd, depotPutCmd, depotResetCmd, depotSyncCmd)
	RootCmd.AddCommand(depotCmd)
}

// withDepot opens the depot of the CLI session, optionally bootstraps it
// from the remote table, runs fn and closes the store.
func withDepot(bootstrap bool, fn func(ctx context.Context, rt *runtime, s *depot.Store) error) error {
	ctx := context.Background()

	rt, err := newRuntime(false)
	if err != nil {
		return err
	}
	defer rt.close()

	identity := session.FromConfig(rt.cfg.Session)
	userID, err := identity.UserID(ctx)
	if err != nil {
		return err
	}

	s, err := depot.New(ctx, depot.Options{
		Remote:      rt.depotRemote(),
		Identity:    identity,
		Local:       rt.local,
		LocalKey:    depot.LocalKeyFor(rt.cfg.Depot.LocalKey, userID),
		Catalog:     rt.catalog,
		Debounce:    rt.cfg.Depot.DebounceDelay(),
		SyncTimeout: rt.cfg.Depot.SyncTimeout(),
		Logger:      rt.log,
	})
	if err != nil {
		return err
	}
	defer s.Close()

	if bootstrap {
		if err := s.Bootstrap(ctx); err != nil {
			rt.log.Warn("Bootstrap failed, using the local snapshot", zap.Error(err))
		}
	}

	return fn(ctx, rt, s)
}

// parseAssignments turns material=amount arguments into records.
func parseAssignments(args []string) ([]depot.Record, error) {
	items := make([]depot.Record, 0, len(args))
	for _, arg := range args {
		id, raw, ok := strings.Cut(arg, "=")
		id = strings.TrimSpace(id)
		if !ok || id == "" {
			return nil, fmt.Errorf("expected material=amount, got %q", arg)
		}
		stock, ok := depot.ParseStock(raw)
		if !ok {
			return nil, fmt.Errorf("amount of %s is not a number: %q", id, raw)
		}
		items = append(items, depot.Record{MaterialID: id, Stock: stock})
	}
	return items, nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
