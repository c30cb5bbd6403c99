package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"skyward/opsportal/internal/config"
	"skyward/opsportal/internal/constants"
	"skyward/opsportal/internal/db"
	"skyward/opsportal/internal/db/repositories"
	"skyward/opsportal/internal/geo"
	"skyward/opsportal/internal/logging"
	"skyward/opsportal/internal/ranks"
	"skyward/opsportal/internal/services"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "opsctl",
		Short:         "Operator tools for the ops portal",
		SilenceUsage: true,
	}

	root.AddCommand(
		newDistanceCmd(),
		newRankCmd(),
		newMigrateCmd(),
		newRoutesCmd(),
		newKeysCmd(),
	)
	return root
}

func newDistanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "distance ORIGIN DESTINATION",
		Short:   "Great-circle distance and block time between two airports",
		Example: "  opsctl distance KJFK EGLL --speed 480",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			speed, _ := cmd.Flags().GetFloat64("speed")
			est := geo.Estimate(args[0], args[1], speed)
			if est == nil {
				cmd.Println("insufficient data")
				return nil
			}
			cmd.Printf("%s -> %s: %d nm, %.1f h at %.0f kts\n",
				est.Origin, est.Destination, est.DistanceNM, est.FlightTimeHours, est.CruiseSpeedKts)
			return nil
		},
	}
	cmd.Flags().Float64("speed", 0, "cruise speed in knots (default 450)")
	return cmd
}

func newRankCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rank HOURS",
		Short: "Rank tier and progress for a number of flight hours",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hours, err := strconv.ParseFloat(args[0], 64)
			if err != nil || hours < 0 || math.IsNaN(hours) || math.IsInf(hours, 0) {
				return fmt.Errorf("hours must be a non-negative number: %q", args[0])
			}
			p := ranks.Progress(hours)
			if p.Next == nil {
				cmd.Printf("%s (top rank)\n", p.Current.Name)
				return nil
			}
			cmd.Printf("%s, %.1f%% to %s (%.1f h remaining)\n", p.Current.Name, p.Percent, p.Next.Name, p.HoursRemaining)
			return nil
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), func(_ *sqlx.DB, orm *gorm.DB) error {
				if err := db.Migrate(cmd.Context(), orm); err != nil {
					return err
				}
				cmd.Println("✅ Schema migrated")
				return nil
			})
		},
	}
}

func newRoutesCmd() *cobra.Command {
	routesCmd := &cobra.Command{
		Use:   "routes",
		Short: "Route catalog commands",
	}

	routesCmd.AddCommand(&cobra.Command{
		Use:   "import FILE",
		Short: "Import a route CSV into the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			return withStore(cmd.Context(), func(_ *sqlx.DB, orm *gorm.DB) error {
				svc := services.NewRouteCatalogService(repositories.NewRouteRepository(orm), nil)
				result, err := svc.ImportCSV(cmd.Context(), f)
				if err != nil {
					return err
				}
				cmd.Printf("imported %d, skipped %d\n", result.Imported, result.Skipped)
				for _, rowErr := range result.Errors {
					cmd.Printf("  line %d: %s\n", rowErr.Line, rowErr.Message)
				}
				return nil
			})
		},
	})
	return routesCmd
}

func newKeysCmd() *cobra.Command {
	keysCmd := &cobra.Command{
		Use:   "keys",
		Short: "API key commands",
	}

	create := &cobra.Command{
		Use:   "create",
		Short: "Create an API key",
		Example: "  opsctl keys create --role admin\n" +
			"  opsctl keys create --pilot 7d0c7a52-4c5e-4f7e-9a44-2d0f2e0b8f1a",
		RunE: func(cmd *cobra.Command, args []string) error {
			pilotID, _ := cmd.Flags().GetString("pilot")
			role, _ := cmd.Flags().GetString("role")

			return withStore(cmd.Context(), func(conn *sqlx.DB, _ *gorm.DB) error {
				svc := services.NewAuthService(repositories.NewApiKeysRepo(conn), nil)
				key, err := svc.CreateAPIKey(cmd.Context(), pilotID, constants.Role(role))
				if err != nil {
					return err
				}
				cmd.Println("New API Key:", key)
				return nil
			})
		},
	}
	create.Flags().String("pilot", "", "pilot id the key acts as (empty for a service key)")
	create.Flags().String("role", string(constants.RolePilot), "role granted by the key (pilot|admin)")

	revoke := &cobra.Command{
		Use:   "revoke KEY",
		Short: "Disable an API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), func(conn *sqlx.DB, _ *gorm.DB) error {
				svc := services.NewAuthService(repositories.NewApiKeysRepo(conn), nil)
				if err := svc.RevokeAPIKey(cmd.Context(), args[0]); err != nil {
					return err
				}
				cmd.Println("Revoked", args[0])
				return nil
			})
		},
	}

	keysCmd.AddCommand(create, revoke)
	return keysCmd
}

// withStore connects with the server's configuration, migrates, and runs fn
func withStore(ctx context.Context, fn func(conn *sqlx.DB, orm *gorm.DB) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logging.Init(cfg.AppEnv); err != nil {
		return err
	}

	conn, err := db.Connect(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	orm, err := db.OpenORM(conn, false)
	if err != nil {
		return err
	}
	if err := db.Migrate(ctx, orm); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return fn(conn, orm)
}
