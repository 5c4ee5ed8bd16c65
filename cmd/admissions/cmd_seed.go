package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/admissions/internal/config"
	"github.com/jask/admissions/internal/database"
	"github.com/jask/admissions/internal/dataset"
	"github.com/jask/admissions/internal/roster"
)

func (c *cli) newSeedCmd() *cobra.Command {
	var dbPath, from string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create a SQLite roster database",
		Long: `Applies the schema migrations to --db and loads the built-in sample, or the
YAML roster given with --from. A database that already holds candidates is
left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cands := roster.Sample()
			if from != "" {
				var err error
				cands, err = dataset.Load(ctx, dataset.YAMLFile{Path: from}, c.logger)
				if err != nil {
					return err
				}
			}
			if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
				return fmt.Errorf("mkdir db dir: %w", err)
			}
			if err := database.RunMigrations(dbPath); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			db, err := database.Open(dbPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			n, err := database.SeedRoster(ctx, db, cands)
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			c.logger.Info("roster seeded", zap.String("db", dbPath), zap.Int("candidates", n))
			if n == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already holds a roster, nothing to do\n", dbPath)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d candidates into %s\n", n, dbPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path")
	cmd.Flags().StringVar(&from, "from", "", "YAML roster to load instead of the sample")
	_ = cmd.MarkFlagRequired("db")
	return cmd
}

func (c *cli) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
		// config commands must work even when the current file is invalid
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := config.ResolvePath(c.configPath)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("stat config: %w", err)
			}
			if err := config.Save(path, config.Defaults()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	cmd.AddCommand(initCmd)
	return cmd
}
