/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/acuestore/apiserver/config"
	"github.com/acuestore/apiserver/internal/db"
	"github.com/acuestore/apiserver/internal/seed"
	"github.com/acuestore/apiserver/pkg/logger"
	"github.com/spf13/cobra"
)

var seedForce bool

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the active backend from the built-in catalog",
	Long: `Populate the active backend from the built-in catalog. Without
--force the import only runs when the catalog is empty; with --force the
catalog is wiped and fully reimported.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()
		log := logger.New()

		st, err := db.Connect(cmd.Context(), cfg.Storage, log)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.EnsureSchema(cmd.Context()); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}

		count, err := seed.Import(cmd.Context(), st, seedForce, log)
		if err != nil {
			return err
		}
		fmt.Printf("imported %d apps\n", count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "wipe the catalog and reimport")
}
