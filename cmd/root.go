// Package cmd is the SupplySense command line.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"supplysense/config"
)

var rootCmd = &cobra.Command{
	Use:   "supplysense",
	Short: "SupplySense supply-demand balancing tools",
}

// Execute attaches registered commands and runs the CLI.
func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func openDB() (*gorm.DB, error) {
	config.LoadAppConfig()
	db, err := config.NewDB()
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return db, nil
}
