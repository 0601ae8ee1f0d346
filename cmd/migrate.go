package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"supplysense/model"
)

var migrateCmd = &cobra.Command{
	Use:   "db:migrate",
	Short: "Create or update the SupplySense tables",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := openDB()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if err := model.Migrate(db); err != nil {
			fmt.Printf("Migration failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Migrated %d tables.\n", len(model.Models()))
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
