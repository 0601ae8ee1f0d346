package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"supplysense/service/importer"
)

var (
	importFile    string
	importTable   string
	importBatch   int
	importCharset string
)

var importCmd = &cobra.Command{
	Use:   "data:import",
	Short: "Import orders, inventory, suppliers, capacity or supply_pool rows from CSV",
	Run: func(cmd *cobra.Command, args []string) {
		f, err := os.Open(importFile)
		if err != nil {
			fmt.Printf("Failed to open CSV: %v\n", err)
			return
		}
		defer f.Close()

		db, err := openDB()
		if err != nil {
			fmt.Println(err)
			return
		}
		if err := runImport(cmd.Context(), cmd.OutOrStdout(), db, f); err != nil {
			fmt.Printf("Import failed: %v\n", err)
		}
	},
}

func runImport(ctx context.Context, out io.Writer, db *gorm.DB, r io.Reader) error {
	if ctx == nil {
		ctx = context.Background()
	}
	res, err := importer.ImportCSV(ctx, db, r, importer.ImportOptions{
		Table:     importTable,
		BatchSize: importBatch,
		Charset:   importCharset,
	})
	if err != nil {
		return err
	}
	for _, w := range res.Warnings {
		fmt.Fprintf(out, "  [warn] %s\n", w)
	}
	fmt.Fprintf(out, `
=== Import Report ===
Table:          %s
CSV rows:       %d
Imported:       %d
Skipped:        %d
Total time:     %s
  - Processing: %s
  - DB write:   %s
=====================
`, res.Table, res.TotalRows, res.Imported, res.Skipped,
		res.TotalTime.Round(time.Millisecond),
		res.ProcessTime.Round(time.Millisecond),
		res.DBTime.Round(time.Millisecond))
	return nil
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "CSV file path (required)")
	importCmd.MarkFlagRequired("file")
	importCmd.Flags().StringVarP(&importTable, "table", "t", "", "Target table: "+strings.Join(importer.Tables(), ", "))
	importCmd.MarkFlagRequired("table")
	importCmd.Flags().IntVar(&importBatch, "batch-size", 500, "Batch size for DB operations")
	importCmd.Flags().StringVar(&importCharset, "charset", "", "Source encoding (windows-1252, iso-8859-1); default UTF-8")
	rootCmd.AddCommand(importCmd)
}
