package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"supplysense/service/balancing"
	"supplysense/service/fulfilment"
)

var (
	reportPersona string
	reportJSON    bool
	planItem      string
	planQty       int64
)

var balanceReportCmd = &cobra.Command{
	Use:   "balance:report",
	Short: "Print projected stock and the action bucket of every inventory row",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := openDB()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if err := printBalance(context.Background(), cmd.OutOrStdout(), db, reportPersona, reportJSON); err != nil {
			fmt.Printf("Balance failed: %v\n", err)
			os.Exit(1)
		}
	},
}

var fulfilmentPlanCmd = &cobra.Command{
	Use:   "fulfilment:plan",
	Short: "Allocate a quantity across own stock and the supply pool",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := openDB()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if err := printPlan(context.Background(), cmd.OutOrStdout(), db, planItem, planQty, reportJSON); err != nil {
			fmt.Printf("Plan failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func printBalance(ctx context.Context, out io.Writer, db *gorm.DB, persona string, asJSON bool) error {
	svc, err := balancing.NewService(db)
	if err != nil {
		return err
	}
	rep, err := svc.Compute(ctx, persona)
	if err != nil {
		return err
	}
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ITEM\tWAREHOUSE\tAVAILABLE\tDEMAND\tPROJECTED\tSAFETY\tACTION\tRECOMMENDATIONS")
	for _, r := range rep.Rows {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%s\t%s\n",
			r.Item, r.Warehouse, r.AvailableStock, r.ForecastDemand, r.ProjectedStock, r.Safety,
			r.Action, strings.Join(r.Recommendations, "; "))
	}
	return w.Flush()
}

func printPlan(ctx context.Context, out io.Writer, db *gorm.DB, item string, qty int64, asJSON bool) error {
	svc, err := fulfilment.NewService(db)
	if err != nil {
		return err
	}
	plan, err := svc.Plan(ctx, item, qty)
	if err != nil {
		return err
	}
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SOURCE\tQTY\tCONTACT")
	for _, a := range plan.Allocations {
		fmt.Fprintf(w, "%s\t%d\t%s\n", a.Source, a.Qty, a.Contact)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Requested %d %s, allocated %d, shortage %d\n", plan.Requested, plan.Item, plan.Allocated(), plan.Shortage)
	return nil
}

func init() {
	balanceReportCmd.Flags().StringVarP(&reportPersona, "persona", "p", "", "Planning persona (default workspace when empty)")
	balanceReportCmd.Flags().BoolVar(&reportJSON, "json", false, "Print JSON instead of a table")
	fulfilmentPlanCmd.Flags().StringVarP(&planItem, "item", "i", "", "Item to allocate (required)")
	fulfilmentPlanCmd.Flags().Int64VarP(&planQty, "qty", "q", 0, "Requested quantity")
	fulfilmentPlanCmd.Flags().BoolVar(&reportJSON, "json", false, "Print JSON instead of a table")
	fulfilmentPlanCmd.MarkFlagRequired("item")
	rootCmd.AddCommand(balanceReportCmd, fulfilmentPlanCmd)
}
