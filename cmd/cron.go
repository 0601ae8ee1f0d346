package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"supplysense/config"
	"supplysense/core/events"
	"supplysense/cron"
)

var jobName string

var cronStartCmd = &cobra.Command{
	Use:   "cron:start [args...]",
	Short: "Start the cron scheduler or run a single job by name",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := openDB()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		config.InitRedis()
		fmt.Println(config.PingRedis())
		events.Init(config.RedisClient)

		if jobName != "" {
			jobs, err := cron.AllJobs(db)
			if err != nil {
				fmt.Printf("Failed to load jobs: %v\n", err)
				os.Exit(1)
			}
			j, ok := jobs[strings.ToLower(jobName)]
			if !ok {
				fmt.Printf("Unknown job: %s\n", jobName)
				os.Exit(1)
			}
			fmt.Printf("Running cron job: %s\n", jobName)
			j.Run(args...)
			return
		}

		fmt.Println("Starting cron scheduler...")
		c, err := cron.StartCron(db)
		if err != nil {
			fmt.Printf("Failed to start cron: %v\n", err)
			os.Exit(1)
		}
		defer c.Stop()
		fmt.Println("Cron scheduler started. Press Ctrl+C to exit.")
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
	},
}

func init() {
	cronStartCmd.Flags().StringVarP(&jobName, "job", "j", "", "Run a single cron job by name and exit")
	rootCmd.AddCommand(cronStartCmd)
}
