package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"supplysense/config"
	"supplysense/core/events"
)

var eventsListenCmd = &cobra.Command{
	Use:   "events:listen",
	Short: "Print supply events published on the Redis channel",
	Run: func(cmd *cobra.Command, args []string) {
		config.InitRedis()
		if config.RedisClient == nil {
			fmt.Println("REDIS_ADDR not set, nothing to listen to.")
			os.Exit(1)
		}
		events.Init(config.RedisClient)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		fmt.Printf("Listening on %s. Press Ctrl+C to exit.\n", events.Channel)
		enc := json.NewEncoder(cmd.OutOrStdout())
		err := events.Default().Subscribe(ctx, func(e events.Event) {
			_ = enc.Encode(e)
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			fmt.Printf("Subscribe failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(eventsListenCmd)
}
