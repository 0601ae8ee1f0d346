// Package custom holds site extensions registered through the global registries.
package custom

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"supplysense/api"
	"supplysense/cmd"
	"supplysense/core/events"
	"supplysense/cron"
	gqlregistry "supplysense/graphql/registry"
	"supplysense/service/balancing"
)

type substitutesArgs struct {
	Item string `mapstructure:"item"`
}

// Substitutes lists the known replacements for item.
func Substitutes(item string) []string {
	item = strings.TrimSpace(item)
	for name, alt := range balancing.DefaultSubstitutions {
		if strings.EqualFold(name, item) {
			return alt
		}
	}
	return []string{}
}

func init() {
	// GraphQL extensions
	gqlregistry.Register("ping", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return map[string]string{"pong": "ok"}, nil
	})
	gqlregistry.Register("substitutes", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		var in substitutesArgs
		if err := gqlregistry.DecodeArgs(args, &in); err != nil {
			return nil, err
		}
		if in.Item == "" {
			return nil, fmt.Errorf("substitutes: item required")
		}
		return map[string]interface{}{"item": in.Item, "substitutes": Substitutes(in.Item)}, nil
	})

	// CLI command
	cmd.Register(&cobra.Command{
		Use:   "balance:substitutes [item]",
		Short: "List substitute products for an item",
		Args:  cobra.ExactArgs(1),
		Run: func(c *cobra.Command, args []string) {
			alt := Substitutes(args[0])
			if len(alt) == 0 {
				fmt.Fprintf(c.OutOrStdout(), "No substitutes known for %s\n", args[0])
				return
			}
			fmt.Fprintf(c.OutOrStdout(), "%s: %s\n", args[0], strings.Join(alt, ", "))
		},
	})

	// Cron job
	cron.Register("eventdigest", "@every 15m", func(args ...string) {
		recent := events.Default().Recent(0)
		counts := map[string]int{}
		for _, e := range recent {
			counts[e.Type]++
		}
		log.Printf("event digest: %d recent events %v", len(recent), counts)
	})

	// HTTP routes
	api.RegisterGET("/custom/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"pong": "ok"})
	})
	api.RegisterGET("/custom/substitutes/:item", func(c echo.Context) error {
		item := c.Param("item")
		return c.JSON(http.StatusOK, echo.Map{"item": item, "substitutes": Substitutes(item)})
	})
}
