package cron

import (
	"context"
	"log"
	"sort"
	"time"

	"gorm.io/gorm"

	"supplysense/config"
	"supplysense/service/actions"
	"supplysense/service/balancing"
	planningService "supplysense/service/planning"
)

const jobTimeout = 2 * time.Minute

// Personas returns every planning workspace the built-in jobs cover, sorted.
func Personas() []string {
	out := []string{planningService.DefaultPersona}
	for p := range planningService.Personas {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// BuiltinJobs binds the supply jobs to db. Schedules come from config.CronSchedule.
func BuiltinJobs(db *gorm.DB) (map[string]Job, error) {
	act, err := actions.NewService(db)
	if err != nil {
		return nil, err
	}
	bal, err := balancing.NewService(db)
	if err != nil {
		return nil, err
	}
	return map[string]Job{
		"stockoutalertjob": {
			Schedule: config.CronSchedule("stockoutalertjob"),
			Run: func(args ...string) {
				ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
				defer cancel()
				alerts, err := act.PublishStockouts(ctx, personaArg(args))
				if err != nil {
					log.Printf("stockoutalertjob: %v", err)
					return
				}
				log.Printf("stockoutalertjob: %d stockout alerts published", len(alerts))
			},
		},
		"balancewarmjob": {
			Schedule: config.CronSchedule("balancewarmjob"),
			Run: func(args ...string) {
				ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
				defer cancel()
				balancing.Invalidate(ctx)
				personas := Personas()
				if len(args) > 0 {
					personas = args
				}
				for _, p := range personas {
					if _, err := bal.Report(ctx, p); err != nil {
						log.Printf("balancewarmjob: persona %s: %v", p, err)
					}
				}
			},
		},
	}, nil
}

func personaArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return planningService.DefaultPersona
}
