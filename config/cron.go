package config

import "strings"

// CronSchedules maps built-in job names to their default schedule.
var CronSchedules = map[string]string{
	"stockoutalertjob": "@every 5m",
	"balancewarmjob":   "@every 1m",
	// Add more jobs here
}

// CronSchedule returns the schedule for a job; CRON_<NAME> overrides the default.
func CronSchedule(name string) string {
	return GetEnv("CRON_"+strings.ToUpper(name), CronSchedules[name])
}
