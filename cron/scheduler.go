package cron

import (
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// AllJobs merges the built-in jobs with the ones registered from init().
func AllJobs(db *gorm.DB) (map[string]Job, error) {
	jobs, err := BuiltinJobs(db)
	if err != nil {
		return nil, err
	}
	for name, j := range Jobs() {
		if _, ok := jobs[name]; ok {
			log.Printf("cron: registered job %s shadows a built-in job", name)
		}
		jobs[name] = j
	}
	return jobs, nil
}

// StartCron schedules every job and starts the scheduler.
func StartCron(db *gorm.DB) (*cron.Cron, error) {
	jobs, err := AllJobs(db)
	if err != nil {
		return nil, err
	}
	c := cron.New()
	for name, j := range jobs {
		run := j.Run
		if _, err := c.AddFunc(j.Schedule, func() { run() }); err != nil {
			log.Fatalf("Failed to register job %s: %v", name, err)
		}
		log.Printf("cron: %s scheduled %s", name, j.Schedule)
	}
	c.Start()
	return c, nil
}
