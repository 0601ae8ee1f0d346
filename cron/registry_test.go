package cron

import (
	"testing"

	"supplysense/model/testdb"
)

func TestRegistry_Register_Jobs(t *testing.T) {
	var got []string
	Register("testregistryjob", "@every 1h", func(args ...string) {
		got = args
	})
	defer Unregister("testregistryjob")

	jobs := Jobs()
	j, ok := jobs["testregistryjob"]
	if !ok {
		t.Fatal("testregistryjob not in Jobs()")
	}
	if j.Schedule != "@every 1h" {
		t.Errorf("Schedule = %q, want @every 1h", j.Schedule)
	}
	j.Run("kavitha")
	if len(got) != 1 || got[0] != "kavitha" {
		t.Errorf("Run args = %v", got)
	}
}

func TestRegistry_Register_DuplicatePanics(t *testing.T) {
	Register("dupjob", "@hourly", func(...string) {})
	defer Unregister("dupjob")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on duplicate")
		}
	}()
	Register("dupjob", "@daily", func(...string) {})
}

func TestAllJobs_MergesRegistered(t *testing.T) {
	Register("extrajob", "@daily", func(...string) {})
	defer Unregister("extrajob")
	jobs, err := AllJobs(testdb.Open(t))
	if err != nil {
		t.Fatalf("AllJobs: %v", err)
	}
	for _, name := range []string{"extrajob", "stockoutalertjob", "balancewarmjob"} {
		if _, ok := jobs[name]; !ok {
			t.Errorf("%s missing from AllJobs", name)
		}
	}
}
