package cron

import (
	"fmt"
	"sync"

	"supplysense/core/registry"
)

// Job is a named unit of scheduled work. Run receives the CLI args when the
// job is started by hand and none when the scheduler fires it.
type Job struct {
	Schedule string
	Run      func(...string)
}

var mu sync.Mutex

func registered() map[string]Job {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryCron); ok && v != nil {
		return v.(map[string]Job)
	}
	return map[string]Job{}
}

// Register adds a job from an init() function. Duplicate names and
// registration after the scheduler has read the registry panic.
func Register(name, schedule string, run func(...string)) {
	mu.Lock()
	defer mu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryCron) {
		panic("cron/registry: locked (register only during init before StartCron)")
	}
	jobs := registered()
	if _, dup := jobs[name]; dup {
		panic(fmt.Sprintf("cron/registry: duplicate job %s", name))
	}
	jobs[name] = Job{Schedule: schedule, Run: run}
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryCron, jobs)
}

// Unregister removes a job and reopens the registry. Tests only.
func Unregister(name string) {
	mu.Lock()
	defer mu.Unlock()
	registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryCron)
	jobs := registered()
	delete(jobs, name)
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryCron, jobs)
}

// Jobs returns a copy of the registered jobs and locks the registry.
func Jobs() map[string]Job {
	mu.Lock()
	defer mu.Unlock()
	registry.GlobalRegistry.Lock(registry.KeyRegistryCron)
	out := make(map[string]Job, len(registered()))
	for k, v := range registered() {
		out[k] = v
	}
	return out
}
