package inmemdb

import (
	"sync"

	"github.com/MartinVozmediano/skills-getting-started-with-github-copilot/core/activity"
)

type (
	DB struct {
		activity *activityTable
	}

	activityTable struct {
		table map[string]*activity.Activity
		mutex sync.RWMutex
	}
)

// Open returns an empty in-memory database. Each call returns an isolated instance.
func Open() *DB {
	return &DB{
		activity: &activityTable{table: make(map[string]*activity.Activity)},
	}
}
