package inmemdb

import (
	"sort"

	"github.com/MartinVozmediano/skills-getting-started-with-github-copilot/core/activity"
)

type activityRepository struct {
	db *activityTable
}

var _ activity.Repository = (*activityRepository)(nil)

func NewActivityRepository(db *DB) activity.Repository {
	return &activityRepository{db: db.activity}
}

func (repo *activityRepository) CreateActivity(act activity.Activity) (activity.Activity, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.table[act.Name]; ok {
		return activity.Activity{}, activity.ErrNameExists
	}
	stored := act.Clone()
	repo.db.table[act.Name] = &stored
	return stored.Clone(), nil
}

func (repo *activityRepository) QueryAllActivities() ([]activity.Activity, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	acts := make([]activity.Activity, 0, len(repo.db.table))
	for _, act := range repo.db.table {
		acts = append(acts, act.Clone())
	}
	sort.Slice(acts, func(i, j int) bool { return acts[i].Name < acts[j].Name })
	return acts, nil
}

func (repo *activityRepository) GetActivityByName(name string) (activity.Activity, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if act, ok := repo.db.table[name]; ok {
		return act.Clone(), nil
	}
	return activity.Activity{}, activity.ErrNotFound
}

func (repo *activityRepository) AddParticipant(name, email string, enforceCapacity bool) (activity.Activity, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	act, ok := repo.db.table[name]
	if !ok {
		return activity.Activity{}, activity.ErrNotFound
	}
	if act.HasParticipant(email) {
		return activity.Activity{}, activity.ErrAlreadySignedUp
	}
	if enforceCapacity && act.IsFull() {
		return activity.Activity{}, activity.ErrActivityFull
	}
	act.Participants = append(act.Participants, email)
	return act.Clone(), nil
}
