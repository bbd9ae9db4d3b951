package activity

import (
	"github.com/go-playground/validator/v10"

	"github.com/MartinVozmediano/skills-getting-started-with-github-copilot/core"
)

type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"` // in signup order
}

// HasParticipant reports whether email already signed up for the activity.
func (a *Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

func (a *Activity) IsFull() bool {
	return len(a.Participants) >= a.MaxParticipants
}

// Clone returns a deep copy of the activity.
func (a Activity) Clone() Activity {
	participants := make([]string, len(a.Participants))
	copy(participants, a.Participants)
	a.Participants = participants
	return a
}

// Catalog maps activity names to activities.
type Catalog map[string]Activity

func NewCatalog(activities []Activity) Catalog {
	cat := make(Catalog, len(activities))
	for _, act := range activities {
		cat[act.Name] = act
	}
	return cat
}

// Signup contains information needed to sign a student up for an activity.
type Signup struct {
	Activity string `param:"name" validate:"required"`
	Email    string `query:"email" validate:"required"`
}

func (s *Signup) Validate(validate *validator.Validate) error {
	s.Email = core.CleanString(s.Email)
	return validate.Struct(s)
}

type SignupResult struct {
	Message string `json:"message"`
}
