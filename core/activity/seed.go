package activity

import "github.com/pkg/errors"

// SeedActivities returns the activities the catalog starts with.
func SeedActivities() []Activity {
	return []Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		{
			Name:            "Basketball Team",
			Description:     "Practice and compete in inter-school basketball games",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"james@mergington.edu", "lucas@mergington.edu"},
		},
		{
			Name:            "Swimming",
			Description:     "Improve swimming technique and train for swim meets",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"ava@mergington.edu", "mia@mergington.edu"},
		},
		{
			Name:            "Debate Club",
			Description:     "Develop public speaking and argumentation skills",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"ethan@mergington.edu", "charlotte@mergington.edu"},
		},
		{
			Name:            "Robotics Club",
			Description:     "Design, build and program robots for competitions",
			Schedule:        "Wednesdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 14,
			Participants:    []string{"liam@mergington.edu", "amelia@mergington.edu"},
		},
		{
			Name:            "Drama Club",
			Description:     "Act, direct and produce plays and performances",
			Schedule:        "Mondays and Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"harper@mergington.edu", "benjamin@mergington.edu"},
		},
		{
			Name:            "Art Studio",
			Description:     "Explore painting, drawing and sculpture",
			Schedule:        "Tuesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"ella@mergington.edu", "henry@mergington.edu"},
		},
	}
}

// Seed creates the seed activities in repo.
func Seed(repo Repository) error {
	for _, act := range SeedActivities() {
		if _, err := repo.CreateActivity(act); err != nil {
			return errors.Wrapf(err, "seeding %q", act.Name)
		}
	}
	return nil
}
