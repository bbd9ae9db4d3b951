package testutil

import (
	"io"
	"log"
	"net/mail"
	"sync"
	"testing"
	"time"

	"github.com/MartinVozmediano/skills-getting-started-with-github-copilot/assets"
	"github.com/MartinVozmediano/skills-getting-started-with-github-copilot/core"
	"github.com/MartinVozmediano/skills-getting-started-with-github-copilot/core/activity"
	emailsvc "github.com/MartinVozmediano/skills-getting-started-with-github-copilot/services/email"
	logsvc "github.com/MartinVozmediano/skills-getting-started-with-github-copilot/services/logger"
	inmemdb "github.com/MartinVozmediano/skills-getting-started-with-github-copilot/storage/database/inmem"
)

// NewConfig returns a TEST configuration that does not depend on the environment.
func NewConfig() *core.Config {
	return &core.Config{
		Env:              "TEST",
		TestMode:         true,
		AppName:          "Mergington High School",
		Build:            "test",
		FrontendBaseURL:  "http://localhost:8000",
		DefaultFromEmail: mail.Address{Name: "Mergington Activities", Address: "activities@mergington.edu"},
		Server: core.ServerConfig{
			Addr:            ":0",
			Host:            "localhost",
			ShutdownTimeout: time.Second,
			DisableReqLogs:  true,
		},
		Activities: core.ActivitiesConfig{SignupEmails: true},
	}
}

// NewLogger returns a logger that discards everything.
func NewLogger() core.Logger {
	logger := logsvc.NewRollbarLogger(log.New(io.Discard, "", 0), NewConfig())
	logger.Enable(false)
	return logger
}

// NewActivityRepository returns an isolated catalog loaded with the seed activities.
func NewActivityRepository(t *testing.T) activity.Repository {
	repo := inmemdb.NewActivityRepository(inmemdb.Open())
	if err := activity.Seed(repo); err != nil {
		t.Fatalf("NewActivityRepository() failed: %v", err)
	}
	return repo
}

func CreateActivity(t *testing.T, repo activity.Repository, name string, maxParticipants int, participants ...string) activity.Activity {
	act, err := repo.CreateActivity(activity.Activity{
		Name:            name,
		Description:     name + " description",
		Schedule:        "Saturdays, 10:00 AM - 11:00 AM",
		MaxParticipants: maxParticipants,
		Participants:    participants,
	})
	if err != nil {
		t.Fatalf("CreateActivity() failed: %v", err)
	}
	return act
}

// NewMailService returns a synchronous email service that records sent messages.
func NewMailService(t *testing.T, conf *core.Config) *emailsvc.ConsoleServiceMock {
	tmpls, err := core.ParseEmailTemplates(assets.FS, conf)
	if err != nil {
		t.Fatalf("NewMailService() failed: %v", err)
	}
	return emailsvc.NewConsoleServiceMock(conf, tmpls, NewLogger())
}

// MetricsMock keeps every recorded signup outcome.
type MetricsMock struct {
	mu       sync.Mutex
	Accepted []activity.Activity
	Rejected []string
}

var _ activity.Metrics = (*MetricsMock)(nil)

func (m *MetricsMock) SignupAccepted(act activity.Activity) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Accepted = append(m.Accepted, act)
}

func (m *MetricsMock) SignupRejected(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Rejected = append(m.Rejected, reason)
}
