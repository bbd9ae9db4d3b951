package activity

import (
	"errors"
	"fmt"
	"net/mail"

	pkgerrors "github.com/pkg/errors"

	"github.com/MartinVozmediano/skills-getting-started-with-github-copilot/core"
)

var (
	// errors
	ErrNotFound        = errors.New("activity not found")
	ErrAlreadySignedUp = errors.New("student is already signed up for this activity")
	ErrActivityFull    = errors.New("activity is full")
	ErrNameExists      = errors.New("an activity with this name already exists")
)

// rejection reasons reported to Metrics
const (
	RejectNotFound        = "not_found"
	RejectAlreadySignedUp = "already_signed_up"
	RejectFull            = "full"
)

const signupTemplate = "activity_signup"

type (
	Repository interface {
		CreateActivity(act Activity) (Activity, error)
		// QueryAllActivities returns copies; mutating them does not affect the store.
		QueryAllActivities() ([]Activity, error)
		GetActivityByName(name string) (Activity, error)
		// AddParticipant appends email to the activity's participants as one atomic step.
		// Errors: ErrNotFound, ErrAlreadySignedUp and, when enforceCapacity is set, ErrActivityFull.
		AddParticipant(name, email string, enforceCapacity bool) (Activity, error)
	}

	// Metrics records signup outcomes.
	Metrics interface {
		SignupAccepted(act Activity)
		SignupRejected(reason string)
	}

	ServiceInterface interface {
		List() (Catalog, error)
		Get(name string) (Activity, error)
		Signup(su Signup) (SignupResult, error)
	}

	Service struct {
		repo            Repository
		mailSvc         core.EmailService
		metrics         Metrics
		logger          core.Logger
		enforceCapacity bool
		signupEmails    bool
	}
)

var _ ServiceInterface = (*Service)(nil)

func NewService(repo Repository, mailSvc core.EmailService, metrics Metrics, logger core.Logger, conf *core.Config) *Service {
	return &Service{
		repo:            repo,
		mailSvc:         mailSvc,
		metrics:         metrics,
		logger:          logger,
		enforceCapacity: conf.Activities.EnforceCapacity,
		signupEmails:    conf.Activities.SignupEmails,
	}
}

func (svc *Service) List() (Catalog, error) {
	acts, err := svc.repo.QueryAllActivities()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "querying activities")
	}
	return NewCatalog(acts), nil
}

func (svc *Service) Get(name string) (Activity, error) {
	return svc.repo.GetActivityByName(name)
}

// Signup adds su.Email to the participants of su.Activity.
// An unknown activity is checked before a duplicate email.
func (svc *Service) Signup(su Signup) (SignupResult, error) {
	act, err := svc.repo.AddParticipant(su.Activity, su.Email, svc.enforceCapacity)
	if err != nil {
		switch err {
		case ErrNotFound:
			svc.metrics.SignupRejected(RejectNotFound)
		case ErrAlreadySignedUp:
			svc.metrics.SignupRejected(RejectAlreadySignedUp)
		case ErrActivityFull:
			svc.metrics.SignupRejected(RejectFull)
		default:
			return SignupResult{}, pkgerrors.Wrap(err, "adding participant")
		}
		return SignupResult{}, err
	}

	svc.metrics.SignupAccepted(act)
	svc.logger.Info(fmt.Sprintf("signed up %s for %s", su.Email, act.Name), core.Participant{Email: su.Email, Activity: act.Name})

	if svc.signupEmails {
		svc.sendSignupEmail(act, su.Email)
	}

	return SignupResult{Message: fmt.Sprintf("Signed up %s for %s", su.Email, act.Name)}, nil
}

func (svc *Service) sendSignupEmail(act Activity, email string) {
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:           []mail.Address{{Address: email}},
		Subject:      "You signed up for " + act.Name,
		TemplateName: signupTemplate,
		TemplateData: map[string]interface{}{
			"Email":    email,
			"Activity": act.Name,
			"Schedule": act.Schedule,
		},
	})
}
