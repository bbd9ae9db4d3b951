package echoapi

import (
	"net/http"
	"syscall"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/MartinVozmediano/skills-getting-started-with-github-copilot/core"
	"github.com/MartinVozmediano/skills-getting-started-with-github-copilot/core/activity"
	"github.com/MartinVozmediano/skills-getting-started-with-github-copilot/tests"
)

// failingService fails every call with err.
type failingService struct {
	err error
}

func (svc failingService) List() (activity.Catalog, error) { return nil, svc.err }
func (svc failingService) Get(string) (activity.Activity, error) {
	return activity.Activity{}, svc.err
}
func (svc failingService) Signup(activity.Signup) (activity.SignupResult, error) {
	return activity.SignupResult{}, svc.err
}

func setupFailing(t *testing.T, err error, debug bool) *Server {
	conf := testutil.NewConfig()
	conf.Debug = debug
	translator := core.NewTranslator()
	validate := validator.New()
	core.InitValidators(validate, translator)

	return NewServer(ServerDeps{
		Conf:        conf,
		Logger:      testutil.NewLogger(),
		ActivitySvc: failingService{err: err},
		Validate:    validate,
		Translator:  translator,
	})
}

func Test_appHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		debug    bool
		wantCode int
		wantData interface{}
	}{
		{
			name: "wrapped not found", err: errors.Wrap(activity.ErrNotFound, "looking up"),
			wantCode: http.StatusNotFound, wantData: httpDetail{Detail: "Activity not found"},
		},
		{
			name: "full", err: activity.ErrActivityFull,
			wantCode: http.StatusBadRequest, wantData: httpDetail{Detail: "Activity is full"},
		},
		{
			name: "validation error", err: core.NewValidationError(errors.New("bad input")),
			wantCode: http.StatusBadRequest, wantData: httpDetail{Detail: "bad input"},
		},
		{
			name: "validation field error", err: core.NewValidationError(nil, core.FieldError{Field: "email", Error: "invalid"}),
			wantCode: http.StatusBadRequest, wantData: httpDetail{Detail: map[string]string{"email": "invalid"}},
		},
		{
			name: "unexpected error", err: errors.New("catalog exploded"),
			wantCode: http.StatusInternalServerError, wantData: httpDetail{Detail: "Internal Server Error"},
		},
		{
			name: "unexpected error (debug)", err: errors.New("catalog exploded"), debug: true,
			wantCode: http.StatusInternalServerError, wantData: httpDetail{Detail: "listing activities: catalog exploded"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := setupFailing(t, tt.err, tt.debug)
			req, rec := newRequest(http.MethodGet, "/activities")
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, httpTest{wantCode: tt.wantCode, wantData: marshalObj(t, tt.wantData)}, rec)
		})
	}
}

func Test_appHTTPErrorHandler_shutdown(t *testing.T) {
	app := setupFailing(t, core.NewShutdownError("integrity issue"), false)

	req, rec := newRequest(http.MethodPost, signupPath("Chess Club", "a@mergington.edu"))
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	select {
	case sig := <-app.ShutdownSignal():
		assert.Equal(t, syscall.SIGTERM, sig)
	default:
		t.Fatal("shutdown was not signaled")
	}

	// signaling twice does not block
	app.SignalShutdown()
	app.SignalShutdown()
}

func Test_appHTTPErrorHandler_head(t *testing.T) {
	app := setupFailing(t, activity.ErrNotFound, false)

	req, rec := newRequest(http.MethodHead, "/lol")
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}
