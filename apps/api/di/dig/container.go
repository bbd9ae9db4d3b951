package dig_container

import (
	"log"
	"os"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/dig"

	"github.com/MartinVozmediano/skills-getting-started-with-github-copilot/assets"
	echoapi "github.com/MartinVozmediano/skills-getting-started-with-github-copilot/apps/api/echo"
	"github.com/MartinVozmediano/skills-getting-started-with-github-copilot/core"
	"github.com/MartinVozmediano/skills-getting-started-with-github-copilot/core/activity"
	emailsvc "github.com/MartinVozmediano/skills-getting-started-with-github-copilot/services/email"
	logsvc "github.com/MartinVozmediano/skills-getting-started-with-github-copilot/services/logger"
	metricsvc "github.com/MartinVozmediano/skills-getting-started-with-github-copilot/services/metrics"
	inmemdb "github.com/MartinVozmediano/skills-getting-started-with-github-copilot/storage/database/inmem"
)

func newLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug && conf.RollbarToken != "")
	return logger
}

// newActivityRepository opens the in-memory catalog and loads the seed activities.
func newActivityRepository() (activity.Repository, error) {
	repo := inmemdb.NewActivityRepository(inmemdb.Open())
	if err := activity.Seed(repo); err != nil {
		return nil, err
	}
	return repo, nil
}

func newEmailTemplates(conf *core.Config) (*core.EmailTemplates, error) {
	return core.ParseEmailTemplates(assets.FS, conf)
}

func newEmailService(conf *core.Config, tmpls *core.EmailTemplates, logger core.Logger) core.EmailService {
	if conf.Debug || conf.SendgridApiKey == "" {
		return emailsvc.NewConsoleService(conf, tmpls, logger)
	}
	return emailsvc.NewSendgridService(conf, tmpls, logger)
}

func newRegistry() (prometheus.Registerer, prometheus.Gatherer) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return reg, reg
}

func newMetrics(reg prometheus.Registerer, repo activity.Repository) (*metricsvc.PrometheusRecorder, error) {
	rec := metricsvc.NewPrometheusRecorder(reg)
	acts, err := repo.QueryAllActivities()
	if err != nil {
		return nil, errors.Wrap(err, "observing catalog")
	}
	rec.Observe(activity.NewCatalog(acts))
	return rec, nil
}

func newValidator(translator ut.Translator) *validator.Validate {
	validate := validator.New()
	core.InitValidators(validate, translator)
	return validate
}

func newServer(
	conf *core.Config,
	logger core.Logger,
	svc activity.ServiceInterface,
	validate *validator.Validate,
	translator ut.Translator,
	gatherer prometheus.Gatherer,
) *echoapi.Server {
	return echoapi.NewServer(echoapi.ServerDeps{
		Conf:        conf,
		Logger:      logger,
		ActivitySvc: svc,
		Validate:    validate,
		Translator:  translator,
		Gatherer:    gatherer,
	})
}

// New returns a new dependency injection dig.Container
func New() *dig.Container {
	c := dig.New()

	must(c.Provide(core.NewConfig))
	must(c.Provide(newLogger))
	must(c.Provide(newActivityRepository))
	must(c.Provide(newEmailTemplates))
	must(c.Provide(newEmailService))
	must(c.Provide(newRegistry))
	must(c.Provide(newMetrics, dig.As(new(activity.Metrics))))
	must(c.Provide(core.NewTranslator))
	must(c.Provide(newValidator))
	must(c.Provide(activity.NewService, dig.As(new(activity.ServiceInterface))))
	must(c.Provide(newServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
