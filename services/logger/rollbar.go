package logsvc

import (
	"log"

	"github.com/rollbar/rollbar-go"
	"github.com/rollbar/rollbar-go/errors"

	"github.com/MartinVozmediano/skills-getting-started-with-github-copilot/core"
)

// RollbarLogger reports every message to Rollbar and mirrors it to a std logger.
// Rollbar is configured once in NewRollbarLogger; logging never touches its global config.
type RollbarLogger struct {
	std *log.Logger
}

var _ core.Logger = (*RollbarLogger)(nil)

func NewRollbarLogger(std *log.Logger, conf *core.Config) *RollbarLogger {
	rollbar.SetToken(conf.RollbarToken)
	rollbar.SetEnvironment(conf.Env)
	rollbar.SetServerHost(conf.Server.Host)
	rollbar.SetCodeVersion(conf.Build)
	rollbar.SetStackTracer(errors.StackTracer)
	return &RollbarLogger{std: std}
}

// Enable toggles reporting to Rollbar. Messages are always printed to the std logger.
func (l RollbarLogger) Enable(enabled bool) {
	rollbar.SetEnabled(enabled)
}

func (l RollbarLogger) Debug(msg string, args ...interface{}) { l.log(rollbar.DEBUG, msg, args) }

func (l RollbarLogger) Info(msg string, args ...interface{}) { l.log(rollbar.INFO, msg, args) }

func (l RollbarLogger) Warn(msg string, args ...interface{}) { l.log(rollbar.WARN, msg, args) }

func (l RollbarLogger) Error(msg string, args ...interface{}) { l.log(rollbar.ERR, msg, args) }

func (l RollbarLogger) Fatal(msg string, args ...interface{}) {
	l.log(rollbar.CRIT, msg, args)
	rollbar.Wait()
	l.std.Fatal(msg)
}

func (l RollbarLogger) log(level, msg string, args []interface{}) {
	rollbar.Log(level, item(msg, args)...)

	l.std.Println(msg)
	for _, arg := range args {
		l.std.Printf("%+v\n", arg)
	}
}

// item turns logger args into rollbar.Log args.
// Rollbar keeps a single extras map per item, so maps and participants are merged into one.
func item(msg string, args []interface{}) []interface{} {
	out := []interface{}{msg}
	extras := make(map[string]interface{})
	var participants []map[string]interface{}

	for _, arg := range args {
		switch v := arg.(type) {
		case core.Participant:
			participants = append(participants, map[string]interface{}{
				"email":    v.Email,
				"activity": v.Activity,
			})
		case map[string]interface{}:
			for k, val := range v {
				extras[k] = val
			}
		default:
			out = append(out, arg)
		}
	}

	if len(participants) > 0 {
		extras["participants"] = participants
	}
	if len(extras) > 0 {
		out = append(out, extras)
	}
	return out
}
