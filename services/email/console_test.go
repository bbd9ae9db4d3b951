package emailsvc

import (
	"bytes"
	"io"
	"log"
	"net/mail"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MartinVozmediano/skills-getting-started-with-github-copilot/assets"
	"github.com/MartinVozmediano/skills-getting-started-with-github-copilot/core"
	logsvc "github.com/MartinVozmediano/skills-getting-started-with-github-copilot/services/logger"
)

func newTestDeps(t *testing.T) (*core.Config, *core.EmailTemplates, core.Logger) {
	conf := &core.Config{
		TestMode:         true,
		AppName:          "Mergington",
		FrontendBaseURL:  "http://school.test",
		DefaultFromEmail: mail.Address{Name: "Activities", Address: "activities@mergington.edu"},
	}
	tmpls, err := core.ParseEmailTemplates(assets.FS, conf)
	require.NoError(t, err)

	logger := logsvc.NewRollbarLogger(log.New(io.Discard, "", 0), conf)
	logger.Enable(false)
	return conf, tmpls, logger
}

func signupMessage(to string) *core.EmailMessage {
	return &core.EmailMessage{
		To:           []mail.Address{{Address: to}},
		Subject:      "You signed up for Chess Club",
		TemplateName: "activity_signup",
		TemplateData: map[string]interface{}{
			"Email":    to,
			"Activity": "Chess Club",
			"Schedule": "Fridays, 3:30 PM - 5:00 PM",
		},
	}
}

func Test_consoleService_output(t *testing.T) {
	conf, tmpls, logger := newTestDeps(t)
	var buf bytes.Buffer
	svc := &consoleService{
		defaultFromEmail: conf.DefaultFromEmail,
		subjPrefix:       "[" + conf.AppName + "] ",
		tmpls:            tmpls,
		logger:           logger,
		out:              log.New(&buf, "", 0),
	}

	sent, err := svc.sendMessage(signupMessage("student@mergington.edu"))
	require.NoError(t, err)
	assert.True(t, sent)

	out := buf.String()
	assert.Contains(t, out, `From: "Activities" <activities@mergington.edu>`)
	assert.Contains(t, out, "Subject: [Mergington] You signed up for Chess Club")
	assert.Contains(t, out, "To: <student@mergington.edu>")
	assert.Contains(t, out, "Content-Type: text/plain; charset=utf-8")
	assert.Contains(t, out, "Content-Type: text/html; charset=utf-8")
	assert.Contains(t, out, "You are signed up for Chess Club.")
	assert.Contains(t, out, "http://school.test")
	assert.NotContains(t, out, "CC:")
}

func Test_consoleService_skipsEmptyMessages(t *testing.T) {
	conf, tmpls, logger := newTestDeps(t)
	svc := NewConsoleServiceMock(conf, tmpls, logger)

	svc.SendMessages(
		&core.EmailMessage{Subject: "no recipients", BodyStr: "hello"},
		&core.EmailMessage{To: []mail.Address{{Address: "a@mergington.edu"}}, Subject: "no content"},
		&core.EmailMessage{To: []mail.Address{{Address: "a@mergington.edu"}}, Subject: "unknown template", TemplateName: "lol"},
		&core.EmailMessage{To: []mail.Address{{Address: "a@mergington.edu"}}, Subject: "plain", BodyStr: "hello"},
	)

	sent := svc.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "plain", sent[0].Subject)
	assert.Equal(t, "hello", sent[0].TextContent)
	assert.Empty(t, sent[0].HTMLContent)
}

func Test_consoleServiceMock_rendersTemplates(t *testing.T) {
	conf, tmpls, logger := newTestDeps(t)
	svc := NewConsoleServiceMock(conf, tmpls, logger)

	svc.SendMessages(signupMessage("a@mergington.edu"), signupMessage("b@mergington.edu"))

	sent := svc.Sent()
	require.Len(t, sent, 2)
	assert.Contains(t, sent[0].TextContent, "Hello a@mergington.edu,")
	assert.Contains(t, sent[1].TextContent, "Hello b@mergington.edu,")
	assert.Contains(t, sent[1].HTMLContent, "<strong>Chess Club</strong>")
}

func Test_consoleServiceMock_missingTemplateData(t *testing.T) {
	conf, tmpls, logger := newTestDeps(t)
	svc := NewConsoleServiceMock(conf, tmpls, logger)

	msg := signupMessage("a@mergington.edu")
	msg.TemplateData = map[string]interface{}{"Email": "a@mergington.edu"}
	svc.SendMessages(msg)

	assert.Empty(t, svc.Sent())
}

func Test_sendgridService_prepare(t *testing.T) {
	conf, tmpls, logger := newTestDeps(t)
	svc, ok := NewSendgridService(conf, tmpls, logger).(*sendgridService)
	require.True(t, ok)

	msg := signupMessage("student@mergington.edu")
	msg.Cc = []mail.Address{{Name: "Coach", Address: "coach@mergington.edu"}}
	require.NoError(t, msg.Render(tmpls))

	m := svc.prepare(*msg)
	assert.Equal(t, "activities@mergington.edu", m.From.Address)
	require.Len(t, m.Personalizations, 1)
	p := m.Personalizations[0]
	assert.Equal(t, "[Mergington] You signed up for Chess Club", p.Subject)
	require.Len(t, p.To, 1)
	assert.Equal(t, "student@mergington.edu", p.To[0].Address)
	require.Len(t, p.CC, 1)
	assert.Equal(t, "Coach", p.CC[0].Name)
	require.Len(t, m.Content, 2)
	assert.Equal(t, "text/plain", m.Content[0].Type)
	assert.Equal(t, "text/html", m.Content[1].Type)
}
