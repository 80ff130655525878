package notifier

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"net/url"
	"strings"
	texttemplate "text/template"

	"egress/internal/domain/reminder"
	"egress/internal/usecase/shared"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

type messageData struct {
	Service   string
	Deadline  string
	Trigger   string
	CancelURL string
	ActionURL string
}

// Composer renders reminder messages. Links point back at this service:
// the cancel page for confirmations and the redirect endpoint for alerts.
type Composer struct {
	appURL string
	html   *htmltemplate.Template
	text   *texttemplate.Template
}

func NewComposer(appURL string) (*Composer, error) {
	html, err := htmltemplate.ParseFS(templateFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse html templates: %w", err)
	}
	text, err := texttemplate.ParseFS(templateFS, "templates/*.txt.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse text templates: %w", err)
	}
	return &Composer{
		appURL: strings.TrimRight(appURL, "/"),
		html:   html,
		text:   text,
	}, nil
}

func (c *Composer) Compose(intent shared.Intent, r *reminder.Reminder) (Message, error) {
	var subject string
	switch intent {
	case shared.IntentConfirmation:
		subject = "Egress Protocol Armed: " + r.ServiceName().String()
	case shared.IntentTriggerAlert:
		subject = "⚠️ ACT NOW: Cancel " + r.ServiceName().String() + " within 48 hours"
	default:
		return Message{}, fmt.Errorf("unknown message intent %q", intent)
	}

	data := messageData{
		Service:   r.ServiceName().String(),
		Deadline:  r.LocalizedDeadline(),
		Trigger:   r.LocalizedTrigger(),
		CancelURL: c.CancelURL(r.MagicHash()),
		ActionURL: c.appURL + "/api/redirect?service=" + url.QueryEscape(r.ServiceName().String()),
	}

	var html, text bytes.Buffer
	if err := c.html.ExecuteTemplate(&html, string(intent)+".html.tmpl", data); err != nil {
		return Message{}, fmt.Errorf("failed to render %s html: %w", intent, err)
	}
	if err := c.text.ExecuteTemplate(&text, string(intent)+".txt.tmpl", data); err != nil {
		return Message{}, fmt.Errorf("failed to render %s text: %w", intent, err)
	}

	return Message{
		To:      r.UserEmail().String(),
		Subject: subject,
		HTML:    html.String(),
		Text:    strings.TrimSpace(text.String()),
	}, nil
}

func (c *Composer) CancelURL(magicHash string) string {
	return c.appURL + "/api/cancel/" + magicHash
}
