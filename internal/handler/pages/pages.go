// Package pages renders the HTML responses of the link-driven endpoints
// (cancellation and service redirect). Users reach them from email, so they
// never see JSON.
package pages

import (
	"embed"
	"html/template"
	"net/url"
)

//go:embed templates/*.html
var files embed.FS

const (
	MessagePage      = "message.html"
	CancelledPage    = "cancelled.html"
	RedirectHelpPage = "redirect_help.html"
)

// Templates parses every page. The result is handed to gin.Engine.SetHTMLTemplate.
func Templates() (*template.Template, error) {
	return template.New("pages").ParseFS(files, "templates/*.html")
}

type Message struct {
	Title   string
	Heading string
	Body    string
	Error   bool
}

type Cancelled struct {
	Title   string
	Heading string
	Body    string
	Service string
}

type RedirectHelp struct {
	Title         string
	Service       string
	GoogleURL     string
	DuckDuckGoURL string
}

func NewRedirectHelp(service string) RedirectHelp {
	q := url.QueryEscape("cancel " + service + " subscription")
	return RedirectHelp{
		Title:         "Cancel " + service,
		Service:       service,
		GoogleURL:     "https://www.google.com/search?q=" + q,
		DuckDuckGoURL: "https://duckduckgo.com/?q=" + q,
	}
}

var (
	NotFound = Message{
		Title:   "Reminder Not Found",
		Heading: "Reminder Not Found",
		Body:    "This reminder has already been cancelled or does not exist.",
	}
	AlreadyCancelled = Message{
		Title:   "Already Cancelled",
		Heading: "Already Cancelled",
		Body:    "This reminder has already been cancelled.",
	}
	CancelFailed = Message{
		Title:   "Error",
		Heading: "Error",
		Body:    "Failed to cancel reminder. Please try again later.",
		Error:   true,
	}
	MissingService = Message{
		Title:   "Redirect",
		Heading: "Invalid Request",
		Body:    "Service name is required.",
	}
)

func NewCancelled(service string, deleted bool) Cancelled {
	if deleted {
		return Cancelled{
			Title:   "Reminder Deleted",
			Heading: "Deleted",
			Body:    "Reminder deleted successfully.",
			Service: service,
		}
	}
	return Cancelled{
		Title:   "Reminder Cancelled",
		Heading: "Cancelled",
		Body:    "Reminder cancelled successfully. You will not receive any further notifications.",
		Service: service,
	}
}
