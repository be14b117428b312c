package game

import (
	"io"
	"log/slog"

	"github.com/pkg/browser"
)

func init() {
	// Keep browser launcher chatter out of the JSON log stream
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// Redirect is the completion callback: it logs and optionally opens a URL.
type Redirect struct {
	url  string
	open func(url string) error // nil = log only
	done chan error             // receives the open result when set
}

// NewRedirect creates a completion callback for url.
// When launch is false or url is empty the callback only logs.
func NewRedirect(url string, launch bool) *Redirect {
	r := &Redirect{url: url}
	if launch && url != "" {
		r.open = browser.OpenURL
	}
	return r
}

// Fire runs the completion action. Opening the URL happens off the frame loop.
func (r *Redirect) Fire() {
	slog.Info("swarm collected", "url", r.url)
	if r.open == nil {
		return
	}

	go func() {
		err := r.open(r.url)
		if err != nil {
			slog.Error("failed to open url", "url", r.url, "error", err)
		}
		if r.done != nil {
			r.done <- err
		}
	}()
}
