package mailer

import "errors"

var (
	ErrNoRecipient = errors.New("email job has no recipient")
	ErrNoContent   = errors.New("email job has neither template nor content")
)

// EmailJob is the JSON message queued for the email worker. It carries
// either Template with Data, or a ready Subject with Text and/or HTML.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}

// Validate reports whether the job can be rendered and sent.
func (j EmailJob) Validate() error {
	if j.To == "" {
		return ErrNoRecipient
	}
	if j.Template == "" && (j.Subject == "" || (j.Text == "" && j.HTML == "")) {
		return ErrNoContent
	}
	return nil
}
