package helpers

import (
	"fmt"
	"strings"

	"github.com/oksasatya/chirper/pkg/mailer"
	mailtpl "github.com/oksasatya/chirper/pkg/mailer/templates"
)

// EnsureRecipient fills the template recipient fields from job.To when missing.
func EnsureRecipient(job *mailer.EmailJob) {
	if job.Data == nil {
		job.Data = map[string]any{}
	}
	if v, ok := job.Data["RecipientEmail"]; !ok || fmt.Sprintf("%v", v) == "" {
		job.Data["RecipientEmail"] = job.To
	}
}

// RenderJob resolves subject, text and html for a queued job.
// Template jobs are rendered from the embedded templates; raw jobs pass through.
func RenderJob(job mailer.EmailJob) (subject, text, html string, err error) {
	if err := job.Validate(); err != nil {
		return "", "", "", fmt.Errorf("job for %q: %w", job.To, err)
	}
	if job.Template == "" {
		return job.Subject, job.Text, job.HTML, nil
	}
	subject, text, html, err = mailtpl.Render(strings.ToLower(job.Template), job.Data)
	if err != nil {
		return "", "", "", err
	}
	if job.Subject != "" {
		subject = job.Subject
	}
	return subject, text, html, nil
}
