package templates

import (
	"time"

	"github.com/oksasatya/chirper/config"
)

// Option pattern
type Option func(*EmailData)

func WithTime(t time.Time) Option {
	return func(d *EmailData) {
		utc := t.UTC()
		d.TimeAt = utc
		d.Time = utc.Format("02 January 2006, 15:04")
	}
}

func WithActionURL(url string) Option { return func(d *EmailData) { d.ActionURL = url } }

// NewBaseEmailData fills the common fields from config, then applies opts.
func NewBaseEmailData(cfg *config.Config, typ string, name, recipient string, opts ...Option) EmailData {
	d := EmailData{
		Name:           name,
		RecipientEmail: recipient,
		Type:           typ,
	}
	if cfg != nil {
		d.CompanyName = cfg.CompanyName
		d.CompanyAddress = cfg.CompanyAddress
		d.AppName = cfg.AppName
		d.LogoURL = cfg.LogoURL
		d.SupportURL = cfg.SupportURL
		d.PrivacyURL = cfg.PrivacyURL
		d.UnsubscribeURL = cfg.UnsubscribeURL
		d.ActionURL = cfg.DashboardURL()
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// NewChirpData is the payload of the "new_chirp" email sent to every user but the author.
func NewChirpData(cfg *config.Config, recipientName, recipientEmail, authorName string, chirpID int64, message string, opts ...Option) map[string]any {
	d := NewBaseEmailData(cfg, NewChirp, recipientName, recipientEmail, opts...)
	d.AuthorName = authorName
	d.ChirpID = chirpID
	d.Message = message
	return ToMap(d)
}
