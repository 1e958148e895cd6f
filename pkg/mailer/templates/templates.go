package templates

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	htmpl "html/template"
	"io"
	"reflect"
	"strings"
	"sync"
	texttpl "text/template"
	"time"
	"unicode/utf8"
)

//go:embed *.tmpl
var FS embed.FS

// Template names.
const (
	NewChirp = "new_chirp"
)

// EmailData is the data every email template renders from. Keys are kept
// as Go field names so the JSON map form works with the same templates.
type EmailData struct {
	Name           string `json:"Name"`
	RecipientEmail string `json:"RecipientEmail"`
	Type           string `json:"Type"`

	CompanyName    string `json:"CompanyName"`
	CompanyAddress string `json:"CompanyAddress"`
	AppName        string `json:"AppName"`

	LogoURL        string `json:"LogoURL"`
	SupportURL     string `json:"SupportURL"`
	PrivacyURL     string `json:"PrivacyURL"`
	UnsubscribeURL string `json:"UnsubscribeURL"`
	ActionURL      string `json:"ActionURL"`

	AuthorName string `json:"AuthorName"`
	Message    string `json:"Message"`
	ChirpID    int64  `json:"ChirpID"`

	Time   string    `json:"Time"`
	TimeAt time.Time `json:"TimeAt"`
}

// ToMap flattens d into the map carried by a queued email job.
func ToMap(d EmailData) map[string]any {
	b, _ := json.Marshal(d)
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	return m
}

// defaultFn is used as {{ .Value | default "Fallback" }}.
func defaultFn(fallback, value any) any {
	if s, ok := value.(string); ok {
		if strings.TrimSpace(s) == "" {
			return fallback
		}
		return s
	}
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || rv.IsZero() {
		return fallback
	}
	return value
}

// Limit shortens s to at most n runes, appending "..." when cut.
func Limit(n int, s string) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return strings.TrimRight(string(r[:n]), " ") + "..."
}

var funcs = map[string]any{
	"now":     func() time.Time { return time.Now().UTC() },
	"upper":   strings.ToUpper,
	"default": defaultFn,
	"limit":   Limit,
}

type executor interface {
	Execute(w io.Writer, data any) error
}

// part is one file of a template set: <name>.<suffix>.tmpl.
type part struct {
	suffix string
	html   bool
}

var parts = [...]part{{"subject", false}, {"text", false}, {"html", true}}

type set [len(parts)]executor

var cache sync.Map // name -> *set

func load(name string) (*set, error) {
	if s, ok := cache.Load(name); ok {
		return s.(*set), nil
	}
	var s set
	for i, p := range parts {
		file := name + "." + p.suffix + ".tmpl"
		var (
			tpl executor
			err error
		)
		if p.html {
			tpl, err = htmpl.New(file).Funcs(htmpl.FuncMap(funcs)).ParseFS(FS, file)
		} else {
			tpl, err = texttpl.New(file).Funcs(texttpl.FuncMap(funcs)).ParseFS(FS, file)
		}
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", file, err)
		}
		s[i] = tpl
	}
	actual, _ := cache.LoadOrStore(name, &s)
	return actual.(*set), nil
}

// Render produces subject, text and html for the template set name.
// Parsed sets are cached for the life of the process.
func Render(name string, data any) (subject, text, html string, err error) {
	s, err := load(name)
	if err != nil {
		return "", "", "", err
	}
	var out [len(parts)]string
	for i, tpl := range s {
		var buf bytes.Buffer
		if err := tpl.Execute(&buf, data); err != nil {
			return "", "", "", fmt.Errorf("exec %s.%s: %w", name, parts[i].suffix, err)
		}
		out[i] = buf.String()
	}
	return strings.TrimSpace(out[0]), out[1], out[2], nil
}
