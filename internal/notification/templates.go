package notification

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml
var defaultTemplates []byte

// Template names the provider email template and the SMS text of an event.
type Template struct {
	Email string `yaml:"email"`
	SMS   string `yaml:"sms"`
}

type templateFile struct {
	Events map[string]Template `yaml:"events"`
}

// Templates resolves events to email template names and renders SMS text.
type Templates struct {
	events map[string]Template
	sms    map[string]*template.Template
}

// LoadTemplates reads templates from path, or the embedded defaults when path is empty.
func LoadTemplates(path string) (*Templates, error) {
	if path == "" {
		return ParseTemplates(defaultTemplates)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read templates: %w", err)
	}
	return ParseTemplates(data)
}

// ParseTemplates decodes a YAML templates document.
func ParseTemplates(data []byte) (*Templates, error) {
	var file templateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode templates: %w", err)
	}
	if len(file.Events) == 0 {
		return nil, fmt.Errorf("templates: no events defined")
	}

	t := &Templates{
		events: make(map[string]Template, len(file.Events)),
		sms:    make(map[string]*template.Template, len(file.Events)),
	}
	for event, tpl := range file.Events {
		if strings.TrimSpace(tpl.Email) == "" {
			return nil, fmt.Errorf("templates: event %q has no email template", event)
		}
		sms, err := template.New(event).Option("missingkey=zero").Parse(tpl.SMS)
		if err != nil {
			return nil, fmt.Errorf("templates: event %q: %w", event, err)
		}
		t.events[event] = tpl
		t.sms[event] = sms
	}
	return t, nil
}

// Lookup returns the templates registered for event.
func (t *Templates) Lookup(event string) (Template, bool) {
	tpl, ok := t.events[event]
	return tpl, ok
}

// RenderSMS renders the SMS text of event with substitutions.
func (t *Templates) RenderSMS(event string, substitutions map[string]string) (string, error) {
	tpl, ok := t.sms[event]
	if !ok {
		return "", fmt.Errorf("templates: unknown event %q", event)
	}
	var b strings.Builder
	if err := tpl.Execute(&b, substitutions); err != nil {
		return "", fmt.Errorf("render sms %q: %w", event, err)
	}
	return b.String(), nil
}
