package services

import (
	"bytes"
	"context"
	"regexp"
	"text/template"

	"travellounge/internal/domain"
	"travellounge/internal/domain/models"
)

// Email templates use {{placeholder}} variables; a missing variable renders empty.
var placeholder = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

var templateKeywords = map[string]bool{
	"if": true, "else": true, "end": true, "range": true, "with": true, "define": true,
	"template": true, "block": true, "break": true, "continue": true, "nil": true,
}

// expandPlaceholders rewrites {{name}} to a map lookup, leaving template actions alone.
func expandPlaceholders(src string) string {
	return placeholder.ReplaceAllStringFunc(src, func(m string) string {
		name := placeholder.FindStringSubmatch(m)[1]
		if templateKeywords[name] {
			return m
		}
		return `{{index . "` + name + `"}}`
	})
}

type emailTemplate struct {
	subject *template.Template
	body    *template.Template
}

// RenderedEmail is the preview of a template with variables applied.
type RenderedEmail struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func parseTemplate(name, subject, body string) (emailTemplate, error) {
	var out emailTemplate
	var err error
	out.subject, err = template.New(name + ".subject").Parse(expandPlaceholders(subject))
	if err != nil {
		return out, domain.ValidationError{Field: "subject", Msg: "invalid template", Err: err}
	}
	out.body, err = template.New(name + ".body").Parse(expandPlaceholders(body))
	if err != nil {
		return out, domain.ValidationError{Field: "body", Msg: "invalid template", Err: err}
	}
	return out, nil
}

func (t emailTemplate) render(vars map[string]string) (RenderedEmail, error) {
	if vars == nil {
		vars = map[string]string{}
	}
	var subject, body bytes.Buffer
	if err := t.subject.Execute(&subject, vars); err != nil {
		return RenderedEmail{}, domain.ValidationError{Field: "subject", Msg: "render failed", Err: err}
	}
	if err := t.body.Execute(&body, vars); err != nil {
		return RenderedEmail{}, domain.ValidationError{Field: "body", Msg: "render failed", Err: err}
	}
	return RenderedEmail{Subject: subject.String(), Body: body.String()}, nil
}

// PreviewEmailTemplate renders a stored template with the given variables.
func PreviewEmailTemplate(ctx context.Context, svc ContentService[models.EmailTemplate], id int64, vars map[string]string) (RenderedEmail, error) {
	t, err := svc.Get(ctx, id)
	if err != nil {
		return RenderedEmail{}, err
	}
	parsed, err := parseTemplate(t.Slug, t.Subject, t.Body)
	if err != nil {
		return RenderedEmail{}, err
	}
	return parsed.render(vars)
}
