package services

import (
	_ "embed"
	"fmt"
	"strings"
)

const (
	TemplateSummarizeCV = "summarize_cv"
	TemplateEvaluateFit = "evaluate_fit"
)

//go:embed prompts/summarize_cv.md
var summarizeCVTemplate string

//go:embed prompts/evaluate_fit.md
var evaluateFitTemplate string

type promptTemplate struct {
	text         string
	placeholders []string
}

// PromptFormatter renders the two fixed prompt templates. Placeholder markers
// have the form {{NAME}}.
type PromptFormatter struct {
	templates map[string]promptTemplate
}

func NewPromptFormatter() *PromptFormatter {
	return &PromptFormatter{
		templates: map[string]promptTemplate{
			TemplateSummarizeCV: {
				text:         summarizeCVTemplate,
				placeholders: []string{"CV"},
			},
			TemplateEvaluateFit: {
				text:         evaluateFitTemplate,
				placeholders: []string{"CV", "JD"},
			},
		},
	}
}

// Format substitutes every placeholder of the named template with its value
// from the mapping. Every required placeholder must be supplied; values are
// not required to be non-empty.
func (f *PromptFormatter) Format(name string, values map[string]string) (string, error) {
	tmpl, ok := f.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown prompt template %q", name)
	}

	prompt := tmpl.text
	for _, placeholder := range tmpl.placeholders {
		value, ok := values[placeholder]
		if !ok {
			return "", &MissingPlaceholderError{Template: name, Placeholder: placeholder}
		}
		prompt = strings.ReplaceAll(prompt, "{{"+placeholder+"}}", value)
	}

	return prompt, nil
}
