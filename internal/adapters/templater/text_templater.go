package templater

import (
	"strings"
	"text/template"

	"homefolder/internal/ports"

	"go.uber.org/zap"
)

var _ ports.Templater = (*TextTemplater)(nil)

type TextTemplater struct {
	logger *zap.Logger
}

func ProvideTextTemplater(logger *zap.Logger) ports.Templater {
	return &TextTemplater{logger: logger}
}

// Render executes templateText with missing keys treated as errors. When that
// fails the template is rendered again with zero values and a warning is logged.
func (t TextTemplater) Render(templateText string, templateName string, values map[string]any) (string, error) {
	tmpl, err := template.New(templateName).Option("missingkey=error").Parse(templateText)
	if err != nil {
		return "", err
	}
	var result strings.Builder
	err = tmpl.Execute(&result, values)
	if err == nil {
		return result.String(), nil
	}

	originalErr := err
	tmpl, err = template.New(templateName).Option("missingkey=zero").Parse(templateText)
	if err != nil {
		return "", err
	}
	var resultWithMissingKeys strings.Builder
	if err := tmpl.Execute(&resultWithMissingKeys, values); err != nil {
		return "", err
	}
	t.logger.Warn("template rendered with missing keys",
		zap.String("template", templateName),
		zap.Error(originalErr))

	return resultWithMissingKeys.String(), nil
}
