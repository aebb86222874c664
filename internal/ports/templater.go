package ports

type Templater interface {
	Render(template string, templateName string, values map[string]any) (string, error)
}
