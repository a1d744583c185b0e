package scaffold

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"sort"
	"text/template"

	"github.com/agentx-labs/leetadd/internal/problem"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// ErrUnknownLanguage is returned for a language with no embedded template.
var ErrUnknownLanguage = errors.New("unknown solution language")

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "java"

// Language describes one solution template.
type Language struct {
	Name      string
	Extension string
	template  string
}

var languages = map[string]Language{
	"java":   {Name: "java", Extension: "java", template: "templates/java.tmpl"},
	"go":     {Name: "go", Extension: "go", template: "templates/go.tmpl"},
	"python": {Name: "python", Extension: "py", template: "templates/python.tmpl"},
	"cpp":    {Name: "cpp", Extension: "cpp", template: "templates/cpp.tmpl"},
}

// TemplateData holds all variables available to solution templates.
type TemplateData struct {
	Name      string // e.g., "Two Sum"
	Label     string // e.g., "Easy"
	URL       string
	Date      string // YYYY-MM-DD
	ClassName string // e.g., "TwoSum"
}

// NewTemplateData derives template variables from an entry.
func NewTemplateData(e problem.Entry) TemplateData {
	return TemplateData{
		Name:      e.Name,
		Label:     e.Difficulty.Label(),
		URL:       e.URL,
		Date:      e.Date(),
		ClassName: e.ClassName(),
	}
}

// LookupLanguage returns the template set registered under name.
func LookupLanguage(name string) (Language, error) {
	lang, ok := languages[name]
	if !ok {
		return Language{}, fmt.Errorf("%w %q (available: %v)", ErrUnknownLanguage, name, Languages())
	}
	return lang, nil
}

// Languages returns the supported language names, sorted.
func Languages() []string {
	names := make([]string, 0, len(languages))
	for name := range languages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FileName returns the solution file name for e in this language.
func (l Language) FileName(e problem.Entry) string {
	return e.Slug() + "." + l.Extension
}

// Render executes the language template for e. It does no I/O beyond reading
// the embedded template.
func Render(lang Language, e problem.Entry) (string, error) {
	tmplBytes, err := templateFS.ReadFile(lang.template)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", lang.template, err)
	}

	tmpl, err := template.New(lang.Name).Parse(string(tmplBytes))
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", lang.template, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, NewTemplateData(e)); err != nil {
		return "", fmt.Errorf("executing template %s: %w", lang.template, err)
	}
	return buf.String(), nil
}
