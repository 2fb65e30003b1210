package render

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"docxview/config"
	"docxview/docx"
)

// TemplateValues holds variables available for template expansion.
type TemplateValues struct {
	Context    string
	SourceFile string
	Title      string
	Creator    string
	Language   string
	Images     int
}

// NewTemplateValues collects values of doc read from src. Images counts
// every picture in the body, including ones in table cells.
func NewTemplateValues(doc *docx.Document, src string) TemplateValues {
	v := TemplateValues{
		SourceFile: strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)),
		Title:      doc.Title,
		Creator:    doc.Creator,
		Language:   doc.Language(),
	}
	doc.Walk(func(p *docx.Paragraph) {
		for _, r := range p.Runs {
			if r.Image != nil {
				v.Images++
			}
		}
	})
	return v
}

// ExpandTemplate executes field as text template with values, Context is set
// to the field name.
func ExpandTemplate(name config.TemplateFieldName, field string, values TemplateValues) (string, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values.Context = string(name)
	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", fmt.Errorf("unable to expand template field %s: %w", name, err)
	}
	return strings.TrimSpace(buf.String()), nil
}
