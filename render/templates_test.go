package render

import (
	"testing"

	"docxview/config"
	"docxview/docx"
)

func TestNewTemplateValues(t *testing.T) {
	img := &docx.Image{Target: "word/media/image1.png"}
	doc := &docx.Document{
		Title:   "Annual report",
		Creator: "Finance",
		Body: []docx.Block{
			para(textRun("a"), imageRun(img)),
			&docx.Table{Rows: []*docx.Row{{Cells: []*docx.Cell{{Blocks: []docx.Block{para(imageRun(img))}}}}}},
		},
	}

	v := NewTemplateValues(doc, "/tmp/in/report.v2.docx")
	want := TemplateValues{SourceFile: "report.v2", Title: "Annual report", Creator: "Finance", Images: 2}
	if v != want {
		t.Errorf("NewTemplateValues() = %+v, want %+v", v, want)
	}
}

func TestExpandTemplate(t *testing.T) {
	values := TemplateValues{SourceFile: "report", Title: "Annual Report"}

	tests := []struct {
		name    string
		field   string
		want    string
		wantErr bool
	}{
		{"plain", "{{ .SourceFile }}.html", "report.html", false},
		{"context", "{{ .Context }}", string(config.OutputNameTemplateFieldName), false},
		{"sprig", "{{ .Title | lower | replace \" \" \"-\" }}", "annual-report", false},
		{"fallback", "{{ if .Creator }}{{ .Creator }}{{ else }}{{ .SourceFile }}{{ end }}", "report", false},
		{"trimmed", "  {{ .SourceFile }}\n", "report", false},
		{"parse error", "{{ .SourceFile ", "", true},
		{"exec error", "{{ .Missing }}", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandTemplate(config.OutputNameTemplateFieldName, tt.field, values)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExpandTemplate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExpandTemplate() = %q, want %q", got, tt.want)
			}
		})
	}
}
