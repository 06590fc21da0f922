package docs

import (
	"bytes"
	"text/template"

	"enerdocs.dev/idfls/internal/log"
)

// Markdown template for class-name documentation
var classMarkdownTemplate = template.Must(template.New("classMarkdown").Parse(`# {{.Title}}
{{if .Group}}
*{{.Group}}*
{{end}}{{if .Memo}}
{{.Memo}}
{{end}}{{range .Properties}}
- {{.}}{{end}}`))

// Markdown template for field documentation
var fieldMarkdownTemplate = template.Must(template.New("fieldMarkdown").Parse(`# {{.Title}}
{{if .Group}}
*Field of {{.Group}}*
{{end}}{{if .Memo}}
{{.Memo}}
{{end}}
**Type**: ` + "`{{.FieldType}}`" + `
{{if .Units}}**Units**: {{.Units}}
{{end}}{{if .Range}}**Range**: {{.Range}}
{{end}}{{if .Default}}**Default**: ` + "`{{.Default}}`" + `
{{end}}{{if .Choices}}**Choices**: {{range $i, $c := .Choices}}{{if $i}}, {{end}}` + "`{{$c}}`" + `{{end}}
{{end}}{{range .Flags}}
- {{.}}{{end}}`))

// Plaintext template for class-name documentation
var classPlaintextTemplate = template.Must(template.New("classPlaintext").Parse(`{{.Title}}
{{if .Group}}{{.Group}}
{{end}}{{if .Memo}}
{{.Memo}}
{{end}}{{range .Properties}}
- {{.}}{{end}}`))

// Plaintext template for field documentation
var fieldPlaintextTemplate = template.Must(template.New("fieldPlaintext").Parse(`{{.Title}}{{if .Group}} (field of {{.Group}}){{end}}
{{if .Memo}}
{{.Memo}}
{{end}}
Type: {{.FieldType}}
{{if .Units}}Units: {{.Units}}
{{end}}{{if .Range}}Range: {{.Range}}
{{end}}{{if .Default}}Default: {{.Default}}
{{end}}{{if .Choices}}Choices: {{range $i, $c := .Choices}}{{if $i}}, {{end}}{{$c}}{{end}}
{{end}}{{range .Flags}}
- {{.}}{{end}}`))

// Markdown renders the payload for clients that display markdown hovers.
func (p *Payload) Markdown() string {
	if p.IsField {
		return execute(fieldMarkdownTemplate, p)
	}
	return execute(classMarkdownTemplate, p)
}

// Plaintext renders the payload for clients without markdown support.
func (p *Payload) Plaintext() string {
	if p.IsField {
		return execute(fieldPlaintextTemplate, p)
	}
	return execute(classPlaintextTemplate, p)
}

func execute(tmpl *template.Template, p *Payload) string {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, p); err != nil {
		// Templates are static and payloads are plain data; this only
		// fires on a template bug.
		log.Error("documentation template %s failed: %v", tmpl.Name(), err)
		return p.Title
	}
	return buf.String()
}
