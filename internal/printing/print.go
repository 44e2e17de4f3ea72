package printing

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/cv-builder/internal/rendering"
	"github.com/jonathan/cv-builder/internal/templates"
	"github.com/jonathan/cv-builder/internal/types"
)

// printTemplate is the paginated projection of a View. It consumes the same
// document walk as the screen renderer; only the page chrome differs. The
// break rules keep a section heading on the same page as at least one entry,
// so the engine never orphans a header at the bottom of a page.
const printTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
@page { size: A4; margin: {{printf "%gpt" .Page.MarginPt}}; }
body { font-family: Helvetica, Arial, sans-serif; margin: 0; background: {{.Page.Background}}; font-size: {{printf "%gpt" .Page.BaseFontSize}}; }
.cv-section { margin-bottom: 12pt; }
.cv-section h2 { break-after: avoid-page; page-break-after: avoid; }
.cv-entry { margin-bottom: 8pt; break-inside: avoid; page-break-inside: avoid; }
.cv-line { margin: 0; }
.cv-bullet { margin: 0; padding-left: 12pt; }
</style>
</head>
<body data-template="{{.TemplateID}}">
<header class="cv-header">
{{- range .Header}}
<p class="cv-line" style="{{safeCSS .CSS}}">{{.Text}}</p>
{{- end}}
</header>
{{- range .Sections}}
<section class="cv-section">
<h2 class="cv-line" style="{{safeCSS .TitleCSS}}">{{.Title}}</h2>
{{- range .Entries}}
<div class="cv-entry">
{{- range .Lines}}
{{- if .Bullet}}
<p class="cv-bullet" style="{{safeCSS .CSS}}">&bull; {{.Text}}</p>
{{- else}}
<p class="cv-line" style="{{safeCSS .CSS}}">{{.Text}}</p>
{{- end}}
{{- end}}
</div>
{{- end}}
</section>
{{- end}}
</body>
</html>
`

var printTmpl = template.Must(template.New("print").Funcs(template.FuncMap{
	"safeCSS": func(css string) template.CSS { return template.CSS(css) },
}).Parse(printTemplate))

// BuildPrintHTML projects a document into the A4 print document fed to the
// PDF engine. Pure and deterministic, like the screen projection.
func BuildPrintHTML(doc *types.CVDocument, templateID string, registry *templates.Registry) ([]byte, error) {
	tpl := registry.Resolve(templateID)
	view := rendering.BuildView(doc, tpl)

	var out strings.Builder
	if err := printTmpl.Execute(&out, view); err != nil {
		return nil, &RenderFailureError{
			Message: "failed to execute print template",
			Cause:   err,
		}
	}
	return []byte(out.String()), nil
}

// DefaultFilename derives the export filename from the candidate name,
// replacing spaces with underscores. A document without a name exports as
// cv.pdf.
func DefaultFilename(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "cv.pdf"
	}
	return fmt.Sprintf("%s_cv.pdf", strings.ReplaceAll(trimmed, " ", "_"))
}
