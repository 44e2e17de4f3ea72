package rendering

import (
	"html/template"
	"strings"

	"github.com/jonathan/cv-builder/internal/templates"
	"github.com/jonathan/cv-builder/internal/types"
)

// screenTemplate is the on-screen projection of a View. Per-region styling
// comes exclusively from the resolved template; only layout-mechanical
// container sizing is fixed here.
const screenTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; margin: 0; background: #eee; }
.cv-page { max-width: 800px; margin: 24px auto; padding: 40px; background: #fff; box-shadow: 0 1px 4px rgba(0,0,0,.2); }
.cv-section { margin-bottom: 16pt; }
.cv-entry { margin-bottom: 10pt; }
.cv-line { margin: 0; }
.cv-bullet { margin: 0; padding-left: 12pt; }
</style>
</head>
<body>
<div class="cv-page" data-template="{{.TemplateID}}">
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
</div>
</body>
</html>
`

var screenTmpl = template.Must(template.New("screen").Funcs(template.FuncMap{
	"safeCSS": func(css string) template.CSS { return template.CSS(css) },
}).Parse(screenTemplate))

// RenderHTML projects a document into the on-screen HTML preview using the
// template resolved for templateID. It is a pure function of its inputs:
// equal inputs produce byte-identical output.
func RenderHTML(doc *types.CVDocument, templateID string, registry *templates.Registry) ([]byte, error) {
	tpl := registry.Resolve(templateID)
	view := BuildView(doc, tpl)

	var out strings.Builder
	if err := screenTmpl.Execute(&out, view); err != nil {
		return nil, &TemplateError{
			Message: "failed to execute screen template",
			Cause:   err,
		}
	}
	return []byte(out.String()), nil
}
