package export

import (
	"fmt"
	"html/template"
	"io"
)

var previewTemplate = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>WCAG palette {{.Base}}</title>
<style>
body { font-family: system-ui, sans-serif; margin: 2rem; background: #F8FAFC; color: #0F172A; }
.grid { display: grid; grid-template-columns: repeat(3, 1fr); gap: 1rem; }
.card { border-radius: 8px; padding: 1.25rem; box-shadow: 0 1px 3px rgba(0,0,0,.15); }
.card.base { outline: 3px solid #0F172A; }
.sample { font-size: 1.5rem; font-weight: 600; margin: 0 0 .5rem; }
.meta { font-family: monospace; font-size: .85rem; }
.badge { display: inline-block; padding: .1rem .5rem; border-radius: 4px; font-weight: 700; }
.AAA { background: #15803D; color: #FFFFFF; }
.AA { background: #A16207; color: #FFFFFF; }
.Fail { background: #B91C1C; color: #FFFFFF; }
</style>
</head>
<body>
<h1>{{if .Name}}{{.Name}}{{else}}Palette for {{.Base}}{{end}}</h1>
<p>Mode: {{.Mode}} &middot; Generated {{.GeneratedAt.Format "2006-01-02 15:04 MST"}}</p>
<div class="grid">
{{- range .Combinations}}
<div class="card{{if .IsBase}} base{{end}}" style="background-color: {{.Background}}; color: {{.Foreground}};">
<p class="sample">{{.Label}}</p>
<p>The quick brown fox jumps over the lazy dog.</p>
<p class="meta">Background {{.Background}}<br>Text {{.Foreground}}<br>Contrast {{printf "%.2f" .ContrastRatio}}:1</p>
<span class="badge {{.Tier}}">{{.Tier}}</span>
</div>
{{- end}}
</div>
</body>
</html>
`))

func writeHTML(w io.Writer, doc Document) error {
	if err := previewTemplate.Execute(w, doc); err != nil {
		return fmt.Errorf("could not render html preview: %w", err)
	}
	return nil
}
