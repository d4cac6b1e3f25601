package web

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

const introMarkdown = `Adjust the slider to change how many teaspoons of baking soda you mix with 2 cups of vinegar.
Watch how the rocket's height changes. There's an 'optimal' amount around 6 tsp!`

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Baking Soda + Vinegar Rocket!</title>
<style>
body { font-family: sans-serif; max-width: 720px; margin: 2em auto; color: #222; }
.warning { background: #fff4e5; border: 1px solid #f0a020; padding: 0.5em 1em; }
.summary { font-size: 1.2em; }
form { margin: 1em 0; }
</style>
</head>
<body>
<h1>Baking Soda + Vinegar Rocket!</h1>
<div class="intro">{{.Intro}}</div>
<form method="get" action="/">
<label for="soda">Baking soda (tsp): <output id="soda-value">{{.Soda}}</output></label>
<input type="range" id="soda" name="soda" min="{{.Min}}" max="{{.Max}}" step="{{.Step}}" value="{{.Soda}}"
  oninput="document.getElementById('soda-value').value = this.value" onchange="this.form.submit()">
<noscript><button type="submit">Launch</button></noscript>
</form>
{{if .Warning}}<div class="warning" role="alert">{{.Warning}}</div>{{end}}
<img src="{{.Chart}}" alt="{{.Label}}" width="{{.Width}}" height="{{.Height}}">
<div class="summary">{{.Summary}}</div>
</body>
</html>
`

// page renders the HTML view of one launch.
type page struct {
	tmpl  *template.Template
	md    goldmark.Markdown
	intro template.HTML
}

// pageData is the view model for pageTemplate.
type pageData struct {
	Intro   template.HTML
	Summary template.HTML
	Chart   template.URL
	Warning string
	Label   string
	Soda    string
	Min     float64
	Max     float64
	Step    float64
	Width   int
	Height  int
}

func newPage() (*page, error) {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.Typographer),
		goldmark.WithRendererOptions(html.WithXHTML()),
	)

	pg := &page{tmpl: tmpl, md: md}

	intro, err := pg.markdown(introMarkdown)
	if err != nil {
		return nil, fmt.Errorf("render intro: %w", err)
	}
	pg.intro = intro

	return pg, nil
}

// markdown converts trusted, package-authored source to HTML.
func (p *page) markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := p.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	//nolint:gosec // source is generated by this package, never user input
	return template.HTML(buf.String()), nil
}

func (p *page) render(w io.Writer, data pageData) error {
	data.Intro = p.intro
	return p.tmpl.Execute(w, data)
}

// dataURI embeds a PNG in an img src attribute.
func dataURI(png []byte) template.URL {
	//nolint:gosec // base64 alphabet cannot break out of the attribute
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
}
