package report

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed assets
var assets embed.FS

var funcs = template.FuncMap{
	"add": func(a, b int) int { return a + b },
}

var (
	rankingsTemplate = template.Must(template.New("rankings.html").Funcs(funcs).ParseFS(assets, "assets/rankings.html"))
	bracketTemplate  = template.Must(template.New("bracket.html").Funcs(funcs).ParseFS(assets, "assets/bracket.html"))
)

// Stylesheet returns the embedded style.css.
func Stylesheet() ([]byte, error) {
	return assets.ReadFile("assets/style.css")
}

// RenderRankings renders index.html.
func RenderRankings(view RankingsView) ([]byte, error) {
	var buf bytes.Buffer
	if err := rankingsTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("failed to render rankings: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderBracket renders one competitor page.
func RenderBracket(view BracketView) ([]byte, error) {
	var buf bytes.Buffer
	if err := bracketTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("failed to render bracket of %s: %w", view.Name, err)
	}
	return buf.Bytes(), nil
}
