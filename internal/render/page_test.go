package render

import (
	"bytes"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmazeau/puymap/internal/parser"
)

func pageTemplate(t *testing.T) *template.Template {
	t.Helper()
	tpl, err := template.New("page").Parse(`<p>{{.VisitCurrent}} / {{.VisitTotal}} ({{printf "%.1f" .VisitPercent}}%)</p>
<figure>{{.Scene}}</figure>
<ul>
{{.VisitList}}</ul>`)
	require.NoError(t, err)
	return tpl
}

func TestBuildPage(t *testing.T) {
	peaks := []parser.Peak{
		{Label: "puy de Dôme", Visited: true},
		{Label: "Grand & Petit", Visited: false},
	}

	var buf bytes.Buffer
	err := BuildPage(&buf, pageTemplate(t), `<svg><g id="scene"></g></svg>`, peaks)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "1 / 2 (50.0%)")
	assert.Contains(t, html, `<svg><g id="scene"></g></svg>`, "the scene is trusted markup")
	assert.Contains(t, html, `<li class="visited">puy de Dôme</li>`)
	assert.Contains(t, html, "<li>Grand &amp; Petit</li>")
	assert.Less(t, strings.Index(html, "puy de Dôme"), strings.Index(html, "Grand"),
		"checklist keeps the given order")
}

func TestBuildPageNoPeaks(t *testing.T) {
	var buf bytes.Buffer
	err := BuildPage(&buf, pageTemplate(t), "<svg/>", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no summits")
}

func TestLoadTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(`<html>{{.VisitCurrent}}</html>`), 0o644))

	tpl, err := LoadTemplate(path)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tpl.Execute(&buf, Page{VisitCurrent: 3}))
	assert.Equal(t, "<html>3</html>", buf.String())
}

func TestLoadTemplateMissing(t *testing.T) {
	_, err := LoadTemplate(filepath.Join(t.TempDir(), "absent.html"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load page template")
}

func TestLoadTemplateMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.html")
	require.NoError(t, os.WriteFile(path, []byte(`{{.Unclosed`), 0o644))

	_, err := LoadTemplate(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load page template")
}
