package render

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/tmazeau/puymap/internal/parser"
)

// Page is the data handed to the companion template: the visit summary, the
// inline SVG scene, and the checklist markup.
type Page struct {
	VisitCurrent int
	VisitTotal   int
	VisitPercent float64
	Scene        template.HTML
	VisitList    template.HTML
}

// LoadTemplate parses the companion HTML page template. The template
// receives a Page value.
func LoadTemplate(path string) (*template.Template, error) {
	tpl, err := template.ParseFiles(path)
	if err != nil {
		return nil, fmt.Errorf("load page template: %w", err)
	}
	return tpl, nil
}

// BuildPage renders the final page to w. The checklist follows the order of
// peaks, one entry per summit with the bare label, marked with the visited
// class when checked off.
func BuildPage(w io.Writer, tpl *template.Template, scene string, peaks []parser.Peak) error {
	if len(peaks) == 0 {
		return errors.New("no summits to list")
	}

	visited := 0
	var list strings.Builder
	for i := range peaks {
		peak := &peaks[i]
		label := template.HTMLEscapeString(peak.Label)
		if peak.Visited {
			visited++
			fmt.Fprintf(&list, "<li class=\"visited\">%s</li>\n", label)
		} else {
			fmt.Fprintf(&list, "<li>%s</li>\n", label)
		}
	}

	page := Page{
		VisitCurrent: visited,
		VisitTotal:   len(peaks),
		VisitPercent: 100 * float64(visited) / float64(len(peaks)),
		Scene:        template.HTML(scene),
		VisitList:    template.HTML(list.String()),
	}

	if err := tpl.Execute(w, page); err != nil {
		return fmt.Errorf("execute page template: %w", err)
	}
	return nil
}
