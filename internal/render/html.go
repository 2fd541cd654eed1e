// Package render serializes a computed report into a self-contained
// HTML document ready for the export collaborator. It performs no
// aggregation: every total, percentage and ordering arrives
// pre-computed on the model.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/thinktide/timeaccount/internal/model"
	"github.com/thinktide/timeaccount/internal/timefmt"
)

// pageData is the view model handed to the template. All values are
// pre-formatted strings so the template stays free of logic beyond
// iteration.
type pageData struct {
	Logo           string
	DateRangeLabel string
	GeneratedDate  string
	GeneratedTime  string
	Total          string
	Gradient       template.CSS
	Legend         []legendItem
	Sections       []sectionView
	Year           int
	Empty          bool
}

type legendItem struct {
	Name  string
	Color string
	Value string
}

type sectionView struct {
	Name         string
	Color        string
	Total        string
	Descriptions []descriptionView
	PageBreak    bool
}

type descriptionView struct {
	Title string
	Total string
	Rows  []rowView
}

type rowView struct {
	Date      string
	StartTime string
	Duration  string
	TypeLabel string
	TypeClass string
}

// HTML renders the report into a standalone document. A report with no
// sections renders an explicit "no entries" message instead of an
// empty table.
func HTML(rpt *model.Report, logo string) ([]byte, error) {
	data := pageData{
		Logo:           logo,
		DateRangeLabel: rpt.DateRangeLabel,
		GeneratedDate:  rpt.GeneratedAt.Format("Jan 2, 2006"),
		GeneratedTime:  rpt.GeneratedAt.Format("3:04 PM"),
		Total:          timefmt.Duration(rpt.TotalDurationMS),
		Gradient:       gradientCSS(rpt.CustomerBreakdown),
		Year:           rpt.GeneratedAt.Year(),
		Empty:          len(rpt.Sections) == 0,
	}

	for _, b := range rpt.CustomerBreakdown {
		data.Legend = append(data.Legend, legendItem{
			Name:  b.CustomerName,
			Color: b.Color,
			Value: fmt.Sprintf("%s (%.1f%%)", timefmt.Duration(b.DurationMS), b.Percentage),
		})
	}

	for i, s := range rpt.Sections {
		sv := sectionView{
			Name:      s.CustomerName,
			Color:     s.Color,
			Total:     timefmt.Duration(s.DurationMS),
			PageBreak: i < len(rpt.Sections)-1,
		}
		for _, d := range s.Descriptions {
			dv := descriptionView{
				Title: d.Description,
				Total: fmt.Sprintf("%s (%.1f%%)", timefmt.Duration(d.DurationMS), d.PercentOfCustomer),
			}
			for _, r := range d.Rows {
				typeClass := "type-automatic"
				if r.Type == model.TypeManual {
					typeClass = "type-manual"
				}
				dv.Rows = append(dv.Rows, rowView{
					Date:      r.Timestamp.Format("Jan 2, 2006"),
					StartTime: r.Timestamp.Format("15:04"),
					Duration:  timefmt.Duration(r.DurationMS),
					TypeLabel: r.Type.Label(),
					TypeClass: typeClass,
				})
			}
			sv.Descriptions = append(sv.Descriptions, dv)
		}
		data.Sections = append(data.Sections, sv)
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}

// gradientCSS builds the conic-gradient background for the pie chart
// from the breakdown's cumulative percentage ranges, in breakdown
// order. An empty breakdown yields a neutral disc.
func gradientCSS(breakdown []model.BreakdownItem) template.CSS {
	if len(breakdown) == 0 {
		return template.CSS("background: #e5e7eb;")
	}
	stops := make([]string, 0, len(breakdown))
	cumulative := 0.0
	for _, b := range breakdown {
		start := cumulative
		cumulative += b.Percentage
		stops = append(stops, fmt.Sprintf("%s %.1f%% %.1f%%", b.Color, start, cumulative))
	}
	return template.CSS(fmt.Sprintf("background: conic-gradient(%s);", strings.Join(stops, ", ")))
}
