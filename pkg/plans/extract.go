package plans

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/log"
)

// Section headers, in the order they appear in a report.
const (
	OverviewHeader   = "概要"
	PlanDataHeader   = "計画データ"
	TravelPlanHeader = "移動計画"
)

/*
Extractor reads the fields of a rendered plan page. Missing elements never
fail an extraction, they only produce empty text or drop the line they gate.
*/
type Extractor struct {
	sel Selectors
}

func NewExtractor(sel Selectors) *Extractor {
	return &Extractor{sel: sel}
}

/*
Extract runs the overview, plan data and travel plan passes over html and
returns the report lines in that order, each group preceded by its header.
*/
func (e *Extractor) Extract(html string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))

	if err != nil {
		log.Warn("unable to parse plan page", "error", err)
		return []string{OverviewHeader, PlanDataHeader, TravelPlanHeader}
	}

	lines := []string{OverviewHeader}
	lines = append(lines, e.summary(doc)...)
	lines = append(lines, PlanDataHeader)
	lines = append(lines, e.planData(doc)...)
	lines = append(lines, TravelPlanHeader)
	lines = append(lines, e.checkpoints(doc)...)

	return lines
}

// Report joins the lines of Extract into a single text block.
func (e *Extractor) Report(html string) string {
	return strings.Join(e.Extract(html), "\n")
}

func (e *Extractor) summary(doc *goquery.Document) []string {
	var lines []string

	doc.Find(e.sel.Summary.Row).Each(func(_ int, row *goquery.Selection) {
		title := text(row, e.sel.Summary.Title)

		if title == "" {
			return
		}

		lines = append(lines, title+": "+text(row, e.sel.Summary.Text))
	})

	return lines
}

func (e *Extractor) planData(doc *goquery.Document) []string {
	var lines []string

	doc.Find(e.sel.Metrics.Item).Each(func(_ int, item *goquery.Selection) {
		label := text(item, e.sel.Metrics.Label)

		if label == "" {
			return
		}

		lines = append(lines, label+": "+text(item, e.sel.Metrics.Score))
	})

	if heading := text(doc.Selection, e.sel.Difficulty.Heading); heading != "" {
		lines = append(lines, fmt.Sprintf(
			"%s: %s (%s)",
			heading,
			text(doc.Selection, e.sel.Difficulty.Value),
			text(doc.Selection, e.sel.Difficulty.Level),
		))
	}

	if heading := text(doc.Selection, e.sel.Pace.Heading); heading != "" {
		lines = append(lines, fmt.Sprintf(
			"%s: %s%% (%s)",
			heading,
			text(doc.Selection, e.sel.Pace.Value),
			text(doc.Selection, e.sel.Pace.Label),
		))
	}

	return lines
}

// checkpoints emits one line per group, even when the group has no date.
func (e *Extractor) checkpoints(doc *goquery.Document) []string {
	var (
		sel   = e.sel.Checkpoint
		lines []string
	)

	doc.Find(sel.Group).Each(func(_ int, group *goquery.Selection) {
		var items []string

		group.Find(sel.Item).Each(func(_ int, item *goquery.Selection) {
			items = append(items, fmt.Sprintf(
				"%s %s %s",
				text(item, sel.Time),
				text(item, sel.Name),
				text(item, sel.Lodging),
			))
		})

		lines = append(lines, fmt.Sprintf(
			"%s: %s\n%s",
			text(group, sel.Date),
			text(group, sel.SunriseSunset),
			strings.Join(items, "\n"),
		))
	})

	return lines
}

// text returns the trimmed text of the first match of selector inside s.
func text(s *goquery.Selection, selector string) string {
	return strings.TrimSpace(s.Find(selector).First().Text())
}
