package output

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/montanaflynn/stats"
	"github.com/ukaji3/qedcheck-go/pkg/qedcheck/models"
	"github.com/ukaji3/qedcheck-go/pkg/qedcheck/parser"
)

// nameWidth is how much of a scenario name the summary shows.
const nameWidth = 30

var (
	matchStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	varianceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	missingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	headerStyle   = lipgloss.NewStyle().Bold(true)
)

// Stats summarises the variances of a result set.
type Stats struct {
	Compared     int
	Matches      int
	MeanAbs      float64
	MedianAbs    float64
	MaxAbs       float64
	InRange      int
	WithoutValue int
}

// Summarize computes Stats over results for the given tolerance.
func Summarize(results []models.Result, tolerance float64) (Stats, error) {
	var s Stats
	var abs stats.Float64Data
	for _, r := range results {
		v, ok := r.Variance()
		if !ok {
			s.WithoutValue++
			continue
		}
		s.Compared++
		abs = append(abs, math.Abs(v))
		if models.Classify(v, tolerance) == models.StatusMatch {
			s.Matches++
		}
		if r.InExpectedRange() {
			s.InRange++
		}
	}
	if len(abs) == 0 {
		return s, nil
	}

	var err error
	if s.MeanAbs, err = stats.Mean(abs); err != nil {
		return s, err
	}
	if s.MedianAbs, err = stats.Median(abs); err != nil {
		return s, err
	}
	if s.MaxAbs, err = stats.Max(abs); err != nil {
		return s, err
	}
	return s, nil
}

// RenderSummary renders one row per result: workbook value, our value,
// signed variance and status.
func RenderSummary(results []models.Result, tolerance float64) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		workbookValue, variance, inRange := "-", "-", "-"
		if r.WorkbookResult != nil {
			workbookValue = parser.FormatCurrency(*r.WorkbookResult)
			inRange = "no"
			if r.InExpectedRange() {
				inRange = "yes"
			}
		}
		if v, ok := r.Variance(); ok {
			variance = fmt.Sprintf("%+.1f%%", v)
		}
		rows = append(rows, []string{
			truncate(r.ScenarioName, nameWidth),
			workbookValue,
			parser.FormatCurrency(r.AppResult),
			variance,
			inRange,
			styleStatus(r.Status(tolerance)),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("Scenario", "Workbook", "Ours", "Variance", "In range", "Status").
		Rows(rows...).
		Render()
}

// WriteSummary prints the summary table followed by aggregate figures.
func WriteSummary(w io.Writer, runID string, results []models.Result, tolerance float64) error {
	var b strings.Builder
	fmt.Fprintf(&b, "SUMMARY (run %s, tolerance %.0f%%)\n", runID, tolerance)
	b.WriteString(RenderSummary(results, tolerance))
	b.WriteString("\n")

	s, err := Summarize(results, tolerance)
	if err != nil {
		return fmt.Errorf("summarize results: %w", err)
	}
	fmt.Fprintf(&b, "%d/%d within tolerance, %d in expected range", s.Matches, s.Compared, s.InRange)
	if s.Compared > 0 {
		fmt.Fprintf(&b, ", mean |variance| %.1f%%, median %.1f%%, max %.1f%%", s.MeanAbs, s.MedianAbs, s.MaxAbs)
	}
	if s.WithoutValue > 0 {
		fmt.Fprintf(&b, ", %d without workbook value", s.WithoutValue)
	}
	b.WriteString("\n")

	_, err = io.WriteString(w, b.String())
	return err
}

func styleStatus(s models.Status) string {
	switch s {
	case models.StatusMatch:
		return matchStyle.Render(string(s))
	case models.StatusVariance:
		return varianceStyle.Render(string(s))
	default:
		return missingStyle.Render(string(s))
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
