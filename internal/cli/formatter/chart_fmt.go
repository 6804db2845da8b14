package formatter

import (
	"math"
	"strings"

	"github.com/alexanderramin/moodtrack/internal/analytics"
	"github.com/charmbracelet/lipgloss"
)

// TerminalGeometry is the chart geometry in character cells.
var TerminalGeometry = analytics.Geometry{Padding: 2, BarGap: 2, MinBarHeight: 0.5}

// gutterWidth is the width of the grid label column left of the canvas.
const gutterWidth = 7

// maxCanvasCells bounds the canvas a plan may ask us to draw.
const maxCanvasCells = 1000

type cellStyle int

const (
	cellBlank cellStyle = iota
	cellGrid
	cellLabel
	cellMuted
	cellHue // cellHue + analytics.Hue
)

type cell struct {
	ch    rune
	style cellStyle
}

func (s cellStyle) render(text string) string {
	switch {
	case s == cellBlank:
		return text
	case s == cellGrid, s == cellMuted:
		return StyleDim.Render(text)
	case s == cellLabel:
		return StyleFg.Render(text)
	default:
		return HueStyle(analytics.Hue(s - cellHue)).Render(text)
	}
}

// RenderChart rasterizes a chart plan into block characters. Plans that are
// not ready render their message centered on the canvas.
func RenderChart(plan analytics.ChartPlan) string {
	switch plan.State {
	case analytics.ChartNoData:
		return renderChartMessage(plan, StyleDim)
	case analytics.ChartError:
		return renderChartMessage(plan, StyleRed)
	}

	cols, rows := int(plan.CanvasWidth), int(plan.CanvasHeight)
	if cols <= 0 || rows <= 0 || cols > maxCanvasCells || rows > maxCanvasCells {
		return renderChartMessage(analytics.ChartPlan{Message: analytics.ErrorMessage}, StyleRed)
	}

	grid := make([][]cell, rows)
	for r := range grid {
		grid[r] = make([]cell, cols)
		for c := range grid[r] {
			grid[r][c] = cell{ch: ' '}
		}
	}

	gutter := make([]string, rows)
	left := clampInt(int(math.Round(plan.Left)), 0, cols)
	right := clampInt(int(math.Round(plan.Left+plan.ChartWidth)), left, cols)
	for _, gl := range plan.GridLines {
		r := clampInt(int(math.Floor(gl.Y)), 0, rows-1)
		gutter[r] = gl.Label
		ch := '┈'
		if gl.Level == 0 {
			ch = '─'
		}
		for c := left; c < right; c++ {
			grid[r][c] = cell{ch: ch, style: cellGrid}
		}
	}

	baseRow := clampInt(int(math.Floor(plan.Baseline)), 0, rows-1)
	for _, b := range plan.Bars {
		start := clampInt(int(math.Round(b.X)), 0, cols)
		end := clampInt(int(math.Round(b.X+b.Width)), start, cols)
		style := cellHue + cellStyle(b.Hue)

		for r := 0; r < baseRow; r++ {
			cover := math.Min(float64(r+1), plan.Baseline) - math.Max(float64(r), b.Y)
			var ch rune
			switch {
			case cover >= 0.75:
				ch = '█'
			case cover > 0:
				ch = '▄'
			default:
				continue
			}
			for c := start; c < end; c++ {
				grid[r][c] = cell{ch: ch, style: style}
			}
		}

		if b.ValueLabel != "" {
			if top := int(math.Floor(b.Y)) - 1; top >= 0 {
				placeLabel(grid[top], b.ValueLabel, start, end, style)
			}
		}
		if baseRow+1 < rows {
			labelStyle := cellLabel
			if b.Value == 0 {
				labelStyle = cellMuted
			}
			placeLabel(grid[baseRow+1], b.DayLabel, start, end, labelStyle)
		}
	}

	var out strings.Builder
	for r, row := range grid {
		out.WriteString(StyleDim.Render(padCell(gutter[r], gutterWidth)))
		writeCells(&out, row)
		if r < rows-1 {
			out.WriteString("\n")
		}
	}
	return out.String()
}

// placeLabel centers text within [start, end), truncating it to fit.
func placeLabel(row []cell, text string, start, end int, style cellStyle) {
	runes := []rune(text)
	span := end - start
	if span <= 0 {
		return
	}
	if len(runes) > span {
		runes = runes[:span]
	}
	at := start + (span-len(runes))/2
	for i, r := range runes {
		row[at+i] = cell{ch: r, style: style}
	}
}

// writeCells renders a row, styling runs of equal style together.
func writeCells(out *strings.Builder, row []cell) {
	var run strings.Builder
	cur := cellBlank
	flush := func() {
		if run.Len() > 0 {
			out.WriteString(cur.render(run.String()))
			run.Reset()
		}
	}
	for _, c := range row {
		if c.style != cur {
			flush()
			cur = c.style
		}
		run.WriteRune(c.ch)
	}
	flush()
}

func renderChartMessage(plan analytics.ChartPlan, style lipgloss.Style) string {
	msg := style.Render(plan.Message)
	w, h := plan.CanvasWidth, plan.CanvasHeight
	if !(w > 0 && h > 0 && w <= maxCanvasCells && h <= maxCanvasCells) {
		return msg
	}
	return lipgloss.Place(int(w)+gutterWidth, int(h), lipgloss.Center, lipgloss.Center, msg)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
