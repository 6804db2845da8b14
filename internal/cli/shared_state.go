package cli

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator),
// status bar (2 lines: separator + hints), and the output line (1 line).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}

// chartChrome is the number of content lines around the chart canvas:
// range header (2), blank lines (3) and up to five insight lines.
const chartChrome = 10

// chartGutter is the label column plus a small right margin.
const chartGutter = 9

// ChartSize returns the chart canvas size in cells. It follows the terminal
// once a size is known and is capped by the configured chart size.
func (s *SharedState) ChartSize() (width, height int) {
	width, height = s.App.Config.ChartWidth, s.App.Config.ChartHeight
	if s.Width > 0 {
		width = min(width, s.Width-chartGutter)
	}
	if s.Height > 0 {
		height = min(height, s.ContentHeight()-chartChrome)
	}
	return width, height
}
