package analytics

import (
	"fmt"
	"math"

	"github.com/alexanderramin/moodtrack/internal/domain"
)

// Geometry holds the fixed spacing used by Layout, in canvas units.
type Geometry struct {
	Padding      float64 // margin on every side; the bottom margin is doubled for day labels
	BarGap       float64 // horizontal gap between neighbouring bars
	MinBarHeight float64 // height drawn for days with no data
}

// DefaultGeometry is the pixel geometry of the mobile chart.
var DefaultGeometry = Geometry{Padding: 100, BarGap: 20, MinBarHeight: 10}

// ChartState tags the outcome of Layout.
type ChartState int

const (
	ChartReady ChartState = iota
	ChartNoData
	ChartError
)

func (s ChartState) String() string {
	switch s {
	case ChartReady:
		return "ready"
	case ChartNoData:
		return "no_data"
	case ChartError:
		return "error"
	default:
		return fmt.Sprintf("ChartState(%d)", int(s))
	}
}

// Messages shown in place of the bars for the degraded states.
const (
	NoDataMessage = "No Data Available"
	ErrorMessage  = "Chart Error"
)

// Hue is the color bucket of a bar. Higher values map to warmer hues.
type Hue int

const (
	HueNone  Hue = iota // no entries
	HueLow              // (0, 2)
	HueOkay             // [2, 3)
	HueGood             // [3, 4)
	HueGreat            // [4, 5]
)

// HueFor buckets an aggregate value.
func HueFor(value int) Hue {
	switch {
	case value >= 4:
		return HueGreat
	case value >= 3:
		return HueGood
	case value >= 2:
		return HueOkay
	case value > 0:
		return HueLow
	default:
		return HueNone
	}
}

// Bar is the geometry of one day's bar. Y is the top edge; the bar extends
// down to the plan's Baseline.
type Bar struct {
	X, Y          float64
	Width, Height float64
	Hue           Hue
	DayLabel      string
	ValueLabel    string // empty for days without data
	Value         int
}

// GridLine is a horizontal reference line at one level of the mood scale.
// Level 0 is the baseline and has an empty label.
type GridLine struct {
	Y     float64
	Level int
	Label string
}

// ChartPlan is the renderable result of Layout. Only a ChartReady plan has
// bars and grid lines; the other states carry Message.
type ChartPlan struct {
	State   ChartState
	Message string
	Err     error

	CanvasWidth, CanvasHeight float64
	Left, Top                 float64
	ChartWidth, ChartHeight   float64
	Baseline                  float64
	BarSpacing                float64

	Bars      []Bar
	GridLines []GridLine
}

// Layout computes bar and grid geometry for days on a canvas of the given
// size. It never panics: an empty input yields ChartNoData and any failure,
// including a non-finite or too-small canvas, yields ChartError.
func Layout(days []DayAggregate, width, height float64, g Geometry) (plan ChartPlan) {
	defer func() {
		if r := recover(); r != nil {
			plan = errorPlan(width, height, fmt.Errorf("chart layout: %v", r))
		}
	}()

	if len(days) == 0 {
		return ChartPlan{State: ChartNoData, Message: NoDataMessage, CanvasWidth: width, CanvasHeight: height}
	}
	if !finitePositive(width) || !finitePositive(height) {
		return errorPlan(width, height, fmt.Errorf("invalid canvas %vx%v", width, height))
	}

	chartWidth := width - 2*g.Padding
	chartHeight := height - 3*g.Padding
	barSpacing := chartWidth / float64(len(days))
	barWidth := barSpacing - g.BarGap
	if chartWidth <= 0 || chartHeight <= 0 || barWidth <= 0 {
		return errorPlan(width, height, fmt.Errorf("canvas %vx%v too small for padding %v", width, height, g.Padding))
	}

	plan = ChartPlan{
		State:        ChartReady,
		CanvasWidth:  width,
		CanvasHeight: height,
		Left:         g.Padding,
		Top:          g.Padding,
		ChartWidth:   chartWidth,
		ChartHeight:  chartHeight,
		Baseline:     g.Padding + chartHeight,
		BarSpacing:   barSpacing,
	}

	plan.GridLines = make([]GridLine, 0, domain.MaxOrdinal+1)
	for i := 0; i <= domain.MaxOrdinal; i++ {
		level := domain.MaxOrdinal - i
		plan.GridLines = append(plan.GridLines, GridLine{
			Y:     g.Padding + float64(i)*chartHeight/float64(domain.MaxOrdinal),
			Level: level,
			Label: domain.MoodBucket(level).String(),
		})
	}

	plan.Bars = make([]Bar, len(days))
	for i, d := range days {
		h := g.MinBarHeight
		valueLabel := ""
		if d.HasData() {
			h = float64(d.AverageValue) / float64(domain.MaxOrdinal) * chartHeight
			valueLabel = domain.BucketLabel(d.AverageValue)
		}
		plan.Bars[i] = Bar{
			X:          g.Padding + float64(i)*barSpacing + (barSpacing-barWidth)/2,
			Y:          plan.Baseline - h,
			Width:      barWidth,
			Height:     h,
			Hue:        HueFor(d.AverageValue),
			DayLabel:   d.Label,
			ValueLabel: valueLabel,
			Value:      d.AverageValue,
		}
	}
	return plan
}

func errorPlan(width, height float64, err error) ChartPlan {
	return ChartPlan{State: ChartError, Message: ErrorMessage, Err: err, CanvasWidth: width, CanvasHeight: height}
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
