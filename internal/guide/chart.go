package guide

import (
	"fmt"
	"strconv"
	"strings"
)

// ChartKind selects the chart type drawn by the browser collaborator.
type ChartKind string

const (
	ChartDoughnut ChartKind = "doughnut"
	ChartBar      ChartKind = "bar"
)

// Dataset is one series of a chart.
type Dataset struct {
	Label        string    `yaml:"label,omitempty" json:"label,omitempty"`
	Values       []float64 `yaml:"values" json:"values"`
	Colors       []string  `yaml:"colors,omitempty" json:"colors,omitempty"`
	BorderWidth  *int      `yaml:"border_width,omitempty" json:"border_width,omitempty"`
	BorderRadius int       `yaml:"border_radius,omitempty" json:"border_radius,omitempty"`
	HoverOffset  int       `yaml:"hover_offset,omitempty" json:"hover_offset,omitempty"`
}

// ChartOptions enumerates the display options the guide uses.
type ChartOptions struct {
	LegendPosition string `yaml:"legend_position,omitempty" json:"legend_position,omitempty"`
	LegendPadding  int    `yaml:"legend_padding,omitempty" json:"legend_padding,omitempty"`
	PointStyle     bool   `yaml:"point_style,omitempty" json:"point_style,omitempty"`
	FontSize       int    `yaml:"font_size,omitempty" json:"font_size,omitempty"`
	Stacked        bool   `yaml:"stacked,omitempty" json:"stacked,omitempty"`
	HideXGrid      bool   `yaml:"hide_x_grid,omitempty" json:"hide_x_grid,omitempty"`
	HideYAxis      bool   `yaml:"hide_y_axis,omitempty" json:"hide_y_axis,omitempty"`
	BeginAtZero    bool   `yaml:"begin_at_zero,omitempty" json:"begin_at_zero,omitempty"`
}

// Chart is a static dataset plus its options.
type Chart struct {
	Kind     ChartKind    `yaml:"kind" json:"kind"`
	Labels   []string     `yaml:"labels" json:"labels"`
	Datasets []Dataset    `yaml:"datasets" json:"datasets"`
	Options  ChartOptions `yaml:"options" json:"options"`
}

var validLegendPositions = map[string]bool{"": true, "top": true, "bottom": true, "left": true, "right": true}

// Validate checks that every dataset lines up with the labels.
func (c *Chart) Validate() error {
	if c.Kind != ChartDoughnut && c.Kind != ChartBar {
		return fmt.Errorf("chart: unknown kind %q", c.Kind)
	}
	if len(c.Labels) == 0 {
		return fmt.Errorf("chart: no labels")
	}
	if len(c.Datasets) == 0 {
		return fmt.Errorf("chart: no datasets")
	}
	for i, ds := range c.Datasets {
		if len(ds.Values) != len(c.Labels) {
			return fmt.Errorf("chart: dataset %d has %d values for %d labels", i, len(ds.Values), len(c.Labels))
		}
	}
	if !validLegendPositions[c.Options.LegendPosition] {
		return fmt.Errorf("chart: invalid legend position %q", c.Options.LegendPosition)
	}
	return nil
}

// ChartJSConfig is the declarative object handed to Chart.js.
type ChartJSConfig struct {
	Type    ChartKind     `json:"type"`
	Data    chartJSData   `json:"data"`
	Options chartJSOption `json:"options"`
}

type chartJSData struct {
	Labels   []string         `json:"labels"`
	Datasets []chartJSDataset `json:"datasets"`
}

type chartJSDataset struct {
	Label           string    `json:"label,omitempty"`
	Data            []float64 `json:"data"`
	BackgroundColor any       `json:"backgroundColor,omitempty"`
	BorderWidth     *int      `json:"borderWidth,omitempty"`
	BorderRadius    int       `json:"borderRadius,omitempty"`
	HoverOffset     int       `json:"hoverOffset,omitempty"`
}

type chartJSOption struct {
	Responsive          bool                    `json:"responsive"`
	MaintainAspectRatio bool                    `json:"maintainAspectRatio"`
	Plugins             chartJSPlugins          `json:"plugins"`
	Scales              map[string]chartJSScale `json:"scales,omitempty"`
}

type chartJSPlugins struct {
	Legend chartJSLegend `json:"legend"`
}

type chartJSLegend struct {
	Position string             `json:"position,omitempty"`
	Labels   chartJSLegendLabel `json:"labels"`
}

type chartJSLegendLabel struct {
	Padding       int         `json:"padding,omitempty"`
	UsePointStyle bool        `json:"usePointStyle"`
	Font          chartJSFont `json:"font"`
}

type chartJSFont struct {
	Size int `json:"size,omitempty"`
}

type chartJSScale struct {
	Stacked     bool         `json:"stacked"`
	BeginAtZero bool         `json:"beginAtZero,omitempty"`
	Display     *bool        `json:"display,omitempty"`
	Grid        *chartJSGrid `json:"grid,omitempty"`
}

type chartJSGrid struct {
	Display bool `json:"display"`
}

// Config converts the chart into the Chart.js configuration object.
func (c *Chart) Config() ChartJSConfig {
	cfg := ChartJSConfig{
		Type: c.Kind,
		Data: chartJSData{Labels: c.Labels},
		Options: chartJSOption{
			Responsive:          true,
			MaintainAspectRatio: false,
			Plugins: chartJSPlugins{Legend: chartJSLegend{
				Position: c.Options.LegendPosition,
				Labels: chartJSLegendLabel{
					Padding:       c.Options.LegendPadding,
					UsePointStyle: c.Options.PointStyle,
					Font:          chartJSFont{Size: c.Options.FontSize},
				},
			}},
		},
	}

	for _, ds := range c.Datasets {
		out := chartJSDataset{
			Label:        ds.Label,
			Data:         ds.Values,
			BorderWidth:  ds.BorderWidth,
			BorderRadius: ds.BorderRadius,
			HoverOffset:  ds.HoverOffset,
		}
		switch len(ds.Colors) {
		case 0:
		case 1:
			out.BackgroundColor = ds.Colors[0]
		default:
			out.BackgroundColor = ds.Colors
		}
		cfg.Data.Datasets = append(cfg.Data.Datasets, out)
	}

	if c.Kind == ChartBar {
		y := chartJSScale{Stacked: c.Options.Stacked, BeginAtZero: c.Options.BeginAtZero}
		if c.Options.HideYAxis {
			hidden := false
			y.Display = &hidden
		}
		x := chartJSScale{Stacked: c.Options.Stacked}
		if c.Options.HideXGrid {
			x.Grid = &chartJSGrid{Display: false}
		}
		cfg.Options.Scales = map[string]chartJSScale{"x": x, "y": y}
	}

	return cfg
}

// Table renders the dataset as a markdown table, one row per label.
func (c *Chart) Table() string {
	var sb strings.Builder
	sb.WriteString("| Label |")
	for i, ds := range c.Datasets {
		name := ds.Label
		if name == "" {
			name = "Value " + strconv.Itoa(i+1)
		}
		sb.WriteString(" " + name + " |")
	}
	sb.WriteString("\n|---|")
	for range c.Datasets {
		sb.WriteString("---:|")
	}
	sb.WriteString("\n")
	for row, label := range c.Labels {
		sb.WriteString("| " + label + " |")
		for _, ds := range c.Datasets {
			sb.WriteString(" " + strconv.FormatFloat(ds.Values[row], 'f', -1, 64) + " |")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
