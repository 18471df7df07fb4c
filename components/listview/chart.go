package listview

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

const defaultChartHeight = "320px"

// SummaryChart renders list statistics as go-echarts HTML.
type SummaryChart struct {
	cache      RenderCache
	theme      string
	assetsHost string
}

// SummaryChartOption customizes SummaryChart.
type SummaryChartOption func(*SummaryChart)

// WithSummaryCache injects a render cache; nil disables caching.
func WithSummaryCache(cache RenderCache) SummaryChartOption {
	return func(c *SummaryChart) {
		c.cache = cache
	}
}

// WithSummaryTheme sets the chart theme.
func WithSummaryTheme(theme string) SummaryChartOption {
	return func(c *SummaryChart) {
		c.theme = theme
	}
}

// WithSummaryAssetsHost rewrites the host ECharts JS loads from.
func WithSummaryAssetsHost(host string) SummaryChartOption {
	return func(c *SummaryChart) {
		c.assetsHost = host
	}
}

// NewSummaryChart builds a chart renderer with a five minute cache.
func NewSummaryChart(options ...SummaryChartOption) *SummaryChart {
	c := &SummaryChart{
		cache: NewChartCache(5 * time.Minute),
		theme: types.ThemeWesteros,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// RenderSummary draws one slice or bar per bucket, sized by record count.
func (c *SummaryChart) RenderSummary(title, chartType string, summary Summary) (string, error) {
	chartType = strings.ToLower(strings.TrimSpace(chartType))
	render := func() (string, error) {
		switch chartType {
		case "", "pie":
			return c.renderPie(title, summary)
		case "bar":
			return c.renderBar(title, summary)
		default:
			return "", fmt.Errorf("listview: unsupported chart type %q", chartType)
		}
	}
	if c.cache == nil {
		return render()
	}
	return c.cache.GetOrRender(chartSlot(title, chartType, c.theme), summaryDigest(summary), render)
}

func (c *SummaryChart) renderPie(title string, summary Summary) (string, error) {
	pie := charts.NewPie()
	pie.SetGlobalOptions(c.globalOptions(title, summary)...)
	data := make([]opts.PieData, len(summary.Buckets))
	for i, b := range summary.Buckets {
		data[i] = opts.PieData{Name: bucketLabel(b), Value: b.Count}
	}
	pie.AddSeries(title, data)
	return renderChart(pie)
}

func (c *SummaryChart) renderBar(title string, summary Summary) (string, error) {
	bar := charts.NewBar()
	bar.SetGlobalOptions(c.globalOptions(title, summary)...)
	labels := make([]string, len(summary.Buckets))
	data := make([]opts.BarData, len(summary.Buckets))
	for i, b := range summary.Buckets {
		labels[i] = bucketLabel(b)
		data[i] = opts.BarData{Name: labels[i], Value: b.Count}
	}
	bar.SetXAxis(labels)
	bar.AddSeries(title, data)
	return renderChart(bar)
}

func (c *SummaryChart) globalOptions(title string, summary Summary) []charts.GlobalOpts {
	initOpts := opts.Initialization{
		Theme:  c.theme,
		Width:  "100%",
		Height: defaultChartHeight,
	}
	if c.assetsHost != "" {
		initOpts.AssetsHost = c.assetsHost
	}
	return []charts.GlobalOpts{
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("%d records", summary.Count)}),
		charts.WithInitializationOpts(initOpts),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	}
}

func bucketLabel(b Bucket) string {
	if b.Key == "" {
		return "(none)"
	}
	return b.Key
}

func renderChart(renderable interface{ Render(io.Writer) error }) (string, error) {
	var buf bytes.Buffer
	if err := renderable.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
