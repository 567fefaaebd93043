package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"tradelog/internal/schema"
	"tradelog/internal/service"
	"tradelog/internal/stats"
)

// ChartsHandler renders a static dashboard page: equity curve plus
// weekly and monthly P/L bars, honoring the same query filter as the
// progress endpoints.
type ChartsHandler struct {
	Progress *service.ProgressService
}

func (h *ChartsHandler) Register(r *gin.Engine) {
	r.GET("/charts", h.page)
}

func (h *ChartsHandler) page(c *gin.Context) {
	ctx := c.Request.Context()
	f := filterFromQuery(c)

	equity, err := h.Progress.Equity(ctx, f)
	if err != nil {
		Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	weekly, err := h.Progress.Weekly(ctx, f)
	if err != nil {
		Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	monthly, err := h.Progress.Monthly(ctx, f)
	if err != nil {
		Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	page := components.NewPage()
	page.PageTitle = "Trading Journal"
	page.AddCharts(
		equityLine(equity),
		bucketBar("Weekly P/L", weekly),
		bucketBar("Monthly P/L", monthly),
	)

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(c.Writer); err != nil {
		Error(c, http.StatusInternalServerError, err.Error(), nil)
	}
}

func equityLine(points []stats.EquityPoint) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Equity Curve"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)
	xAxis := make([]string, len(points))
	data := make([]opts.LineData, len(points))
	for i, p := range points {
		xAxis[i] = schema.FormatDate(p.Date)
		data[i] = opts.LineData{Value: p.Equity}
	}
	line.SetXAxis(xAxis)
	line.AddSeries("Equity", data, charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}))
	return line
}

func bucketBar(title string, sums []stats.BucketSum) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)
	xAxis := make([]string, len(sums))
	data := make([]opts.BarData, len(sums))
	for i, b := range sums {
		xAxis[i] = schema.FormatDate(b.Start)
		data[i] = opts.BarData{Value: b.PnL}
	}
	bar.SetXAxis(xAxis)
	bar.AddSeries("P/L", data)
	return bar
}
