package render

import (
	"bytes"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderAllocationPie renders the asset-type allocation as a standalone
// HTML page with an embedded pie chart.
func RenderAllocationPie(title string, data map[string]float64) (string, error) {
	pie := charts.NewPie()
	pie.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: title}))

	items := make([]opts.PieData, 0, len(data))
	for name, value := range data {
		items = append(items, opts.PieData{Name: name, Value: value})
	}
	pie.AddSeries("Allocation", items)

	var output bytes.Buffer
	if err := pie.Render(&output); err != nil {
		return "", err
	}
	return output.String(), nil
}
