// Command sat3plot renders an HTML dashboard of the recursion-depth and
// row-occupancy statistics a "sat3 solve -stats" run produced.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type stats struct {
	MaxRecDepth       int   `json:"MaxRecDepth"`
	TotalRecDepth     int   `json:"TotalRecDepth"`
	PerClauseRecDepth []int `json:"PerClauseRecDepth"`
	RowOccupancy      []int `json:"RowOccupancy"`
}

func main() {
	in := flag.String("in", "", "stats JSON file produced by sat3 solve -stats")
	out := flag.String("out", "sat3-stats.html", "output HTML file")
	flag.Parse()

	if *in == "" {
		log.Fatal("sat3plot: -in is required")
	}

	raw, err := os.ReadFile(*in)
	if err != nil {
		log.Fatalf("sat3plot: %v", err)
	}
	var st stats
	if err := json.Unmarshal(raw, &st); err != nil {
		log.Fatalf("sat3plot: %v", err)
	}

	clauseAxis := make([]string, len(st.PerClauseRecDepth))
	depthItems := make([]opts.LineData, len(st.PerClauseRecDepth))
	for i, d := range st.PerClauseRecDepth {
		clauseAxis[i] = fmt.Sprintf("%d", i+1)
		depthItems[i] = opts.LineData{Value: d}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Merge recursion depth per clause",
			Subtitle: fmt.Sprintf("max=%d total=%d", st.MaxRecDepth, st.TotalRecDepth),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "clause index"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "recursion depth"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
	)
	line.SetXAxis(clauseAxis).AddSeries("recursion depth", depthItems)

	rowAxis := make([]string, len(st.RowOccupancy))
	occupancyItems := make([]opts.BarData, len(st.RowOccupancy))
	for i, c := range st.RowOccupancy {
		rowAxis[i] = fmt.Sprintf("%d", i+1)
		occupancyItems[i] = opts.BarData{Value: c}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Row occupancy of the final H",
			Subtitle: "monomials per row",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "row (variable index)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "monomial count"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
	)
	bar.SetXAxis(rowAxis).AddSeries("row occupancy", occupancyItems)

	page := components.NewPage().SetPageTitle("sat3 recursion-depth report")
	page.AddCharts(line, bar)

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("sat3plot: %v", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatalf("sat3plot: %v", err)
	}
	fmt.Printf("report written to %s\n", *out)
}
