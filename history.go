package genart

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// History accumulates per-generation fitness statistics. The engine
// appends one row per Tick; the slices stay index-aligned.
type History struct {
	Gen  []float64
	Best []float64
	Mean []float64
}

// Record appends one generation's statistics.
func (h *History) Record(gen int, best int64, mean float64) {
	h.Gen = append(h.Gen, float64(gen))
	h.Best = append(h.Best, float64(best))
	h.Mean = append(h.Mean, mean)
}

// Len returns the number of recorded generations.
func (h *History) Len() int { return len(h.Gen) }

// SavePlot writes a fitness-versus-generation line chart to outPath. The
// output format follows the file extension (.png, .svg, .pdf).
func (h *History) SavePlot(outPath string) error {
	if h.Len() == 0 {
		return fmt.Errorf("history: nothing recorded yet")
	}

	p := plot.New()
	p.Title.Text = "fitness over generations"
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Fitness"

	bestPts := make(plotter.XYs, h.Len())
	meanPts := make(plotter.XYs, h.Len())
	for i := range h.Gen {
		bestPts[i].X = h.Gen[i]
		bestPts[i].Y = h.Best[i]
		meanPts[i].X = h.Gen[i]
		meanPts[i].Y = h.Mean[i]
	}

	bestLine, err := plotter.NewLine(bestPts)
	if err != nil {
		return err
	}
	meanLine, err := plotter.NewLine(meanPts)
	if err != nil {
		return err
	}

	p.Add(bestLine, meanLine)
	p.Legend.Add("best", bestLine)
	p.Legend.Add("mean", meanLine)
	p.Legend.Top = true

	return p.Save(6*vg.Inch, 4*vg.Inch, outPath)
}
