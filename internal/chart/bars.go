// Package chart draws grouped income/expense bar charts
package chart

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/chucky-1/finance-bot/internal/model"
)

const barWidth = vg.Length(14)

var unsafeChars = strings.NewReplacer(" ", "_", "/", "_", `\`, "_", ":", "_", "*", "_", "?", "_", `"`, "_", "<", "_", ">", "_", "|", "_")

type Renderer struct {
	dir string
}

func NewRenderer(dir string) *Renderer {
	return &Renderer{
		dir: dir,
	}
}

// Filename maps a title to a png file name
func Filename(title string) string {
	return unsafeChars.Replace(title) + ".png"
}

// Render saves the chart to dir/Filename(title). No categories gives an empty chart with the title
func (r *Renderer) Render(title string, breakdown model.Breakdown) (string, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("chart renderer couldn't create dir %s: %w", r.dir, err)
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "Amount"
	p.Legend.Top = true

	if len(breakdown.Categories) > 0 {
		incomes := make(plotter.Values, len(breakdown.Categories))
		expenses := make(plotter.Values, len(breakdown.Categories))
		for i, category := range breakdown.Categories {
			incomes[i] = breakdown.Income[category].InexactFloat64()
			expenses[i] = breakdown.Expense[category].InexactFloat64()
		}

		incomeBars, err := plotter.NewBarChart(incomes, barWidth)
		if err != nil {
			return "", fmt.Errorf("chart renderer couldn't create income bars: %w", err)
		}
		incomeBars.LineStyle.Width = 0
		incomeBars.Color = plotutil.Color(2)
		incomeBars.Offset = -barWidth / 2

		expenseBars, err := plotter.NewBarChart(expenses, barWidth)
		if err != nil {
			return "", fmt.Errorf("chart renderer couldn't create expense bars: %w", err)
		}
		expenseBars.LineStyle.Width = 0
		expenseBars.Color = plotutil.Color(0)
		expenseBars.Offset = barWidth / 2

		p.Add(incomeBars, expenseBars)
		p.Legend.Add("Income", incomeBars)
		p.Legend.Add("Expenses", expenseBars)
		p.NominalX(breakdown.Categories...)
		p.X.Tick.Label.Rotation = math.Pi / 4
		p.X.Tick.Label.XAlign = draw.XRight
		p.X.Tick.Label.YAlign = draw.YCenter
	}

	path := filepath.Join(r.dir, Filename(title))
	if err := save(p, path); err != nil {
		return "", fmt.Errorf("chart renderer couldn't save %s: %w", path, err)
	}
	return path, nil
}

// save writes the png next to path and renames it into place, so a concurrent reader of path
// sees either the old chart or the new one
func save(p *plot.Plot, path string) error {
	w, err := p.WriterTo(10*vg.Inch, 6*vg.Inch, "png")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".chart-*.png")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err = w.WriteTo(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
