package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iwvelando/barrier-pricing/internal/experiment"
	"github.com/iwvelando/barrier-pricing/pkg/constants"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// PlotConvergence renders the price, runtime, and Monte Carlo standard error
// convergence plots into dir.
func PlotConvergence(results []experiment.Result, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create plots directory %s: %v", dir, err)
	}

	var mc, tree []experiment.Result
	for _, result := range results {
		if result.Method == constants.MethodMonteCarlo {
			mc = append(mc, result)
		} else {
			tree = append(tree, result)
		}
	}

	pricePlot := plot.New()
	pricePlot.Title.Text = "Price Convergence: Monte Carlo vs Binomial Tree"
	pricePlot.X.Label.Text = "Number of Time Steps / Tree Steps"
	pricePlot.Y.Label.Text = "Option Price"
	if err := addSeries(pricePlot, mc, tree, priceXYs); err != nil {
		return err
	}
	if err := pricePlot.Save(6*vg.Inch, 4*vg.Inch, filepath.Join(dir, "price_convergence.png")); err != nil {
		return fmt.Errorf("failed to save price convergence plot: %v", err)
	}

	runtimePlot := plot.New()
	runtimePlot.Title.Text = "Runtime vs Steps: Monte Carlo vs Binomial Tree"
	runtimePlot.X.Label.Text = "Number of Steps"
	runtimePlot.Y.Label.Text = "Runtime (seconds)"
	if err := addSeries(runtimePlot, mc, tree, runtimeXYs); err != nil {
		return err
	}
	if err := runtimePlot.Save(6*vg.Inch, 4*vg.Inch, filepath.Join(dir, "runtime_comparison.png")); err != nil {
		return fmt.Errorf("failed to save runtime plot: %v", err)
	}

	if len(mc) > 0 {
		errorPlot := plot.New()
		errorPlot.Title.Text = "Monte Carlo Standard Error vs Time Steps"
		errorPlot.X.Label.Text = "Number of Steps"
		errorPlot.Y.Label.Text = "MC Standard Error"
		if err := plotutil.AddLinePoints(errorPlot, "MC std error", stdErrorXYs(mc)); err != nil {
			return err
		}
		if err := errorPlot.Save(6*vg.Inch, 4*vg.Inch, filepath.Join(dir, "mc_std_error.png")); err != nil {
			return fmt.Errorf("failed to save standard error plot: %v", err)
		}
	}

	return nil
}

func addSeries(plt *plot.Plot, mc, tree []experiment.Result, xys func([]experiment.Result) plotter.XYs) error {
	var series []interface{}
	if len(mc) > 0 {
		series = append(series, constants.MethodMonteCarlo, xys(mc))
	}
	if len(tree) > 0 {
		series = append(series, constants.MethodTree, xys(tree))
	}
	return plotutil.AddLinePoints(plt, series...)
}

func priceXYs(results []experiment.Result) plotter.XYs {
	xys := make(plotter.XYs, len(results))
	for i, result := range results {
		xys[i] = plotter.XY{X: float64(result.NSteps), Y: result.Price}
	}
	return xys
}

func runtimeXYs(results []experiment.Result) plotter.XYs {
	xys := make(plotter.XYs, len(results))
	for i, result := range results {
		xys[i] = plotter.XY{X: float64(result.NSteps), Y: result.Runtime.Seconds()}
	}
	return xys
}

func stdErrorXYs(results []experiment.Result) plotter.XYs {
	xys := make(plotter.XYs, len(results))
	for i, result := range results {
		xys[i] = plotter.XY{X: float64(result.NSteps), Y: result.StdError}
	}
	return xys
}
