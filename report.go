package bootsnrun

import (
	"fmt"
	"io"
	"strconv"

	"github.com/raykavin/bootsnrun/pkg/bootstrap"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// Result holds the bootstrap outcome for one statistic.
type Result struct {
	Name         string                 // statistic label
	Estimate     float64                // statistic over the original sample
	Distribution bootstrap.Distribution // one value per resample
	Interval     bootstrap.Interval     // percentile confidence interval
}

// Report is the outcome of a study run: one result per registered
// statistic, in registration order.
type Report struct {
	Results    []Result
	Iterations int
	Confidence float64
}

// Result returns the result for the given statistic name, if present.
func (r *Report) Result(name string) (Result, bool) {
	for _, result := range r.Results {
		if result.Name == name {
			return result, true
		}
	}
	return Result{}, false
}

// Summary writes a table with every statistic's point estimate,
// bootstrap mean, standard error and confidence interval, followed by
// a histogram of each bootstrap distribution.
func (r *Report) Summary(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Statistic", "Estimate", "Boot Mean", "Std Error", "CI Lower", "CI Upper"})
	table.SetFooter([]string{
		"",
		"",
		"",
		"",
		"Iterations",
		strconv.Itoa(r.Iterations),
	})
	table.SetFooterAlignment(tablewriter.ALIGN_RIGHT)

	table.AppendBulk(lo.Map(r.Results, func(result Result, _ int) []string {
		return []string{
			result.Name,
			fmt.Sprintf("%.4f", result.Estimate),
			fmt.Sprintf("%.4f", result.Interval.Mean),
			fmt.Sprintf("%.4f", result.Interval.StdDev),
			fmt.Sprintf("%.4f", result.Interval.Lower),
			fmt.Sprintf("%.4f", result.Interval.Upper),
		}
	}))
	table.Render()

	fmt.Fprintf(w, "\n------ CONFIDENCE INTERVAL (%.0f%%) -------\n", r.Confidence*100)
	for _, result := range r.Results {
		fmt.Fprintf(w, "%-12s %.4f (%.4f ~ %.4f)\n",
			result.Name+":", result.Interval.Mean, result.Interval.Lower, result.Interval.Upper)
	}

	for _, result := range r.Results {
		fmt.Fprintf(w, "\n------ DISTRIBUTION: %s -------\n", result.Name)
		hist := histogram.Hist(15, result.Distribution)
		histogram.Fprint(w, hist, histogram.Linear(10))
	}
	fmt.Fprintln(w)
}
