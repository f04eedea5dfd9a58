// Command reconinfo prints sampling/reconstruction error tables for analog
// signal models.
//
// Usage:
//
//	reconinfo [flags]
//
// Examples:
//
//	reconinfo -model sine -param 5
//	reconinfo -model exponential -param 2 -rates 5,10,20,50
//	reconinfo -model triangle -param 3 -alias
//	reconinfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-sampling/dsp/model"
	"github.com/cwbudde/algo-sampling/measure/alias"
	"github.com/cwbudde/algo-sampling/measure/ratesweep"
	"github.com/cwbudde/algo-sampling/session"
)

func main() {
	modelName := flag.String("model", "sine", "signal model (use -list to see available)")
	param := flag.Float64("param", 5, "frequency in Hz (sine, triangle) or decay constant (exponential)")
	duration := flag.Float64("duration", 1, "signal duration in seconds")
	grid := flag.Int("grid", 1000, "evaluation grid resolution")
	rates := flag.String("rates", "5,10,20,50,100", "comma-separated sampling rates in Hz")
	showAlias := flag.Bool("alias", false, "include the apparent (possibly folded) peak frequency per rate")
	list := flag.Bool("list", false, "list available signal models")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: reconinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints ZOH/FOH reconstruction errors of a sampled signal model.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  reconinfo -model sine -param 5\n")
		fmt.Fprintf(os.Stderr, "  reconinfo -model exponential -param 2 -rates 5,10,20,50\n")
		fmt.Fprintf(os.Stderr, "  reconinfo -list\n")
	}
	flag.Parse()

	if *list {
		for _, t := range model.Types() {
			fmt.Println(t)
		}
		return
	}

	typ, err := model.ParseType(strings.ToLower(strings.TrimSpace(*modelName)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v (use -list to see available)\n", err)
		os.Exit(1)
	}

	rateList, err := parseRates(*rates)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	sum, err := ratesweep.Run(ratesweep.Config{
		Type:     typ,
		Param:    *param,
		Duration: *duration,
		GridSize: *grid,
		Rates:    rateList,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printTable(sum, typ, *param, *duration, *grid, *showAlias)
}

func parseRates(s string) ([]float64, error) {
	var out []float64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid sampling rate %q", field)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no sampling rates given")
	}
	return out, nil
}

func printTable(sum ratesweep.Summary, typ model.Type, param, duration float64, grid int, showAlias bool) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	header := "Rate [Hz]\tSamples\tZOH MSE\tFOH MSE"
	rule := "---------\t-------\t-------\t-------"
	if showAlias {
		header += "\tPeak [Hz]"
		rule += "\t---------"
	}
	fmt.Fprintln(tw, header)
	fmt.Fprintln(tw, rule)

	for _, p := range sum.Points {
		row := fmt.Sprintf("%g\t%d\t%.6g\t%.6g", p.Rate, p.Samples, p.ZOH, p.FOH)
		if showAlias {
			peak, err := apparentPeak(typ, param, p.Rate, duration, grid)
			if err != nil {
				row += "\t-"
			} else {
				row += fmt.Sprintf("\t%.3f", peak)
			}
		}
		fmt.Fprintln(tw, row)
	}

	fmt.Fprintln(tw, rule)
	fmt.Fprintf(tw, "mean\t\t%.6g\t%.6g\n", sum.MeanZOH, sum.MeanFOH)

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

// apparentPeak reports the dominant spectral frequency of the sample set for
// one rate. For rates below twice the model frequency this is the folded
// alias, not the model frequency.
func apparentPeak(typ model.Type, param, rate, duration float64, grid int) (float64, error) {
	res, err := session.Compute(typ, param, rate, duration, session.WithGridSize(grid))
	if err != nil {
		return 0, err
	}

	sp, err := alias.Analyze(res.SampleValues, alias.Config{SampleRate: rate})
	if err != nil {
		return 0, err
	}

	return sp.PeakFreq, nil
}
