package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/fystack/range-hedge/internal/sweep"
	"github.com/fystack/range-hedge/pkg/common/constant"
	"github.com/fystack/range-hedge/pkg/common/enum"
	"github.com/fystack/range-hedge/pkg/hedge"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Views carry amounts as preformatted strings: JSON cannot encode NaN or
// Inf, which the propagate policy may produce.

type rangeView struct {
	Range      string `json:"range"      yaml:"range"`
	Odds       string `json:"odds"       yaml:"odds"`
	Allocation string `json:"allocation" yaml:"allocation"`
	Payout     string `json:"payout"     yaml:"payout"`
	Net        string `json:"net"        yaml:"net"`
}

type calcView struct {
	Policy        enum.Policy `json:"policy"                  yaml:"policy"`
	TotalAmount   string      `json:"total_amount"            yaml:"total_amount"`
	WinningNumber string      `json:"winning_number"          yaml:"winning_number"`
	WinningRange  string      `json:"winning_range,omitempty" yaml:"winning_range,omitempty"`
	TotalReturn   string      `json:"total_return"            yaml:"total_return"`
	Ranges        []rangeView `json:"ranges"                  yaml:"ranges"`
}

type pointView struct {
	WinningNumber string `json:"winning_number" yaml:"winning_number"`
	Range         string `json:"range"          yaml:"range"`
	Return        string `json:"return"         yaml:"return"`
}

type sweepView struct {
	From      string      `json:"from"       yaml:"from"`
	To        string      `json:"to"         yaml:"to"`
	Covered   int         `json:"covered"    yaml:"covered"`
	Uncovered int         `json:"uncovered"  yaml:"uncovered"`
	MinReturn string      `json:"min_return" yaml:"min_return"`
	MaxReturn string      `json:"max_return" yaml:"max_return"`
	Ranges    []rangeView `json:"ranges"     yaml:"ranges"`
	Points    []pointView `json:"points"     yaml:"points"`
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func rangeLabel(r hedge.Range) string {
	return fmt.Sprintf("%s-%s", num(r.Start), num(r.End))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// outcomeViews shows allocations in cents that add up to the displayed
// total. Propagated special values are shown as computed, without balancing.
func outcomeViews(outcomes []hedge.Outcome, totalAmount float64) []rangeView {
	allocations := lo.Map(outcomes, func(o hedge.Outcome, _ int) float64 { return o.Allocation })
	balanced := lo.EveryBy(allocations, finite)
	cents := hedge.ToCents(allocations, totalAmount)

	return lo.Map(outcomes, func(o hedge.Outcome, i int) rangeView {
		allocation := hedge.FormatAmount(o.Allocation)
		if balanced {
			allocation = cents[i].StringFixed(constant.DisplayPlaces)
		}
		return rangeView{
			Range:      rangeLabel(o.Range),
			Odds:       num(o.Range.Odds),
			Allocation: allocation,
			Payout:     hedge.FormatAmount(o.Payout),
			Net:        hedge.FormatAmount(o.Net),
		}
	})
}

func newCalcView(in hedge.Input, policy enum.Policy, res *hedge.Result) calcView {
	v := calcView{
		Policy:        policy,
		TotalAmount:   hedge.FormatAmount(in.TotalAmount),
		WinningNumber: num(in.WinningNumber),
		TotalReturn:   hedge.FormatAmount(res.TotalReturn),
		Ranges:        outcomeViews(res.Outcomes, in.TotalAmount),
	}
	if res.Matched() {
		v.WinningRange = rangeLabel(in.Ranges[res.WinningIndex])
	}
	return v
}

func newSweepView(in hedge.Input, report *sweep.Report, withPoints bool) sweepView {
	odds := hedge.Odds(in.Ranges)
	v := sweepView{
		From:      num(report.From),
		To:        num(report.To),
		Covered:   report.Covered,
		Uncovered: report.Uncovered,
		MinReturn: hedge.FormatAmount(report.MinReturn),
		MaxReturn: hedge.FormatAmount(report.MaxReturn),
		Ranges:    outcomeViews(hedge.Outcomes(in.Ranges, odds, report.Allocations, in.TotalAmount), in.TotalAmount),
		Points:    []pointView{},
	}
	if withPoints {
		v.Points = lo.Map(report.Points, func(p sweep.Point, _ int) pointView {
			label := "-"
			if p.RangeIndex >= 0 {
				label = rangeLabel(in.Ranges[p.RangeIndex])
			}
			return pointView{
				WinningNumber: num(p.WinningNumber),
				Range:         label,
				Return:        hedge.FormatAmount(p.Return),
			}
		})
	}
	return v
}

func writeStructured(w io.Writer, format enum.OutputFormat, v any) error {
	switch format {
	case enum.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case enum.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("format %q is not structured", format)
}

func writeRangeTable(tw *tabwriter.Writer, rows []rangeView) {
	fmt.Fprintln(tw, "RANGE\tODDS\tALLOCATION\tPAYOUT\tNET")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.Range, r.Odds, r.Allocation, r.Payout, r.Net)
	}
}

func renderCalc(w io.Writer, format enum.OutputFormat, v calcView) error {
	if format.IsStructured() {
		return writeStructured(w, format, v)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	writeRangeTable(tw, v.Ranges)
	if err := tw.Flush(); err != nil {
		return err
	}

	winning := "no range"
	if v.WinningRange != "" {
		winning = "range " + v.WinningRange
	}
	fmt.Fprintf(w, "\nTotal amount:   %s\n", v.TotalAmount)
	fmt.Fprintf(w, "Winning number: %s (%s)\n", v.WinningNumber, winning)
	fmt.Fprintf(w, "Total return:   %s\n", v.TotalReturn)
	return nil
}

func renderSweep(w io.Writer, format enum.OutputFormat, v sweepView) error {
	if format.IsStructured() {
		return writeStructured(w, format, v)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	writeRangeTable(tw, v.Ranges)
	if len(v.Points) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "NUMBER\tRANGE\tRETURN")
		for _, p := range v.Points {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", p.WinningNumber, p.Range, p.Return)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nSwept %s to %s: %d covered, %d uncovered\n", v.From, v.To, v.Covered, v.Uncovered)
	fmt.Fprintf(w, "Return min %s, max %s\n", v.MinReturn, v.MaxReturn)
	return nil
}
