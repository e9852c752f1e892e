package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fystack/range-hedge/pkg/common/logger"
	"github.com/fystack/range-hedge/pkg/hedge"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func rangeSpecs(ranges []hedge.Range) []string {
	return lo.Map(ranges, func(r hedge.Range, _ int) string {
		return r.String()
	})
}

// parseSet reads "index.field=value", e.g. "1.odds=3.5". Indexes are 0-based.
func parseSet(expr string) (int, hedge.Field, float64, error) {
	target, value, ok := strings.Cut(expr, "=")
	if !ok {
		return 0, "", 0, fmt.Errorf("set %q: want index.field=value", expr)
	}
	idx, field, ok := strings.Cut(target, ".")
	if !ok {
		return 0, "", 0, fmt.Errorf("set %q: want index.field=value", expr)
	}
	i, err := strconv.Atoi(strings.TrimSpace(idx))
	if err != nil {
		return 0, "", 0, fmt.Errorf("set %q: index: %w", expr, err)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, "", 0, fmt.Errorf("set %q: value: %w", expr, err)
	}
	return i, hedge.Field(strings.TrimSpace(field)), v, nil
}

func newRangesCmd(root *rootOptions) *cobra.Command {
	var (
		add    int
		remove []int
		set    []string
	)

	cmd := &cobra.Command{
		Use:   "ranges",
		Short: "Edit a range list and print it back as --range flags",
		Long: `Applies edits in order: --set, then --remove, then --add.
--add appends ranges after the last one, 10 numbers wide at odds 2.
The last remaining range cannot be removed.

  hedge ranges -r 1-10@2 --add 2 --set 0.odds=1.5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSession(cmd, root)
			if err != nil {
				return err
			}
			sheet := hedge.SheetFromInput(s.input)

			for _, expr := range set {
				i, field, v, err := parseSet(expr)
				if err != nil {
					return err
				}
				if sheet, err = sheet.Update(i, field, v); err != nil {
					return err
				}
			}
			for _, i := range remove {
				if sheet, err = sheet.Remove(i); err != nil {
					return err
				}
			}
			for range add {
				sheet = sheet.Add()
			}

			logger.Debug("Ranges edited", "set", len(set), "removed", len(remove), "added", add, "ranges", sheet.Len())
			specs := rangeSpecs(sheet.Ranges())
			w := cmd.OutOrStdout()
			if s.format.IsStructured() {
				return writeStructured(w, s.format, map[string][]string{"ranges": specs})
			}
			for _, spec := range specs {
				fmt.Fprintf(w, "--range %s ", spec)
			}
			fmt.Fprintln(w)
			return nil
		},
	}

	cmd.Flags().IntVar(&add, "add", 0, "Append this many ranges")
	cmd.Flags().IntSliceVar(&remove, "remove", nil, "Remove the range at this 0-based index, repeatable")
	cmd.Flags().StringArrayVar(&set, "set", nil, "Set a field: index.field=value with field start, end or odds")
	return cmd
}
