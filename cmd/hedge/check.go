package main

import (
	"fmt"

	"github.com/fystack/range-hedge/pkg/hedge"
	"github.com/spf13/cobra"
)

type checkView struct {
	Ranges  []string      `json:"ranges"            yaml:"ranges"`
	Invalid string        `json:"invalid,omitempty" yaml:"invalid,omitempty"`
	Issues  []hedge.Issue `json:"issues"            yaml:"issues"`
}

func newCheckCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the input and report overlapping, inverted or missing ranges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSession(cmd, root)
			if err != nil {
				return err
			}

			v := checkView{
				Ranges: rangeSpecs(s.input.Ranges),
				Issues: hedge.CheckPartition(s.input.Ranges),
			}
			if v.Issues == nil {
				v.Issues = []hedge.Issue{}
			}
			validErr := s.input.Validate()
			if validErr != nil {
				v.Invalid = validErr.Error()
			}

			w := cmd.OutOrStdout()
			if s.format.IsStructured() {
				if err := writeStructured(w, s.format, v); err != nil {
					return err
				}
			} else {
				if validErr != nil {
					fmt.Fprintf(w, "invalid input: %v\n", validErr)
				}
				for _, issue := range v.Issues {
					fmt.Fprintln(w, issue.String())
				}
				if validErr == nil && len(v.Issues) == 0 {
					fmt.Fprintf(w, "%d ranges OK\n", len(v.Ranges))
				}
			}

			if validErr != nil {
				return validErr
			}
			if len(v.Issues) > 0 {
				return fmt.Errorf("%d partition issue(s)", len(v.Issues))
			}
			return nil
		},
	}
}
