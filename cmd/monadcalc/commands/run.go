// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"code.hybscloud.com/monad/internal/pipeline"
)

func newRunCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Run a pipeline and print its report",
		Example: `  # Run a pipeline
  monadcalc run ./pipeline.yaml

  # Print the report as JSON
  monadcalc run --json ./pipeline.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := pipeline.Load(args[0])
			if err != nil {
				return err
			}
			if err := pipeline.Validate(def); err != nil {
				return err
			}

			rep := pipeline.NewRunner(log.Logger).Run(def)

			out := cmd.OutOrStdout()
			if jsonOutput {
				err = writeJSON(out, rep)
			} else {
				err = writeText(out, rep)
			}
			if err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
			if rep.Err != nil {
				return fmt.Errorf("pipeline %q failed: %w", rep.Name, rep.Err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")

	return cmd
}

type stepView struct {
	pipeline.StepTrace
	Error string `json:"error,omitempty"`
}

type reportView struct {
	Name  string     `json:"name"`
	Value *float64   `json:"value,omitempty"`
	Error string     `json:"error,omitempty"`
	Trace []stepView `json:"trace"`
}

func writeJSON(w io.Writer, rep pipeline.Report) error {
	view := reportView{Name: rep.Name, Trace: make([]stepView, 0, len(rep.Trace))}
	if rep.Err != nil {
		view.Error = rep.Err.Error()
	} else {
		view.Value = &rep.Value
	}
	for _, tr := range rep.Trace {
		sv := stepView{StepTrace: tr}
		if tr.Err != nil {
			sv.Error = tr.Err.Error()
		}
		view.Trace = append(view.Trace, sv)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(view)
}

func writeText(w io.Writer, rep pipeline.Report) error {
	for _, tr := range rep.Trace {
		var err error
		switch {
		case tr.Err == nil:
			_, err = fmt.Fprintf(w, "%2d %-8s %g\n", tr.Index, tr.Op, tr.Value)
		case tr.Recovered:
			_, err = fmt.Fprintf(w, "%2d %-8s %g (recovered: %v)\n", tr.Index, tr.Op, tr.Value, tr.Err)
		default:
			_, err = fmt.Fprintf(w, "%2d %-8s error: %v\n", tr.Index, tr.Op, tr.Err)
		}
		if err != nil {
			return err
		}
	}
	if rep.Err != nil {
		_, err := fmt.Fprintf(w, "%s: failed\n", rep.Name)
		return err
	}
	_, err := fmt.Fprintf(w, "%s = %g\n", rep.Name, rep.Value)
	return err
}
