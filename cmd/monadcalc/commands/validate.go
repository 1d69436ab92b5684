// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"code.hybscloud.com/monad/internal/pipeline"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a pipeline definition without running it",
		Long: `Validate a pipeline definition.

This command checks:
  - YAML syntax and unknown fields
  - Required fields and known ops
  - Operands required by each op`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			log.Debug().Str("path", path).Msg("Validating pipeline")

			def, err := pipeline.Load(path)
			if err != nil {
				return err
			}
			if err := pipeline.Validate(def); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d steps ok\n", def.Name, len(def.Steps))
			return err
		},
	}
}
