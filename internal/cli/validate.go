package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/legwise/legwise/internal/catalog"
)

func (a *app) newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check a catalog file for structural errors.",
		Long: `Validate loads the catalog and reports every rule it breaks:
non-empty groups, unique leg ids, known modes, non-negative numbers and
segment times that add up to the leg time.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			c, err := a.loadCatalog()
			if err != nil {
				var verr *catalog.ValidationError
				if errors.As(err, &verr) {
					for _, v := range verr.Violations {
						if _, werr := fmt.Fprintf(out, "  %s: %s\n", v.Field, v.Message); werr != nil {
							return werr
						}
					}
				}
				return err
			}

			_, err = fmt.Fprintf(out, "catalog OK: %d first-mile, 1 main leg, %d last-mile options\n", len(c.FirstMile), len(c.LastMile))
			return err
		},
	}
}
