package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/footprint-map/internal/domain"
	"github.com/couchcryptid/footprint-map/internal/importer"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv|file.json>",
		Short: "Bulk-import visits from a CSV or JSON file",
		Long:  "Import visits from a column-oriented CSV (columns: name, latitude, longitude, color, note, timestamp) or a record-oriented JSON array with the same fields. Bad rows are reported and skipped; the rest of the batch is imported, rendered, and exported.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			sess := domain.NewSession(flagName)

			im := importer.New(a.logger, a.metrics)
			visits, failures, err := im.ImportFile(args[0])
			if err != nil {
				return err
			}

			for _, v := range visits {
				sess.Add(v)
			}

			printFailures(out, failures)
			printSummary(out, domain.Summarize(visits), len(failures))

			if sess.Len() == 0 {
				return nil
			}

			dir, err := saveSession(a, sess)
			if err != nil {
				return err
			}

			sess.SortByYear()
			printYearDistribution(out, sess)
			fmt.Fprintf(out, "Files saved to %s\n", dir)
			return nil
		},
	}
}
