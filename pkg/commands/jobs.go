package commands

import (
	"github.com/spf13/cobra"

	"baitonavi/pkg/catalog"
	"baitonavi/pkg/printers"
	"baitonavi/pkg/store"
)

func addJobs(topLevel *cobra.Command) {
	showIndex := false
	urgentOnly := false
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "list the job catalog",
		Example: `
baitonavi jobs
baitonavi jobs --urgent
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.Open(nil)
			if err != nil {
				return err
			}
			c, err := s.LoadCatalog()
			if err != nil {
				return err
			}

			records := c.Records()
			if urgentOnly {
				kept := make([]catalog.JobRecord, 0, len(records))
				for _, rec := range records {
					if rec.Urgent {
						kept = append(kept, rec)
					}
				}
				records = kept
			}

			pp := &printers.PrettyPrint{ShowIndex: showIndex}
			pp.Title("求人一覧", len(records))
			pp.Listing(records...)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showIndex, "index", "i", false, "Show catalog positions.")
	cmd.Flags().BoolVarP(&urgentOnly, "urgent", "u", false, "Only show listings closing soon.")

	topLevel.AddCommand(cmd)
}
