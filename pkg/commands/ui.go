package commands

import (
	"github.com/spf13/cobra"

	"baitonavi/pkg/store"
	"baitonavi/pkg/tui/app"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
baitonavi ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			s, err := store.Open(cfg)
			if err != nil {
				return err
			}
			c, err := s.LoadCatalog()
			if err != nil {
				return err
			}
			return app.Run(c, cfg)
		},
	}

	topLevel.AddCommand(cmd)
}
