package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jammehabdou64/documentation/internal/nav"
	"github.com/jammehabdou64/documentation/internal/routes"
)

func newCheckCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate configuration, navigation, routes, content and templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load(cmd)
			if err != nil {
				return err
			}
			a, err := buildApp(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d routes, %d navigation links, %d pages\n",
				a.site.Routes().Len(),
				len(nav.Hrefs(a.site.Navigation())),
				len(routes.AllPages()),
			)
			return nil
		},
	}
}
