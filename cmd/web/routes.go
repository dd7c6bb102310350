package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jammehabdou64/documentation/internal/site"
)

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := site.New()
			if err != nil {
				return err
			}

			table := s.Routes()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PATH\tPAGE\tSHELL\tCANONICAL")
			for _, entry := range table.Entries() {
				canonical, _ := table.CanonicalPath(entry.Page)
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", entry.Path, entry.Page, entry.Page.Shell(), canonical)
			}
			return tw.Flush()
		},
	}
}
