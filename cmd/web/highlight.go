package main

import (
	"github.com/spf13/cobra"

	"github.com/jammehabdou64/documentation/internal/content"
)

func newHighlightCSSCmd() *cobra.Command {
	var style string
	cmd := &cobra.Command{
		Use:   "highlight-css",
		Short: "Print the code highlighting stylesheet served at /assets/css/chroma.css",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return content.WriteHighlightCSS(cmd.OutOrStdout(), style)
		},
	}
	cmd.Flags().StringVar(&style, "style", content.HighlightStyle, "chroma style name")
	return cmd
}
