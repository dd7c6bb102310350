// Command docs-web serves the JCC-EXPRESS documentation site.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jammehabdou64/documentation/internal/config"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. configOpts are appended to every config.Load call.
func newRootCmd(configOpts ...config.Option) *cobra.Command {
	var envFile string

	load := func(cmd *cobra.Command) (config.Config, error) {
		opts := append([]config.Option{config.WithEnvFile(envFile)}, configOpts...)
		return config.Load(cmd.Context(), opts...)
	}

	root := &cobra.Command{
		Use:           "docs-web",
		Short:         "Serve the JCC-EXPRESS documentation site",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load(cmd)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file read with lower precedence than the environment")

	root.AddCommand(
		newServeCmd(load),
		newRoutesCmd(),
		newCheckCmd(load),
		newHighlightCSSCmd(),
	)
	return root
}

type configLoader func(cmd *cobra.Command) (config.Config, error)
