package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"siliconguide.io/silicon-guide/internal/config"
	"siliconguide.io/silicon-guide/internal/logging"
)

var (
	// Global flags
	verbose bool

	cfg    = config.Default()
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "siliconguide",
	Short: "Silicon Guide - semiconductor handbook tutor",
	Long: `Silicon Guide serves the semiconductor handbook together with a tutor that
answers questions from a fixed response table, a research helper and study aids.

Run "siliconguide serve" to start the HTTP API, or use the other commands to
query the tutor from the terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadConfig()
		if err != nil {
			return err
		}
		if verbose {
			loaded.LogLevel = "debug"
		}
		l, err := logging.New(loaded.LogLevel)
		if err != nil {
			return err
		}
		cfg, logger = loaded, l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	askCmd.Flags().BoolVar(&askPlain, "plain", false, "print the raw reply without terminal styling")
	askCmd.Flags().StringVar(&askStyle, "style", "", "glamour style (dark, light, notty, ...)")
	discoverCmd.Flags().StringVarP(&discoverType, "type", "t", "all", "only show results of this type (handbook, web, paper, news)")
	pathCmd.Flags().StringVar(&pathOrigin, "origin", "http://localhost:8080", "base url for handbook links")
	summaryCmd.Flags().StringVarP(&summaryResource, "resource", "r", "", "summarize a handbook resource instead of the session")
	chaptersCmd.Flags().StringVarP(&chaptersSection, "section", "s", "", "only list chapters in this section")

	rootCmd.AddCommand(serveCmd, askCmd, discoverCmd, pathCmd, summaryCmd, chaptersCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
