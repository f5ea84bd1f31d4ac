package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"siliconguide.io/silicon-guide/internal/assistant"
	"siliconguide.io/silicon-guide/internal/core"
	"siliconguide.io/silicon-guide/internal/discovery"
	"siliconguide.io/silicon-guide/internal/handbook"
	"siliconguide.io/silicon-guide/internal/render"
	"siliconguide.io/silicon-guide/internal/study"
)

var (
	askPlain        bool
	askStyle        string
	discoverType    string
	pathOrigin      string
	summaryResource string
	chaptersSection string
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the tutor a question",
	Example: `  siliconguide ask "what should I study next?"
  siliconguide ask --plain tell me about semiconductor physics`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

var discoverCmd = &cobra.Command{
	Use:   "discover [query]",
	Short: "Search the handbook and outside material",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDiscover,
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the recommended learning path",
	Args:  cobra.NoArgs,
	RunE:  runPath,
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the session summary, or a resource summary with --resource",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

var chaptersCmd = &cobra.Command{
	Use:   "chapters",
	Short: "List handbook chapters",
	Args:  cobra.NoArgs,
	RunE:  runChapters,
}

func terminal(text string) string {
	if askPlain {
		return text + "\n"
	}
	return render.Terminal(text, askStyle, 0)
}

func runAsk(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	if strings.TrimSpace(query) == "" {
		return core.ErrEmptyQuery
	}

	resp := assistant.Default().Classify(query, assistant.Context{})
	out := cmd.OutOrStdout()
	fmt.Fprint(out, terminal(resp.Text))
	if len(resp.Citations) > 0 {
		fmt.Fprintln(out, "\nSources:")
		for _, c := range resp.Citations {
			if c.URL != "" {
				fmt.Fprintf(out, "  - %s (%s)\n", c.Title, c.URL)
			} else {
				fmt.Fprintf(out, "  - %s\n", c.Title)
			}
		}
	}
	return nil
}

func runDiscover(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	agent := discovery.New(discovery.WithMaxResults(cfg.Discovery.MaxResults))
	results, err := agent.Search(query)
	if err != nil {
		return err
	}
	results = discovery.FilterByType(results, discovery.ResultType(discoverType))
	if len(results) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No %s results for %q\n", discoverType, query)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), discovery.FormatText(query, results, pathOrigin))
	return nil
}

func runPath(cmd *cobra.Command, _ []string) error {
	fmt.Fprint(cmd.OutOrStdout(), study.FormatLearningPath(study.LearningPath(), pathOrigin))
	return nil
}

func runSummary(cmd *cobra.Command, _ []string) error {
	if summaryResource == "" {
		fmt.Fprint(cmd.OutOrStdout(), terminal(study.SessionSummary()))
		return nil
	}

	hb, err := handbook.Open(cfg.Handbook.Path, logger)
	if err != nil {
		return err
	}
	res, err := hb.Resource(summaryResource)
	if err != nil {
		if errors.Is(err, handbook.ErrResourceNotFound) {
			return fmt.Errorf("no resource %q in the handbook", summaryResource)
		}
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), terminal(study.SummarizeResource(res)))
	return nil
}

func runChapters(cmd *cobra.Command, _ []string) error {
	hb, err := handbook.Open(cfg.Handbook.Path, logger)
	if err != nil {
		return err
	}

	var chapters []handbook.ChapterSummary
	if chaptersSection == "" {
		chapters = hb.Chapters()
	} else {
		for _, ch := range hb.ChaptersBySection(chaptersSection) {
			chapters = append(chapters, ch.Summary())
		}
		if len(chapters) == 0 {
			return fmt.Errorf("no chapters in section %q", chaptersSection)
		}
	}
	return writeChapters(cmd.OutOrStdout(), chapters)
}

func writeChapters(w io.Writer, chapters []handbook.ChapterSummary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tSECTION\tRESOURCES")
	for _, ch := range chapters {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", ch.ID, ch.Title, ch.Section, ch.ResourceCount)
	}
	return tw.Flush()
}
