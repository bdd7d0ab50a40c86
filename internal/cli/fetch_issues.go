package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"repominer/internal/github"
	"repominer/internal/logger"
	"repominer/internal/miner"
	"repominer/internal/report"
)

var (
	issuesRepoFlag  string
	issuesStateFlag string
	issuesMaxFlag   int
	issuesOutFlag   string
)

var fetchIssuesCmd = &cobra.Command{
	Use:   "fetch-issues",
	Short: "Fetch issues and save them to CSV",
	Long: `Fetches the issue history of a repository and normalises each issue
into a CSV row with columns: id, number, title, user, state, created_at,
closed_at, comments, open_duration_days.
Pull requests are excluded and never count toward --max.`,
	RunE: runFetchIssues,
}

// issueSource constructs the page fetcher used by fetch-issues.
// Package-level so tests can substitute a fake source.
var issueSource = func(ctx context.Context, token, owner, repo, state string, perPage int) miner.PageFetcher {
	return github.NewClient(ctx, token).Issues(owner, repo, state, perPage)
}

func init() {
	fetchIssuesCmd.Flags().StringVar(&issuesRepoFlag, "repo", "", "repository in owner/name form")
	fetchIssuesCmd.Flags().StringVar(&issuesStateFlag, "state", "all", "filter issues by state: open, closed or all")
	fetchIssuesCmd.Flags().IntVar(&issuesMaxFlag, "max", 0, "maximum number of issues to fetch (0 = all)")
	fetchIssuesCmd.Flags().StringVar(&issuesOutFlag, "out", "", "path to the output CSV file")
	_ = fetchIssuesCmd.MarkFlagRequired("repo")
	_ = fetchIssuesCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(fetchIssuesCmd)
}

func runFetchIssues(cmd *cobra.Command, _ []string) error {
	owner, name, err := miner.ParseRepo(issuesRepoFlag)
	if err != nil {
		return err
	}

	switch issuesStateFlag {
	case "open", "closed", "all":
	default:
		return fmt.Errorf("invalid --state %q: must be open, closed or all", issuesStateFlag)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	fetcher := issueSource(ctx, cfg.ResolveToken(tokenFlag), owner, name, issuesStateFlag, cfg.PageSize())

	logger.Debug("fetching %s issues from %s/%s", issuesStateFlag, owner, name)
	rows, err := miner.FetchIssues(ctx, fetcher, issuesMaxFlag)
	if err != nil {
		return err
	}
	logger.Info("fetched %d issues", len(rows))

	if err := report.SaveIssues(issuesOutFlag, rows); err != nil {
		return err
	}

	cmd.Printf("Saved %d issues to %s\n", len(rows), issuesOutFlag)
	return nil
}
