package cli

import (
	"context"

	"github.com/spf13/cobra"

	"repominer/internal/github"
	"repominer/internal/logger"
	"repominer/internal/miner"
	"repominer/internal/report"
)

var (
	commitsRepoFlag string
	commitsMaxFlag  int
	commitsOutFlag  string
)

var fetchCommitsCmd = &cobra.Command{
	Use:   "fetch-commits",
	Short: "Fetch commits and save them to CSV",
	Long: `Fetches the commit history of a repository and normalises each commit
into a CSV row with columns: sha, author, email, date, message.
Rows preserve the order returned by the API.`,
	RunE: runFetchCommits,
}

// commitSource constructs the page fetcher used by fetch-commits.
// Package-level so tests can substitute a fake source.
var commitSource = func(ctx context.Context, token, owner, repo string, perPage int) miner.PageFetcher {
	return github.NewClient(ctx, token).Commits(owner, repo, perPage)
}

func init() {
	fetchCommitsCmd.Flags().StringVar(&commitsRepoFlag, "repo", "", "repository in owner/name form")
	fetchCommitsCmd.Flags().IntVar(&commitsMaxFlag, "max", 0, "maximum number of commits to fetch (0 = all)")
	fetchCommitsCmd.Flags().StringVar(&commitsOutFlag, "out", "", "path to the output CSV file")
	_ = fetchCommitsCmd.MarkFlagRequired("repo")
	_ = fetchCommitsCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(fetchCommitsCmd)
}

func runFetchCommits(cmd *cobra.Command, _ []string) error {
	owner, name, err := miner.ParseRepo(commitsRepoFlag)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	fetcher := commitSource(ctx, cfg.ResolveToken(tokenFlag), owner, name, cfg.PageSize())

	logger.Debug("fetching commits from %s/%s", owner, name)
	rows, err := miner.FetchCommits(ctx, fetcher, commitsMaxFlag)
	if err != nil {
		return err
	}
	logger.Info("fetched %d commits", len(rows))

	if err := report.SaveCommits(commitsOutFlag, rows); err != nil {
		return err
	}

	cmd.Printf("Saved %d commits to %s\n", len(rows), commitsOutFlag)
	return nil
}
