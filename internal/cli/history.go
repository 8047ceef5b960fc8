package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"svw.info/minesweeper/internal/config"
	"svw.info/minesweeper/internal/domain"
	"svw.info/minesweeper/internal/infrastructure/logger"
)

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List finished games from the journal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if cfg.Journal == config.JournalNone {
				return fmt.Errorf("journal is disabled (use --journal fs|sqlite)")
			}
			uc, closeJournal, err := buildService(cfg, logger.Discard())
			if err != nil {
				return err
			}
			defer func() { _ = closeJournal() }()

			recs, err := uc.History(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(recs)
			}
			printPrettyHistory(out, recs)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func printPrettyHistory(w io.Writer, recs []domain.GameRecord) {
	fmt.Fprintf(w, "Games: %d\n", len(recs))
	if len(recs) == 0 {
		return
	}
	fmt.Fprintln(w)
	for _, r := range recs {
		fmt.Fprintf(w, "- [%s] %s\n", r.Outcome, r.ID)
		fmt.Fprintf(w, "  board: %dx%d/%d  seed: %d  moves: %d\n", r.Rows, r.Cols, r.Mines, r.Seed, r.Moves)
		fmt.Fprintf(w, "  finished: %s (%s)\n",
			r.FinishedAt.Local().Format(time.DateTime), r.FinishedAt.Sub(r.StartedAt).Round(time.Second))
	}
}
