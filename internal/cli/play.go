package cli

import (
	"github.com/spf13/cobra"

	"svw.info/minesweeper/internal/adapters/tui"
	"svw.info/minesweeper/internal/i18n"
	"svw.info/minesweeper/internal/infrastructure/logger"
)

func newPlayCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}

			// The TUI owns the terminal, so logs go to a file.
			log, closeLog, lerr := logger.Setup(logger.Config{Level: cfg.LogLevel, Dir: cfg.DataDir})
			if lerr != nil {
				log = logger.Discard()
			}
			defer func() { _ = closeLog() }()

			uc, closeJournal, err := buildService(cfg, log)
			if err != nil {
				return err
			}
			defer func() { _ = closeJournal() }()

			lang := i18n.Default()
			if cfg.Language != "" {
				lang = i18n.Match(cfg.Language)
			}
			return tui.Run(tui.Deps{UC: uc, Logger: log, Lang: lang})
		},
	}
}
