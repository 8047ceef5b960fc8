package cli

import (
	"os"

	"github.com/spf13/cobra"

	"svw.info/minesweeper/internal/buildinfo"
	"svw.info/minesweeper/internal/config"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// rootOptions are the flags shared by every subcommand.
type rootOptions struct {
	configPath string
	logLevel   string
	dataDir    string
	journal    string
	seed       int64
	lang       string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "minesweeper",
		Short:         "Minesweeper in the browser or the terminal",
		Version:       buildinfo.String(),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	pf.StringVar(&opts.logLevel, "log-level", "", "debug|info|warn|error")
	pf.StringVar(&opts.dataDir, "data-dir", "", "directory for the journal and logs")
	pf.StringVar(&opts.journal, "journal", "", "finished-game journal: none|fs|sqlite")
	pf.Int64Var(&opts.seed, "seed", 0, "board seed (0 = random)")
	pf.StringVar(&opts.lang, "lang", "", "status text language (en, es, pt-BR)")

	cmd.AddCommand(
		newServeCmd(opts),
		newPlayCmd(opts),
		newHistoryCmd(opts),
	)
	return cmd
}

// load reads the config file and environment, then applies explicit flags.
func (o *rootOptions) load(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("data-dir") {
		cfg.DataDir = o.dataDir
	}
	if flags.Changed("journal") {
		cfg.Journal = o.journal
	}
	if flags.Changed("seed") {
		cfg.Seed = o.seed
	}
	if flags.Changed("lang") {
		cfg.Language = o.lang
	}
	return cfg, cfg.Validate()
}
