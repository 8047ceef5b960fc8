package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpadapter "svw.info/minesweeper/internal/adapters/http"
	"svw.info/minesweeper/internal/i18n"
	"svw.info/minesweeper/internal/infrastructure/logger"
	"svw.info/minesweeper/web"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the game to browsers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}

			log, closeLog, _ := logger.Setup(logger.Config{Level: cfg.LogLevel, Out: cmd.OutOrStdout()})
			defer func() { _ = closeLog() }()

			uc, closeJournal, err := buildService(cfg, log)
			if err != nil {
				return err
			}
			defer func() { _ = closeJournal() }()

			tmpl, err := web.Templates()
			if err != nil {
				return err
			}
			static, err := web.StaticFS()
			if err != nil {
				return err
			}

			h := httpadapter.New(uc)
			if cfg.Language != "" {
				h.Lang = i18n.Match(cfg.Language)
			}
			srv := &http.Server{
				Addr:              cfg.Addr,
				Handler:           httpadapter.Routes(h, httpadapter.Assets{Templates: tmpl, Static: static}, log),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdownCtx)
			}()

			log.Info("listening", "addr", cfg.Addr, "journal", cfg.Journal, "data", cfg.DataDir)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("server error", "err", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}
