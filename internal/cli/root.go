// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-sealed-prefs/internal/app"
	"github.com/MKhiriev/go-sealed-prefs/internal/config"
	"github.com/MKhiriev/go-sealed-prefs/internal/logger"
	"github.com/MKhiriev/go-sealed-prefs/internal/vault"
	"github.com/MKhiriev/go-sealed-prefs/models"
)

const role = "sealctl"

type appFactory func(ctx context.Context, cfg *config.StructuredConfig, prompt vault.PassphraseFunc, log *logger.Logger) (*app.App, error)

// deps are the side effects of the command tree, replaced in tests.
type deps struct {
	newApp    appFactory
	newLogger func(cfg config.Log) (*logger.Logger, error)
	prompt    vault.PassphraseFunc
	clipboard func(text string) error
}

// rootCommand carries state shared by every subcommand of one run.
type rootCommand struct {
	cmd       *cobra.Command
	flags     *config.Flags
	ephemeral bool
	deps      deps

	app    *app.App
	logger *logger.Logger
}

// Execute runs the sealctl command tree with os.Args and releases the
// application afterwards, whether the command succeeded or not.
func Execute(ctx context.Context, info models.AppBuildInfo) error {
	return newRootCommand(info, deps{
		newApp:    app.NewApp,
		newLogger: newLogger,
		prompt:    terminalPrompt(os.Stderr),
		clipboard: clipboard.WriteAll,
	}).execute(ctx)
}

func newRootCommand(info models.AppBuildInfo, d deps) *rootCommand {
	r := &rootCommand{deps: d}

	r.cmd = &cobra.Command{
		Use:   "sealctl",
		Short: "Store secrets sealed with per-entry vault keys",
		Long: `sealctl keeps small secrets in a key-value store, each encrypted with
its own AES-256-GCM key held by the OS keyring or a passphrase-protected
vault file.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: r.setup,
	}

	r.flags = config.BindFlags(r.cmd.PersistentFlags())
	r.cmd.PersistentFlags().BoolVar(&r.ephemeral, "ephemeral", false, "Use an in-memory store and vault")

	r.cmd.AddCommand(
		r.newPutCommand(),
		r.newGetCommand(),
		r.newRemoveCommand(),
		r.newClearCommand(),
		r.newListCommand(),
		r.newKeysCommand(),
		r.newInspectCommand(),
		newVersionCommand(info),
	)

	return r
}

// execute runs the command and then tears down. cobra skips post-run hooks
// when RunE fails, so the app is closed here.
func (r *rootCommand) execute(ctx context.Context) error {
	err := r.cmd.ExecuteContext(ctx)
	return errors.Join(err, r.teardown())
}

func (r *rootCommand) setup(cmd *cobra.Command, _ []string) error {
	if r.ephemeral {
		r.flags.UseEphemeral()
	}

	cfg, err := config.GetStructuredConfig(r.flags)
	if err != nil {
		return err
	}

	r.logger, err = r.deps.newLogger(cfg.Log)
	if err != nil {
		return err
	}

	r.app, err = r.deps.newApp(cmd.Context(), cfg, r.deps.prompt, r.logger)
	return err
}

func (r *rootCommand) teardown() error {
	if r.app == nil {
		return nil
	}
	err := r.app.Close()
	r.app = nil
	return err
}

func newLogger(cfg config.Log) (*logger.Logger, error) {
	if cfg.File == "" {
		return logger.NewLogger(role, cfg.Level)
	}

	l, err := logger.NewFileLogger(role, cfg.Level, cfg.File)
	if l != nil && err != nil {
		l.Warn().Err(err).Str("func", "cli.newLogger").Msg("cannot open log file, logging to stderr")
		return l, nil
	}
	return l, err
}
