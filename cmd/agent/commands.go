package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/Triva-Elevate/triva-datapublishagent/internal/agent"
	"github.com/Triva-Elevate/triva-datapublishagent/internal/config"
	"github.com/Triva-Elevate/triva-datapublishagent/internal/logger"
	"github.com/Triva-Elevate/triva-datapublishagent/models"
)

const appName = "triva-dpa"

// commandFunc is one agent command run on an opened App.
type commandFunc func(ctx context.Context, app agent.Commands) error

func newRootCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:           appName,
		Short:         "TRIVA data publish agent",
		Long:          "Replicates TRIVA workforce data into a local PostgreSQL or SQLite database.",
		Version:       buildInfo.BuildVersion(),
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.SetVersionTemplate(buildInfo.String())

	flagCfg := config.BindFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newCommand("schemaupdate", "Create or migrate the database schema", flagCfg, buildInfo,
			func(ctx context.Context, app agent.Commands) error { return app.SchemaUpdate(ctx) }),
		newCommand("schemacheck", "Check the database schema version", flagCfg, buildInfo,
			func(ctx context.Context, app agent.Commands) error { return app.SchemaCheck(ctx) }),
		newCommand("syncreset", "Clear sync checkpoints so the next update pulls everything", flagCfg, buildInfo,
			func(ctx context.Context, app agent.Commands) error { return app.SyncReset(ctx) }),
		newUpdateCmd(flagCfg, buildInfo),
		newVersionCmd(buildInfo),
	)

	return cmd
}

func newUpdateCmd(flagCfg *config.StructuredConfig, buildInfo models.AppBuildInfo) *cobra.Command {
	cmd := newCommand("update", "Pull TRIVA changes into the database, once or every --repeat minutes", flagCfg, buildInfo,
		func(ctx context.Context, app agent.Commands) error { return app.Update(ctx) })
	config.BindUpdateFlags(cmd.Flags(), flagCfg)
	return cmd
}

func newVersionCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Print(buildInfo.String())
		},
	}
}

func newCommand(use, short string, flagCfg *config.StructuredConfig, buildInfo models.AppBuildInfo, run commandFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCommand(cmd.Context(), use, flagCfg, buildInfo, run)
		},
	}
}

// runCommand loads the configuration, opens the App and runs one command.
// Every failure is logged here; the caller only maps it to the exit code.
func runCommand(ctx context.Context, name string, flagCfg *config.StructuredConfig, buildInfo models.AppBuildInfo, run commandFunc) error {
	cfg, err := config.Load(flagCfg)
	if err != nil {
		log := logger.NewLogger(appName)
		log.Error().Err(err).Msg("error getting configs")
		return err
	}

	log := logger.NewLogger(appName, logger.WithLevel(cfg.Log.Level), logger.WithFile(cfg.Log.File)).
		Child("command", name)
	log.Info().
		Str("build_version", buildInfo.BuildVersion()).
		Str("build_date", buildInfo.BuildDate()).
		Str("build_commit", buildInfo.BuildCommit()).
		Msg("starting")
	ctx = log.WithContext(ctx)

	app, err := agent.Open(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("error initialising agent")
		return err
	}
	defer func() {
		if cerr := app.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("error closing database")
		}
	}()

	if err = run(ctx, app); err != nil {
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			log.Info().Msg("interrupted")
			return nil
		}
		log.Error().Err(err).Msgf("error during %s", name)
		return err
	}
	return nil
}
