package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tinte/internal/logger"
	"github.com/alexisbeaulieu97/tinte/internal/override"
	"github.com/alexisbeaulieu97/tinte/internal/provider"
)

type rootFlags struct {
	verbose bool
	logJSON bool
}

// app carries the collaborators built once flags are parsed.
type app struct {
	log        *logger.Logger
	service    *provider.Service
	normalizer *override.Normalizer
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	a := &app{}

	cmd := &cobra.Command{
		Use:           "tinte",
		Short:         "Tinte converts one canonical theme into editor and design-tool themes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd, flags)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.logJSON, "log-json", false, "Write logs as JSON")

	cmd.AddCommand(newConvertCmd(a))
	cmd.AddCommand(newExportCmd(a))
	cmd.AddCommand(newValidateCmd(a))
	cmd.AddCommand(newPreviewCmd(a))
	cmd.AddCommand(newDiffCmd(a))
	cmd.AddCommand(newMigrateCmd(a))
	cmd.AddCommand(newEditCmd(a))
	cmd.AddCommand(newProvidersCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (a *app) init(cmd *cobra.Command, flags *rootFlags) error {
	level := "warn"
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: !flags.logJSON,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	a.log = log
	a.service = provider.NewService(provider.NewDefaultRegistry(log), log)
	a.normalizer = override.NewNormalizer(log)
	return nil
}
