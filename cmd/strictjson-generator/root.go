package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app holds state shared by the subcommands of one invocation.
type app struct {
	logLevel  string
	logFormat string
	log       *logrus.Entry
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "strictjson-generator",
		Short:         "`strictjson-generator` generates strict JSON object deserializers",
		Long:          "`strictjson-generator` generates strict JSON object deserializers for Go record types",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.configureLogging(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "log format (text, json)")

	root.AddCommand(
		newAnalyzeCmd(a),
		newPlanCmd(a),
		newCheckCmd(a),
		newGenCmd(a),
	)

	return root
}

// configureLogging builds the logger of this invocation. Logs go to the
// command's error stream; results go to its output stream.
func (a *app) configureLogging(cmd *cobra.Command) error {
	level, err := logrus.ParseLevel(a.logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(level)

	switch a.logFormat {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		})
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: time.RFC3339Nano,
		})
	default:
		return fmt.Errorf("unsupported logging formatter: %q", a.logFormat)
	}

	a.log = logrus.NewEntry(logger).WithField("command", cmd.Name())

	return nil
}
