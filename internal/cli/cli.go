package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"psteg/internal/logging"
	"psteg/pkg/config"
)

// appState is filled in before any subcommand runs, from the defaults, the --config file and the persistent flags
type appState struct {
	configFile    string
	logLevel      string
	cpuProfile    string
	memProfileDir string

	config      config.AppConfig
	logger      *logging.Logger
	cpuProfiler *cpuProfiler
	memProfiler *memProfiler
}

func NewRootCommand() *cobra.Command {
	rootCmd, _ := newRootCommand()
	return rootCmd
}

func newRootCommand() (*cobra.Command, *appState) {
	st := &appState{
		config: config.Default(),
		logger: logging.BuildLogger(io.Discard, slog.LevelError),
	}

	rootCmd := &cobra.Command{
		Use:           "psteg",
		Short:         "Hide and reveal secret text messages in images",
		Example:       "psteg encode --image source.png --message \"meet at noon\"\npsteg decode --image secret.png",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&st.configFile, "config", "", "YAML file with default settings, flags override its values")
	rootCmd.PersistentFlags().StringVar(&st.logLevel, "log-level", "info", "Log level, one of debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&st.cpuProfile, "cpu-profile", "", "Dump CPU profile into the supplied file")
	rootCmd.PersistentFlags().StringVar(&st.memProfileDir, "mem-profile-dir", "", "Dump memory profiles into the supplied directory")

	rootCmd.AddCommand(encodeImageCommand(st), decodeImageCommand(st), capacityCommand(st), serveAppCommand(st))
	return rootCmd, st
}

// Execute runs the command line and prints any error it ends with
func Execute() error {
	rootCmd, st := newRootCommand()
	err := rootCmd.Execute()
	if teardownErr := st.teardown(); teardownErr != nil {
		st.logger.WithError(teardownErr).Error("Error writing profiles")
	}
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func (s *appState) setup(cmd *cobra.Command) error {
	if s.configFile != "" {
		loaded, err := config.LoadFile(s.configFile)
		if err != nil {
			return fmt.Errorf("loading config file %s: %w", s.configFile, err)
		}
		s.config = loaded
	}
	if cmd.Flags().Changed("log-level") {
		s.config.LogLevel = s.logLevel
	}

	level, err := s.config.SlogLevel()
	if err != nil {
		return fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}
	s.logger = logging.BuildLogger(cmd.ErrOrStderr(), level)

	if s.cpuProfile != "" {
		if s.cpuProfiler, err = startCPUProfiler(s.cpuProfile); err != nil {
			return fmt.Errorf("starting CPU profiler: %w", err)
		}
	}
	if s.memProfileDir != "" {
		s.memProfiler = startMemProfiler(s.memProfileDir, MemorySampleRate)
	}
	return nil
}

func (s *appState) teardown() error {
	var errs []error
	if s.cpuProfiler != nil {
		errs = append(errs, s.cpuProfiler.stop())
		s.cpuProfiler = nil
	}
	if s.memProfiler != nil {
		errs = append(errs, s.memProfiler.stop())
		s.memProfiler = nil
	}
	return errors.Join(errs...)
}
