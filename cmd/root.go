package cmd

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/zhubert/nexus/internal/app"
	"github.com/zhubert/nexus/internal/config"
	"github.com/zhubert/nexus/internal/conversation"
	"github.com/zhubert/nexus/internal/logger"
	"github.com/zhubert/nexus/internal/research"
)

var (
	debugMode             bool
	quietMode             bool
	endpointFlag          string
	pathFlag              string
	logFileFlag           string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "nexus",
	Short: "Terminal chat client for a multi-agent research service",
	Long: `Nexus is a terminal chat client for a multi-agent research service.
Each question is posted to the service together with the conversation so far,
and the agents' answer is rendered as Markdown in the thread.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initLogging)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().StringVar(&endpointFlag, "endpoint", "", "Research service base URL (overrides config and NEXUS_ENDPOINT)")
	rootCmd.PersistentFlags().StringVar(&pathFlag, "path", "", "Research service path (overrides config and NEXUS_PATH)")
	rootCmd.PersistentFlags().StringVar(&logFileFlag, "log-file", "", "Debug log location (default "+logger.DefaultLogPath+")")
}

func initLogging() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("nexus %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("nexus %s\n", version)
}

// loadConfig reads the config file and environment, layers the command-line
// flags on top, then validates the merged result
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return applyFlags(cfg)
}

func applyFlags(cfg *config.Config) (*config.Config, error) {
	if endpointFlag != "" {
		cfg.SetEndpoint(endpointFlag)
	}
	if pathFlag != "" {
		cfg.SetPath(pathFlag)
	}
	if logFileFlag != "" {
		cfg.SetLogFile(logFileFlag)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// logFilePath picks the log location: flag, then config, then the default
func logFilePath(cfg *config.Config) string {
	if cfg != nil && cfg.GetLogFile() != "" {
		return cfg.GetLogFile()
	}
	return logger.DefaultLogPath
}

// newController wires a fresh conversation to the research service. The
// controller and the client share one session ID so log lines and request
// headers correlate.
func newController(cfg *config.Config) *conversation.Controller {
	sessionID := uuid.New().String()
	client := research.NewClient(cfg.URL(), research.WithSessionID(sessionID))
	return conversation.NewController(
		conversation.NewStore(),
		client,
		conversation.WithSessionID(sessionID),
		conversation.WithLogger(logger.WithComponent("conversation")),
	)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if err := logger.Init(logFilePath(cfg)); err != nil {
		return fmt.Errorf("error opening log file: %w", err)
	}
	defer logger.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	logger.Info("nexus %s starting, research URL %s", version, cfg.URL())
	m := app.New(cfg, newController(cfg), version, app.WithContext(ctx))
	defer m.Close()
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		logger.Error("program exited: %v", err)
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
