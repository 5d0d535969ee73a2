package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zhubert/nexus/internal/logger"
)

var clearLogsCmd = &cobra.Command{
	Use:   "clear-logs",
	Short: "Remove the debug log file",
	RunE:  runClearLogs,
}

func init() {
	rootCmd.AddCommand(clearLogsCmd)
}

func runClearLogs(cmd *cobra.Command, args []string) error {
	// A broken config file should not prevent clearing the default log
	cfg, err := loadConfig()
	if err != nil {
		cfg = nil
	}
	path := logFilePath(cfg)

	removed, err := logger.ClearLogs(path)
	if err != nil {
		return fmt.Errorf("error clearing logs: %w", err)
	}
	if removed == 0 {
		fmt.Println("No log files found.")
		return nil
	}
	fmt.Printf("Removed %s\n", path)
	return nil
}
