package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/employee-playground/internal/greeting"
	"github.com/employee-playground/internal/playground"
	"github.com/employee-playground/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	logLevel  string
	logFormat string
	helloName string
)

var rootCmd = &cobra.Command{
	Use:   "playground",
	Short: "Employee record walkthrough",
	Long: `Runs the employee walkthrough and prints one line per step.

Logs go to stderr; walkthrough output goes to stdout.`,
	SilenceUsage: true,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Print the walkthrough, including the deferred fetch",
	Args:  cobra.NoArgs,
	RunE:  runWalkthrough,
}

var helloCmd = &cobra.Command{
	Use:   "hello",
	Short: "Render the greeting heading for a name",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := greeting.Render(cmd.OutOrStdout(), helloName); err != nil {
			return fmt.Errorf("render greeting: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "pretty", "log format (json, pretty)")
	helloCmd.Flags().StringVar(&helloName, "name", "", "name to greet")

	rootCmd.AddCommand(runCmd, helloCmd)
}

func runWalkthrough(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.NewWithWriter(cmd.ErrOrStderr(), logLevel, logFormat)
	return playground.New(cmd.OutOrStdout(), log).Run(ctx)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
