package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"kgeyst.com/muse/pkg/common"
	"kgeyst.com/muse/pkg/muse/api"
)

var rootCmd = &cobra.Command{
	Use:   "muse",
	Short: "Muse is a poetry assistant",
	Long: `Muse writes poems and reworks them on request. Every line you type is a query;
lines starting with ':' are commands (type :help to list them).`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}
		return runConsole(cmd.Context(), configPath)
	},
}

func init() {
	rootCmd.Flags().String("config", "config.yaml", "Path to the YAML config")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runConsole(ctx context.Context, configPath string) error {
	common.LoadDotEnv()
	config, err := common.LoadConfigOrEmpty(configPath)
	if err != nil {
		return err
	}
	logger := common.NewFileLogger(
		config.GetStringOrDefault(api.ConfigKeyLogPath, "log.txt"),
		config.GetStringOrDefault(api.ConfigKeyLogLevel, "info"),
	)
	muse, err := api.NewAPI(config, logger)
	if err != nil {
		return err
	}
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer func() {
		_ = rl.Close()
	}()
	session := newSession(muse, config.GetStringOrDefault("userName", "John"), rl.Stdout())
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF, readline.ErrInterrupt
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ":quit" {
			break
		}
		session.handle(ctx, line)
	}
	return nil
}
