package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/whyrusleeping/hellabot"

	"kgeyst.com/muse/pkg/common"
	"kgeyst.com/muse/pkg/muse/api"
)

var rootCmd = &cobra.Command{
	Use:   "muse-irc",
	Short: "Muse as an IRC bot",
	Long: `Connects to the configured IRC server and answers messages addressed to the bot
("<agentName>, write a haiku about rain"). Every nick gets a conversation of its own.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}
		return runBot(configPath)
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

func runBot(configPath string) error {
	common.LoadDotEnv()
	config, err := common.LoadConfigOrEmpty(configPath)
	if err != nil {
		return err
	}
	agentName := config.GetStringOrDefault("agentName", "Muse")
	roomName := config.GetStringOrDefault("roomName", "MuseRoom")
	serverName := config.GetStringOrDefault("serverName", "irc.euirc.net:6667")
	logger := common.NewFileLogger(
		config.GetStringOrDefault(api.ConfigKeyLogPath, "log.txt"),
		config.GetStringOrDefault(api.ConfigKeyLogLevel, "info"),
	)
	muse, err := api.NewAPI(config, logger)
	if err != nil {
		return err
	}
	jobQueue := common.NewJobQueue(logger)
	defer jobQueue.Stop()
	ircBot, err := hbot.NewBot(serverName, agentName)
	if err != nil {
		return err
	}
	handler := newMessageHandler(muse, agentName, jobQueue)
	ircBot.AddTrigger(hbot.Trigger{
		Condition: func(b *hbot.Bot, m *hbot.Message) bool {
			return m.Command == "PRIVMSG" && len(m.To) > 0 && m.To[0] == '#'
		},
		Action: func(b *hbot.Bot, m *hbot.Message) bool {
			return handler.handle(m.From, m.Content, func(line string) {
				b.Reply(m, line)
			})
		},
	})
	ircBot.Channels = []string{"#" + roomName}
	ircBot.Run()
	return nil
}
