package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load initializes the configuration from file and environment
// variables.
func Load(cfgFile string) {
	// explicit .env loading; a missing .env is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("benchdash")
	}

	viper.SetEnvPrefix("BENCHDASH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	// Missing config file is not an error; defaults and env carry it.
	_ = viper.ReadInConfig()
}

func setDefaults() {
	viper.SetDefault("api.url", "http://127.0.0.1:8417")
	viper.SetDefault("api.port", 8417)
	viper.SetDefault("project", "")

	viper.SetDefault("session.file", defaultSessionPath())
	viper.SetDefault("session.poll_interval", "1s")

	viper.SetDefault("store.type", "sqlite")
	viper.SetDefault("store.dsn", "")

	viper.SetDefault("cache.redis_url", "")
	viper.SetDefault("cache.ttl", "5m")

	viper.SetDefault("notification.ttl", "4s")

	// Notification defaults mirror whether a Slack token is present.
	slackEnabled := os.Getenv("SLACK_BOT_USER_TOKEN") != ""
	viper.SetDefault("notifications.slack.enabled", slackEnabled)
	viper.SetDefault("notifications.slack.channel", "#general")

	viper.SetDefault("verbose", false)
	viper.SetDefault("log_file", "")
}

// defaultSessionPath is the single fixed durable-storage location the
// console persists its session under.
func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".benchdash/session.json"
	}
	return filepath.Join(home, ".benchdash", "session.json")
}
