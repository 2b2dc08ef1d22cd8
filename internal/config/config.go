package config

import (
	"os"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Backend BackendConfig
	Feed    FeedConfig
	Bot     BotConfig
	Runtime RuntimeConfig
}

type BackendConfig struct {
	BaseUrl string
}

type FeedConfig struct {
	WSUrl string
}

type BotConfig struct {
	Symbol   string
	Leverage int
	Isolated bool
}

type RuntimeConfig struct {
	StorePath string
	HTTPAddr  string
	Log       LogConfig
}

type LogConfig struct {
	Level      string
	Format     string
	File       string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

func Load() (*Config, error) {

	cfg := &Config{}
	viper.AddConfigPath("configs")
	viper.SetConfigName("config")
	viper.ReadInConfig()

	viper.SetDefault("backend.base_url", "http://localhost:8080")
	viper.SetDefault("feed.ws_url", "wss://stream.binance.com:9443/ws")
	viper.SetDefault("bot.symbol", "BTCUSDC")
	viper.SetDefault("bot.leverage", 20)
	viper.SetDefault("bot.isolated", false)
	viper.SetDefault("runtime.store_path", "data/highlight")
	viper.SetDefault("runtime.http_addr", ":9980")

	cfg.Backend = BackendConfig{
		BaseUrl: envSub("backend.base_url"),
	}

	cfg.Feed = FeedConfig{
		WSUrl: envSub("feed.ws_url"),
	}

	cfg.Bot = BotConfig{
		Symbol:   viper.GetString("bot.symbol"),
		Leverage: viper.GetInt("bot.leverage"),
		Isolated: viper.GetBool("bot.isolated"),
	}

	cfg.Runtime = RuntimeConfig{
		StorePath: viper.GetString("runtime.store_path"),
		HTTPAddr:  viper.GetString("runtime.http_addr"),
		Log: LogConfig{
			Level:      viper.GetString("runtime.log.level"),
			Format:     viper.GetString("runtime.log.format"),
			File:       viper.GetString("runtime.log.file"),
			MaxSize:    viper.GetInt("runtime.log.max_size"),
			MaxBackups: viper.GetInt("runtime.log.max_backups"),
			MaxAge:     viper.GetInt("runtime.log.max_age"),
			Compress:   viper.GetBool("runtime.log.compress"),
		},
	}

	return cfg, nil
}

func envSub(key string) string {
	val := viper.GetString(key)
	if val == "" {
		return ""
	}

	re := regexp.MustCompile(`\$\{(\w+)\}`)
	return re.ReplaceAllStringFunc(val, func(match string) string {
		envKey := strings.TrimSuffix(strings.TrimPrefix(match, "${"), "}")
		return os.Getenv(envKey)
	})
}
