package config

import (
	logger "consa/pkg/logger"

	"github.com/spf13/viper"
)

type Config struct {
	GeneralVersion       string `mapstructure:"GENERAL_VERSION"`
	Environment          string `mapstructure:"ENVIRONMENT"`
	ServerPort           int    `mapstructure:"SERVER_PORT"`
	DatabaseHost         string `mapstructure:"DB_HOST"`
	DatabasePort         int    `mapstructure:"DB_PORT"`
	DatabaseName         string `mapstructure:"DB_NAME"`
	DatabaseUser         string `mapstructure:"DB_USER"`
	DatabasePassword     string `mapstructure:"DB_PASSWORD"`
	DatabaseCacheAddress string `mapstructure:"DB_CACHE_ADDRESS"`
	DatabaseCachePort    int    `mapstructure:"DB_CACHE_PORT"`
	CorsAllowOrigins     string `mapstructure:"CORS_ALLOW_ORIGINS"`
	SessionSecret        string `mapstructure:"SESSION_SECRET"`
	SchedulerEnabled     bool   `mapstructure:"SCHEDULER_ENABLED"`

	// Spotify (music catalog) OAuth + API
	SpotifyClientID     string `mapstructure:"SPOTIFY_CLIENT_ID"`
	SpotifyClientSecret string `mapstructure:"SPOTIFY_CLIENT_SECRET"`
	SpotifyRedirectURI  string `mapstructure:"SPOTIFY_REDIRECT_URI"`
	SpotifyAPIURL       string `mapstructure:"SPOTIFY_API_URL"`
	SpotifyAccountsURL  string `mapstructure:"SPOTIFY_ACCOUNTS_URL"`

	// Songkick (events lookup) API
	SongkickAPIKey string `mapstructure:"SONGKICK_API_KEY"`
	SongkickAPIURL string `mapstructure:"SONGKICK_API_URL"`
}

var ConfigInstance Config

func InitConfig() (Config, error) {
	log := logger.New("config").Function("InitConfig")
	log.Info("Initializing config")

	viper.AutomaticEnv()

	envVars := []string{
		"GENERAL_VERSION", "ENVIRONMENT", "SERVER_PORT",
		"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
		"DB_CACHE_ADDRESS", "DB_CACHE_PORT",
		"CORS_ALLOW_ORIGINS", "SESSION_SECRET", "SCHEDULER_ENABLED",
		"SPOTIFY_CLIENT_ID", "SPOTIFY_CLIENT_SECRET", "SPOTIFY_REDIRECT_URI",
		"SPOTIFY_API_URL", "SPOTIFY_ACCOUNTS_URL",
		"SONGKICK_API_KEY", "SONGKICK_API_URL",
	}

	for _, env := range envVars {
		if err := viper.BindEnv(env); err != nil {
			log.Warn("Failed to bind environment variable", "env", env, "error", err)
		}
	}

	envVarsSet := viper.IsSet("SERVER_PORT") && viper.IsSet("DB_HOST")

	if envVarsSet {
		log.Info("Environment variables detected, skipping file loading")
	} else {
		log.Info("Environment variables not found, attempting to load from files")

		viper.SetConfigFile(".env")
		viper.SetConfigType("env")

		if err := viper.ReadInConfig(); err != nil {
			log.Warn("Could not find .env file", "error", err)
		} else {
			log.Info("Loaded .env file")
		}

		viper.SetConfigFile(".env.local")
		if err := viper.MergeInConfig(); err != nil {
			log.Debug("No .env.local file found", "error", err)
		} else {
			log.Info("Loaded .env.local overrides")
		}
	}

	setDefaults()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return Config{}, log.Err("Fatal error: could not unmarshal config", err)
	}

	if err := validateConfig(config, log); err != nil {
		return Config{}, err
	}

	log.Info("Successfully initialized config", "environment", config.Environment)
	return ConfigInstance, nil
}

func setDefaults() {
	viper.SetDefault("SPOTIFY_API_URL", "https://api.spotify.com/v1")
	viper.SetDefault("SPOTIFY_ACCOUNTS_URL", "https://accounts.spotify.com")
	viper.SetDefault("SONGKICK_API_URL", "https://api.songkick.com/api/3.0")
}

func GetConfig() Config {
	return ConfigInstance
}

func validateConfig(config Config, log logger.Logger) error {
	if config.ServerPort <= 0 {
		return log.Error(
			"Fatal error: invalid server port",
			"port", config.ServerPort,
		)
	}

	if config.SessionSecret == "" {
		return log.ErrMsg("Fatal error: SESSION_SECRET is required")
	}

	if config.SpotifyClientID != "" {
		if config.SpotifyClientSecret == "" {
			return log.ErrMsg(
				"Fatal error: SPOTIFY_CLIENT_SECRET required when SPOTIFY_CLIENT_ID is set",
			)
		}
		if config.SpotifyRedirectURI == "" {
			return log.ErrMsg(
				"Fatal error: SPOTIFY_REDIRECT_URI required when SPOTIFY_CLIENT_ID is set",
			)
		}
	}

	ConfigInstance = config
	return nil
}
