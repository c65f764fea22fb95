package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	Store        Store
	Mail         Mail
	GeminiApiKey string
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Store selects the candidate store backend. Backend is one of
// "postgres", "file", "remote".
type Store struct {
	Backend     string
	FilePath    string
	RemoteURL   string
	RemoteToken string
}

type Mail struct {
	SMTPHost string
	SMTPPort string
	Username string
	Password string
	From     string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	viper.SetDefault("STORE_BACKEND", "postgres")
	viper.SetDefault("STORE_FILE_PATH", "candidates_db.json")

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Store.Backend = viper.GetString("STORE_BACKEND")
	config.Store.FilePath = viper.GetString("STORE_FILE_PATH")
	config.Store.RemoteURL = viper.GetString("STORE_REMOTE_URL")
	config.Store.RemoteToken = viper.GetString("STORE_REMOTE_TOKEN")

	config.Mail.SMTPHost = viper.GetString("SMTP_HOST")
	config.Mail.SMTPPort = viper.GetString("SMTP_PORT")
	config.Mail.Username = viper.GetString("SMTP_USERNAME")
	config.Mail.Password = viper.GetString("SMTP_PASSWORD")
	config.Mail.From = viper.GetString("MAIL_FROM")

	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")

	log.Info().Str("store_backend", config.Store.Backend).Msg("Config loaded")
	return &config, nil
}
