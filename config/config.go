package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Auth     Auth
	Scoring  Scoring
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

type Auth struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// Scoring selects and configures the answer-scoring backend.
// Backend is "gemini" or "local". The Gemini credential is only required
// when that backend is actually invoked; the local model path may point at
// a not-yet-trained artifact.
type Scoring struct {
	Backend        string
	GeminiApiKey   string
	GeminiEndpoint string
	GeminiTimeout  time.Duration
	ModelPath      string
}

const defaultGeminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent"

func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SCORING_BACKEND", "gemini")
	viper.SetDefault("GEMINI_ENDPOINT", defaultGeminiEndpoint)
	viper.SetDefault("GEMINI_TIMEOUT", "30s")
	viper.SetDefault("ML_MODEL_PATH", "interview_model.gob")
	viper.SetDefault("TOKEN_TTL", "24h")

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Auth.JWTSecret = viper.GetString("JWT_SECRET")
	config.Auth.TokenTTL = viper.GetDuration("TOKEN_TTL")

	config.Scoring.Backend = viper.GetString("SCORING_BACKEND")
	config.Scoring.GeminiApiKey = viper.GetString("GEMINI_API_KEY")
	config.Scoring.GeminiEndpoint = viper.GetString("GEMINI_ENDPOINT")
	config.Scoring.GeminiTimeout = viper.GetDuration("GEMINI_TIMEOUT")
	config.Scoring.ModelPath = viper.GetString("ML_MODEL_PATH")

	log.Info().
		Str("port", config.Server.Port).
		Str("scoring_backend", config.Scoring.Backend).
		Msg("Config loaded")
	return &config, nil
}
