package config

import "github.com/spf13/viper"

// Config is the main application configuration. Everything is overridable
// through environment variables (MONGO_URI, REDIS_ADDR, ...).
type Config struct {
	MongoURI      string
	MongoDatabase string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	HTTPPort      string
	JWTSecret     string
	LogLevel      string
	LogFormat     string
	SESRegion     string
	MailFrom      string
}

// Load reads configuration from the environment with sane local defaults.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "careercompass")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("JWT_SECRET", "super-secret-key-change-in-production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("SES_REGION", "")
	v.SetDefault("MAIL_FROM", "no-reply@careercompass.local")

	return &Config{
		MongoURI:      v.GetString("MONGO_URI"),
		MongoDatabase: v.GetString("MONGO_DATABASE"),
		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),
		HTTPPort:      v.GetString("HTTP_PORT"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		LogFormat:     v.GetString("LOG_FORMAT"),
		SESRegion:     v.GetString("SES_REGION"),
		MailFrom:      v.GetString("MAIL_FROM"),
	}
}
