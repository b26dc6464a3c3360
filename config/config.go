package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port        string
		FrontendURL string
	}
	DB struct {
		Host     string
		Port     string
		User     string
		Password string
		Name     string
		SSLMode  string
	}
	JWT struct {
		Secret string
	}
	USDA struct {
		APIKey string
	}
	Edamam struct {
		AppID  string
		AppKey string
	}
	AWS struct {
		Region        string
		S3Bucket      string
		CloudFrontURL string
		SESEmail      string
	}
}

// Load reads configuration from the environment. A local .env file is
// honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "5000")
	v.SetDefault("FRONTEND_URL", "http://localhost:5173")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "diet_manager")
	v.SetDefault("DB_SSLMODE", "disable")

	cfg := &Config{}
	cfg.Server.Port = v.GetString("SERVER_PORT")
	cfg.Server.FrontendURL = v.GetString("FRONTEND_URL")
	cfg.DB.Host = v.GetString("DB_HOST")
	cfg.DB.Port = v.GetString("DB_PORT")
	cfg.DB.User = v.GetString("DB_USER")
	cfg.DB.Password = v.GetString("DB_PASSWORD")
	cfg.DB.Name = v.GetString("DB_NAME")
	cfg.DB.SSLMode = v.GetString("DB_SSLMODE")
	cfg.JWT.Secret = v.GetString("JWT_SECRET")
	cfg.USDA.APIKey = v.GetString("USDA_API_KEY")
	cfg.Edamam.AppID = v.GetString("EDAMAM_APP_ID")
	cfg.Edamam.AppKey = v.GetString("EDAMAM_APP_KEY")
	cfg.AWS.Region = v.GetString("AWS_REGION")
	cfg.AWS.S3Bucket = v.GetString("S3_BUCKET")
	cfg.AWS.CloudFrontURL = v.GetString("CLOUDFRONT_URL")
	cfg.AWS.SESEmail = v.GetString("SES_EMAIL")

	return cfg, nil
}
