package config

import "os"

// Config collects every environment knob in one place. main loads .env
// through godotenv before this is read.
type Config struct {
	Port        string
	PostgresURL string

	SteamAPIKey       string
	SuperAdminSteamID string
	JWTSecret         string

	S3Endpoint  string
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	CDNBaseURL  string
}

func Load() *Config {
	return &Config{
		Port:              getEnv("PORT", "8080"),
		PostgresURL:       os.Getenv("POSTGRES_URL"),
		SteamAPIKey:       os.Getenv("STEAM_API_KEY"),
		SuperAdminSteamID: getEnv("STEAM_SUPER_ADMIN_ID", "76561198995407853"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		S3Endpoint:        os.Getenv("S3_ENDPOINT"),
		S3Region:          getEnv("S3_REGION", "us-east-1"),
		S3Bucket:          getEnv("S3_BUCKET", "files"),
		S3AccessKey:       os.Getenv("S3_ACCESS_KEY_ID"),
		S3SecretKey:       os.Getenv("S3_SECRET_ACCESS_KEY"),
		CDNBaseURL:        os.Getenv("CDN_BASE_URL"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
