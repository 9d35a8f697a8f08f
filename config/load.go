package config

import "os"

func Load() App {
	return App{
		Port:      getenv("APP_PORT", "8080"),
		JWTSecret: getenv("JWT_SECRET", "local_dev_secret"),
		Env:       getenv("APP_ENV", "dev"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
