package config

import (
	"log"
	"os"
	"sync"
	"time"
)

type JWTConfig struct {
	Secret    string
	ExpiresIn time.Duration
}

var (
	jwtConfig *JWTConfig
	jwtOnce   sync.Once
)

func LoadJWTConfig() *JWTConfig {
	jwtOnce.Do(func() {
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			secret = "your-jwt-secret-key"
			log.Println("Warning: JWT_SECRET not set, using insecure default")
		}
		expiresIn := 7 * 24 * time.Hour
		if raw := os.Getenv("JWT_EXPIRES_IN"); raw != "" {
			if d, err := time.ParseDuration(raw); err == nil {
				expiresIn = d
			} else {
				log.Printf("Warning: invalid JWT_EXPIRES_IN %q, keeping %v", raw, expiresIn)
			}
		}
		jwtConfig = &JWTConfig{
			Secret:    secret,
			ExpiresIn: expiresIn,
		}
	})
	return jwtConfig
}
