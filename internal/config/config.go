package config

import (
	"os"
	"time"
)

// Config carries everything cmd/api needs from the environment. Secrets are
// never defaulted; the entrypoint refuses to start without them.
type Config struct {
	DatabaseURL string
	ListenAddr  string

	JWTSecret string
	JWTTTL    time.Duration

	// Midtrans Snap sandbox credentials and endpoints.
	SnapServerKey string
	SnapBaseURL   string

	// FrontendBaseURL is where the gateway redirects customers after payment.
	FrontendBaseURL string

	// SandboxAutoPaid replays the sandbox shortcut of treating a "pending"
	// notification as paid. Leave off outside demos.
	SandboxAutoPaid bool
}

func Load() Config {
	return Config{
		DatabaseURL:     envOrDefault("DATABASE_URL", "sportfy.db"),
		ListenAddr:      envOrDefault("LISTEN_ADDR", ":8080"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		JWTTTL:          24 * time.Hour,
		SnapServerKey:   os.Getenv("MIDTRANS_SERVER_KEY"),
		SnapBaseURL:     envOrDefault("MIDTRANS_BASE_URL", "https://app.sandbox.midtrans.com/snap/v1"),
		FrontendBaseURL: envOrDefault("FRONTEND_BASE_URL", "http://localhost:5173"),
		SandboxAutoPaid: os.Getenv("PAY_SANDBOX_AUTO_PAID") == "true",
	}
}

func envOrDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}
