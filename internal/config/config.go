package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds everything the process reads from the environment, collected
// once at startup. Missing credentials are not fatal: the affected clients
// stay uninitialized and their routes answer with 500s.
type Config struct {
	// Port is the HTTP listen port.
	Port string

	// CredentialsFile is the path to the Firebase service-account key used
	// for both token verification and Firestore access.
	CredentialsFile string

	// GeminiAPIKey authenticates calls to the Gemini API.
	GeminiAPIKey string

	// GeminiModel is the model name used for all inference calls.
	GeminiModel string

	// ReceiptBucket, when set, enables archival of scanned receipt images
	// to the named GCS bucket.
	ReceiptBucket string

	// DevMode runs the gateway with an in-memory user store and a static
	// identity instead of Firebase. For local development only.
	DevMode bool
}

// DefaultModel is the Gemini model used when GEMINI_MODEL is unset.
const DefaultModel = "gemini-2.5-flash"

// LoadDotenv loads the first .env file found walking up from the working
// directory so the binary can be started from the repo root or cmd/api.
func LoadDotenv(log zerolog.Logger) {
	for _, p := range []string{".env", filepath.Join("..", ".env"), filepath.Join("..", "..", ".env")} {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Overload(p)
			log.Info().Str("path", p).Msg("Loaded .env file")
			return
		}
	}
}

// Load reads the configuration from the environment.
func Load() Config {
	cfg := Config{
		Port:            envOr("PORT", "8080"),
		CredentialsFile: os.Getenv("FIREBASE_CREDENTIALS_FILE"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiModel:     envOr("GEMINI_MODEL", DefaultModel),
		ReceiptBucket:   os.Getenv("RECEIPT_BUCKET"),
		DevMode:         strings.EqualFold(os.Getenv("DEV_MODE"), "true"),
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
