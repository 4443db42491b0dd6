package config

type Config struct {
	DatabaseURL    string
	RedisURL       string
	JWTSecret      string
	Environment    string
	Port           string
	AllowedOrigins []string

	// enables the admin routes when set
	AdminAPIKey string

	// per-client ingress rate, e.g. "60-M" (60 requests per minute)
	RateLimit string

	Gemini     GeminiConfig
	ClipDrop   ClipDropConfig
	Cloudinary CloudinaryConfig
}

// generative-language API (OpenAI-compatible endpoint)
type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type ClipDropConfig struct {
	APIKey string
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

// reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
