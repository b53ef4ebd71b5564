package config

import "os"

// GeminiModels picks which Gemini model serves each plan level. The paid
// bundles get the slower, higher-quality model since their reports are
// longer.
type GeminiModels struct {
	Free    string `json:"free"`
	Clarity string `json:"clarity"`
	Compass string `json:"compass"`
}

// AIConfig holds all suggestion-provider configuration.
type AIConfig struct {
	APIKey    string       `json:"-"` // Never serialize
	BaseURL   string       `json:"baseUrl"`
	Models    GeminiModels `json:"models"`
	TimeoutMS int          `json:"timeoutMs"`
}

// DefaultAIConfig returns the default provider configuration.
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		BaseURL: "https://generativelanguage.googleapis.com/v1beta/models",
		Models: GeminiModels{
			Free:    getEnvOrDefault("GEMINI_MODEL_FREE", "gemini-2.5-flash-preview-05-20"),
			Clarity: getEnvOrDefault("GEMINI_MODEL_CLARITY", "gemini-2.0-flash"),
			Compass: getEnvOrDefault("GEMINI_MODEL_COMPASS", "gemini-2.0-flash"),
		},
		TimeoutMS: 20000, // submissions must not hang on the provider
	}
}

// IsEnabled returns true if the provider API is configured.
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// ModelEndpoint returns the full endpoint for a given model.
func (c *AIConfig) ModelEndpoint(model string) string {
	return c.BaseURL + "/" + model + ":generateContent"
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
