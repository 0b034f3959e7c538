package llm

import (
	"os"
	"sync"
)

// DefaultBaseURL is the OpenAI-compatible API root used when none is
// configured.
const DefaultBaseURL = "https://api.openai.com/v1"

// DefaultModel is the model used when a request does not name one.
const DefaultModel = "chatgpt-4o-latest"

// Config contains configuration for the chat-completions upstream.
type Config struct {
	// APIKey authenticates against the upstream API.
	APIKey string
	// BaseURL is the API root, without the /chat/completions suffix.
	BaseURL string
	// Model is the default model for requests that do not specify one.
	Model string
}

var (
	config     *Config
	configOnce sync.Once
)

// GetConfig returns the singleton upstream configuration, initialized from
// the environment on first call.
//
// Recognized variables:
//
//	OPENAI_API_KEY        required for live calls
//	OPENAI_BASE_URL       optional, defaults to the public OpenAI endpoint
//	OPENAI_DEFAULT_MODEL  optional
func GetConfig() *Config {
	configOnce.Do(func() {
		config = &Config{
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			BaseURL: os.Getenv("OPENAI_BASE_URL"),
			Model:   os.Getenv("OPENAI_DEFAULT_MODEL"),
		}
		if config.BaseURL == "" {
			config.BaseURL = DefaultBaseURL
		}
		if config.Model == "" {
			config.Model = DefaultModel
		}
	})
	return config
}
