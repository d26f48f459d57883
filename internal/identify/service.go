// Package identify runs the normalize-then-ask pipeline against a
// vision-capable LLM provider.
package identify

import (
	"context"
	"fmt"
	"os"

	"github.com/discshelf/discnamer/internal/anthropic"
	"github.com/discshelf/discnamer/internal/gemini"
	"github.com/discshelf/discnamer/internal/imageprep"
	"github.com/discshelf/discnamer/internal/ollama"
	"github.com/discshelf/discnamer/internal/openai"
	"github.com/discshelf/discnamer/internal/providers"
)

// Prompt is the fixed instruction sent with every disc photo.
const Prompt = "This is a photo of a Blu-ray disc or its case. Please identify the movie title. Respond with ONLY the movie title, nothing else. If you cannot identify the movie, respond with 'Unknown'."

// Sentinel is the label providers return when they cannot identify the movie.
const Sentinel = "Unknown"

// Service identifies movie titles from disc photos
type Service struct {
	provider     providers.Provider
	providerName string
	model        string
}

// NewService creates an identification service for the named provider. Empty
// provider and model fall back to environment configuration and per-provider
// defaults.
func NewService(providerName, model string) (*Service, error) {
	if providerName == "" {
		providerName = os.Getenv("DISCNAMER_PROVIDER")
		if providerName == "" {
			providerName = "anthropic"
		}
	}
	if model == "" {
		model = defaultModel(providerName)
	}

	var provider providers.Provider
	switch providerName {
	case "anthropic":
		provider = anthropic.New()
	case "openai":
		provider = openai.New()
	case "ollama":
		provider = ollama.New()
	case "gemini":
		provider = gemini.New()
	default:
		return nil, fmt.Errorf("unsupported provider: %s", providerName)
	}

	return &Service{
		provider:     provider,
		providerName: providerName,
		model:        model,
	}, nil
}

func defaultModel(providerName string) string {
	switch providerName {
	case "anthropic":
		model := os.Getenv("CLAUDE_MODEL")
		if model == "" {
			return "claude-sonnet-4-20250514"
		}
		return model
	case "openai":
		model := os.Getenv("OPENAI_MODEL")
		if model == "" {
			return "gpt-4o"
		}
		return model
	case "ollama":
		model := os.Getenv("OLLAMA_MODEL")
		if model == "" {
			return "llava:13b"
		}
		return model
	case "gemini":
		model := os.Getenv("GEMINI_MODEL")
		if model == "" {
			return "gemini-1.5-flash"
		}
		return model
	default:
		return ""
	}
}

// Provider returns the configured provider name.
func (s *Service) Provider() string {
	return s.providerName
}

// Model returns the configured model name.
func (s *Service) Model() string {
	return s.model
}

// CheckCredentials verifies the selected provider's credential is present.
// Called once before a batch run so a missing key fails before any file is
// touched.
func (s *Service) CheckCredentials() error {
	switch s.providerName {
	case "anthropic":
		if anthropic.APIKey() == "" {
			return fmt.Errorf("CLAUDE_API environment variable not set")
		}
	case "openai":
		if os.Getenv("OPENAI_API_KEY") == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "gemini":
		if os.Getenv("GEMINI_API_KEY") == "" {
			return fmt.Errorf("GEMINI_API_KEY environment variable not set")
		}
	}
	// Ollama is local and unauthenticated.
	return nil
}

// IdentifyFile normalizes the image at path and asks the provider for its
// movie title. The returned label is free text; the Sentinel value is passed
// through untouched.
func (s *Service) IdentifyFile(ctx context.Context, path string) (string, error) {
	normalized, err := imageprep.Normalize(path)
	if err != nil {
		return "", fmt.Errorf("failed to preprocess image: %w", err)
	}

	title, err := s.provider.IdentifyTitle(ctx, providers.Request{
		Model:       s.model,
		Temperature: 0.1,
		Prompt:      Prompt,
		ImageData:   normalized,
		MediaType:   imageprep.MediaType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to identify movie: %w", err)
	}

	return title, nil
}
