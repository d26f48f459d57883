package providers

import (
	"context"
)

// Request represents a single identification request to an LLM provider
type Request struct {
	Model       string
	Temperature float64
	Prompt      string
	ImageData   []byte
	MediaType   string
}

// Provider defines the interface for a vision-capable LLM provider
type Provider interface {
	IdentifyTitle(ctx context.Context, req Request) (string, error)
}
