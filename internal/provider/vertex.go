package provider

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"
)

const (
	// VertexModel is the Gemini model used through Vertex AI.
	VertexModel = "gemini-2.0-flash"

	// VertexBackendName is the Name of the Vertex provider.
	VertexBackendName = "vertex"

	defaultVertexLocation = "us-central1"
	vertexMaxOutputTokens = 8192
)

// contentGenerator is the part of *genai.Models the provider needs.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// VertexProvider calls Gemini on Vertex AI with application default
// credentials.
type VertexProvider struct {
	models contentGenerator
}

// NewVertexProvider creates a Vertex AI client for project. The location is
// us-central1 unless GOOGLE_CLOUD_LOCATION is set.
func NewVertexProvider(ctx context.Context, project string) (*VertexProvider, error) {
	location := os.Getenv("GOOGLE_CLOUD_LOCATION")
	if location == "" {
		location = defaultVertexLocation
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  project,
		Location: location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, withHint(VertexBackendName, fmt.Errorf("failed to create Vertex AI client: %w", err), 0, "")
	}

	return &VertexProvider{models: client.Models}, nil
}

func (p *VertexProvider) Name() string { return VertexBackendName }

func generationConfig(system string) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens: vertexMaxOutputTokens,
		Temperature:     genai.Ptr[float32](0.7),
		TopP:            genai.Ptr[float32](0.8),
		TopK:            genai.Ptr[float32](40),
	}
	if system != "" {
		cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}
	return cfg
}

// Generate returns the text of the first candidate, trimmed.
func (p *VertexProvider) Generate(ctx context.Context, system, user string) (string, error) {
	resp, err := p.models.GenerateContent(ctx, VertexModel, genai.Text(user), generationConfig(system))
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", withHint(p.Name(), err, apiErr.Code, apiErr.Status)
		}
		return "", withHint(p.Name(), err, 0, "")
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", withHint(p.Name(), fmt.Errorf("no candidates: %w", ErrEmptyResponse), 0, "")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", withHint(p.Name(), fmt.Errorf("no content: %w", ErrEmptyResponse), 0, "")
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil && !part.Thought {
			sb.WriteString(part.Text)
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", withHint(p.Name(), ErrEmptyResponse, 0, "")
	}
	return text, nil
}
