package provider

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/Dhanuzh/git-commit-ai/internal/config"
)

func newAnthropicTestServer(t *testing.T, status int, body string, check func(*http.Request, map[string]interface{})) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var payload map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &payload))
		if check != nil {
			check(r, payload)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestAnthropicGenerate(t *testing.T) {
	srv := newAnthropicTestServer(t, http.StatusOK,
		`{"content":[{"type":"text","text":"  Add login form \n"}]}`,
		func(r *http.Request, payload map[string]interface{}) {
			assert.Equal(t, "/messages", r.URL.Path)
			assert.Equal(t, "sk-test", r.Header.Get("x-api-key"))
			assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))
			assert.Equal(t, AnthropicModel, payload["model"])
			assert.EqualValues(t, 100, payload["max_tokens"])
			assert.EqualValues(t, 0.7, payload["temperature"])
			assert.Equal(t, "be brief", payload["system"])

			msgs, ok := payload["messages"].([]interface{})
			require.True(t, ok)
			require.Len(t, msgs, 1)
			msg := msgs[0].(map[string]interface{})
			assert.Equal(t, "user", msg["role"])
			assert.Equal(t, "summary here", msg["content"])
		})

	p := NewAnthropicProvider("sk-test").WithBaseURL(srv.URL)
	got, err := p.Generate(context.Background(), "be brief", "summary here")
	require.NoError(t, err)
	assert.Equal(t, "Add login form", got)
}

func TestAnthropicErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantType ErrorType
		hint     bool
	}{
		{"unauthorized", 401, `{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`, ErrorTypeAuth, true},
		{"rate limited", 429, `{"type":"error","error":{"type":"rate_limit_error","message":"slow down"}}`, ErrorTypeRateLimit, true},
		{"not found", 404, `{"type":"error","error":{"type":"not_found_error","message":"model"}}`, ErrorTypeNotFound, false},
		{"server error", 529, `overloaded`, ErrorTypeAPIError, false},
		{"empty content", 200, `{"content":[]}`, ErrorTypeEmptyResponse, false},
		{"blank text", 200, `{"content":[{"type":"text","text":"   "}]}`, ErrorTypeEmptyResponse, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newAnthropicTestServer(t, tt.status, tt.body, nil)
			p := NewAnthropicProvider("sk-test").WithBaseURL(srv.URL)

			_, err := p.Generate(context.Background(), "", "x")
			require.Error(t, err)

			var ce *ClassifiedError
			require.True(t, errors.As(err, &ce), "error should be classified: %v", err)
			assert.Equal(t, tt.wantType, ce.Type)
			assert.Equal(t, "anthropic", ce.Backend)
			assert.Equal(t, tt.hint, len(Hints(err)) > 0)
		})
	}
}

func TestAnthropicTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewAnthropicProvider("k").WithBaseURL(srv.URL).Generate(ctx, "", "x")
	var ce *ClassifiedError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, ErrorTypeTimeout, ce.Type)
}

type fakeModels struct {
	resp   *genai.GenerateContentResponse
	err    error
	model  string
	config *genai.GenerateContentConfig
}

func (f *fakeModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	f.config = cfg
	return f.resp, f.err
}

func textResponse(parts ...string) *genai.GenerateContentResponse {
	content := &genai.Content{Role: genai.RoleModel}
	for _, p := range parts {
		content.Parts = append(content.Parts, &genai.Part{Text: p})
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: content}},
	}
}

func TestVertexGenerate(t *testing.T) {
	fake := &fakeModels{resp: textResponse(" Update ", "docs\n")}
	p := &VertexProvider{models: fake}

	got, err := p.Generate(context.Background(), "sys", "user")
	require.NoError(t, err)
	assert.Equal(t, "Update docs", got)

	assert.Equal(t, VertexModel, fake.model)
	require.NotNil(t, fake.config)
	assert.EqualValues(t, 8192, fake.config.MaxOutputTokens)
	assert.InDelta(t, 0.7, *fake.config.Temperature, 1e-6)
	assert.InDelta(t, 0.8, *fake.config.TopP, 1e-6)
	assert.InDelta(t, 40, *fake.config.TopK, 1e-6)
	require.NotNil(t, fake.config.SystemInstruction)
	assert.Equal(t, "sys", fake.config.SystemInstruction.Parts[0].Text)
}

func TestVertexEmptyResponses(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
	}{
		{"nil", nil},
		{"no candidates", &genai.GenerateContentResponse{}},
		{"no content", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}},
		{"blank text", textResponse("  ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &VertexProvider{models: &fakeModels{resp: tt.resp}}
			_, err := p.Generate(context.Background(), "", "x")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrEmptyResponse))

			var ce *ClassifiedError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, ErrorTypeEmptyResponse, ce.Type)
		})
	}
}

func TestVertexAuthErrorHint(t *testing.T) {
	p := &VertexProvider{models: &fakeModels{err: errors.New("could not find default credentials")}}

	_, err := p.Generate(context.Background(), "", "x")
	var ce *ClassifiedError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, ErrorTypeAuth, ce.Type)
	assert.Contains(t, Hints(err), "run: gcloud auth application-default login")
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		want   ErrorType
	}{
		{"quota message", errors.New("quota exceeded"), 0, ErrorTypeRateLimit},
		{"forbidden", errors.New("nope"), 403, ErrorTypeAuth},
		{"deadline", context.DeadlineExceeded, 0, ErrorTypeTimeout},
		{"generic", errors.New("boom"), 400, ErrorTypeAPIError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ce := ClassifyError("test", tt.err, tt.status, "")
			assert.Equal(t, tt.want, ce.Type)
			assert.ErrorIs(t, ce, tt.err)
		})
	}

	assert.Nil(t, ClassifyError("test", nil, 0, ""))
}

func TestNew(t *testing.T) {
	g, err := New(context.Background(), &config.Config{Model: config.ModelAnthropic, APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, "anthropic", g.Name())

	_, err = New(context.Background(), &config.Config{Model: config.ModelAnthropic})
	assert.ErrorIs(t, err, config.ErrConfigMissing)

	_, err = New(context.Background(), &config.Config{Model: config.ModelVertex})
	assert.ErrorIs(t, err, config.ErrConfigMissing)

	_, err = New(context.Background(), &config.Config{Model: "gpt-4"})
	assert.Error(t, err)

	_, err = New(context.Background(), nil)
	assert.ErrorIs(t, err, config.ErrConfigMissing)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "vertex-gemini-2.0-flash", DisplayName(config.ModelVertex))
	assert.Equal(t, AnthropicModel, DisplayName(config.ModelAnthropic))
}
