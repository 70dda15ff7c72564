// Package gemini implements llm.Backend on the Google Gemini API.
package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"path/filepath"
	"strings"

	"google.golang.org/api/iterator"
	"google.golang.org/genai"

	"vidplan/pkg/llm"
)

// Client implements llm.Backend for Google Gemini.
type Client struct {
	genaiClient *genai.Client
	modelName   string
}

// NewClient creates a new Gemini client and validates the configured model.
// Model validation is best-effort: a flaky or rate-limited API at startup
// must not block the run, actual generation calls surface real errors later.
func NewClient(ctx context.Context, apiKey, modelName string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	c := &Client{genaiClient: client, modelName: modelName}
	if err := c.validateModel(ctx); err != nil {
		slog.Warn("Gemini model validation failed (proceeding anyway)", "error", err)
	}
	return c, nil
}

// ModelName returns the model the client was configured with.
func (c *Client) ModelName() string { return c.modelName }

// UploadFile uploads a local video file to the Gemini file store.
func (c *Client) UploadFile(ctx context.Context, path string) (llm.FileRef, error) {
	f, err := c.genaiClient.Files.UploadFromPath(ctx, path, &genai.UploadFileConfig{
		MIMEType: videoMIMEType(path),
	})
	if err != nil {
		return llm.FileRef{}, fmt.Errorf("upload failed: %w", err)
	}

	slog.Debug("Gemini: file uploaded", "name", f.Name, "uri", f.URI, "state", f.State)
	return llm.FileRef{Name: f.Name, URI: f.URI, MIMEType: f.MIMEType}, nil
}

// FileState reports the remote processing state of an uploaded file.
func (c *Client) FileState(ctx context.Context, name string) (llm.FileState, error) {
	f, err := c.genaiClient.Files.Get(ctx, name, nil)
	if err != nil {
		return "", fmt.Errorf("file status check failed: %w", err)
	}

	switch f.State {
	case genai.FileStateActive:
		return llm.FileStateActive, nil
	case genai.FileStateFailed:
		return llm.FileStateFailed, nil
	default:
		return llm.FileState(f.State), nil
	}
}

// GenerateStructured issues a schema-constrained generation call and maps
// the response text, finish reason and token usage back to llm types.
func (c *Client) GenerateStructured(ctx context.Context, model string, req llm.Request) (*llm.Response, error) {
	if model == "" {
		model = c.modelName
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromURI(req.File.URI, req.File.MIMEType),
			genai.NewPartFromText(req.Prompt),
		}, genai.RoleUser),
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction:  genai.NewContentFromText(req.SystemInstruction, genai.RoleUser),
		ResponseMIMEType:   "application/json",
		ResponseJsonSchema: req.Schema,
		Temperature:        genai.Ptr(req.Temperature),
		MaxOutputTokens:    req.MaxOutputTokens,
	}

	resp, err := c.genaiClient.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("generate content error: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return nil, err
	}

	out := &llm.Response{Text: text}
	if len(resp.Candidates) > 0 {
		out.FinishReason = string(resp.Candidates[0].FinishReason)
	}
	if meta := resp.UsageMetadata; meta != nil {
		out.Usage = llm.Usage{
			PromptTokens:     int(meta.PromptTokenCount),
			CompletionTokens: int(meta.CandidatesTokenCount),
			TotalTokens:      int(meta.TotalTokenCount),
		}
	}
	return out, nil
}

// DeleteFile removes an uploaded file from the Gemini file store.
func (c *Client) DeleteFile(ctx context.Context, name string) error {
	if _, err := c.genaiClient.Files.Delete(ctx, name, nil); err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	return nil
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates returned")
	}
	if resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("candidate has no content")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return sb.String(), nil
}

// videoMIMEType guesses the MIME type from the file extension.
// yt-dlp output is merged to mp4, so that is the fallback.
func videoMIMEType(path string) string {
	if t := mime.TypeByExtension(filepath.Ext(path)); strings.HasPrefix(t, "video/") {
		return t
	}
	return "video/mp4"
}

// validateModel checks that the configured model is available for the key.
// On failure it lists the available gemini models to help diagnose typos.
func (c *Client) validateModel(ctx context.Context) error {
	name := c.modelName
	if !strings.HasPrefix(name, "models/") {
		name = "models/" + name
	}

	_, err := c.genaiClient.Models.Get(ctx, name, nil)
	if err == nil {
		slog.Debug("Gemini model validation success", "model", c.modelName)
		return nil
	}

	slog.Warn("Gemini model not found, fetching available models...", "model", c.modelName, "error", err)

	iter, listErr := c.genaiClient.Models.List(ctx, nil)
	if listErr != nil {
		return fmt.Errorf("model %q not available and listing failed: %w", c.modelName, listErr)
	}

	var available []string
	for {
		m, nextErr := iter.Next(ctx)
		if nextErr == iterator.Done {
			break
		}
		if nextErr != nil {
			break
		}
		if strings.Contains(strings.ToLower(m.Name), "gemini") {
			available = append(available, m.Name)
		}
	}

	return fmt.Errorf("model %q not available; gemini models for this key: %s",
		c.modelName, strings.Join(available, ", "))
}
