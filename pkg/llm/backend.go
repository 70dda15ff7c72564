// Package llm defines the interface to the multimodal generation backend.
// The analyzer only ever talks to this interface; the concrete Gemini
// implementation lives in the gemini subpackage.
package llm

import "context"

// FileState is the remote processing state of an uploaded file.
type FileState string

const (
	FileStatePending FileState = "PROCESSING"
	FileStateActive  FileState = "ACTIVE"
	FileStateFailed  FileState = "FAILED"
)

// FileRef is the handle to a file owned by the remote service. The caller
// holds the reference only and is responsible for eventually deleting it.
type FileRef struct {
	Name     string
	URI      string
	MIMEType string
}

// Request is a single structured generation request. Requests are immutable
// once issued; the repair loop builds a fresh Request per attempt.
type Request struct {
	File              FileRef
	Prompt            string
	SystemInstruction string
	// Schema is a reference-free JSON schema constraining the output.
	Schema          map[string]any
	Temperature     float32
	MaxOutputTokens int32
}

// Usage carries the token counters of one response.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Response is the raw outcome of one generation call.
type Response struct {
	Text         string
	FinishReason string
	Usage        Usage
}

// Truncated reports whether generation stopped on a length/token cap
// rather than completing naturally.
func (r *Response) Truncated() bool {
	switch r.FinishReason {
	case "MAX_TOKENS", "LENGTH":
		return true
	}
	return false
}

// Backend is the remote generation service surface the analyzer consumes.
type Backend interface {
	// UploadFile hands a local file to the remote store and returns its handle.
	// The file is not usable until its state becomes active.
	UploadFile(ctx context.Context, path string) (FileRef, error)

	// FileState reports the current remote processing state of the file.
	FileState(ctx context.Context, name string) (FileState, error)

	// GenerateStructured issues a schema-constrained generation call.
	GenerateStructured(ctx context.Context, model string, req Request) (*Response, error)

	// DeleteFile removes the remote file. Callers treat failures as
	// best-effort; the file expires server-side eventually regardless.
	DeleteFile(ctx context.Context, name string) error
}
