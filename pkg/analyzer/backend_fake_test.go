package analyzer

import (
	"context"
	"fmt"

	"vidplan/pkg/llm"
)

// fakeBackend is a scripted llm.Backend for driving the poller and the
// repair loop through exact state/response sequences.
type fakeBackend struct {
	uploadRef llm.FileRef
	uploadErr error

	states     []llm.FileState
	stateCalls int

	responses []*llm.Response
	genErr    error
	requests  []llm.Request

	deleteErr error
	deleted   []string
}

func (f *fakeBackend) UploadFile(ctx context.Context, path string) (llm.FileRef, error) {
	if f.uploadErr != nil {
		return llm.FileRef{}, f.uploadErr
	}
	return f.uploadRef, nil
}

func (f *fakeBackend) FileState(ctx context.Context, name string) (llm.FileState, error) {
	i := f.stateCalls
	f.stateCalls++
	if i >= len(f.states) {
		// Hold the last scripted state forever.
		return f.states[len(f.states)-1], nil
	}
	return f.states[i], nil
}

func (f *fakeBackend) GenerateStructured(ctx context.Context, model string, req llm.Request) (*llm.Response, error) {
	f.requests = append(f.requests, req)
	if f.genErr != nil {
		return nil, f.genErr
	}
	i := len(f.requests) - 1
	if i >= len(f.responses) {
		return nil, fmt.Errorf("fake backend: no response scripted for attempt %d", i+1)
	}
	return f.responses[i], nil
}

func (f *fakeBackend) DeleteFile(ctx context.Context, name string) error {
	f.deleted = append(f.deleted, name)
	return f.deleteErr
}

// validPlanJSON is a minimal plan that passes model validation.
const validPlanJSON = `{
	"title": "Morning routine, but honest",
	"description": "A dry look at what mornings actually look like.",
	"metadata_tags": ["#morning", "#comedy"],
	"target_language": "en",
	"total_duration_seconds": 16,
	"viral_structure_notes": "Hook lands in the first shot; payoff at the end.",
	"characters": [],
	"scenes": [
		{
			"scene_number": 1,
			"duration_seconds": 16,
			"generation_method": "t2v",
			"video_prompt": "Wide static shot of a sunlit kitchen, kettle steaming. Ambient hum of a refrigerator.",
			"video_extend_prompt": "The steam thickens as the kettle reaches boil, camera unmoving.",
			"t2i_prompt": "",
			"voiceover_text": "It is worth noting that nobody wakes up like this.",
			"voiceover_duration_estimate_seconds": 4.5,
			"title_card_text": "",
			"scene_description": "Kitchen establishing shot"
		}
	],
	"cover_t2i_prompt": "A steaming kettle in warm morning light, photorealistic."
}`

func okResponse(finish string) *llm.Response {
	return &llm.Response{
		Text:         validPlanJSON,
		FinishReason: finish,
		Usage:        llm.Usage{PromptTokens: 100, CompletionTokens: 50, TotalTokens: 150},
	}
}

func truncatedGarbage() *llm.Response {
	return &llm.Response{
		Text:         `{"title": "cut off mid`,
		FinishReason: "MAX_TOKENS",
		Usage:        llm.Usage{PromptTokens: 100, CompletionTokens: 65536, TotalTokens: 65636},
	}
}

func malformed() *llm.Response {
	return &llm.Response{
		Text:         `{"title": 42}`,
		FinishReason: "STOP",
		Usage:        llm.Usage{PromptTokens: 100, CompletionTokens: 10, TotalTokens: 110},
	}
}
