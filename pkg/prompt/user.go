package prompt

import (
	"fmt"
	"strings"
)

// CondensedConstraint is appended to the user prompt when a truncated
// response forces a condensed retry. It caps output size and scene count.
const CondensedConstraint = "\n\nIMPORTANT: Keep the total response under 50000 characters. " +
	"Limit to the most important scenes (max 15 scenes). " +
	"Keep prompts concise but complete."

// maxDescriptionLen caps the source description quoted in the prompt.
const maxDescriptionLen = 500

// VideoMetadata is the source-video context included in the user prompt.
type VideoMetadata struct {
	Title           string
	DurationSeconds int
	Description     string
	Platform        string
}

// User builds the user instruction accompanying the video file part.
func User(mode, targetLanguage string, meta VideoMetadata, styleName string) string {
	style := GetStyle(styleName)

	desc := meta.Description
	if len(desc) > maxDescriptionLen {
		desc = desc[:maxDescriptionLen] + "..."
	}
	if desc == "" {
		desc = "N/A"
	}

	var sb strings.Builder
	sb.WriteString("Analyze the attached video and produce a complete reproduction plan.\n")

	fmt.Fprintf(&sb, `
## Source Video Metadata
- Title: %s
- Duration: %d seconds
- Platform: %s
- Description: %s
`, orUnknown(meta.Title), meta.DurationSeconds, orUnknown(meta.Platform), desc)

	fmt.Fprintf(&sb, `
## Task

Watch the entire video carefully. Then produce a VideoReproductionPlan that allows someone to recreate this video using AI generation tools (Veo 3 for video, Nano Banana 2 for images).

Analysis mode: %s
Target language for voiceover and title: %s
Visual style: %s — %s

IMPORTANT RULES:
1. SKIP all advertising, sponsorship segments, end cards, subscribe/follow callouts, and promotional content. Only reproduce the substantive content.
2. If a scene contains ANY character (human, animal, creature), it MUST use generation_method "t2i_i2v" with a t2i_prompt. Only pure environmental/atmospheric scenes without characters use "t2v".
3. Apply the %s visual style consistently to every prompt.
4. Voiceover in %s, sounding natural and human.
5. Character descriptions must be identical word-for-word across all scenes.

Output the structured JSON response.`,
		mode, targetLanguage, styleName, style.Description, styleName, targetLanguage)

	return sb.String()
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
