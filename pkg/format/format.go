// Package format renders a completed reproduction plan as JSON or Markdown.
package format

import (
	"encoding/json"
	"fmt"
	"strings"

	"vidplan/pkg/model"
)

// Output formats.
const (
	JSON     = "json"
	Markdown = "markdown"
)

// Render formats the plan in the requested format.
func Render(plan *model.ReproductionPlan, format, style string) (string, error) {
	switch format {
	case Markdown:
		return renderMarkdown(plan, style), nil
	case JSON:
		return renderJSON(plan)
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}

func renderJSON(plan *model.ReproductionPlan) (string, error) {
	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal plan: %w", err)
	}
	return string(data), nil
}

func renderMarkdown(plan *model.ReproductionPlan, style string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", plan.Title)
	fmt.Fprintf(&sb, "> %s\n\n", plan.Description)
	fmt.Fprintf(&sb, "**Duration**: %ds | **Language**: %s | **Scenes**: %d | **Style**: %s\n\n",
		plan.TotalDurationSeconds, plan.TargetLanguage, len(plan.Scenes), style)

	sb.WriteString("## Viral Structure Analysis\n\n")
	sb.WriteString(plan.ViralStructureNotes)
	sb.WriteString("\n\n")

	if len(plan.Characters) > 0 {
		sb.WriteString("## Characters\n\n")
		for _, char := range plan.Characters {
			fmt.Fprintf(&sb, "### %s\n%s\n\n", char.CharacterName, char.CharacterDesc)
			fmt.Fprintf(&sb, "**Reference Sheet Prompt**:\n```\n%s\n```\n\n", char.T2IReferencePrompt)
		}
	}

	sb.WriteString("## Scenes\n\n")
	for _, scene := range plan.Scenes {
		methodLabel := "T2V"
		if scene.GenerationMethod == model.MethodImageThenAnimate {
			methodLabel = "T2I → I2V"
		}
		fmt.Fprintf(&sb, "### Scene %d — %ds [%s]\n", scene.SceneNumber, scene.DurationSeconds, methodLabel)
		fmt.Fprintf(&sb, "*%s*\n\n", scene.SceneDescription)

		if scene.T2IPrompt != "" {
			fmt.Fprintf(&sb, "**Image Prompt (Nano Banana 2)**:\n```\n%s\n```\n\n", scene.T2IPrompt)
		}

		fmt.Fprintf(&sb, "**Video Prompt (Veo 3 — 0-8s)**:\n```\n%s\n```\n\n", scene.VideoPrompt)

		if scene.VideoExtendPrompt != "" {
			fmt.Fprintf(&sb, "**Video Extend Prompt (8s+)**:\n```\n%s\n```\n\n", scene.VideoExtendPrompt)
		}

		fmt.Fprintf(&sb, "**Voiceover** (%vs):\n> %s\n\n---\n\n",
			scene.VoiceoverDurationEstimateSecond, scene.VoiceoverText)
	}

	sb.WriteString("## Cover Image\n\n")
	fmt.Fprintf(&sb, "**T2I Prompt (Nano Banana 2)**:\n```\n%s\n```\n\n", plan.CoverT2IPrompt)

	sb.WriteString("## Tags\n\n")
	sb.WriteString(strings.Join(plan.MetadataTags, " "))
	sb.WriteString("\n")

	return sb.String()
}
