// Package model defines the structured output of a video analysis:
// the reproduction plan a generator pipeline can execute scene by scene.
package model

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Generation methods for a scene.
const (
	// MethodImageThenAnimate generates a reference image first (text-to-image),
	// then animates it (image-to-video). Mandatory for scenes with characters.
	MethodImageThenAnimate = "t2i_i2v"
	// MethodTextToVideo generates the scene directly from a text prompt.
	MethodTextToVideo = "t2v"
)

// Scene is one sequential unit of the reproduction plan.
type Scene struct {
	SceneNumber                     int     `json:"scene_number" validate:"min=1"`
	DurationSeconds                 int     `json:"duration_seconds" validate:"oneof=8 16 24"`
	GenerationMethod                string  `json:"generation_method" validate:"oneof=t2i_i2v t2v"`
	VideoPrompt                     string  `json:"video_prompt" validate:"required"`
	VideoExtendPrompt               string  `json:"video_extend_prompt"`
	T2IPrompt                       string  `json:"t2i_prompt"`
	VoiceoverText                   string  `json:"voiceover_text"`
	VoiceoverDurationEstimateSecond float64 `json:"voiceover_duration_estimate_seconds"`
	TitleCardText                   string  `json:"title_card_text"`
	SceneDescription                string  `json:"scene_description"`
}

// CharacterProfile pins down a recurring character so its visual description
// can be repeated verbatim in every scene prompt that references it.
type CharacterProfile struct {
	CharacterName      string `json:"character_name" validate:"required"`
	CharacterDesc      string `json:"character_description"`
	T2IReferencePrompt string `json:"t2i_reference_prompt"`
}

// ReproductionPlan is the full structured analysis result.
// Scene order is playback order; SceneNumber is 1-based.
type ReproductionPlan struct {
	Title                string             `json:"title" validate:"required"`
	Description          string             `json:"description"`
	MetadataTags         []string           `json:"metadata_tags"`
	TargetLanguage       string             `json:"target_language" validate:"required"`
	TotalDurationSeconds int                `json:"total_duration_seconds"`
	ViralStructureNotes  string             `json:"viral_structure_notes"`
	Characters           []CharacterProfile `json:"characters"`
	Scenes               []Scene            `json:"scenes" validate:"min=1,dive"`
	CoverT2IPrompt       string             `json:"cover_t2i_prompt"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(sceneStructLevel, Scene{})
	return v
}

// sceneStructLevel enforces the cross-field scene invariants:
// direct text-to-video scenes carry no reference-image prompt, and
// 8-second scenes carry no extension prompt.
func sceneStructLevel(sl validator.StructLevel) {
	s := sl.Current().Interface().(Scene)

	if s.GenerationMethod == MethodTextToVideo && s.T2IPrompt != "" {
		sl.ReportError(s.T2IPrompt, "t2i_prompt", "T2IPrompt", "excluded_for_t2v", "")
	}
	if s.DurationSeconds == 8 && s.VideoExtendPrompt != "" {
		sl.ReportError(s.VideoExtendPrompt, "video_extend_prompt", "VideoExtendPrompt", "excluded_for_8s", "")
	}
}

// Validate checks the plan against the scene and character invariants.
// A plan that fails here is treated as a parse failure by the repair loop.
// Scene numbers are expected to be 1-based and sequential, but the model
// occasionally renumbers after dropping ad segments, so ordering is trusted
// over the numbers themselves.
func (p *ReproductionPlan) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid plan: %w", err)
	}
	return nil
}
