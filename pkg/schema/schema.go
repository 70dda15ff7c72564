// Package schema declares the JSON schema for the reproduction plan and the
// normalizer that inlines its internal references. The Gemini structured
// output contract rejects $ref pointers, so the schema handed to the API must
// be fully self-contained.
package schema

// Plan returns the reproduction-plan schema in standard JSON-schema shape,
// with Scene and CharacterProfile kept as named definitions under $defs.
// Callers pass it through Normalize before sending it to the backend.
func Plan() map[string]any {
	return map[string]any{
		"type": "object",
		"$defs": map[string]any{
			"Scene":            sceneDef(),
			"CharacterProfile": characterDef(),
		},
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Engaging title for the video",
			},
			"description": map[string]any{
				"type":        "string",
				"description": "Brief description of the video concept and hook",
			},
			"metadata_tags": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Hashtags and metadata tags for discoverability",
			},
			"target_language": map[string]any{
				"type":        "string",
				"description": "Language code for voiceover (e.g. 'en', 'vi')",
			},
			"total_duration_seconds": map[string]any{
				"type":        "integer",
				"description": "Total estimated duration of the reproduced video",
			},
			"viral_structure_notes": map[string]any{
				"type": "string",
				"description": "Analysis of the viral structure: hook mechanism (first 3 seconds), " +
					"content arc, resolution, and what makes this video engaging.",
			},
			"characters": map[string]any{
				"type":        "array",
				"items":       map[string]any{"$ref": "#/$defs/CharacterProfile"},
				"description": "Character profiles for consistency. Empty list if no characters needed.",
			},
			"scenes": map[string]any{
				"type":        "array",
				"items":       map[string]any{"$ref": "#/$defs/Scene"},
				"description": "Ordered list of scenes composing the video",
			},
			"cover_t2i_prompt": map[string]any{
				"type": "string",
				"description": "Nano Banana 2 prompt for the video cover/thumbnail. " +
					"Capture the most engaging moment or hook.",
			},
		},
		"required": []any{
			"title", "description", "metadata_tags", "target_language",
			"total_duration_seconds", "viral_structure_notes", "characters",
			"scenes", "cover_t2i_prompt",
		},
	}
}

func sceneDef() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"scene_number": map[string]any{
				"type":        "integer",
				"description": "Sequential scene number starting from 1",
			},
			"duration_seconds": map[string]any{
				"type":        "integer",
				"description": "Target duration in seconds. Must be 8, 16, or 24. 16 is ideal.",
			},
			"generation_method": map[string]any{
				"type": "string",
				"enum": []any{"t2i_i2v", "t2v"},
				"description": "Use 't2i_i2v' when the scene needs a character/object reference image " +
					"generated first (Nano Banana 2) then animated (Veo 3). " +
					"Use 't2v' for scenes generated directly as video.",
			},
			"video_prompt": map[string]any{
				"type": "string",
				"description": "Veo 3 prompt for the first 8 seconds. Structure: scene description + " +
					"visual style + camera movement + subject action + background + lighting + audio. " +
					"NEVER include voiceover text here — voiceover goes only in voiceover_text. " +
					"For dialogue: 'Character says: \"words\"' with '(no subtitles)'. " +
					"Always specify ambient sound to prevent hallucinated audio.",
			},
			"video_extend_prompt": map[string]any{
				"type": "string",
				"description": "Veo 3 scene extension prompt for continuing beyond 8s. Describes how the " +
					"scene evolves visually from the first 8 seconds. " +
					"NEVER include voiceover text here. Empty string if duration is 8 seconds.",
			},
			"t2i_prompt": map[string]any{
				"type": "string",
				"description": "Nano Banana 2 prompt for generating the reference/first-frame image. " +
					"Use natural language, include camera metadata (lens, aperture), " +
					"spatial relationships. Empty string if generation_method is 't2v'.",
			},
			"voiceover_text": map[string]any{
				"type": "string",
				"description": "Voiceover narration in the target language. Must sound natural and human. " +
					"Calibrated to fit the scene duration (~2.5 words/second for English).",
			},
			"voiceover_duration_estimate_seconds": map[string]any{
				"type":        "number",
				"description": "Estimated voiceover duration based on word count and language",
			},
			"title_card_text": map[string]any{
				"type": "string",
				"description": "Text for a title card overlay if the original scene features prominent " +
					"on-screen text (big titles, chapter headings, key statements). " +
					"Empty string if no significant text is shown. " +
					"Skip small/incidental text like watermarks, lower-thirds, or captions.",
			},
			"scene_description": map[string]any{
				"type":        "string",
				"description": "Brief human-readable description of what happens in this scene",
			},
		},
		"required": []any{
			"scene_number", "duration_seconds", "generation_method", "video_prompt",
			"video_extend_prompt", "t2i_prompt", "voiceover_text",
			"voiceover_duration_estimate_seconds", "title_card_text", "scene_description",
		},
	}
}

func characterDef() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"character_name": map[string]any{
				"type":        "string",
				"description": "Consistent identifier for this character across all scenes",
			},
			"character_description": map[string]any{
				"type":        "string",
				"description": "Detailed visual description. Must be identical in every scene prompt.",
			},
			"t2i_reference_prompt": map[string]any{
				"type": "string",
				"description": "Nano Banana 2 prompt for a character reference sheet on a PLAIN WHITE background. " +
					"Must include: specific ethnicity, age, build, skin tone, hair details, eye color, " +
					"full clothing description. Request 3 views (front, 3/4, side). " +
					"NO expressions, emotions, poses, actions, or scene context — neutral standing only.",
			},
		},
		"required": []any{"character_name", "character_description", "t2i_reference_prompt"},
	}
}
