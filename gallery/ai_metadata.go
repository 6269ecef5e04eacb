package gallery

// AiMetadata records whether a media item was generated by an AI model.
type AiMetadata struct {
	IsAiGenerated bool `json:"is_ai_generated"`
}

// AiGenerated returns metadata marking the media as AI-generated.
func AiGenerated() AiMetadata {
	return AiMetadata{IsAiGenerated: true}
}

// NotAiGenerated returns metadata marking the media as human-made.
func NotAiGenerated() AiMetadata {
	return AiMetadata{IsAiGenerated: false}
}
