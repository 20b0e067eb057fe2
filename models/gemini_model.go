package models

// GenerateContentRequest is the body of a Gemini generateContent call.
type GenerateContentRequest struct {
	Contents []Content `json:"contents"`
}

type Content struct {
	Parts []Part `json:"parts"`
}

// Part holds either Text or InlineData, never both.
type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

type InlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

func TextPart(text string) Part {
	return Part{Text: text}
}

func InlinePart(mimeType, base64Data string) Part {
	return Part{InlineData: &InlineData{MimeType: mimeType, Data: base64Data}}
}

// SingleContent wraps parts into a one-turn request.
func SingleContent(parts ...Part) *GenerateContentRequest {
	return &GenerateContentRequest{Contents: []Content{{Parts: parts}}}
}
