package models

// ExtractionRequest is one uploaded document, held only for the life of the request.
type ExtractionRequest struct {
	Data     []byte
	MimeType string
}

type ExtractResp struct {
	ExtractedText string `json:"extractedText"`
}

type SummarizeReq struct {
	TextToSummarize string `json:"textToSummarize"`
	Length          string `json:"length"`
}

type SummarizationRequest struct {
	Text   string
	Length SummaryLength
}

type SummarizeResp struct {
	Summary string `json:"summary"`
}

type ErrorResp struct {
	Error string `json:"error"`
}
