package gemini

// Part represents a single text part of a content block.
type Part struct {
	Text string `json:"text"`
}

// Content represents a content block in a generateContent request or candidate.
type Content struct {
	Parts []Part `json:"parts"`
}

// GenerateRequest is the request envelope sent to the generateContent endpoint.
type GenerateRequest struct {
	Contents []Content `json:"contents"`
}

// NewTextRequest wraps a single prompt into a request envelope.
func NewTextRequest(prompt string) GenerateRequest {
	return GenerateRequest{
		Contents: []Content{
			{Parts: []Part{{Text: prompt}}},
		},
	}
}

// Candidate is one generated response option.
type Candidate struct {
	Content *Content `json:"content,omitempty"`
}

// GenerateResponse is the response envelope returned by generateContent.
type GenerateResponse struct {
	Candidates []Candidate `json:"candidates,omitempty"`
}

// FirstText returns the text of the first part of the first candidate.
func (r *GenerateResponse) FirstText() (string, error) {
	if len(r.Candidates) == 0 {
		return "", ErrNoCandidates
	}
	content := r.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", ErrMalformedCandidate
	}
	return content.Parts[0].Text, nil
}
