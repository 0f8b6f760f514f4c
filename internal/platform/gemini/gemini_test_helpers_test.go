package gemini

import (
	"context"
	"io"
	"log/slog"

	"google.golang.org/genai"
)

// fakeModels records GenerateContent calls and replays a canned answer.
type fakeModels struct {
	resp  *genai.GenerateContentResponse
	err   error
	calls []fakeCall
}

type fakeCall struct {
	model  string
	prompt string
}

func (f *fakeModels) GenerateContent(
	ctx context.Context,
	model string,
	contents []*genai.Content,
	cfg *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	prompt := ""
	for _, c := range contents {
		for _, p := range c.Parts {
			prompt += p.Text
		}
	}
	f.calls = append(f.calls, fakeCall{model: model, prompt: prompt})
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func textResponse(parts ...string) *genai.GenerateContentResponse {
	content := &genai.Content{Role: "model"}
	for _, p := range parts {
		content.Parts = append(content.Parts, &genai.Part{Text: p})
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content:      content,
			FinishReason: genai.FinishReasonStop,
		}},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
