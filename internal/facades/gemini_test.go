package facades

import (
	"context"
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
)

type fakeGenerator struct {
	resp *genai.GenerateContentResponse
	err  error
}

func (f *fakeGenerator) GenerateContent(context.Context, ...genai.Part) (*genai.GenerateContentResponse, error) {
	return f.resp, f.err
}

func candidate(parts ...genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: parts}}},
	}
}

func TestGeminiAssistant_Reply(t *testing.T) {
	tests := []struct {
		name    string
		gen     *fakeGenerator
		want    string
		wantErr error
	}{
		{name: "joins text parts", gen: &fakeGenerator{resp: candidate(genai.Text("Call 112. "), genai.Text("Stay in a lit area. "))}, want: "Call 112. Stay in a lit area."},
		{name: "no candidates", gen: &fakeGenerator{resp: &genai.GenerateContentResponse{}}, wantErr: ErrEmptyReply},
		{name: "blank text", gen: &fakeGenerator{resp: candidate(genai.Text("  "))}, wantErr: ErrEmptyReply},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, err := NewGeminiAssistantWithModel(tt.gen).Reply(context.Background(), "what should I do?")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, reply)
		})
	}
}

func TestGeminiAssistant_ProviderError(t *testing.T) {
	a := NewGeminiAssistantWithModel(&fakeGenerator{err: errors.New("quota exceeded")})

	_, err := a.Reply(context.Background(), "hi")
	assert.Error(t, err)
	assert.NoError(t, a.Close())
}

func TestUnavailableAssistant(t *testing.T) {
	_, err := UnavailableAssistant{}.Reply(context.Background(), "hi")
	assert.Error(t, err)
}
