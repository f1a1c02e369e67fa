package facades

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/sbilibin2017/safety-hub/internal/logger"
	"google.golang.org/api/option"
)

const safetyAssistantInstruction = "You are a supportive assistant for a women's safety and empowerment community. " +
	"Give short, practical answers. For emergencies always tell the user to call 112 " +
	"or the women helpline 1091 first."

// ErrEmptyReply is returned when the model produced no text.
var ErrEmptyReply = errors.New("assistant returned no content")

// ContentGenerator generates content from prompt parts. Implemented by *genai.GenerativeModel.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiAssistant answers chatbot prompts with a Gemini model.
type GeminiAssistant struct {
	client *genai.Client
	model  ContentGenerator
}

// NewGeminiAssistant creates a GeminiAssistant for the given model name.
func NewGeminiAssistant(ctx context.Context, apiKey, modelName string) (*GeminiAssistant, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.7)
	model.SystemInstruction = genai.NewUserContent(genai.Text(safetyAssistantInstruction))

	return &GeminiAssistant{client: client, model: model}, nil
}

// NewGeminiAssistantWithModel creates a GeminiAssistant around an existing generator.
func NewGeminiAssistantWithModel(model ContentGenerator) *GeminiAssistant {
	return &GeminiAssistant{model: model}
}

// Reply sends the prompt and joins the text parts of the first candidate.
func (a *GeminiAssistant) Reply(ctx context.Context, prompt string) (string, error) {
	resp, err := a.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		logger.Log.Errorw("gemini request failed", "error", err)
		return "", err
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyReply
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	reply := strings.TrimSpace(sb.String())
	if reply == "" {
		return "", ErrEmptyReply
	}
	return reply, nil
}

// Close releases the underlying client.
func (a *GeminiAssistant) Close() error {
	if a.client == nil {
		return nil
	}
	return a.client.Close()
}

// UnavailableAssistant is used when no API key is configured.
type UnavailableAssistant struct{}

// Reply always fails so the caller falls back to its canned answer.
func (UnavailableAssistant) Reply(context.Context, string) (string, error) {
	return "", errors.New("assistant not configured")
}
