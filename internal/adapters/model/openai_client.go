// Package model adapts external pretrained classifiers to the
// core.TextClassifier strategy port. The adapters are optional
// collaborators: when unconfigured they abstain and the rule scorer takes
// over.
package model

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/shieldsms/smishing-filter/internal/core"
	"github.com/shieldsms/smishing-filter/internal/utils"
)

// OpenAIClient consults an OpenAI chat model for a smishing verdict
type OpenAIClient struct {
	client        *openai.Client
	modelName     string
	maxTokens     int
	temperature   float32
	topP          float32
	maxTextSize   int
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
	promptFormat  string
}

// verdictResponse is the structured JSON verdict requested from the model
type verdictResponse struct {
	IsSmishing  bool    `json:"is_smishing"`
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation"`
}

// NewOpenAIClient creates a new OpenAI-backed classifier strategy. An empty
// API key yields a client that always abstains.
func NewOpenAIClient(
	apiKey string,
	modelName string,
	maxTokens int,
	temperature float32,
	topP float32,
	maxTextSize int,
	logger *zap.Logger,
	textProcessor *utils.TextProcessor,
) *OpenAIClient {
	var client *openai.Client
	if apiKey != "" {
		client = openai.NewClient(apiKey)
	}

	return &OpenAIClient{
		client:        client,
		modelName:     modelName,
		maxTokens:     maxTokens,
		temperature:   temperature,
		topP:          topP,
		maxTextSize:   maxTextSize,
		logger:        logger,
		textProcessor: textProcessor,
		promptFormat: `You are an SMS fraud (smishing) detection system. Analyze the following SMS message.
Respond with a JSON object containing:
- is_smishing: boolean (true if the message is a smishing attempt)
- score: number between 0 and 1 (higher means more likely smishing)
- explanation: string (brief explanation of the verdict)

SMS message:
%s

Respond only with the JSON object and nothing else.`,
	}
}

// Name identifies the strategy in the classification chain
func (c *OpenAIClient) Name() string {
	return "openai:" + c.modelName
}

// Classify implements core.TextClassifier. It abstains when no API key is
// configured and reports errors upward otherwise; the orchestrator treats
// both as reasons to fall through to the rule scorer.
func (c *OpenAIClient) Classify(ctx context.Context, text string) (*core.ClassificationResult, error) {
	if c.client == nil {
		return nil, nil
	}

	prompt := fmt.Sprintf(c.promptFormat, c.textProcessor.ProcessText(text, c.maxTextSize))

	req := openai.ChatCompletionRequest{
		Model: c.modelName,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a smishing detection system. Respond only with JSON.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
		TopP:        c.topP,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty response from model %s", c.modelName)
	}

	verdict, err := parseVerdict(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	label := core.LabelHam
	if verdict.IsSmishing {
		label = core.LabelSmishing
	}

	c.logger.Debug("External model verdict",
		zap.String("model", c.modelName),
		zap.String("label", label),
		zap.Float64("score", verdict.Score))

	return &core.ClassificationResult{
		Label:      label,
		Score:      clampScore(verdict.Score),
		Reasons:    []string{"modelo_externo"},
		ModelUsed:  c.modelName,
		AnalyzedAt: time.Now(),
	}, nil
}

// parseVerdict decodes the model response, tolerating prose around the JSON
// object
func parseVerdict(content string) (*verdictResponse, error) {
	var verdict verdictResponse
	if err := json.Unmarshal([]byte(content), &verdict); err == nil {
		return &verdict, nil
	}

	start := strings.IndexByte(content, '{')
	end := strings.LastIndexByte(content, '}')
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in model response")
	}
	if err := json.Unmarshal([]byte(content[start:end+1]), &verdict); err != nil {
		return nil, fmt.Errorf("failed to parse model response as JSON: %w", err)
	}
	return &verdict, nil
}

func clampScore(score float64) float64 {
	if score < 0.0 {
		return 0.0
	}
	if score > 1.0 {
		return 1.0
	}
	return score
}
