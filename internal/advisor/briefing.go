package advisor

import (
	"context"
	"fmt"

	"coinlens/internal/domain"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// LLMClient abstracts the OpenAI chat completions API for testability.
type LLMClient interface {
	CreateChatCompletion(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error)
}

// MarketReader provides the aggregated data a briefing is built from.
type MarketReader interface {
	TopCoins(ctx context.Context, limit, page int, order domain.SortOrder) []domain.CoinMarket
	SentimentIndex(ctx context.Context) domain.SentimentReading
	News(ctx context.Context, limit int) []domain.Article
}

// BriefingService turns a snapshot of aggregated market data into a short
// natural-language briefing.
type BriefingService struct {
	tracer  trace.Tracer
	llm     LLMClient
	markets MarketReader
	model   string
}

func NewBriefingService(tracer trace.Tracer, llm LLMClient, markets MarketReader, model string) *BriefingService {
	return &BriefingService{
		tracer:  tracer,
		llm:     llm,
		markets: markets,
		model:   model,
	}
}

// MarketBriefing gathers top coins, the sentiment index and recent
// headlines, and asks the model to summarize them. Gaps in the data are
// fine; the prompt simply omits empty sections.
func (s *BriefingService) MarketBriefing(ctx context.Context) (string, error) {
	ctx, span := s.tracer.Start(ctx, "advisor.market-briefing")
	defer span.End()
	span.SetAttributes(attribute.String("llm.model", s.model))

	coins := s.markets.TopCoins(ctx, 10, 1, domain.OrderMarketCap)
	sentiment := s.markets.SentimentIndex(ctx)
	articles := s.markets.News(ctx, 9)

	prompt := BuildBriefingPrompt(coins, sentiment, articles)

	completion, err := s.llm.CreateChatCompletion(ctx, openai.ChatCompletionNewParams{
		Model: s.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(briefingSystemPrompt),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("briefing unavailable: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("no choices in LLM response")
	}

	reply := completion.Choices[0].Message.Content
	span.SetAttributes(attribute.Int("llm.reply_length", len(reply)))
	return reply, nil
}

// openaiClient wraps the official SDK's chat completions service.
type openaiClient struct {
	client openai.Client
}

func NewOpenAIClient(apiKey string) LLMClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &openaiClient{client: client}
}

func (c *openaiClient) CreateChatCompletion(
	ctx context.Context,
	params openai.ChatCompletionNewParams,
) (*openai.ChatCompletion, error) {
	return c.client.Chat.Completions.New(ctx, params)
}
