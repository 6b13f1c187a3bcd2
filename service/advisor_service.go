package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"labelguard-backend/models"

	"github.com/google/generative-ai-go/genai"
)

var ErrAdvisorUnavailable = errors.New("advisor unavailable: GEMINI_API_KEY not configured")

const advisorModel = "gemini-1.5-flash"

const advisorSystemPrompt = `당신은 한국 식품 표시·광고 규정 전문가입니다.
식품등의 표시기준, 원산지 표시요령, 기구 및 용기·포장의 기준·규격에 근거하여 답변하세요.
제공된 법령 발췌가 있으면 해당 조항을 인용하고, 확실하지 않은 내용은 추측하지 말고 관계 기관 확인을 안내하세요.
답변은 한국어로 간결하게 작성하세요.`

// AdvisorService answers free-form regulatory questions, grounding the
// model on matching clauses from the knowledge base.
type AdvisorService struct {
	knowledge    *KnowledgeService
	geminiClient *genai.Client
}

// AdvisorServiceOption is a functional option for AdvisorService.
type AdvisorServiceOption func(*AdvisorService)

// AdvisorWithKnowledge sets the knowledge service used for clause lookups.
func AdvisorWithKnowledge(knowledge *KnowledgeService) AdvisorServiceOption {
	return func(s *AdvisorService) {
		s.knowledge = knowledge
	}
}

// AdvisorWithGeminiClient sets the Gemini client.
func AdvisorWithGeminiClient(client *genai.Client) AdvisorServiceOption {
	return func(s *AdvisorService) {
		s.geminiClient = client
	}
}

// NewAdvisorService creates a new advisor service.
func NewAdvisorService(opts ...AdvisorServiceOption) *AdvisorService {
	s := &AdvisorService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BuildRegulatoryContext searches each regulation domain for the first
// question keyword it contains and assembles the top matches into a
// prompt context block. An empty string means no stored clause matched.
func (s *AdvisorService) BuildRegulatoryContext(ctx context.Context, question string) (string, error) {
	if s.knowledge == nil {
		return "", nil
	}

	keywords := extractKeywords(question, 5)
	if len(keywords) == 0 {
		return "", nil
	}

	var b strings.Builder
	for _, key := range models.DomainKeys() {
		domain, ok := models.DomainByKey(key)
		if !ok {
			continue
		}
		for _, keyword := range keywords {
			matches, err := s.knowledge.Search(ctx, key, keyword)
			if err != nil {
				return "", err
			}
			if len(matches) == 0 {
				continue
			}
			if len(matches) > 3 {
				matches = matches[:3]
			}
			fmt.Fprintf(&b, "[%s]\n", domain.Name)
			for _, m := range matches {
				b.WriteString(truncateDisplay(m, 400))
				b.WriteString("\n")
			}
			b.WriteString("\n")
			break
		}
	}
	return strings.TrimSpace(b.String()), nil
}

// Ask answers a question, grounding the model on matching stored clauses
// when any exist. The bool reports whether stored clauses backed the
// answer.
func (s *AdvisorService) Ask(ctx context.Context, question string) (string, bool, error) {
	if s.geminiClient == nil {
		return "", false, ErrAdvisorUnavailable
	}

	regContext, err := s.BuildRegulatoryContext(ctx, question)
	if err != nil {
		return "", false, err
	}

	prompt := question
	if regContext != "" {
		prompt = "다음은 관련 법령 발췌입니다:\n\n" + regContext + "\n\n질문: " + question
	}

	model := s.geminiClient.GenerativeModel(advisorModel)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(advisorSystemPrompt)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", false, fmt.Errorf("failed to generate answer: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", false, errors.New("empty response from model")
	}

	var answer strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			answer.WriteString(string(text))
		}
	}
	return answer.String(), regContext != "", nil
}

// extractKeywords splits the question into whitespace tokens longer than
// one rune, capped at max.
func extractKeywords(question string, max int) []string {
	var keywords []string
	for _, word := range strings.Fields(question) {
		word = strings.Trim(word, "?.,!\"'()")
		if len([]rune(word)) > 1 {
			keywords = append(keywords, word)
		}
		if len(keywords) == max {
			break
		}
	}
	return keywords
}
