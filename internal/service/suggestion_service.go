package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"careercompass/internal/bank"
	"careercompass/internal/config"
	"careercompass/internal/model"
	"careercompass/internal/scoring"
)

// Suggester produces a career suggestion for a tier. Implementations
// must never fail the caller: on any provider problem they return the
// aggregates-only fallback.
type Suggester interface {
	Generate(ctx context.Context, profile model.CompiledProfile, record *model.TestRecord, tier model.Tier) *model.CareerSuggestion
}

// SuggestionService calls the Gemini API to turn a user's profile and
// answer aggregates into a career suggestion.
type SuggestionService struct {
	config  *config.AIConfig
	client  *http.Client
	catalog *bank.Catalog
	logger  *zap.Logger
}

// NewSuggestionService creates a new suggestion service
func NewSuggestionService(catalog *bank.Catalog, logger *zap.Logger) *SuggestionService {
	cfg := config.DefaultAIConfig()
	return &SuggestionService{
		config:  cfg,
		client:  &http.Client{Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond},
		catalog: catalog,
		logger:  logger,
	}
}

// NewSuggestionServiceWithConfig creates a suggestion service with an
// explicit provider config, used by tests.
func NewSuggestionServiceWithConfig(cfg *config.AIConfig, catalog *bank.Catalog, logger *zap.Logger) *SuggestionService {
	return &SuggestionService{
		config:  cfg,
		client:  &http.Client{Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond},
		catalog: catalog,
		logger:  logger,
	}
}

// Generate assembles the provider request for the resolved tier: every
// stored answer of every required section, enriched with question text
// and category, plus the per-section aggregates. Any failure degrades to
// the {aggregates, planLevel} fallback; the submission never fails on
// the provider's account.
func (s *SuggestionService) Generate(ctx context.Context, profile model.CompiledProfile, record *model.TestRecord, tier model.Tier) *model.CareerSuggestion {
	aggregates := scoring.Aggregates(record, tier)
	fallback := &model.CareerSuggestion{Aggregates: aggregates, PlanLevel: tier}

	if !s.config.IsEnabled() {
		s.logger.Warn("suggestion provider not configured, returning aggregates only",
			zap.String("tier", string(tier)))
		return fallback
	}

	enriched := s.enrichAnswers(record, tier)
	prompt, err := s.buildPrompt(profile, enriched, aggregates, tier)
	if err != nil {
		s.logger.Error("failed to build suggestion prompt", zap.Error(err))
		return fallback
	}

	response, err := s.callGemini(ctx, s.modelFor(tier), prompt)
	if err != nil {
		s.logger.Warn("suggestion provider call failed",
			zap.String("tier", string(tier)), zap.Error(err))
		return fallback
	}

	var detail model.SuggestionDetail
	if err := json.Unmarshal([]byte(response), &detail); err != nil {
		s.logger.Warn("unparseable suggestion payload", zap.Error(err))
		return fallback
	}
	if detail.Domain == "" || len(detail.Roles) == 0 {
		s.logger.Warn("incomplete suggestion payload, discarding",
			zap.String("tier", string(tier)))
		return fallback
	}

	return &model.CareerSuggestion{
		Aggregates: aggregates,
		PlanLevel:  tier,
		Detail:     &detail,
	}
}

// enrichAnswers collects every stored answer of every section the tier
// requires, not just the one submitted last.
func (s *SuggestionService) enrichAnswers(record *model.TestRecord, tier model.Tier) []model.EnrichedAnswer {
	var out []model.EnrichedAnswer
	if record == nil {
		return out
	}
	for _, section := range model.TierSections[tier] {
		sec, ok := record.Sections[section]
		if !ok {
			continue
		}
		for _, a := range sec.Answers {
			ea := model.EnrichedAnswer{
				QuestionID: a.QuestionID,
				Section:    section,
				Value:      scoring.AnswerValue(a),
			}
			if q, ok := s.catalog.Lookup(a.QuestionID); ok {
				ea.Question = q.Text
				ea.Category = q.Category
			}
			out = append(out, ea)
		}
	}
	return out
}

func (s *SuggestionService) modelFor(tier model.Tier) string {
	switch tier {
	case model.TierCompass:
		return s.config.Models.Compass
	case model.TierClarity:
		return s.config.Models.Clarity
	default:
		return s.config.Models.Free
	}
}

// tierContext is the per-tier instruction block: the free report is
// deliberately brief, compass is exhaustive.
func tierContext(tier model.Tier) string {
	switch tier {
	case model.TierCompass:
		return `This is the full "compass" assessment. Be thorough: cover long-term
career strategy, study-abroad options matched to the profile's target
country and budget, and concrete portfolio projects. Fill every field of
the schema with specific, named recommendations.`
	case model.TierClarity:
		return `This is the mid "clarity" assessment. Give a focused report:
emphasize the interplay between personality, workstyle and learning
preferences. Keep descriptions to a paragraph each.`
	default:
		return `This is the entry "free" assessment. Keep the report short and
motivating: one clear domain, broad role directions, and next steps that
nudge the user toward completing the fuller assessments.`
	}
}

func (s *SuggestionService) buildPrompt(profile model.CompiledProfile, answers []model.EnrichedAnswer, aggregates map[string]int, tier model.Tier) (string, error) {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return "", err
	}
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return "", err
	}
	aggJSON, err := json.Marshal(aggregates)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`You are a career counsellor. Return ONLY valid JSON matching this schema:
{
  "domain": "primary career domain",
  "roles": ["exactly 5 role titles"],
  "courses": [{"name": "", "duration": "", "details": ""}],
  "description": "narrative summary of the user's profile and fit",
  "skills": ["exactly 5 skills to build"],
  "nextSteps": ["ordered, actionable steps"],
  "colleges": [{"name": "", "course": "", "country": ""}] (up to 15),
  "projects": [{"title": "", "link": ""}] (exactly 3)
}

%s

User profile:
%s

Section scores (0-10 scale):
%s

Individual answers (1-5 agreement scale, with question text and category):
%s

Base every recommendation on the scores and answers above. Prefer the
profile's target country for college suggestions when one is set.`,
		tierContext(tier), profileJSON, aggJSON, answersJSON), nil
}

// callGemini makes a request to the Gemini API
func (s *SuggestionService) callGemini(ctx context.Context, modelName, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"responseMimeType": "application/json",
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", s.config.ModelEndpoint(modelName), s.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", err
	}

	if len(geminiResp.Candidates) > 0 && len(geminiResp.Candidates[0].Content.Parts) > 0 {
		return geminiResp.Candidates[0].Content.Parts[0].Text, nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}
