package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"careercompass/internal/bank"
	"careercompass/internal/config"
	"careercompass/internal/model"
)

func testAIConfig(baseURL string) *config.AIConfig {
	return &config.AIConfig{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Models: config.GeminiModels{
			Free:    "model-free",
			Clarity: "model-clarity",
			Compass: "model-compass",
		},
		TimeoutMS: 5000,
	}
}

// geminiServer wraps the given report text in the provider's candidate
// envelope.
func geminiServer(t *testing.T, reportJSON string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]interface{}{
			"candidates": []map[string]interface{}{
				{
					"content": map[string]interface{}{
						"parts": []map[string]string{
							{"text": reportJSON},
						},
					},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func freeRecord() *model.TestRecord {
	sections := map[string]model.SectionRecord{}
	for _, s := range model.TierSections[model.TierFree] {
		sections[s] = model.SectionRecord{
			Answers:   []model.Answer{{QuestionID: 101, Value: 5}},
			Completed: true,
		}
	}
	return &model.TestRecord{UserID: "u1", Sections: sections}
}

func TestSuggestionService_GenerateFullSuggestion(t *testing.T) {
	report := `{
		"domain": "Software Engineering",
		"roles": ["Backend Developer", "Data Engineer", "SRE", "Platform Engineer", "Solutions Architect"],
		"description": "Strong analytical profile.",
		"skills": ["Go", "SQL", "Linux", "Networking", "Cloud"],
		"nextSteps": ["Build a portfolio project"]
	}`
	srv := geminiServer(t, report)
	defer srv.Close()

	svc := NewSuggestionServiceWithConfig(testAIConfig(srv.URL), bank.NewCatalog(), zap.NewNop())
	got := svc.Generate(context.Background(), model.CompiledProfile{}, freeRecord(), model.TierFree)

	require.NotNil(t, got)
	assert.False(t, got.Fallback())
	assert.Equal(t, model.TierFree, got.PlanLevel)
	assert.Equal(t, "Software Engineering", got.Detail.Domain)
	assert.Len(t, got.Detail.Roles, 5)
	assert.NotEmpty(t, got.Aggregates)
}

func TestSuggestionService_DisabledReturnsFallback(t *testing.T) {
	cfg := testAIConfig("http://unused")
	cfg.APIKey = ""

	svc := NewSuggestionServiceWithConfig(cfg, bank.NewCatalog(), zap.NewNop())
	got := svc.Generate(context.Background(), model.CompiledProfile{}, freeRecord(), model.TierFree)

	require.NotNil(t, got)
	assert.True(t, got.Fallback())
	assert.Equal(t, model.TierFree, got.PlanLevel)
	assert.NotEmpty(t, got.Aggregates)
}

func TestSuggestionService_ProviderErrorReturnsFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewSuggestionServiceWithConfig(testAIConfig(srv.URL), bank.NewCatalog(), zap.NewNop())
	got := svc.Generate(context.Background(), model.CompiledProfile{}, freeRecord(), model.TierFree)

	require.NotNil(t, got)
	assert.True(t, got.Fallback())
}

func TestSuggestionService_GarbageReportReturnsFallback(t *testing.T) {
	srv := geminiServer(t, "this is not json")
	defer srv.Close()

	svc := NewSuggestionServiceWithConfig(testAIConfig(srv.URL), bank.NewCatalog(), zap.NewNop())
	got := svc.Generate(context.Background(), model.CompiledProfile{}, freeRecord(), model.TierFree)

	require.NotNil(t, got)
	assert.True(t, got.Fallback())
}

func TestSuggestionService_IncompleteReportReturnsFallback(t *testing.T) {
	// A parseable report without a domain or roles is as useless as no
	// report at all.
	srv := geminiServer(t, `{"description": "vague"}`)
	defer srv.Close()

	svc := NewSuggestionServiceWithConfig(testAIConfig(srv.URL), bank.NewCatalog(), zap.NewNop())
	got := svc.Generate(context.Background(), model.CompiledProfile{}, freeRecord(), model.TierFree)

	require.NotNil(t, got)
	assert.True(t, got.Fallback())
}

func TestSuggestionService_FallbackSerializesWithoutDetailKeys(t *testing.T) {
	cfg := testAIConfig("http://unused")
	cfg.APIKey = ""

	svc := NewSuggestionServiceWithConfig(cfg, bank.NewCatalog(), zap.NewNop())
	got := svc.Generate(context.Background(), model.CompiledProfile{}, freeRecord(), model.TierFree)

	data, err := json.Marshal(got)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "aggregates")
	assert.Contains(t, raw, "planLevel")
	assert.NotContains(t, raw, "domain")
	assert.NotContains(t, raw, "roles")
}

func TestSuggestionService_ModelPerTier(t *testing.T) {
	svc := NewSuggestionServiceWithConfig(testAIConfig("http://unused"), bank.NewCatalog(), zap.NewNop())

	assert.Equal(t, "model-free", svc.modelFor(model.TierFree))
	assert.Equal(t, "model-clarity", svc.modelFor(model.TierClarity))
	assert.Equal(t, "model-compass", svc.modelFor(model.TierCompass))
}
