package service

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"careercompass/internal/cache"
	"careercompass/internal/model"
	"careercompass/internal/scoring"
)

type fakeUserRepo struct {
	users map[string]*model.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) (string, error) {
	f.users[user.ID] = user
	return user.ID, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) SetVerified(ctx context.Context, id string) error {
	if u := f.users[id]; u != nil {
		u.Verified = true
	}
	return nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *model.User) error {
	f.users[user.ID] = user
	return nil
}

type fakeRecordRepo struct {
	records map[string]*model.TestRecord
	saves   int
}

func (f *fakeRecordRepo) GetByUserID(ctx context.Context, userID string) (*model.TestRecord, error) {
	return f.records[userID], nil
}

func (f *fakeRecordRepo) Save(ctx context.Context, record *model.TestRecord) error {
	f.saves++
	f.records[record.UserID] = record
	return nil
}

// stubSuggester mirrors the real suggester's contract: it always returns
// a suggestion, recording the tiers it was asked for.
type stubSuggester struct {
	tiers []model.Tier
}

func (s *stubSuggester) Generate(ctx context.Context, profile model.CompiledProfile, record *model.TestRecord, tier model.Tier) *model.CareerSuggestion {
	s.tiers = append(s.tiers, tier)
	return &model.CareerSuggestion{
		Aggregates: scoring.Aggregates(record, tier),
		PlanLevel:  tier,
	}
}

type assessmentFixture struct {
	svc       *AssessmentService
	users     *fakeUserRepo
	records   *fakeRecordRepo
	suggester *stubSuggester
}

func newAssessmentFixture(t *testing.T) *assessmentFixture {
	t.Helper()
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})

	users := &fakeUserRepo{users: map[string]*model.User{
		"u1": {ID: "u1", Email: "a@example.com", Verified: true},
		"u2": {ID: "u2", Email: "b@example.com", Verified: false},
	}}
	records := &fakeRecordRepo{records: map[string]*model.TestRecord{}}
	suggester := &stubSuggester{}

	return &assessmentFixture{
		svc:       NewAssessmentService(users, records, cache.NewTestRecordCache(client), suggester, zap.NewNop()),
		users:     users,
		records:   records,
		suggester: suggester,
	}
}

func submitSection(t *testing.T, f *assessmentFixture, userID, section string) *model.SubmitResponse {
	t.Helper()
	resp, err := f.svc.Submit(context.Background(), userID, &model.SubmitRequest{
		Section:   section,
		Answers:   []model.Answer{{QuestionID: 101, Value: 4}},
		Completed: true,
	})
	require.NoError(t, err)
	return resp
}

func TestSubmit_MissingSection(t *testing.T) {
	f := newAssessmentFixture(t)

	_, err := f.svc.Submit(context.Background(), "u1", &model.SubmitRequest{})
	assert.ErrorIs(t, err, ErrMissingSection)
}

func TestSubmit_UnknownUser(t *testing.T) {
	f := newAssessmentFixture(t)

	_, err := f.svc.Submit(context.Background(), "ghost", &model.SubmitRequest{Section: model.SectionRiasec})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSubmit_UnverifiedUserRejected(t *testing.T) {
	f := newAssessmentFixture(t)

	_, err := f.svc.Submit(context.Background(), "u2", &model.SubmitRequest{Section: model.SectionRiasec})
	assert.ErrorIs(t, err, ErrUserNotVerified)
	assert.Zero(t, f.records.saves)
}

func TestSubmit_SingleSectionNoSuggestion(t *testing.T) {
	f := newAssessmentFixture(t)

	resp := submitSection(t, f, "u1", model.SectionRiasec)

	assert.Nil(t, resp.CareerSuggestion)
	assert.False(t, resp.AllComplete)
	assert.Empty(t, f.suggester.tiers)
	require.Contains(t, f.records.records, "u1")
	assert.True(t, f.records.records["u1"].Sections[model.SectionRiasec].Completed)
}

func TestSubmit_FreeBundleTriggersSuggestion(t *testing.T) {
	f := newAssessmentFixture(t)

	var resp *model.SubmitResponse
	for _, section := range model.TierSections[model.TierFree] {
		resp = submitSection(t, f, "u1", section)
	}

	require.NotNil(t, resp.CareerSuggestion)
	assert.Equal(t, model.TierFree, resp.CareerSuggestion.PlanLevel)
	assert.False(t, resp.AllComplete)
	assert.Equal(t, []model.Tier{model.TierFree}, f.suggester.tiers)
}

func TestSubmit_CompassBundleAllComplete(t *testing.T) {
	f := newAssessmentFixture(t)

	var resp *model.SubmitResponse
	for _, section := range model.TierSections[model.TierCompass] {
		resp = submitSection(t, f, "u1", section)
	}

	require.NotNil(t, resp.CareerSuggestion)
	assert.Equal(t, model.TierCompass, resp.CareerSuggestion.PlanLevel)
	assert.True(t, resp.AllComplete)
	// The suggester ran at each tier boundary crossed on the way up.
	assert.Equal(t, model.TierCompass, f.suggester.tiers[len(f.suggester.tiers)-1])
}

func TestSubmit_ResubmissionReplacesWholesale(t *testing.T) {
	f := newAssessmentFixture(t)
	ctx := context.Background()

	_, err := f.svc.Submit(ctx, "u1", &model.SubmitRequest{
		Section: model.SectionRiasec,
		Answers: []model.Answer{{QuestionID: 101, Value: 5}, {QuestionID: 102, Value: 5}},
	})
	require.NoError(t, err)

	_, err = f.svc.Submit(ctx, "u1", &model.SubmitRequest{
		Section:   model.SectionRiasec,
		Answers:   []model.Answer{{QuestionID: 103, Value: 1}},
		Completed: true,
	})
	require.NoError(t, err)

	sec := f.records.records["u1"].Sections[model.SectionRiasec]
	require.Len(t, sec.Answers, 1)
	assert.Equal(t, 103, sec.Answers[0].QuestionID)
	assert.True(t, sec.Completed)
}

func TestSubmit_SuggestionRefreshedOnResubmit(t *testing.T) {
	f := newAssessmentFixture(t)

	for _, section := range model.TierSections[model.TierFree] {
		submitSection(t, f, "u1", section)
	}
	// Resubmitting inside a satisfied bundle regenerates for that bundle.
	submitSection(t, f, "u1", model.SectionRiasec)

	assert.Equal(t, []model.Tier{model.TierFree, model.TierFree}, f.suggester.tiers)
}

func TestSubmit_BrokenBundleKeepsStaleSuggestionQuietly(t *testing.T) {
	f := newAssessmentFixture(t)
	ctx := context.Background()

	for _, section := range model.TierSections[model.TierFree] {
		submitSection(t, f, "u1", section)
	}

	// Marking a bundle section incomplete drops the tier. The earlier
	// suggestion is still returned, but not announced as updated.
	resp, err := f.svc.Submit(ctx, "u1", &model.SubmitRequest{
		Section:   model.SectionRiasec,
		Answers:   []model.Answer{{QuestionID: 101, Value: 2}},
		Completed: false,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.CareerSuggestion)
	assert.Equal(t, "Section saved", resp.Message)
	assert.Equal(t, []model.Tier{model.TierFree}, f.suggester.tiers)
}

func TestSubmit_SuggestionUpdateAnnounced(t *testing.T) {
	f := newAssessmentFixture(t)

	var resp *model.SubmitResponse
	for _, section := range model.TierSections[model.TierFree] {
		resp = submitSection(t, f, "u1", section)
	}
	assert.Equal(t, "Section saved, career suggestion updated", resp.Message)
}

func TestSubmit_ProfileSnapshotFrozenAtCreation(t *testing.T) {
	f := newAssessmentFixture(t)
	f.users.users["u1"].TargetCountry = "Canada"

	submitSection(t, f, "u1", model.SectionRiasec)
	assert.Equal(t, "Canada", f.records.records["u1"].Profile.TargetCountry)

	f.users.users["u1"].TargetCountry = "Germany"
	submitSection(t, f, "u1", model.SectionIntelligence)

	// The record keeps the snapshot from its creation.
	assert.Equal(t, "Canada", f.records.records["u1"].Profile.TargetCountry)
}

func TestResults_FreshProfileCompile(t *testing.T) {
	f := newAssessmentFixture(t)
	f.users.users["u1"].TargetCountry = "Canada"

	submitSection(t, f, "u1", model.SectionRiasec)
	f.users.users["u1"].TargetCountry = "Germany"

	resp, err := f.svc.Results(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Germany", resp.Profile.TargetCountry)
	assert.NotNil(t, resp.TestRecord)
}

func TestResults_NoRecord(t *testing.T) {
	f := newAssessmentFixture(t)

	_, err := f.svc.Results(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestResults_UnknownUser(t *testing.T) {
	f := newAssessmentFixture(t)

	_, err := f.svc.Results(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestProgress_EmptyRecord(t *testing.T) {
	f := newAssessmentFixture(t)

	resp, err := f.svc.Progress(context.Background(), "u1")
	require.NoError(t, err)
	assert.False(t, resp.AllComplete)
	assert.Len(t, resp.Sections, len(model.LegacyProgressSections))
	for _, done := range resp.Sections {
		assert.False(t, done)
	}
}

func TestProgress_IgnoresCompassOnlySections(t *testing.T) {
	f := newAssessmentFixture(t)

	for _, section := range model.LegacyProgressSections {
		submitSection(t, f, "u1", section)
	}
	submitSection(t, f, "u1", model.SectionValues)

	resp, err := f.svc.Progress(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, resp.AllComplete)
	assert.NotContains(t, resp.Sections, model.SectionValues)
}
