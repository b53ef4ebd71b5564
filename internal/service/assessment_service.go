package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"careercompass/internal/cache"
	"careercompass/internal/model"
	"careercompass/internal/profile"
	"careercompass/internal/repository"
	"careercompass/internal/scoring"
)

// suggestionDeadline caps how long one submission may wait on the
// provider, over and above the provider's own HTTP timeout.
const suggestionDeadline = 30 * time.Second

// AssessmentService runs the submission pipeline: replace the section,
// re-resolve the tier, regenerate the suggestion when a bundle is
// satisfied, persist, refresh the cache.
type AssessmentService struct {
	userRepo    repository.UserRepo
	recordRepo  repository.TestRecordRepo
	recordCache cache.TestRecordCache
	suggester   Suggester
	logger      *zap.Logger
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(
	userRepo repository.UserRepo,
	recordRepo repository.TestRecordRepo,
	recordCache cache.TestRecordCache,
	suggester Suggester,
	logger *zap.Logger,
) *AssessmentService {
	return &AssessmentService{
		userRepo:    userRepo,
		recordRepo:  recordRepo,
		recordCache: recordCache,
		suggester:   suggester,
		logger:      logger,
	}
}

// Submit stores one section's answers and, when the completion set now
// satisfies a bundle, regenerates the career suggestion for that bundle.
// Resubmitting a section replaces its answers wholesale.
func (s *AssessmentService) Submit(ctx context.Context, userID string, req *model.SubmitRequest) (*model.SubmitResponse, error) {
	if req.Section == "" {
		return nil, ErrMissingSection
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if !user.Verified {
		return nil, ErrUserNotVerified
	}

	record, err := s.loadRecord(ctx, userID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		// Lazy creation. The profile snapshot is taken exactly once,
		// here; later submissions reuse it even if the user's profile
		// changes.
		record = &model.TestRecord{
			UserID:    userID,
			Sections:  make(map[string]model.SectionRecord),
			Profile:   profile.Compile(user, nil),
			CreatedAt: time.Now(),
		}
	}
	if record.Sections == nil {
		record.Sections = make(map[string]model.SectionRecord)
	}

	record.Sections[req.Section] = model.SectionRecord{
		Answers:     req.Answers,
		Completed:   req.Completed,
		SubmittedAt: time.Now(),
	}

	tier, ok := scoring.ResolveTier(record.CompletedSections())
	if ok {
		// Detach from the request context: a client disconnect must not
		// abort the write, only degrade the suggestion.
		genCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), suggestionDeadline)
		compiled := profile.Compile(user, record)
		record.CareerSuggestion = s.suggester.Generate(genCtx, compiled, record, tier)
		cancel()

		s.logger.Info("tier satisfied, suggestion refreshed",
			zap.String("userId", userID),
			zap.String("section", req.Section),
			zap.String("tier", string(tier)),
			zap.Bool("fallback", record.CareerSuggestion.Fallback()))
	}

	if err := s.recordRepo.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("persist test record: %w", err)
	}

	// Cache is best effort; Mongo is the source of truth.
	if err := s.recordCache.Set(ctx, record); err != nil {
		s.logger.Warn("failed to refresh test record cache",
			zap.String("userId", userID), zap.Error(err))
	}

	message := "Section saved"
	if ok {
		message = "Section saved, career suggestion updated"
	}

	return &model.SubmitResponse{
		Message:          message,
		CareerSuggestion: record.CareerSuggestion,
		AllComplete:      tier == model.TierCompass,
	}, nil
}

// Results returns the full test record together with a freshly compiled
// profile (the record's own snapshot is frozen at creation time).
func (s *AssessmentService) Results(ctx context.Context, userID string) (*model.ResultsResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	record, err := s.loadRecord(ctx, userID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}

	return &model.ResultsResponse{
		TestRecord: record,
		Profile:    profile.Compile(user, record),
	}, nil
}

// Progress reports completion over the legacy five-section flow. The
// list predates the tier bundles and intentionally ignores the
// compass-only sections.
func (s *AssessmentService) Progress(ctx context.Context, userID string) (*model.ProgressResponse, error) {
	record, err := s.loadRecord(ctx, userID)
	if err != nil {
		return nil, err
	}

	sections := make(map[string]bool, len(model.LegacyProgressSections))
	allComplete := true
	for _, name := range model.LegacyProgressSections {
		done := false
		if record != nil {
			if sec, ok := record.Sections[name]; ok {
				done = sec.Completed
			}
		}
		sections[name] = done
		if !done {
			allComplete = false
		}
	}

	return &model.ProgressResponse{
		Sections:    sections,
		AllComplete: allComplete,
	}, nil
}

// loadRecord reads through the cache with Mongo as fallback. Cache
// errors are logged and ignored.
func (s *AssessmentService) loadRecord(ctx context.Context, userID string) (*model.TestRecord, error) {
	record, err := s.recordCache.Get(ctx, userID)
	if err != nil {
		s.logger.Warn("test record cache read failed",
			zap.String("userId", userID), zap.Error(err))
	}
	if record != nil {
		return record, nil
	}

	record, err = s.recordRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load test record: %w", err)
	}
	if record != nil {
		if err := s.recordCache.Set(ctx, record); err != nil {
			s.logger.Warn("failed to warm test record cache",
				zap.String("userId", userID), zap.Error(err))
		}
	}
	return record, nil
}
