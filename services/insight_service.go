package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"dream-journal/apperrors"
	"dream-journal/config"
	"dream-journal/generator"
	"dream-journal/models"
	"dream-journal/prompts"
)

// InsightDreamStore is the dream access the insight flows need: ownership-
// gated loads for the user scopes and unfiltered loads for the community
// scope.
type InsightDreamStore interface {
	FindOwned(ctx context.Context, id, userID primitive.ObjectID) (*models.Dream, error)
	FindOwnedByIDs(ctx context.Context, ids []primitive.ObjectID, userID primitive.ObjectID) ([]models.Dream, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Dream, error)
	FindAll(ctx context.Context) ([]models.Dream, error)
}

type InsightStore interface {
	Insert(ctx context.Context, in *models.AIInsight) (*models.AIInsight, error)
	FindByDreamAndUser(ctx context.Context, dreamID, userID primitive.ObjectID) ([]models.AIInsight, error)
	DeleteOwned(ctx context.Context, id, userID primitive.ObjectID) error
}

// InsightService gates access to dream records, delegates to the generation
// gateway, and owns the insight create/read/delete lifecycle. Persisting the
// insight is always the final step: no partial artifact is ever visible when
// validation or generation fails.
type InsightService struct {
	dreams   InsightDreamStore
	insights InsightStore
	gen      generator.TextGenerator
	scopes   config.InsightsConfig
}

func NewInsightService(dreams InsightDreamStore, insights InsightStore, gen generator.TextGenerator, scopes config.InsightsConfig) *InsightService {
	return &InsightService{dreams: dreams, insights: insights, gen: gen, scopes: scopes}
}

func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

// GenerateSingle produces an insight for one dream owned by the caller. The
// dream's moon sign is snapshotted onto the insight, nil when absent.
func (s *InsightService) GenerateSingle(ctx context.Context, userID, dreamID primitive.ObjectID) (*models.AIInsight, error) {
	dream, err := s.dreams.FindOwned(ctx, dreamID, userID)
	if err != nil {
		if isNoDocuments(err) {
			return nil, apperrors.NotFound("Dream not found")
		}
		return nil, err
	}

	sc := s.scopes.Scope(config.ScopeSingle)
	summary, err := s.gen.Generate(ctx, prompts.SingleDream(*dream), sc.Model, config.ScopeSingle, sc.MaxOutputTokens)
	if err != nil {
		return nil, err
	}

	var moonSign *string
	if dream.MoonSign != "" {
		v := dream.MoonSign
		moonSign = &v
	}

	return s.insights.Insert(ctx, &models.AIInsight{
		UserID:   userID,
		DreamIDs: []primitive.ObjectID{dream.ID},
		Summary:  summary,
		Tags:     []string{},
		Scope:    config.ScopeSingle,
		Model:    sc.Model,
		MoonSign: moonSign,
	})
}

// GenerateUserPattern produces an insight over the subset of dreamIDs the
// caller owns. Unowned or missing ids are dropped silently; the persisted
// insight references exactly the dreams that went into the prompt.
func (s *InsightService) GenerateUserPattern(ctx context.Context, userID primitive.ObjectID, dreamIDs []primitive.ObjectID) (*models.AIInsight, error) {
	dreams, err := s.dreams.FindOwnedByIDs(ctx, dreamIDs, userID)
	if err != nil {
		return nil, err
	}
	if len(dreams) == 0 {
		return nil, apperrors.NotFound("No dreams found")
	}

	sc := s.scopes.Scope(config.ScopeUserPattern)
	summary, err := s.gen.Generate(ctx, prompts.UserPattern(dreams), sc.Model, config.ScopeUserPattern, sc.MaxOutputTokens)
	if err != nil {
		return nil, err
	}

	usedIDs := make([]primitive.ObjectID, 0, len(dreams))
	for _, d := range dreams {
		usedIDs = append(usedIDs, d.ID)
	}

	return s.insights.Insert(ctx, &models.AIInsight{
		UserID:   userID,
		DreamIDs: usedIDs,
		Summary:  summary,
		Tags:     []string{},
		Scope:    config.ScopeUserPattern,
		Model:    sc.Model,
	})
}

// GenerateCommunity aggregates across users: the given ids are loaded with no
// ownership filter, and with no ids every dream in the store is used. The
// insight is still attributed to the caller.
func (s *InsightService) GenerateCommunity(ctx context.Context, userID primitive.ObjectID, dreamIDs []primitive.ObjectID) (*models.AIInsight, error) {
	var dreams []models.Dream
	var err error
	if len(dreamIDs) > 0 {
		dreams, err = s.dreams.FindByIDs(ctx, dreamIDs)
	} else {
		dreams, err = s.dreams.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	if len(dreams) == 0 {
		return nil, apperrors.NotFound("No dreams found")
	}

	sc := s.scopes.Scope(config.ScopeCommunityPattern)
	summary, err := s.gen.Generate(ctx, prompts.Community(dreams), sc.Model, config.ScopeCommunityPattern, sc.MaxOutputTokens)
	if err != nil {
		return nil, err
	}

	usedIDs := make([]primitive.ObjectID, 0, len(dreams))
	for _, d := range dreams {
		usedIDs = append(usedIDs, d.ID)
	}

	return s.insights.Insert(ctx, &models.AIInsight{
		UserID:   userID,
		DreamIDs: usedIDs,
		Summary:  summary,
		Tags:     []string{},
		Scope:    config.ScopeCommunityPattern,
		Model:    sc.Model,
	})
}

// SaveManual persists a caller-supplied summary. Unlike the pattern path this
// is all-or-nothing: every referenced dream must exist and belong to the
// caller, otherwise nothing is created.
func (s *InsightService) SaveManual(ctx context.Context, userID primitive.ObjectID, dreamIDs []primitive.ObjectID, summary, scope string) (*models.AIInsight, error) {
	if len(dreamIDs) == 0 || summary == "" {
		return nil, apperrors.BadRequest("dreamIds and summary are required")
	}
	if scope == "" {
		scope = config.ScopeSingle
	}

	dreams, err := s.dreams.FindOwnedByIDs(ctx, dreamIDs, userID)
	if err != nil {
		return nil, err
	}
	if len(dreams) != len(dreamIDs) {
		return nil, apperrors.Forbidden("Unauthorized access to one or more dreams")
	}

	var moonSign *string
	if dreams[0].MoonSign != "" {
		v := dreams[0].MoonSign
		moonSign = &v
	}

	return s.insights.Insert(ctx, &models.AIInsight{
		UserID:   userID,
		DreamIDs: dreamIDs,
		Summary:  summary,
		Tags:     []string{},
		Scope:    scope,
		Model:    s.scopes.Scope(config.ScopeSingle).Model,
		MoonSign: moonSign,
	})
}

// ListForDream returns the caller's insights referencing one of their dreams,
// newest first.
func (s *InsightService) ListForDream(ctx context.Context, userID, dreamID primitive.ObjectID) ([]models.AIInsight, error) {
	if _, err := s.dreams.FindOwned(ctx, dreamID, userID); err != nil {
		if isNoDocuments(err) {
			return nil, apperrors.NotFound("Dream not found")
		}
		return nil, err
	}
	return s.insights.FindByDreamAndUser(ctx, dreamID, userID)
}

// Delete removes an insight owned by the caller.
func (s *InsightService) Delete(ctx context.Context, userID, insightID primitive.ObjectID) error {
	if err := s.insights.DeleteOwned(ctx, insightID, userID); err != nil {
		if isNoDocuments(err) {
			return apperrors.NotFound("Insight not found or unauthorized")
		}
		return err
	}
	return nil
}
