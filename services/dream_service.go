package services

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"dream-journal/apperrors"
	"dream-journal/internal/logger"
	"dream-journal/models"
)

type DreamStore interface {
	Insert(ctx context.Context, d *models.Dream) (*models.Dream, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Dream, error)
	FindOwned(ctx context.Context, id, userID primitive.ObjectID) (*models.Dream, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Dream, error)
	FindPublic(ctx context.Context) ([]models.Dream, error)
	UpdateOwned(ctx context.Context, id, userID primitive.ObjectID, d *models.Dream) (*models.Dream, error)
	Save(ctx context.Context, d *models.Dream) error
	DeleteOwned(ctx context.Context, id, userID primitive.ObjectID) error
}

// UserResolver batch-resolves user ids to display projections.
type UserResolver interface {
	FindPublicByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.PublicUser, error)
}

// DreamService owns the dream lifecycle, the public feed projection, and the
// like/comment interactions.
type DreamService struct {
	dreams DreamStore
	users  UserResolver
}

func NewDreamService(dreams DreamStore, users UserResolver) *DreamService {
	return &DreamService{dreams: dreams, users: users}
}

// FeedDream is a dream plus the denormalized owner projection for the public
// feed.
type FeedDream struct {
	models.Dream
	User models.PublicUser `json:"user"`
}

func (s *DreamService) Create(ctx context.Context, d *models.Dream) (*models.Dream, error) {
	if d.Date.IsZero() {
		d.Date = time.Now()
	}
	return s.dreams.Insert(ctx, d)
}

func (s *DreamService) ListOwn(ctx context.Context, userID primitive.ObjectID) ([]models.Dream, error) {
	return s.dreams.FindByUser(ctx, userID)
}

func (s *DreamService) GetOwn(ctx context.Context, userID, dreamID primitive.ObjectID) (*models.Dream, error) {
	d, err := s.dreams.FindOwned(ctx, dreamID, userID)
	if err != nil {
		if isNoDocuments(err) {
			return nil, apperrors.NotFound("Dream not found")
		}
		return nil, err
	}
	return d, nil
}

func (s *DreamService) Update(ctx context.Context, userID, dreamID primitive.ObjectID, d *models.Dream) (*models.Dream, error) {
	updated, err := s.dreams.UpdateOwned(ctx, dreamID, userID, d)
	if err != nil {
		if isNoDocuments(err) {
			return nil, apperrors.NotFound("Dream not found")
		}
		return nil, err
	}
	return updated, nil
}

func (s *DreamService) Delete(ctx context.Context, userID, dreamID primitive.ObjectID) error {
	if err := s.dreams.DeleteOwned(ctx, dreamID, userID); err != nil {
		if isNoDocuments(err) {
			return apperrors.NotFound("Dream not found")
		}
		return err
	}
	return nil
}

// PublicFeed returns public dreams newest-first with owner and commenter
// projections attached. Resolver failure degrades the whole feed to the
// anonymous projection instead of failing the request; only a store error is
// surfaced to the caller.
func (s *DreamService) PublicFeed(ctx context.Context) ([]FeedDream, error) {
	dreams, err := s.dreams.FindPublic(ctx)
	if err != nil {
		return nil, err
	}

	ids := collectUserIDs(dreams)
	users, err := s.users.FindPublicByIDs(ctx, ids)
	if err != nil {
		logger.Log.Warnf("public feed user resolution failed, serving anonymous feed: %v", err)
		return AnonymousFeed(dreams), nil
	}
	return EnrichFeed(dreams, users), nil
}

func collectUserIDs(dreams []models.Dream) []primitive.ObjectID {
	seen := map[primitive.ObjectID]struct{}{}
	var ids []primitive.ObjectID
	add := func(id primitive.ObjectID) {
		if id.IsZero() {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	for _, d := range dreams {
		add(d.UserID)
		for _, c := range d.Comments {
			add(c.UserID)
		}
	}
	return ids
}

// EnrichFeed attaches resolved projections to each dream. A dream whose owner
// is unresolvable falls back to the anonymous placeholder individually;
// unresolvable commenters stay unresolved.
func EnrichFeed(dreams []models.Dream, users map[primitive.ObjectID]models.PublicUser) []FeedDream {
	out := make([]FeedDream, 0, len(dreams))
	for _, d := range dreams {
		fd := FeedDream{Dream: d, User: models.AnonymousUser()}
		if u, ok := users[d.UserID]; ok {
			fd.User = u
		}
		comments := make([]models.Comment, len(d.Comments))
		for i, c := range d.Comments {
			if u, ok := users[c.UserID]; ok {
				resolved := u
				c.User = &resolved
			}
			comments[i] = c
		}
		fd.Comments = comments
		out = append(out, fd)
	}
	return out
}

// AnonymousFeed is the full-feed fallback: every dream gets the anonymous
// owner projection and commenters stay unresolved.
func AnonymousFeed(dreams []models.Dream) []FeedDream {
	out := make([]FeedDream, 0, len(dreams))
	for _, d := range dreams {
		out = append(out, FeedDream{Dream: d, User: models.AnonymousUser()})
	}
	return out
}

// ToggleLike flips the caller's membership in the dream's like set and saves
// the full document (concurrent toggles race as last write wins). Visibility
// is deliberately not checked: knowing the id is enough.
func (s *DreamService) ToggleLike(ctx context.Context, userID, dreamID primitive.ObjectID) (*models.Dream, error) {
	d, err := s.dreams.FindByID(ctx, dreamID)
	if err != nil {
		if isNoDocuments(err) {
			return nil, apperrors.NotFound("Dream not found")
		}
		return nil, err
	}

	d.ToggleLike(userID)
	if err := s.dreams.Save(ctx, d); err != nil {
		if isNoDocuments(err) {
			return nil, apperrors.NotFound("Dream not found")
		}
		return nil, err
	}
	return d, nil
}

// AddComment appends a trimmed comment and returns the dream re-read with
// commenter projections resolved.
func (s *DreamService) AddComment(ctx context.Context, userID, dreamID primitive.ObjectID, text string) (*models.Dream, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, apperrors.BadRequest("Comment text is required")
	}

	d, err := s.dreams.FindByID(ctx, dreamID)
	if err != nil {
		if isNoDocuments(err) {
			return nil, apperrors.NotFound("Dream not found")
		}
		return nil, err
	}

	d.Comments = append(d.Comments, models.Comment{
		ID:     primitive.NewObjectID(),
		UserID: userID,
		Text:   trimmed,
		Date:   time.Now(),
	})
	if err := s.dreams.Save(ctx, d); err != nil {
		return nil, err
	}

	reread, err := s.dreams.FindByID(ctx, dreamID)
	if err != nil {
		return nil, err
	}

	ids := collectUserIDs([]models.Dream{*reread})
	users, err := s.users.FindPublicByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range reread.Comments {
		if u, ok := users[reread.Comments[i].UserID]; ok {
			resolved := u
			reread.Comments[i].User = &resolved
		}
	}
	return reread, nil
}
