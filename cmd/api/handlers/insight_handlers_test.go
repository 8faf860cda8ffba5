package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"dream-journal/cmd/api/auth"
	"dream-journal/cmd/api/middleware"
	"dream-journal/config"
	"dream-journal/models"
	"dream-journal/services"
)

type stubDreamStore struct {
	dreams map[primitive.ObjectID]models.Dream
}

func (s *stubDreamStore) FindOwned(_ context.Context, id, userID primitive.ObjectID) (*models.Dream, error) {
	d, ok := s.dreams[id]
	if !ok || d.UserID != userID {
		return nil, mongo.ErrNoDocuments
	}
	return &d, nil
}

func (s *stubDreamStore) FindOwnedByIDs(_ context.Context, ids []primitive.ObjectID, userID primitive.ObjectID) ([]models.Dream, error) {
	var out []models.Dream
	for _, id := range ids {
		if d, ok := s.dreams[id]; ok && d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *stubDreamStore) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Dream, error) {
	var out []models.Dream
	for _, id := range ids {
		if d, ok := s.dreams[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *stubDreamStore) FindAll(_ context.Context) ([]models.Dream, error) {
	var out []models.Dream
	for _, d := range s.dreams {
		out = append(out, d)
	}
	return out, nil
}

type stubInsightStore struct {
	inserted []models.AIInsight
}

func (s *stubInsightStore) Insert(_ context.Context, in *models.AIInsight) (*models.AIInsight, error) {
	if in.ID.IsZero() {
		in.ID = primitive.NewObjectID()
	}
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now()
	}
	s.inserted = append(s.inserted, *in)
	return in, nil
}

// FindByDreamAndUser returns newest first, matching the backing collection's
// created_at descending sort.
func (s *stubInsightStore) FindByDreamAndUser(_ context.Context, dreamID, userID primitive.ObjectID) ([]models.AIInsight, error) {
	out := []models.AIInsight{}
	for _, in := range s.inserted {
		if in.UserID != userID {
			continue
		}
		for _, id := range in.DreamIDs {
			if id == dreamID {
				out = append(out, in)
				break
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *stubInsightStore) DeleteOwned(_ context.Context, id, userID primitive.ObjectID) error {
	for i, in := range s.inserted {
		if in.ID == id && in.UserID == userID {
			s.inserted = append(s.inserted[:i], s.inserted[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

type stubGenerator struct {
	response string
}

func (g *stubGenerator) Generate(_ context.Context, _, _, _ string, _ int32) (string, error) {
	return g.response, nil
}

func insightTestRouter(t *testing.T, dreams *stubDreamStore, insights *stubInsightStore) (*gin.Engine, *auth.JWTManager) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	jwtManager, err := auth.NewJWTManagerFromEnv()
	require.NoError(t, err)

	scopes := config.InsightsConfig{Scopes: map[string]config.ScopeConfig{
		config.ScopeSingle:           {Model: "gemini-2.5-flash", MaxOutputTokens: 500},
		config.ScopeUserPattern:      {Model: "gemini-2.5-pro", MaxOutputTokens: 1000},
		config.ScopeCommunityPattern: {Model: "gemini-2.5-pro", MaxOutputTokens: 2000},
	}}
	svc := services.NewInsightService(dreams, insights, &stubGenerator{response: "generated analysis"}, scopes)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/api/insights", middleware.TokenAuthorization(jwtManager))
	group.POST("/single/:id", GenerateSingleInsightHandler(svc))
	group.POST("/community", GenerateCommunityInsightHandler(svc))
	group.POST("/save", SaveInsightHandler(svc))
	group.GET("/dream/:dreamId", GetDreamInsightsHandler(svc))
	group.DELETE("/:id", DeleteInsightHandler(svc))
	return r, jwtManager
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// unsizedBody hides the reader's concrete type so httptest leaves the request
// ContentLength at -1, the way a chunked transfer arrives.
type unsizedBody struct{ r io.Reader }

func (b unsizedBody) Read(p []byte) (int, error) { return b.r.Read(p) }

func TestGenerateCommunityInsightChunkedBody(t *testing.T) {
	caller := primitive.NewObjectID()
	mine := models.Dream{ID: primitive.NewObjectID(), UserID: caller, Summary: "mine"}
	theirs := models.Dream{ID: primitive.NewObjectID(), UserID: primitive.NewObjectID(), Summary: "theirs"}
	insights := &stubInsightStore{}
	r, jwtManager := insightTestRouter(t, &stubDreamStore{dreams: map[primitive.ObjectID]models.Dream{mine.ID: mine, theirs.ID: theirs}}, insights)
	token, err := jwtManager.Sign(caller.Hex())
	require.NoError(t, err)

	body := `{"dreamIds": ["` + mine.ID.Hex() + `"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/insights/community", unsizedBody{strings.NewReader(body)})
	require.Equal(t, int64(-1), req.ContentLength)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.Len(t, insights.inserted, 1)
	assert.Equal(t, []primitive.ObjectID{mine.ID}, insights.inserted[0].DreamIDs,
		"a body with unknown length must still narrow the aggregation")
}

func TestGenerateCommunityInsightEmptyBodyUsesAllDreams(t *testing.T) {
	caller := primitive.NewObjectID()
	a := models.Dream{ID: primitive.NewObjectID(), UserID: caller, Summary: "one"}
	b := models.Dream{ID: primitive.NewObjectID(), UserID: primitive.NewObjectID(), Summary: "two"}
	insights := &stubInsightStore{}
	r, jwtManager := insightTestRouter(t, &stubDreamStore{dreams: map[primitive.ObjectID]models.Dream{a.ID: a, b.ID: b}}, insights)
	token, err := jwtManager.Sign(caller.Hex())
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/api/insights/community", token, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.Len(t, insights.inserted, 1)
	assert.ElementsMatch(t, []primitive.ObjectID{a.ID, b.ID}, insights.inserted[0].DreamIDs)
}

func TestGenerateCommunityInsightMalformedBody(t *testing.T) {
	r, jwtManager := insightTestRouter(t, &stubDreamStore{dreams: map[primitive.ObjectID]models.Dream{}}, &stubInsightStore{})
	token, err := jwtManager.Sign(primitive.NewObjectID().Hex())
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/api/insights/community", token, `{"dreamIds": [`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
}

func TestGenerateSingleInsightEndpoint(t *testing.T) {
	owner := primitive.NewObjectID()
	dream := models.Dream{ID: primitive.NewObjectID(), UserID: owner, Summary: "a lighthouse", MoonSign: "Pisces"}
	insights := &stubInsightStore{}
	r, jwtManager := insightTestRouter(t, &stubDreamStore{dreams: map[primitive.ObjectID]models.Dream{dream.ID: dream}}, insights)

	token, err := jwtManager.Sign(owner.Hex())
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/api/insights/single/"+dream.ID.Hex(), token, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		AIResult string  `json:"aiResult"`
		MoonSign *string `json:"moonSign"`
		Insight  struct {
			Scope    string   `json:"scope"`
			DreamIDs []string `json:"dream_ids"`
		} `json:"insight"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "generated analysis", resp.AIResult)
	require.NotNil(t, resp.MoonSign)
	assert.Equal(t, "Pisces", *resp.MoonSign)
	assert.Equal(t, "single", resp.Insight.Scope)
	assert.Equal(t, []string{dream.ID.Hex()}, resp.Insight.DreamIDs)
	require.Len(t, insights.inserted, 1)
}

func TestGenerateSingleInsightRequiresAuth(t *testing.T) {
	r, _ := insightTestRouter(t, &stubDreamStore{dreams: map[primitive.ObjectID]models.Dream{}}, &stubInsightStore{})

	w := doJSON(t, r, http.MethodPost, "/api/insights/single/"+primitive.NewObjectID().Hex(), "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGenerateSingleInsightUnknownDream(t *testing.T) {
	r, jwtManager := insightTestRouter(t, &stubDreamStore{dreams: map[primitive.ObjectID]models.Dream{}}, &stubInsightStore{})
	token, err := jwtManager.Sign(primitive.NewObjectID().Hex())
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/api/insights/single/"+primitive.NewObjectID().Hex(), token, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Dream not found")
}

func TestGenerateSingleInsightInvalidID(t *testing.T) {
	r, jwtManager := insightTestRouter(t, &stubDreamStore{dreams: map[primitive.ObjectID]models.Dream{}}, &stubInsightStore{})
	token, err := jwtManager.Sign(primitive.NewObjectID().Hex())
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/api/insights/single/not-a-hex-id", token, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaveInsightEndpointValidation(t *testing.T) {
	owner := primitive.NewObjectID()
	r, jwtManager := insightTestRouter(t, &stubDreamStore{dreams: map[primitive.ObjectID]models.Dream{}}, &stubInsightStore{})
	token, err := jwtManager.Sign(owner.Hex())
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/api/insights/save", token, `{"dreamIds": [], "summary": "notes"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "dreamIds and summary are required")
}

func TestSaveInsightEndpointOwnershipGate(t *testing.T) {
	owner := primitive.NewObjectID()
	theirs := models.Dream{ID: primitive.NewObjectID(), UserID: primitive.NewObjectID()}
	insights := &stubInsightStore{}
	r, jwtManager := insightTestRouter(t, &stubDreamStore{dreams: map[primitive.ObjectID]models.Dream{theirs.ID: theirs}}, insights)
	token, err := jwtManager.Sign(owner.Hex())
	require.NoError(t, err)

	body := `{"dreamIds": ["` + theirs.ID.Hex() + `"], "summary": "notes"}`
	w := doJSON(t, r, http.MethodPost, "/api/insights/save", token, body)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, insights.inserted)
}

func TestSaveAndListInsightEndpoints(t *testing.T) {
	owner := primitive.NewObjectID()
	dream := models.Dream{ID: primitive.NewObjectID(), UserID: owner, MoonSign: "Leo"}
	insights := &stubInsightStore{}
	r, jwtManager := insightTestRouter(t, &stubDreamStore{dreams: map[primitive.ObjectID]models.Dream{dream.ID: dream}}, insights)
	token, err := jwtManager.Sign(owner.Hex())
	require.NoError(t, err)

	body := `{"dreamIds": ["` + dream.ID.Hex() + `"], "summary": "my own reading"}`
	w := doJSON(t, r, http.MethodPost, "/api/insights/save", token, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Insight saved successfully")

	w = doJSON(t, r, http.MethodGet, "/api/insights/dream/"+dream.ID.Hex(), token, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Insights []struct {
			ID      string `json:"id"`
			Summary string `json:"summary"`
		} `json:"insights"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Insights, 1)
	assert.Equal(t, "my own reading", resp.Insights[0].Summary)

	w = doJSON(t, r, http.MethodDelete, "/api/insights/"+resp.Insights[0].ID, token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Insight deleted successfully")
	assert.Empty(t, insights.inserted)
}
