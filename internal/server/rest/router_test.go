package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/logging"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/auth"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/config"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/models"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/repositories/repomanager"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/services"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T) (*gin.Engine, *repomanager.InMemoryRepositoryManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repos := repomanager.NewInMemoryRepositoryManager()
	cfg := &config.Config{
		SecretKey:            testSecret,
		LoginTokenValidity:   1 * time.Hour,
		SignupTokenValidity:  10 * time.Hour,
		RefreshTokenValidity: 7 * 24 * time.Hour,
	}
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	s := NewRestServer(":0", logger,
		services.NewUserService(repos, cfg),
		services.NewEventService(repos),
		services.NewHelpRequestService(repos),
		services.NewTeamService(repos),
		cfg.SecretKey,
	)
	return s.Router(), repos
}

func doRequest(t *testing.T, r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func tokenFor(t *testing.T, email, role string) string {
	t.Helper()
	token, err := auth.GenerateToken(auth.Identity{Email: email, Role: role}, []byte(testSecret), time.Hour)
	require.NoError(t, err)
	return token
}

func seedEvent(t *testing.T, repos *repomanager.InMemoryRepositoryManager, e models.Event) models.Event {
	t.Helper()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	created, err := repos.Events().Create(context.Background(), &e)
	require.NoError(t, err)
	return *created
}

func TestLiveness(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(t, r, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "handson server running", w.Body.String())
}

func TestRegister_IssuesSignupThenLoginToken(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(t, r, http.MethodPost, "/users/new@x.com", "", gin.H{"name": "New"})
	require.Equal(t, http.StatusOK, w.Code)

	var first struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	assert.Equal(t, "viewer", first.User.Role)
	assert.NotEmpty(t, first.Token)

	w = doRequest(t, r, http.MethodPost, "/users/new@x.com", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var second struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.Equal(t, first.User.ID, second.User.ID)
	assert.NotEmpty(t, second.Token)
}

func TestProtectedRoute_NoToken(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(t, r, http.MethodGet, "/users/a@x.com", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoute_MalformedToken(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(t, r, http.MethodGet, "/users/a@x.com", "not.a.jwt", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestProtectedRoute_ExpiredToken(t *testing.T) {
	r, _ := newTestServer(t)

	expired, err := auth.GenerateToken(auth.Identity{Email: "a@x.com", Role: "viewer"}, []byte(testSecret), -time.Minute)
	require.NoError(t, err)

	w := doRequest(t, r, http.MethodGet, "/users/a@x.com", expired, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetUser_SelfOrAdminRule(t *testing.T) {
	r, _ := newTestServer(t)

	doRequest(t, r, http.MethodPost, "/users/target@x.com", "", nil)

	// another viewer is rejected
	w := doRequest(t, r, http.MethodGet, "/users/target@x.com", tokenFor(t, "other@x.com", "viewer"), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// the user itself succeeds
	w = doRequest(t, r, http.MethodGet, "/users/target@x.com", tokenFor(t, "target@x.com", "viewer"), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// an admin with a different email succeeds
	w = doRequest(t, r, http.MethodGet, "/users/target@x.com", tokenFor(t, "root@x.com", "admin"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateUser_SelfOrAdminRule(t *testing.T) {
	r, _ := newTestServer(t)

	doRequest(t, r, http.MethodPost, "/users/target@x.com", "", nil)

	w := doRequest(t, r, http.MethodPut, "/users/target@x.com", tokenFor(t, "other@x.com", "viewer"), gin.H{"name": "Hax"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(t, r, http.MethodPut, "/users/target@x.com", tokenFor(t, "target@x.com", "viewer"), gin.H{"name": "Me"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRefreshToken_Route(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(t, r, http.MethodPost, "/jwt", "", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodPost, "/jwt", "", gin.H{"email": "ghost@x.com"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	doRequest(t, r, http.MethodPost, "/users/known@x.com", "", nil)
	w = doRequest(t, r, http.MethodPost, "/jwt", "", gin.H{"email": "known@x.com"})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Token)
}

func TestCreateEvent_MissingField(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(t, r, http.MethodPost, "/create-event", tokenFor(t, "a@x.com", "viewer"), gin.H{
		"title": "No category",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateEvent_Success(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(t, r, http.MethodPost, "/create-event", tokenFor(t, "a@x.com", "viewer"), gin.H{
		"title":       "Beach Cleanup",
		"category":    "Environment",
		"description": "Clean the beach",
		"date":        "2026-09-15",
		"time":        "09:00",
		"location":    "Cox's Bazar",
		"imageUrl":    "https://img.example/b.png",
		"email":       "a@x.com",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestAllEvents_SearchTermFilter(t *testing.T) {
	r, repos := newTestServer(t)

	seedEvent(t, repos, models.Event{Title: "Beach Cleanup Foo", Category: "Environment", Location: "Dhaka", Email: "a@x.com"})
	seedEvent(t, repos, models.Event{Title: "Food Drive", Category: "Community", Location: "Dhaka", Email: "a@x.com"})

	w := doRequest(t, r, http.MethodGet, "/all-events?searchTerm=FOO", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var events []models.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	require.Len(t, events, 2)

	w = doRequest(t, r, http.MethodGet, "/all-events?searchTerm=foo&category=Environment&location=Dhaka", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	require.Len(t, events, 1)
	assert.Equal(t, "Beach Cleanup Foo", events[0].Title)
}

func TestRecentEvents_NewestFirst(t *testing.T) {
	r, repos := newTestServer(t)

	base := time.Now()
	for i := 0; i < 6; i++ {
		seedEvent(t, repos, models.Event{
			Title:     "Older",
			Email:     "a@x.com",
			CreatedAt: base.Add(-time.Duration(i+1) * time.Hour),
		})
	}
	seedEvent(t, repos, models.Event{Title: "Beach Cleanup", Category: "Environment", Email: "a@x.com", CreatedAt: base})

	w := doRequest(t, r, http.MethodGet, "/recent-events", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var events []models.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	require.Len(t, events, 5)
	assert.Equal(t, "Beach Cleanup", events[0].Title)
}

func TestGetEvent_NotFound(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(t, r, http.MethodGet, "/event/ffffffffffffffffffffffff", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, r, http.MethodGet, "/event/bogus", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteEvent_MissingThenExisting(t *testing.T) {
	r, repos := newTestServer(t)

	token := tokenFor(t, "a@x.com", "viewer")

	w := doRequest(t, r, http.MethodDelete, "/delete-event/ffffffffffffffffffffffff", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	event := seedEvent(t, repos, models.Event{Title: "Doomed", Email: "a@x.com"})

	w = doRequest(t, r, http.MethodDelete, "/delete-event/"+event.ID.Hex(), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodGet, "/event/"+event.ID.Hex(), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateEvent_SetsFields(t *testing.T) {
	r, repos := newTestServer(t)

	event := seedEvent(t, repos, models.Event{Title: "Before", Email: "a@x.com"})

	w := doRequest(t, r, http.MethodPut, "/update-event/"+event.ID.Hex(), tokenFor(t, "a@x.com", "viewer"), gin.H{"title": "After"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodGet, "/event/"+event.ID.Hex(), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "After", got.Title)
}

func TestJoinEvent_TwiceConflicts(t *testing.T) {
	r, repos := newTestServer(t)

	event := seedEvent(t, repos, models.Event{Title: "Joinable", Email: "author@x.com"})
	token := tokenFor(t, "member@x.com", "viewer")

	w := doRequest(t, r, http.MethodPost, "/join-event", token, gin.H{"eventId": event.ID.Hex()})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, r, http.MethodPost, "/join-event", token, gin.H{"eventId": event.ID.Hex()})
	assert.Equal(t, http.StatusConflict, w.Code)

	memberships, err := repos.Participants().ListByEmail(context.Background(), "member@x.com")
	require.NoError(t, err)
	assert.Len(t, memberships, 1)
}

func TestMyJoinEvents_EmptyIsOK(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(t, r, http.MethodGet, "/my-join-events", tokenFor(t, "loner@x.com", "viewer"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var joined []models.JoinedEvent
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &joined))
	assert.Empty(t, joined)
}

func TestMyEvents_SelfOrAdminRule(t *testing.T) {
	r, repos := newTestServer(t)

	seedEvent(t, repos, models.Event{Title: "Mine", Email: "owner@x.com"})

	w := doRequest(t, r, http.MethodGet, "/my-events/owner@x.com", tokenFor(t, "other@x.com", "viewer"), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(t, r, http.MethodGet, "/my-events/owner@x.com", tokenFor(t, "owner@x.com", "viewer"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var events []models.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	require.Len(t, events, 1)
	assert.Equal(t, "Mine", events[0].Title)
}

func TestHelpRequest_CreateListComment(t *testing.T) {
	r, _ := newTestServer(t)

	token := tokenFor(t, "asker@x.com", "viewer")

	w := doRequest(t, r, http.MethodPost, "/help-request", token, gin.H{"title": "No urgency", "description": "d"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodPost, "/help-request", token, gin.H{
		"title":       "Need volunteers",
		"description": "Flood relief",
		"urgency":     "urgent",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		HelpRequest models.HelpRequest `json:"helpRequest"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "asker@x.com", created.HelpRequest.Email)

	w = doRequest(t, r, http.MethodPost, "/help-request/"+created.HelpRequest.ID.Hex()+"/comment",
		tokenFor(t, "helper@x.com", "viewer"), gin.H{"text": "On my way"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, r, http.MethodGet, "/help-requests?urgency=urgent", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []models.HelpRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	require.Len(t, list[0].Comments, 1)
	assert.Equal(t, "helper@x.com", list[0].Comments[0].Email)
}

func TestCreateTeam_AndPublicListing(t *testing.T) {
	r, _ := newTestServer(t)

	token := tokenFor(t, "founder@x.com", "viewer")

	w := doRequest(t, r, http.MethodPost, "/create-team", token, gin.H{"name": "NoType", "description": "d"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodPost, "/create-team", token, gin.H{
		"name":        "Green Warriors",
		"description": "Tree planting crew",
		"type":        "public",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, r, http.MethodPost, "/create-team", token, gin.H{
		"name":        "Shadow Cell",
		"description": "Invite only",
		"type":        "private",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, r, http.MethodGet, "/teams", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var teams []models.Team
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &teams))
	require.Len(t, teams, 1)
	assert.Equal(t, "Green Warriors", teams[0].Name)
	assert.Equal(t, []string{"founder@x.com"}, teams[0].Members)
}
