package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"video-gateway/domain/model"
	"video-gateway/usecase"
)

type mockSearchUseCase struct {
	mock.Mock
}

func (m *mockSearchUseCase) Search(ctx context.Context, rawQuery string) ([]model.Video, error) {
	args := m.Called(ctx, rawQuery)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Video), args.Error(1)
}

func (m *mockSearchUseCase) Trending(ctx context.Context, region string) ([]model.Video, error) {
	args := m.Called(ctx, region)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Video), args.Error(1)
}

type mockEngagementUseCase struct {
	mock.Mock
}

func (m *mockEngagementUseCase) Status(ctx context.Context, userID, targetID string, kind model.EngagementKind) (bool, error) {
	args := m.Called(ctx, userID, targetID, kind)
	return args.Bool(0), args.Error(1)
}

func (m *mockEngagementUseCase) Apply(ctx context.Context, userID, targetID string, kind model.EngagementKind, action string) error {
	args := m.Called(ctx, userID, targetID, kind, action)
	return args.Error(0)
}

func (m *mockEngagementUseCase) List(ctx context.Context, userID string, kind model.EngagementKind) ([]string, error) {
	args := m.Called(ctx, userID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type mockDispatcher struct {
	mock.Mock
}

func (m *mockDispatcher) Dispatch(ctx context.Context, resource string, params url.Values) (json.RawMessage, error) {
	args := m.Called(ctx, resource, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *mockDispatcher) SearchVideoIDs(ctx context.Context, query string, maxResults int64) ([]string, error) {
	args := m.Called(ctx, query, maxResults)
	return nil, args.Error(1)
}

func (m *mockDispatcher) FetchDetails(ctx context.Context, ids []string) ([]model.Video, error) {
	args := m.Called(ctx, ids)
	return nil, args.Error(1)
}

func (m *mockDispatcher) MostPopular(ctx context.Context, region string, maxResults int64) ([]model.Video, error) {
	args := m.Called(ctx, region, maxResults)
	return nil, args.Error(1)
}

// newTestRouter wires handlers behind a stub auth layer that injects the
// caller identity directly.
func newTestRouter(register func(api *gin.RouterGroup)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("api")
	api.Use(func(ctx *gin.Context) {
		ctx.Set("user_id", "u1")
		ctx.Next()
	})
	register(api)
	return router
}

func TestSearchHandler_MissingQuery(t *testing.T) {
	handler := NewSearchHandler(new(mockSearchUseCase), usecase.NewRegionResolver("US"))
	router := newTestRouter(func(api *gin.RouterGroup) {
		api.GET("/search", handler.Search)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestSearchHandler_WhitespaceQueryRejected(t *testing.T) {
	searchUC := new(mockSearchUseCase)
	handler := NewSearchHandler(searchUC, usecase.NewRegionResolver("US"))
	router := newTestRouter(func(api *gin.RouterGroup) {
		api.GET("/search", handler.Search)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/search?q=%20%20%20", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	searchUC.AssertNotCalled(t, "Search")
}

func TestSearchHandler_QuotaExhaustedIs429(t *testing.T) {
	searchUC := new(mockSearchUseCase)
	searchUC.On("Search", mock.Anything, "cats").Return(nil, model.ErrQuotaExhausted).Once()

	handler := NewSearchHandler(searchUC, usecase.NewRegionResolver("US"))
	router := newTestRouter(func(api *gin.RouterGroup) {
		api.GET("/search", handler.Search)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/search?q=cats", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestSearchHandler_TrendingUsesGeoHintForChart(t *testing.T) {
	searchUC := new(mockSearchUseCase)
	searchUC.On("Trending", mock.Anything, "DE").Return([]model.Video{}, nil).Once()

	handler := NewSearchHandler(searchUC, usecase.NewRegionResolver("US"))
	router := newTestRouter(func(api *gin.RouterGroup) {
		api.GET("/trending", handler.Trending)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/trending", nil)
	req.Header.Set("CF-IPCountry", "DE")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	searchUC.AssertExpectations(t)
}

func TestSearchHandler_TrendingExplicitRegionWins(t *testing.T) {
	searchUC := new(mockSearchUseCase)
	searchUC.On("Trending", mock.Anything, "FR").Return([]model.Video{}, nil).Once()

	handler := NewSearchHandler(searchUC, usecase.NewRegionResolver("US"))
	router := newTestRouter(func(api *gin.RouterGroup) {
		api.GET("/trending", handler.Trending)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/trending?region=FR", nil)
	req.Header.Set("CF-IPCountry", "DE")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	searchUC.AssertExpectations(t)
}

func TestProxyHandler_UpstreamErrorIs502(t *testing.T) {
	dispatcher := new(mockDispatcher)
	dispatcher.On("Dispatch", mock.Anything, "videos", mock.Anything).
		Return(nil, &model.UpstreamError{StatusCode: 500, Message: "backend hiccup"}).
		Once()

	handler := NewProxyHandler(dispatcher)
	router := newTestRouter(func(api *gin.RouterGroup) {
		api.GET("/youtube/:resource", handler.Dispatch)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/youtube/videos?part=snippet", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "backend hiccup")
}

func TestProxyHandler_PassesRawBodyThrough(t *testing.T) {
	raw := json.RawMessage(`{"items":[{"id":"v1"}]}`)
	dispatcher := new(mockDispatcher)
	dispatcher.On("Dispatch", mock.Anything, "videos", mock.MatchedBy(func(params url.Values) bool {
		return params.Get("part") == "snippet"
	})).Return(raw, nil).Once()

	handler := NewProxyHandler(dispatcher)
	router := newTestRouter(func(api *gin.RouterGroup) {
		api.GET("/youtube/:resource", handler.Dispatch)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/youtube/videos?part=snippet", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, string(raw), rec.Body.String())
}

func TestEngagementHandler_StatusByVideoID(t *testing.T) {
	engagementUC := new(mockEngagementUseCase)
	engagementUC.On("Status", mock.Anything, "u1", "v1", model.KindLike).Return(true, nil).Once()

	handler := NewEngagementHandler(engagementUC)
	router := newTestRouter(func(api *gin.RouterGroup) {
		api.GET("/likes", handler.Likes)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/likes?videoId=v1", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"isLiked": true}`, rec.Body.String())
}

func TestEngagementHandler_ListWithoutVideoID(t *testing.T) {
	engagementUC := new(mockEngagementUseCase)
	engagementUC.On("List", mock.Anything, "u1", model.KindSave).Return([]string{"v1", "v2"}, nil).Once()

	handler := NewEngagementHandler(engagementUC)
	router := newTestRouter(func(api *gin.RouterGroup) {
		api.GET("/saved-videos", handler.SavedVideos)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/saved-videos", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "v2")
}

func TestEngagementHandler_ActionValidation(t *testing.T) {
	handler := NewEngagementHandler(new(mockEngagementUseCase))
	router := newTestRouter(func(api *gin.RouterGroup) {
		api.POST("/likes", handler.LikesAction)
	})

	tests := []struct {
		name string
		body string
	}{
		{"missing action", `{"videoId": "v1"}`},
		{"missing target", `{"action": "add"}`},
		{"unknown action", `{"videoId": "v1", "action": "flip"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/likes", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestEngagementHandler_SubscribeUsesChannelID(t *testing.T) {
	engagementUC := new(mockEngagementUseCase)
	engagementUC.On("Apply", mock.Anything, "u1", "ch1", model.KindSubscribe, "add").Return(nil).Once()

	handler := NewEngagementHandler(engagementUC)
	router := newTestRouter(func(api *gin.RouterGroup) {
		api.POST("/subscriptions", handler.SubscriptionsAction)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/subscriptions", strings.NewReader(`{"channelId": "ch1", "action": "add"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message": "subscribed"}`, rec.Body.String())
	engagementUC.AssertExpectations(t)
}

func TestEngagementHandler_UnsubscribeMessage(t *testing.T) {
	engagementUC := new(mockEngagementUseCase)
	engagementUC.On("Apply", mock.Anything, "u1", "ch1", model.KindSubscribe, "remove").Return(nil).Once()

	handler := NewEngagementHandler(engagementUC)
	router := newTestRouter(func(api *gin.RouterGroup) {
		api.POST("/subscriptions", handler.SubscriptionsAction)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/subscriptions", strings.NewReader(`{"channelId": "ch1", "action": "remove"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message": "unsubscribed"}`, rec.Body.String())
}

func TestEngagementHandler_VideoToggleKeepsSuccessShape(t *testing.T) {
	engagementUC := new(mockEngagementUseCase)
	engagementUC.On("Apply", mock.Anything, "u1", "v1", model.KindLike, "add").Return(nil).Once()

	handler := NewEngagementHandler(engagementUC)
	router := newTestRouter(func(api *gin.RouterGroup) {
		api.POST("/likes", handler.LikesAction)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/likes", strings.NewReader(`{"videoId": "v1", "action": "add"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success": true}`, rec.Body.String())
}
