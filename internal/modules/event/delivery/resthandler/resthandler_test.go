package resthandler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/communitycal/events-api/internal/access"
	"github.com/communitycal/events-api/internal/modules/event/domain"
	"github.com/communitycal/events-api/pkg/cache"
	"github.com/communitycal/events-api/pkg/middleware"
	"github.com/communitycal/events-api/pkg/shared"
)

type fakeEventUsecase struct {
	feed      []byte
	feedErr   error
	feedCalls int
	docs      []domain.GeoEventView
	docsErr   error
}

func (f *fakeEventUsecase) CalendarFeed(ctx context.Context, query *domain.CalendarQuery) ([]byte, error) {
	f.feedCalls++
	if _, _, err := query.ActiveFilter(); err != nil {
		return nil, err
	}
	return f.feed, f.feedErr
}

func (f *fakeEventUsecase) UpcomingInPlace(ctx context.Context, location string) ([]domain.GeoEventView, error) {
	if location == "" {
		return nil, domain.ErrLocationRequired
	}
	return f.docs, f.docsErr
}

func (f *fakeEventUsecase) FindAll(ctx context.Context, filter *domain.EventFilter) ([]domain.Event, shared.Meta, error) {
	return nil, shared.Meta{}, nil
}

func (f *fakeEventUsecase) FindByID(ctx context.Context, id string) (*domain.Event, error) {
	return nil, domain.ErrEventNotFound
}

func (f *fakeEventUsecase) Create(ctx context.Context, payload *domain.Payload) (*domain.Event, error) {
	return nil, domain.ErrForbidden
}

func (f *fakeEventUsecase) Update(ctx context.Context, id string, payload *domain.Payload) (*domain.Event, error) {
	return nil, domain.ErrForbidden
}

type fakeAPIKeyValidator struct{}

func (f *fakeAPIKeyValidator) ValidateAPIKey(ctx context.Context, apiKey string) (*access.Identity, error) {
	return nil, domain.ErrForbidden
}

func newTestHandler(uc *fakeEventUsecase, queryCache cache.Cache) *RestEventHandler {
	mw := middleware.NewMiddleware("user", "pass", &fakeAPIKeyValidator{})
	return NewRestEventHandler(mw, uc, queryCache, 10*time.Minute)
}

func TestCalendarFeedHandler(t *testing.T) {
	e := echo.New()

	t.Run("Testcase #1: serves feed with calendar headers", func(t *testing.T) {
		queryCache := cache.NewInMemCache(time.Minute)
		defer queryCache.Close()
		handler := newTestHandler(&fakeEventUsecase{feed: []byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n")}, queryCache)

		req := httptest.NewRequest(http.MethodGet, "/cal", nil)
		rec := httptest.NewRecorder()

		require.NoError(t, handler.calendarFeed(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/calendar")
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "calendar.ics")
		assert.Contains(t, rec.Body.String(), "BEGIN:VCALENDAR")
	})

	t.Run("Testcase #2: second request served from cache", func(t *testing.T) {
		queryCache := cache.NewInMemCache(time.Minute)
		defer queryCache.Close()
		uc := &fakeEventUsecase{feed: []byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n")}
		handler := newTestHandler(uc, queryCache)

		for i := 0; i < 2; i++ {
			req := httptest.NewRequest(http.MethodGet, "/cal?group=tech", nil)
			rec := httptest.NewRecorder()
			require.NoError(t, handler.calendarFeed(e.NewContext(req, rec)))
			assert.Equal(t, http.StatusOK, rec.Code)
		}
		assert.Equal(t, 1, uc.feedCalls)

		cached, err := queryCache.Get(context.Background(), "events_tech")
		require.NoError(t, err)
		assert.Contains(t, string(cached), "BEGIN:VCALENDAR")
	})

	t.Run("Testcase #3: conflicting filters answered with plain 400", func(t *testing.T) {
		queryCache := cache.NewInMemCache(time.Minute)
		defer queryCache.Close()
		handler := newTestHandler(&fakeEventUsecase{}, queryCache)

		req := httptest.NewRequest(http.MethodGet, "/cal?group=tech&tag=workshop", nil)
		rec := httptest.NewRecorder()

		require.NoError(t, handler.calendarFeed(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Only one of")
	})

	t.Run("Testcase #4: unexpected failure is a generic 500", func(t *testing.T) {
		queryCache := cache.NewInMemCache(time.Minute)
		defer queryCache.Close()
		handler := newTestHandler(&fakeEventUsecase{feedErr: assert.AnError}, queryCache)

		req := httptest.NewRequest(http.MethodGet, "/cal", nil)
		rec := httptest.NewRecorder()

		require.NoError(t, handler.calendarFeed(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "An error occurred", rec.Body.String())
	})
}

func TestUpcomingInPlaceHandler(t *testing.T) {
	e := echo.New()
	queryCache := cache.NewInMemCache(time.Minute)
	defer queryCache.Close()

	t.Run("Testcase #1: docs envelope", func(t *testing.T) {
		handler := newTestHandler(&fakeEventUsecase{docs: []domain.GeoEventView{{Title: "Inside"}}}, queryCache)

		req := httptest.NewRequest(http.MethodGet, "/geo?location=Frankfurt", nil)
		rec := httptest.NewRecorder()

		require.NoError(t, handler.upcomingInPlace(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"docs"`)
		assert.Contains(t, rec.Body.String(), "Inside")
	})

	t.Run("Testcase #2: missing location", func(t *testing.T) {
		handler := newTestHandler(&fakeEventUsecase{}, queryCache)

		req := httptest.NewRequest(http.MethodGet, "/geo", nil)
		rec := httptest.NewRecorder()

		require.NoError(t, handler.upcomingInPlace(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Location parameter is required", rec.Body.String())
	})

	t.Run("Testcase #3: unresolved location", func(t *testing.T) {
		handler := newTestHandler(&fakeEventUsecase{docsErr: domain.ErrLocationUnresolved}, queryCache)

		req := httptest.NewRequest(http.MethodGet, "/geo?location=nowhere", nil)
		rec := httptest.NewRecorder()

		require.NoError(t, handler.upcomingInPlace(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
