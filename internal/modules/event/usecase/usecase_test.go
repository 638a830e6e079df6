package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/communitycal/events-api/internal/access"
	"github.com/communitycal/events-api/internal/geocode"
	"github.com/communitycal/events-api/internal/modules/event/domain"
	"github.com/communitycal/events-api/pkg/geo"
	"github.com/communitycal/events-api/pkg/helper"
	"github.com/communitycal/events-api/pkg/validator"
)

type fakeEventRepo struct {
	events      []domain.Event
	areaIDs     []primitive.ObjectID
	lastFilter  *domain.EventFilter
	saved       *domain.Event
	findErr     error
	findByIDErr error
}

func (f *fakeEventRepo) Find(ctx context.Context, filter *domain.EventFilter) ([]domain.Event, error) {
	f.lastFilter = filter
	if f.findErr != nil {
		return nil, f.findErr
	}

	var events []domain.Event
	for _, event := range f.events {
		if filter.Status != "" && event.Status != filter.Status {
			continue
		}
		if filter.ExcludeDrafts && event.Status == helper.StatusDraft {
			continue
		}
		events = append(events, event)
	}
	return events, nil
}

func (f *fakeEventRepo) Count(ctx context.Context, filter *domain.EventFilter) int {
	return len(f.events)
}

func (f *fakeEventRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Event, error) {
	if f.findByIDErr != nil {
		return nil, f.findByIDErr
	}
	for i := range f.events {
		if f.events[i].ID == id {
			return &f.events[i], nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeEventRepo) FindIDsWithinArea(ctx context.Context, geometry *geo.Geometry) ([]primitive.ObjectID, error) {
	return f.areaIDs, nil
}

func (f *fakeEventRepo) Save(ctx context.Context, event *domain.Event) error {
	f.saved = event
	return nil
}

type fakeGeocoder struct {
	result *geocode.Result
	err    error
}

func (f *fakeGeocoder) Search(ctx context.Context, query string) (*geocode.Result, error) {
	return f.result, f.err
}

func areaResult(t *testing.T, class string) *geocode.Result {
	t.Helper()
	var geometry geo.Geometry
	raw := `{"type":"Polygon","coordinates":[[[0,0],[10,0],[10,10],[0,10],[0,0]]]}`
	require.NoError(t, json.Unmarshal([]byte(raw), &geometry))
	return &geocode.Result{Lat: 5, Lon: 5, Class: class, GeoJSON: &geometry}
}

func publishedEvent(title string, start, end time.Time) domain.Event {
	return domain.Event{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: "description",
		Location:    "somewhere",
		Start:       start,
		End:         end,
		GroupID:     primitive.NewObjectID(),
		Status:      helper.StatusPublished,
	}
}

func adminContext() context.Context {
	return access.SetToContext(context.Background(), &access.Identity{ID: "root", Roles: []string{helper.RoleAdmin}})
}

func newTestUsecase(repo *fakeEventRepo, geocoder *fakeGeocoder) EventUsecase {
	return NewEventUsecase(repo, geocoder, validator.NewValidator(), "https://calendar.example.org")
}

func TestCalendarFeed(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("Testcase #1: no filter serves all non draft events", func(t *testing.T) {
		repo := &fakeEventRepo{events: []domain.Event{publishedEvent("Meetup", now, now.Add(time.Hour))}}
		uc := newTestUsecase(repo, &fakeGeocoder{})

		feed, err := uc.CalendarFeed(ctx, &domain.CalendarQuery{})
		require.NoError(t, err)
		assert.Contains(t, string(feed), "SUMMARY:Meetup")
		assert.True(t, repo.lastFilter.ExcludeDrafts)
	})

	t.Run("Testcase #2: conflicting filters rejected", func(t *testing.T) {
		uc := newTestUsecase(&fakeEventRepo{}, &fakeGeocoder{})

		_, err := uc.CalendarFeed(ctx, &domain.CalendarQuery{Group: "tech", Tag: "workshop", HasParams: true})
		assert.Equal(t, domain.ErrConflictingFilters, err)
	})

	t.Run("Testcase #3: unknown parameters only rejected", func(t *testing.T) {
		uc := newTestUsecase(&fakeEventRepo{}, &fakeGeocoder{})

		_, err := uc.CalendarFeed(ctx, &domain.CalendarQuery{HasParams: true})
		assert.Equal(t, domain.ErrMissingFilter, err)
	})

	t.Run("Testcase #4: group filter narrows to published slug matches", func(t *testing.T) {
		repo := &fakeEventRepo{}
		uc := newTestUsecase(repo, &fakeGeocoder{})

		_, err := uc.CalendarFeed(ctx, &domain.CalendarQuery{Group: "tech,art", HasParams: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"tech", "art"}, repo.lastFilter.GroupSlugs)
		assert.Equal(t, helper.StatusPublished, repo.lastFilter.Status)
	})

	t.Run("Testcase #5: draft id yields empty feed", func(t *testing.T) {
		draft := publishedEvent("Secret", now, now.Add(time.Hour))
		draft.Status = helper.StatusDraft
		repo := &fakeEventRepo{events: []domain.Event{draft}}
		uc := newTestUsecase(repo, &fakeGeocoder{})

		feed, err := uc.CalendarFeed(ctx, &domain.CalendarQuery{ID: draft.ID.Hex(), HasParams: true})
		require.NoError(t, err)
		assert.NotContains(t, string(feed), "BEGIN:VEVENT")
	})

	t.Run("Testcase #6: geo filter without polygonal result rejected", func(t *testing.T) {
		point := &geocode.Result{Lat: 5, Lon: 5, Class: "place"}
		uc := newTestUsecase(&fakeEventRepo{}, &fakeGeocoder{result: point})

		_, err := uc.CalendarFeed(ctx, &domain.CalendarQuery{Geo: "Frankfurt", HasParams: true})
		assert.Equal(t, domain.ErrInvalidGeoData, err)
	})

	t.Run("Testcase #7: geo filter with empty boundary is 404", func(t *testing.T) {
		uc := newTestUsecase(&fakeEventRepo{}, &fakeGeocoder{result: areaResult(t, "boundary")})

		_, err := uc.CalendarFeed(ctx, &domain.CalendarQuery{Geo: "Frankfurt", HasParams: true})
		assert.Equal(t, domain.ErrNoEventsFound, err)
	})

	t.Run("Testcase #8: geo filter hydrates pre filtered ids", func(t *testing.T) {
		event := publishedEvent("Nearby", now, now.Add(time.Hour))
		repo := &fakeEventRepo{events: []domain.Event{event}, areaIDs: []primitive.ObjectID{event.ID}}
		uc := newTestUsecase(repo, &fakeGeocoder{result: areaResult(t, "boundary")})

		feed, err := uc.CalendarFeed(ctx, &domain.CalendarQuery{Geo: "Frankfurt", HasParams: true})
		require.NoError(t, err)
		assert.Contains(t, string(feed), "SUMMARY:Nearby")
		assert.Equal(t, []primitive.ObjectID{event.ID}, repo.lastFilter.IDs)
	})

	t.Run("Testcase #9: unknown id yields empty feed", func(t *testing.T) {
		uc := newTestUsecase(&fakeEventRepo{}, &fakeGeocoder{})

		feed, err := uc.CalendarFeed(ctx, &domain.CalendarQuery{ID: primitive.NewObjectID().Hex(), HasParams: true})
		require.NoError(t, err)
		assert.NotContains(t, string(feed), "BEGIN:VEVENT")
	})

	t.Run("Testcase #10: failing store on id lookup surfaces the error", func(t *testing.T) {
		storeErr := errors.New("server selection timeout")
		uc := newTestUsecase(&fakeEventRepo{findByIDErr: storeErr}, &fakeGeocoder{})

		_, err := uc.CalendarFeed(ctx, &domain.CalendarQuery{ID: primitive.NewObjectID().Hex(), HasParams: true})
		assert.Equal(t, storeErr, err)
	})

	t.Run("Testcase #11: group feed links published entries only", func(t *testing.T) {
		first := publishedEvent("January Meetup", now, now.Add(time.Hour))
		second := publishedEvent("February Meetup", now.Add(24*time.Hour), now.Add(25*time.Hour))
		draft := publishedEvent("Unfinished", now, now.Add(time.Hour))
		draft.Status = helper.StatusDraft

		repo := &fakeEventRepo{events: []domain.Event{first, second, draft}}
		uc := newTestUsecase(repo, &fakeGeocoder{})

		feed, err := uc.CalendarFeed(ctx, &domain.CalendarQuery{Group: "tech", HasParams: true})
		require.NoError(t, err)

		body := string(feed)
		assert.Equal(t, 2, strings.Count(body, "BEGIN:VEVENT"))
		assert.Contains(t, body, "UID:"+first.ID.Hex())
		assert.Contains(t, body, "UID:"+second.ID.Hex())
		assert.NotContains(t, body, draft.ID.Hex())
		assert.Contains(t, body, "URL:https://calendar.example.org/events/"+first.ID.Hex())
		assert.Contains(t, body, "URL:https://calendar.example.org/events/"+second.ID.Hex())
	})
}

func TestUpcomingInPlace(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("Testcase #1: location required", func(t *testing.T) {
		uc := newTestUsecase(&fakeEventRepo{}, &fakeGeocoder{})

		_, err := uc.UpcomingInPlace(ctx, "  ")
		assert.Equal(t, domain.ErrLocationRequired, err)
	})

	t.Run("Testcase #2: non place class is unresolved", func(t *testing.T) {
		uc := newTestUsecase(&fakeEventRepo{}, &fakeGeocoder{result: areaResult(t, "highway")})

		_, err := uc.UpcomingInPlace(ctx, "A5")
		assert.Equal(t, domain.ErrLocationUnresolved, err)
	})

	t.Run("Testcase #3: no geocode result is unresolved", func(t *testing.T) {
		uc := newTestUsecase(&fakeEventRepo{}, &fakeGeocoder{err: geocode.ErrNoResult})

		_, err := uc.UpcomingInPlace(ctx, "nowhere")
		assert.Equal(t, domain.ErrLocationUnresolved, err)
	})

	t.Run("Testcase #4: only events inside the boundary returned", func(t *testing.T) {
		inside := publishedEvent("Inside", now, now.Add(time.Hour))
		inside.Coordinates = []float64{5, 5}
		outside := publishedEvent("Outside", now, now.Add(time.Hour))
		outside.Coordinates = []float64{50, 50}

		repo := &fakeEventRepo{events: []domain.Event{inside, outside}}
		uc := newTestUsecase(repo, &fakeGeocoder{result: areaResult(t, "place")})

		docs, err := uc.UpcomingInPlace(ctx, "Frankfurt")
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "Inside", docs[0].Title)

		assert.True(t, repo.lastFilter.WithCoordinates)
		assert.NotNil(t, repo.lastFilter.EndAfter)
	})
}

func TestFindAll(t *testing.T) {
	now := time.Now()

	t.Run("Testcase #1: anonymous sees published only", func(t *testing.T) {
		repo := &fakeEventRepo{events: []domain.Event{publishedEvent("Meetup", now, now.Add(time.Hour))}}
		uc := newTestUsecase(repo, &fakeGeocoder{})

		_, meta, err := uc.FindAll(context.Background(), &domain.EventFilter{})
		require.NoError(t, err)
		assert.Equal(t, helper.StatusPublished, repo.lastFilter.Status)
		assert.Equal(t, 1, meta.TotalRecords)
	})

	t.Run("Testcase #2: editor filter includes own group drafts", func(t *testing.T) {
		groupID := primitive.NewObjectID()
		ctx := access.SetToContext(context.Background(), &access.Identity{
			ID: "tech", Roles: []string{helper.RoleEditor}, Groups: []string{groupID.Hex()},
		})
		repo := &fakeEventRepo{}
		uc := newTestUsecase(repo, &fakeGeocoder{})

		_, _, err := uc.FindAll(ctx, &domain.EventFilter{})
		require.NoError(t, err)
		assert.Equal(t, []primitive.ObjectID{groupID}, repo.lastFilter.VisibleToGroups)
		assert.Empty(t, repo.lastFilter.Status)
	})

	t.Run("Testcase #3: admin sees everything", func(t *testing.T) {
		repo := &fakeEventRepo{}
		uc := newTestUsecase(repo, &fakeGeocoder{})

		_, _, err := uc.FindAll(adminContext(), &domain.EventFilter{})
		require.NoError(t, err)
		assert.Empty(t, repo.lastFilter.Status)
		assert.Empty(t, repo.lastFilter.VisibleToGroups)
	})
}

func TestFindByID(t *testing.T) {
	now := time.Now()

	t.Run("Testcase #1: published event visible to anyone", func(t *testing.T) {
		event := publishedEvent("Meetup", now, now.Add(time.Hour))
		repo := &fakeEventRepo{events: []domain.Event{event}}
		uc := newTestUsecase(repo, &fakeGeocoder{})

		found, err := uc.FindByID(context.Background(), event.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, "Meetup", found.Title)
	})

	t.Run("Testcase #2: unknown id not found", func(t *testing.T) {
		uc := newTestUsecase(&fakeEventRepo{}, &fakeGeocoder{})

		_, err := uc.FindByID(context.Background(), primitive.NewObjectID().Hex())
		assert.Equal(t, domain.ErrEventNotFound, err)
	})

	t.Run("Testcase #3: draft hidden from anonymous", func(t *testing.T) {
		draft := publishedEvent("Secret", now, now.Add(time.Hour))
		draft.Status = helper.StatusDraft
		repo := &fakeEventRepo{events: []domain.Event{draft}}
		uc := newTestUsecase(repo, &fakeGeocoder{})

		_, err := uc.FindByID(context.Background(), draft.ID.Hex())
		assert.Equal(t, domain.ErrEventNotFound, err)
	})

	t.Run("Testcase #4: failing store not masked as not found", func(t *testing.T) {
		storeErr := errors.New("connection reset")
		uc := newTestUsecase(&fakeEventRepo{findByIDErr: storeErr}, &fakeGeocoder{})

		_, err := uc.FindByID(context.Background(), primitive.NewObjectID().Hex())
		assert.Equal(t, storeErr, err)
	})
}

func TestCreate(t *testing.T) {
	now := time.Now()
	groupID := primitive.NewObjectID()

	payload := func() *domain.Payload {
		return &domain.Payload{
			Title:       "Meetup <script>alert(1)</script>",
			Description: "Monthly <b>community</b> meetup",
			Location:    "Town Hall",
			Start:       now.Add(time.Hour),
			End:         now.Add(2 * time.Hour),
			Group:       groupID.Hex(),
		}
	}

	t.Run("Testcase #1: anonymous denied", func(t *testing.T) {
		uc := newTestUsecase(&fakeEventRepo{}, &fakeGeocoder{})

		_, err := uc.Create(context.Background(), payload())
		assert.Equal(t, domain.ErrForbidden, err)
	})

	t.Run("Testcase #2: editor of another group denied", func(t *testing.T) {
		ctx := access.SetToContext(context.Background(), &access.Identity{
			ID: "art", Roles: []string{helper.RoleEditor}, Groups: []string{primitive.NewObjectID().Hex()},
		})
		uc := newTestUsecase(&fakeEventRepo{}, &fakeGeocoder{})

		_, err := uc.Create(ctx, payload())
		assert.Equal(t, domain.ErrForbidden, err)
	})

	t.Run("Testcase #3: admin create sanitizes and enriches", func(t *testing.T) {
		repo := &fakeEventRepo{}
		uc := newTestUsecase(repo, &fakeGeocoder{result: areaResult(t, "place")})

		event, err := uc.Create(adminContext(), payload())
		require.NoError(t, err)
		assert.NotContains(t, event.Title, "<script>")
		assert.Contains(t, event.Description, "<b>community</b>")
		assert.Equal(t, helper.StatusDraft, event.Status)
		assert.Equal(t, []float64{5, 5}, event.Coordinates)
		assert.Equal(t, repo.saved, event)
	})

	t.Run("Testcase #4: failed geocode never blocks the write", func(t *testing.T) {
		repo := &fakeEventRepo{}
		uc := newTestUsecase(repo, &fakeGeocoder{err: geocode.ErrNoResult})

		event, err := uc.Create(adminContext(), payload())
		require.NoError(t, err)
		assert.Empty(t, event.Coordinates)
		assert.NotNil(t, repo.saved)
	})

	t.Run("Testcase #5: start must precede end", func(t *testing.T) {
		uc := newTestUsecase(&fakeEventRepo{}, &fakeGeocoder{})

		invalid := payload()
		invalid.Start, invalid.End = invalid.End, invalid.Start
		_, err := uc.Create(adminContext(), invalid)
		require.Error(t, err)

		multiError, ok := err.(helper.MultiError)
		require.True(t, ok)
		assert.Contains(t, multiError.ToMap(), "start")
	})

	t.Run("Testcase #6: missing fields rejected", func(t *testing.T) {
		uc := newTestUsecase(&fakeEventRepo{}, &fakeGeocoder{})

		invalid := payload()
		invalid.Title = ""
		_, err := uc.Create(adminContext(), invalid)
		assert.Error(t, err)
	})
}
