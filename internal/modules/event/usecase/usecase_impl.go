package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/communitycal/events-api/internal/access"
	"github.com/communitycal/events-api/internal/geocode"
	"github.com/communitycal/events-api/internal/modules/event/domain"
	"github.com/communitycal/events-api/internal/modules/event/repository/interfaces"
	"github.com/communitycal/events-api/pkg/helper"
	"github.com/communitycal/events-api/pkg/logger"
	"github.com/communitycal/events-api/pkg/shared"
	"github.com/communitycal/events-api/pkg/tracer"
	"github.com/communitycal/events-api/pkg/validator"
)

type eventUsecaseImpl struct {
	repo      interfaces.EventRepository
	geocoder  geocode.Geocoder
	validator *validator.Validator

	strictPolicy *bluemonday.Policy
	ugcPolicy    *bluemonday.Policy

	serverOrigin string
}

// NewEventUsecase constructor
func NewEventUsecase(repo interfaces.EventRepository, geocoder geocode.Geocoder, v *validator.Validator, serverOrigin string) EventUsecase {
	return &eventUsecaseImpl{
		repo:         repo,
		geocoder:     geocoder,
		validator:    v,
		strictPolicy: bluemonday.StrictPolicy(),
		ugcPolicy:    bluemonday.UGCPolicy(),
		serverOrigin: serverOrigin,
	}
}

// CalendarFeed build the ics feed for at most one discriminating filter
func (uc *eventUsecaseImpl) CalendarFeed(ctx context.Context, query *domain.CalendarQuery) (feed []byte, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "EventUsecase:CalendarFeed")
	defer func() {
		if err != nil {
			trace.SetError(err)
		}
		trace.Finish()
	}()

	name, value, err := query.ActiveFilter()
	if err != nil {
		return nil, err
	}
	trace.SetTag("filter", name)

	var events []domain.Event
	switch name {
	case "":
		events, err = uc.repo.Find(ctx, &domain.EventFilter{ExcludeDrafts: true, SortByStart: true})
	case "group":
		events, err = uc.repo.Find(ctx, &domain.EventFilter{
			GroupSlugs:  helper.ParseSlugList(value),
			Status:      helper.StatusPublished,
			SortByStart: true,
		})
	case "tag":
		events, err = uc.repo.Find(ctx, &domain.EventFilter{
			TagSlugs:    helper.ParseSlugList(value),
			Status:      helper.StatusPublished,
			SortByStart: true,
		})
	case "id":
		// unknown or draft event yields an empty feed, a failing store does not
		oid, parseErr := primitive.ObjectIDFromHex(value)
		if parseErr != nil {
			break
		}
		event, findErr := uc.repo.FindByID(ctx, oid)
		if findErr != nil {
			if !errors.Is(findErr, mongo.ErrNoDocuments) {
				err = findErr
			}
			break
		}
		if !event.IsDraft() {
			events = []domain.Event{*event}
		}
	case "geo":
		events, err = uc.findWithinGeoBoundary(ctx, value)
	}
	if err != nil {
		return nil, err
	}

	return BuildCalendarFeed(uc.serverOrigin, events, time.Now()), nil
}

func (uc *eventUsecaseImpl) findWithinGeoBoundary(ctx context.Context, location string) ([]domain.Event, error) {
	result, err := uc.geocoder.Search(ctx, location)
	if err != nil {
		if errors.Is(err, geocode.ErrNoResult) {
			return nil, domain.ErrInvalidGeoData
		}
		return nil, err
	}
	if !result.HasArea() {
		return nil, domain.ErrInvalidGeoData
	}

	ids, err := uc.repo.FindIDsWithinArea(ctx, result.GeoJSON)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, domain.ErrNoEventsFound
	}

	return uc.repo.Find(ctx, &domain.EventFilter{IDs: ids, ExcludeDrafts: true, SortByStart: true})
}

// UpcomingInPlace published upcoming events whose point lies within the resolved place boundary
func (uc *eventUsecaseImpl) UpcomingInPlace(ctx context.Context, location string) (views []domain.GeoEventView, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "EventUsecase:UpcomingInPlace")
	defer func() {
		if err != nil {
			trace.SetError(err)
		}
		trace.Finish()
	}()

	if strings.TrimSpace(location) == "" {
		return nil, domain.ErrLocationRequired
	}

	result, err := uc.geocoder.Search(ctx, location)
	if err != nil {
		if errors.Is(err, geocode.ErrNoResult) {
			return nil, domain.ErrLocationUnresolved
		}
		return nil, err
	}
	if !result.IsPlace() || !result.HasArea() {
		return nil, domain.ErrLocationUnresolved
	}

	now := time.Now()
	events, err := uc.repo.Find(ctx, &domain.EventFilter{
		ExcludeDrafts:   true,
		WithCoordinates: true,
		EndAfter:        &now,
		SortByStart:     true,
	})
	if err != nil {
		return nil, err
	}

	views = make([]domain.GeoEventView, 0)
	for i := range events {
		event := &events[i]
		if !event.HasPoint() {
			continue
		}
		if result.GeoJSON.Contains(event.Coordinates[0], event.Coordinates[1]) {
			views = append(views, domain.NewGeoEventView(event))
		}
	}
	return views, nil
}

// FindAll paginated event list, narrowed by the caller's read access
func (uc *eventUsecaseImpl) FindAll(ctx context.Context, filter *domain.EventFilter) (events []domain.Event, meta shared.Meta, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "EventUsecase:FindAll")
	defer func() {
		if err != nil {
			trace.SetError(err)
		}
		trace.Finish()
	}()

	applyReadDecision(filter, access.ReadEvents(access.GetIdentity(ctx)))
	filter.CalculateOffset()
	filter.SortByStart = true

	events, err = uc.repo.Find(ctx, filter)
	if err != nil {
		return nil, meta, err
	}

	count := uc.repo.Count(ctx, filter)
	return events, shared.NewMeta(filter.Page, filter.Limit, count), nil
}

// FindByID single event, drafts only visible per the caller's read access
func (uc *eventUsecaseImpl) FindByID(ctx context.Context, id string) (event *domain.Event, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "EventUsecase:FindByID")
	defer trace.Finish()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEventNotFound
	}

	event, err = uc.repo.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}

	if event.IsDraft() {
		decision := access.ReadEvents(access.GetIdentity(ctx))
		switch decision.Kind {
		case access.Allow:
		case access.FilterByGroups:
			if !helper.StringInSlice(event.GroupID.Hex(), decision.GroupIDs) {
				return nil, domain.ErrEventNotFound
			}
		default:
			return nil, domain.ErrEventNotFound
		}
	}
	return event, nil
}

// Create new event from payload
func (uc *eventUsecaseImpl) Create(ctx context.Context, payload *domain.Payload) (*domain.Event, error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "EventUsecase:Create")
	defer trace.Finish()

	event, err := uc.buildEvent(ctx, payload, nil)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Update replace existing event from payload, create timestamps preserved
func (uc *eventUsecaseImpl) Update(ctx context.Context, id string, payload *domain.Payload) (*domain.Event, error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "EventUsecase:Update")
	defer trace.Finish()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEventNotFound
	}
	existing, err := uc.repo.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}

	identity := access.GetIdentity(ctx)
	if decision := access.MutateEvent(identity, existing.GroupID.Hex()); decision.Kind != access.Allow {
		return nil, domain.ErrForbidden
	}

	event, err := uc.buildEvent(ctx, payload, existing)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// buildEvent shared write pipeline: access check, sanitize, validate, geocode enrich
func (uc *eventUsecaseImpl) buildEvent(ctx context.Context, payload *domain.Payload, existing *domain.Event) (*domain.Event, error) {
	groupID, err := primitive.ObjectIDFromHex(payload.Group)
	if err != nil {
		return nil, domain.ErrInvalidGroup
	}

	identity := access.GetIdentity(ctx)
	if decision := access.MutateEvent(identity, groupID.Hex()); decision.Kind != access.Allow {
		return nil, domain.ErrForbidden
	}

	payload.Title = uc.strictPolicy.Sanitize(payload.Title)
	payload.Description = uc.ugcPolicy.Sanitize(payload.Description)
	payload.Location = uc.strictPolicy.Sanitize(payload.Location)
	payload.Organizer = uc.strictPolicy.Sanitize(payload.Organizer)

	if err := uc.validator.ValidateStruct(payload); err != nil {
		return nil, err
	}
	if !payload.Start.Before(payload.End) {
		multiError := helper.NewMultiError()
		multiError.Append("start", errors.New("start must be before end"))
		return nil, multiError
	}

	var tagIDs []primitive.ObjectID
	for _, tag := range payload.Tags {
		tagID, err := primitive.ObjectIDFromHex(tag)
		if err != nil {
			return nil, shared.NewAPIError(http.StatusBadRequest, "Invalid tag reference")
		}
		tagIDs = append(tagIDs, tagID)
	}

	status := payload.Status
	if status == "" {
		status = helper.StatusDraft
	}

	now := time.Now()
	event := &domain.Event{
		Title:       payload.Title,
		Description: payload.Description,
		Start:       payload.Start,
		End:         payload.End,
		Location:    payload.Location,
		Organizer:   payload.Organizer,
		GroupID:     groupID,
		TagIDs:      tagIDs,
		Status:      status,
		CreatedAt:   now,
		ModifiedAt:  now,
	}
	if identity != nil {
		event.CreatedBy = identity.ID
	}
	if existing != nil {
		event.ID = existing.ID
		event.CreatedBy = existing.CreatedBy
		event.CreatedAt = existing.CreatedAt
	}

	// best effort enrichment, a failed lookup never blocks the write
	if result, err := uc.geocoder.Search(ctx, payload.Location); err != nil {
		logger.LogEf("event: geocode %s: %v", payload.Location, err)
	} else {
		event.Coordinates = []float64{result.Lon, result.Lat}
		event.Address = result.Address
	}

	return event, nil
}

func applyReadDecision(filter *domain.EventFilter, decision access.Decision) {
	switch decision.Kind {
	case access.Allow:
	case access.FilterByGroups:
		for _, groupID := range decision.GroupIDs {
			if oid, err := primitive.ObjectIDFromHex(groupID); err == nil {
				filter.VisibleToGroups = append(filter.VisibleToGroups, oid)
			}
		}
		if len(filter.VisibleToGroups) == 0 {
			filter.Status = helper.StatusPublished
		}
	default:
		filter.Status = helper.StatusPublished
	}
}
