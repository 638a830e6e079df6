package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/communitycal/events-api/internal/modules/event/domain"
	"github.com/communitycal/events-api/pkg/geo"
	"github.com/communitycal/events-api/pkg/helper"
	"github.com/communitycal/events-api/pkg/tracer"
)

const (
	eventCollection = "events"
	groupCollection = "groups"
	tagCollection   = "tags"
)

// EventRepoMongo mongodb implementation
type EventRepoMongo struct {
	readDB, writeDB *mongo.Database
}

// NewEventRepoMongo constructor
func NewEventRepoMongo(readDB, writeDB *mongo.Database) *EventRepoMongo {
	return &EventRepoMongo{readDB: readDB, writeDB: writeDB}
}

// Find events matching filter
func (r *EventRepoMongo) Find(ctx context.Context, filter *domain.EventFilter) (events []domain.Event, err error) {
	trace := tracer.StartTrace(ctx, "EventRepoMongo:Find")
	defer func() {
		if err != nil {
			trace.SetError(err)
		}
		trace.Finish()
	}()
	ctx = trace.Context()

	query, err := r.buildQuery(ctx, filter)
	if err != nil {
		return nil, err
	}
	trace.SetTag("query", query)

	findOptions := options.Find()
	if filter.SortByStart {
		findOptions.SetSort(bson.M{"start": 1})
	}
	if filter.Limit > 0 {
		findOptions.SetSkip(int64(filter.Offset)).SetLimit(int64(filter.Limit))
	}

	cur, err := r.readDB.Collection(eventCollection).Find(ctx, query, findOptions)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var event domain.Event
		if err := cur.Decode(&event); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, cur.Err()
}

// Count events matching filter
func (r *EventRepoMongo) Count(ctx context.Context, filter *domain.EventFilter) int {
	trace := tracer.StartTrace(ctx, "EventRepoMongo:Count")
	defer trace.Finish()
	ctx = trace.Context()

	query, err := r.buildQuery(ctx, filter)
	if err != nil {
		return 0
	}

	count, err := r.readDB.Collection(eventCollection).CountDocuments(ctx, query)
	if err != nil {
		trace.SetError(err)
		return 0
	}
	return int(count)
}

// FindByID single event
func (r *EventRepoMongo) FindByID(ctx context.Context, id primitive.ObjectID) (event *domain.Event, err error) {
	trace := tracer.StartTrace(ctx, "EventRepoMongo:FindByID")
	defer func() {
		if err != nil {
			trace.SetError(err)
		}
		trace.Finish()
	}()
	ctx = trace.Context()
	trace.SetTag("_id", id.Hex())

	event = new(domain.Event)
	if err := r.readDB.Collection(eventCollection).FindOne(ctx, bson.M{"_id": id}).Decode(event); err != nil {
		return nil, err
	}
	return event, nil
}

// FindIDsWithinArea coarse geo pre filter, ids of events whose point lies within the geometry
func (r *EventRepoMongo) FindIDsWithinArea(ctx context.Context, geometry *geo.Geometry) (ids []primitive.ObjectID, err error) {
	trace := tracer.StartTrace(ctx, "EventRepoMongo:FindIDsWithinArea")
	defer func() {
		if err != nil {
			trace.SetError(err)
		}
		trace.Finish()
	}()
	ctx = trace.Context()

	query := bson.M{
		"coordinates": bson.M{
			"$geoWithin": bson.M{
				"$geometry": bson.M{
					"type":        geometry.Type,
					"coordinates": geometry.Coordinates(),
				},
			},
		},
	}

	cur, err := r.readDB.Collection(eventCollection).Find(ctx, query, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var doc struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		ids = append(ids, doc.ID)
	}
	return ids, cur.Err()
}

// Save insert or replace event by id
func (r *EventRepoMongo) Save(ctx context.Context, event *domain.Event) (err error) {
	trace := tracer.StartTrace(ctx, "EventRepoMongo:Save")
	defer func() {
		if err != nil {
			trace.SetError(err)
		}
		trace.Finish()
	}()
	ctx = trace.Context()

	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}

	opt := options.Replace().SetUpsert(true)
	_, err = r.writeDB.Collection(eventCollection).ReplaceOne(ctx, bson.M{"_id": event.ID}, event, opt)
	return err
}

func (r *EventRepoMongo) buildQuery(ctx context.Context, filter *domain.EventFilter) (bson.M, error) {
	query := bson.M{}

	switch {
	case filter.Status != "":
		query["_status"] = filter.Status
	case len(filter.VisibleToGroups) > 0:
		query["$or"] = []bson.M{
			{"_status": helper.StatusPublished},
			{"group": bson.M{"$in": filter.VisibleToGroups}},
		}
	case filter.ExcludeDrafts:
		query["_status"] = bson.M{"$ne": helper.StatusDraft}
	}

	if len(filter.IDs) > 0 {
		query["_id"] = bson.M{"$in": filter.IDs}
	}
	if len(filter.GroupSlugs) > 0 {
		groupIDs, err := r.resolveSlugs(ctx, groupCollection, filter.GroupSlugs)
		if err != nil {
			return nil, err
		}
		query["group"] = bson.M{"$in": groupIDs}
	}
	if len(filter.TagSlugs) > 0 {
		tagIDs, err := r.resolveSlugs(ctx, tagCollection, filter.TagSlugs)
		if err != nil {
			return nil, err
		}
		query["tags"] = bson.M{"$in": tagIDs}
	}
	if filter.WithCoordinates {
		query["coordinates"] = bson.M{"$exists": true, "$ne": nil}
	}
	if filter.EndAfter != nil {
		query["end"] = bson.M{"$gte": filter.EndAfter}
	}

	return query, nil
}

// resolveSlugs map group or tag slugs to their object ids
func (r *EventRepoMongo) resolveSlugs(ctx context.Context, collection string, slugs []string) (ids []primitive.ObjectID, err error) {
	cur, err := r.readDB.Collection(collection).Find(ctx,
		bson.M{"slug": bson.M{"$in": slugs}},
		options.Find().SetProjection(bson.M{"_id": 1}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var doc struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		ids = append(ids, doc.ID)
	}
	return ids, cur.Err()
}
