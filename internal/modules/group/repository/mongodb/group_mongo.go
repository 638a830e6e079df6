package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/communitycal/events-api/internal/modules/group/domain"
	"github.com/communitycal/events-api/pkg/shared"
	"github.com/communitycal/events-api/pkg/tracer"
)

const groupCollection = "groups"

// GroupRepoMongo mongodb implementation
type GroupRepoMongo struct {
	readDB, writeDB *mongo.Database
}

// NewGroupRepoMongo constructor
func NewGroupRepoMongo(readDB, writeDB *mongo.Database) *GroupRepoMongo {
	return &GroupRepoMongo{readDB: readDB, writeDB: writeDB}
}

// FindAll groups sorted by title
func (r *GroupRepoMongo) FindAll(ctx context.Context, filter *shared.Filter) (groups []domain.Group, err error) {
	trace := tracer.StartTrace(ctx, "GroupRepoMongo:FindAll")
	defer func() {
		if err != nil {
			trace.SetError(err)
		}
		trace.Finish()
	}()
	ctx = trace.Context()

	findOptions := options.Find().SetSort(bson.M{"title": 1})
	if filter.Limit > 0 {
		findOptions.SetSkip(int64(filter.Offset)).SetLimit(int64(filter.Limit))
	}

	cur, err := r.readDB.Collection(groupCollection).Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var group domain.Group
		if err := cur.Decode(&group); err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, cur.Err()
}

// Count all groups
func (r *GroupRepoMongo) Count(ctx context.Context) int {
	count, err := r.readDB.Collection(groupCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0
	}
	return int(count)
}

// FindBySlug single group
func (r *GroupRepoMongo) FindBySlug(ctx context.Context, slug string) (group *domain.Group, err error) {
	trace := tracer.StartTrace(ctx, "GroupRepoMongo:FindBySlug")
	defer func() {
		if err != nil {
			trace.SetError(err)
		}
		trace.Finish()
	}()
	ctx = trace.Context()
	trace.SetTag("slug", slug)

	group = new(domain.Group)
	if err := r.readDB.Collection(groupCollection).FindOne(ctx, bson.M{"slug": slug}).Decode(group); err != nil {
		return nil, err
	}
	return group, nil
}

// FindByAPIKey resolve editor credential to its group
func (r *GroupRepoMongo) FindByAPIKey(ctx context.Context, apiKey string) (group *domain.Group, err error) {
	trace := tracer.StartTrace(ctx, "GroupRepoMongo:FindByAPIKey")
	defer func() {
		if err != nil {
			trace.SetError(err)
		}
		trace.Finish()
	}()
	ctx = trace.Context()

	group = new(domain.Group)
	if err := r.readDB.Collection(groupCollection).FindOne(ctx, bson.M{"api_key": apiKey}).Decode(group); err != nil {
		return nil, err
	}
	return group, nil
}

// Save insert or replace group by id
func (r *GroupRepoMongo) Save(ctx context.Context, group *domain.Group) (err error) {
	trace := tracer.StartTrace(ctx, "GroupRepoMongo:Save")
	defer func() {
		if err != nil {
			trace.SetError(err)
		}
		trace.Finish()
	}()
	ctx = trace.Context()

	if group.ID.IsZero() {
		group.ID = primitive.NewObjectID()
	}

	opt := options.Replace().SetUpsert(true)
	_, err = r.writeDB.Collection(groupCollection).ReplaceOne(ctx, bson.M{"_id": group.ID}, group, opt)
	return err
}
