package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/communitycal/events-api/internal/modules/tag/domain"
	"github.com/communitycal/events-api/pkg/tracer"
)

const tagCollection = "tags"

// TagRepoMongo mongodb implementation
type TagRepoMongo struct {
	readDB, writeDB *mongo.Database
}

// NewTagRepoMongo constructor
func NewTagRepoMongo(readDB, writeDB *mongo.Database) *TagRepoMongo {
	return &TagRepoMongo{readDB: readDB, writeDB: writeDB}
}

// FindAll tags sorted by title
func (r *TagRepoMongo) FindAll(ctx context.Context) (tags []domain.Tag, err error) {
	trace := tracer.StartTrace(ctx, "TagRepoMongo:FindAll")
	defer func() {
		if err != nil {
			trace.SetError(err)
		}
		trace.Finish()
	}()
	ctx = trace.Context()

	cur, err := r.readDB.Collection(tagCollection).Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"title": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var tag domain.Tag
		if err := cur.Decode(&tag); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, cur.Err()
}

// FindBySlug single tag
func (r *TagRepoMongo) FindBySlug(ctx context.Context, slug string) (tag *domain.Tag, err error) {
	trace := tracer.StartTrace(ctx, "TagRepoMongo:FindBySlug")
	defer func() {
		if err != nil {
			trace.SetError(err)
		}
		trace.Finish()
	}()
	ctx = trace.Context()
	trace.SetTag("slug", slug)

	tag = new(domain.Tag)
	if err := r.readDB.Collection(tagCollection).FindOne(ctx, bson.M{"slug": slug}).Decode(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// Save insert or replace tag by id
func (r *TagRepoMongo) Save(ctx context.Context, tag *domain.Tag) (err error) {
	trace := tracer.StartTrace(ctx, "TagRepoMongo:Save")
	defer func() {
		if err != nil {
			trace.SetError(err)
		}
		trace.Finish()
	}()
	ctx = trace.Context()

	if tag.ID.IsZero() {
		tag.ID = primitive.NewObjectID()
	}

	opt := options.Replace().SetUpsert(true)
	_, err = r.writeDB.Collection(tagCollection).ReplaceOne(ctx, bson.M{"_id": tag.ID}, tag, opt)
	return err
}
