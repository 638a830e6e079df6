package database

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/communitycal/events-api/pkg/logger"
)

// InitMongoDB return mongo db read & write instance from environment:
// MONGODB_HOST_WRITE, MONGODB_HOST_READ
// if want to create single connection, use MONGODB_HOST_WRITE and set empty for MONGODB_HOST_READ
func InitMongoDB(ctx context.Context) (read, write *mongo.Database) {
	defer logger.LogWithDefer("Load MongoDB connection...")()

	connWriteDSN := os.Getenv("MONGODB_HOST_WRITE")
	connReadDSN := os.Getenv("MONGODB_HOST_READ")
	if connReadDSN == "" {
		db := ConnectMongoDB(ctx, connWriteDSN)
		return db, db
	}

	return ConnectMongoDB(ctx, connReadDSN), ConnectMongoDB(ctx, connWriteDSN)
}

// ConnectMongoDB connect to mongodb with dsn
func ConnectMongoDB(ctx context.Context, dsn string) *mongo.Database {
	connDSN, err := connstring.ParseAndValidate(dsn)
	if err != nil {
		log.Panic(err)
	}

	client, err := mongo.Connect(ctx,
		options.Client().ApplyURI(connDSN.String()),
		options.Client().SetConnectTimeout(10*time.Second),
		options.Client().SetServerSelectionTimeout(10*time.Second),
	)
	if err != nil {
		log.Panicf("mongodb: %v, conn: %s", err, connDSN.String())
	}
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Panicf("mongodb ping: %v", err)
	}

	return client.Database(connDSN.Database)
}
