package config

import (
	"context"
	"fmt"
	"log"

	"github.com/gomodule/redigo/redis"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/communitycal/events-api/config/database"
	"github.com/communitycal/events-api/pkg/cache"
)

// Config app
type Config struct {
	MongoRead, MongoWrite         *mongo.Database
	RedisReadPool, RedisWritePool *redis.Pool

	// QueryCache whole feed responses, GeocodeCache locationiq lookups
	QueryCache, GeocodeCache cache.Cache
}

// Init app config with timeout
func Init(ctx context.Context, rootApp string) *Config {
	loadEnv(rootApp)

	cfgChan := make(chan *Config)
	errConnect := make(chan interface{})
	go func() {
		defer func() {
			if r := recover(); r != nil {
				errConnect <- r
			}
			close(cfgChan)
			close(errConnect)
		}()

		var cfg Config
		cfg.MongoRead, cfg.MongoWrite = database.InitMongoDB(ctx)
		if GlobalEnv.UseRedis {
			cfg.RedisReadPool, cfg.RedisWritePool = database.InitRedis()
			cfg.QueryCache = cache.NewRedisCache(cfg.RedisReadPool, cfg.RedisWritePool, GlobalEnv.QueryCacheTTL)
			cfg.GeocodeCache = cache.NewRedisCache(cfg.RedisReadPool, cfg.RedisWritePool, GlobalEnv.GeocodeCacheTTL)
		} else {
			cfg.QueryCache = cache.NewInMemCache(GlobalEnv.QueryCacheTTL)
			cfg.GeocodeCache = cache.NewInMemCache(GlobalEnv.GeocodeCacheTTL)
		}

		cfgChan <- &cfg
	}()

	// with timeout to init configuration
	select {
	case cfg := <-cfgChan:
		return cfg
	case <-ctx.Done():
		panic(fmt.Errorf("timeout to init configuration: %v", ctx.Err()))
	case e := <-errConnect:
		panic(fmt.Errorf("failed init configuration :=> %v", e))
	}
}

// Exit release all connection, think as deferred function in main
func (c *Config) Exit(ctx context.Context) {
	if c.MongoWrite != nil {
		c.MongoWrite.Client().Disconnect(ctx)
	}
	if c.MongoRead != nil {
		c.MongoRead.Client().Disconnect(ctx)
	}
	if c.RedisReadPool != nil {
		c.RedisReadPool.Close()
	}
	if c.RedisWritePool != nil {
		c.RedisWritePool.Close()
	}
	if inmem, ok := c.QueryCache.(*cache.InMemCache); ok {
		inmem.Close()
	}
	if inmem, ok := c.GeocodeCache.(*cache.InMemCache); ok {
		inmem.Close()
	}

	log.Println("\x1b[33;1mConfig: Success close all connection\x1b[0m")
}
