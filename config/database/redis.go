package database

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gomodule/redigo/redis"

	"github.com/communitycal/events-api/pkg/logger"
)

// InitRedis connection from environment, read host falls back to the write host
func InitRedis() (readPool, writePool *redis.Pool) {
	defer logger.LogWithDefer("Load Redis connection...")()

	hostWrite, portWrite, passWrite := os.Getenv("REDIS_WRITE_HOST"), os.Getenv("REDIS_WRITE_PORT"), os.Getenv("REDIS_WRITE_AUTH")
	tlsWrite, _ := strconv.ParseBool(os.Getenv("REDIS_WRITE_TLS"))
	hostRead, portRead, passRead := os.Getenv("REDIS_READ_HOST"), os.Getenv("REDIS_READ_PORT"), os.Getenv("REDIS_READ_AUTH")
	tlsRead, _ := strconv.ParseBool(os.Getenv("REDIS_READ_TLS"))
	if hostRead == "" {
		hostRead, portRead, passRead, tlsRead = hostWrite, portWrite, passWrite, tlsWrite
	}

	readPool = &redis.Pool{
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", fmt.Sprintf("%s:%s", hostRead, portRead), redis.DialPassword(passRead), redis.DialUseTLS(tlsRead))
		},
	}

	pingRead := readPool.Get()
	defer pingRead.Close()
	if _, err := pingRead.Do("PING"); err != nil {
		panic(err)
	}

	writePool = &redis.Pool{
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", fmt.Sprintf("%s:%s", hostWrite, portWrite), redis.DialPassword(passWrite), redis.DialUseTLS(tlsWrite))
		},
	}

	pingWrite := writePool.Get()
	defer pingWrite.Close()
	if _, err := pingWrite.Do("PING"); err != nil {
		panic(err)
	}

	return
}
