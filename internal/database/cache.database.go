package database

import (
	"context"
	"fmt"

	"consa/config"

	"github.com/valkey-io/valkey-go"
)

type CacheClient valkey.Client

type Cache struct {
	General   CacheClient
	Session   CacheClient
	User      CacheClient
	ClientAPI CacheClient
}

// Valkey database index organization. Each index provides logical separation
// for one cache category.
const (
	// GENERAL_CACHE_INDEX (DB 0) - general purpose caching
	GENERAL_CACHE_INDEX = iota

	// SESSION_CACHE_INDEX (DB 1) - session tokens and auth-related temporary data
	SESSION_CACHE_INDEX

	// USER_CACHE_INDEX (DB 2) - user profiles and per-user Spotify access tokens
	USER_CACHE_INDEX

	// CLIENT_API_CACHE_INDEX (DB 3) - external API responses (Songkick locations)
	CLIENT_API_CACHE_INDEX
)

func (s *DB) initializeCacheDB(config config.Config) error {
	log := s.log.Function("initializeCacheDB")
	log.Info("initializing cache database")

	address := config.DatabaseCacheAddress
	port := config.DatabaseCachePort
	if address == "" || port == 0 {
		return log.ErrMsg("cache address or port is empty")
	}

	clients := []struct {
		target *CacheClient
		index  int
		name   string
	}{
		{&s.Cache.General, GENERAL_CACHE_INDEX, "general"},
		{&s.Cache.Session, SESSION_CACHE_INDEX, "session"},
		{&s.Cache.User, USER_CACHE_INDEX, "user"},
		{&s.Cache.ClientAPI, CLIENT_API_CACHE_INDEX, "clientAPI"},
	}

	for _, c := range clients {
		client, err := valkey.NewClient(
			valkey.ClientOption{
				InitAddress: []string{fmt.Sprintf("%s:%d", address, port)},
				SelectDB:    c.index,
			},
		)
		if err != nil {
			return log.Err("failed to create valkey client", err, "cache", c.name)
		}
		*c.target = client
	}

	log.Info("Successfully initialized cache database")
	return nil
}

// FlushAllCaches clears every cache database. Used when reseeding.
func (s *DB) FlushAllCaches() error {
	log := s.log.Function("FlushAllCaches")
	ctx := context.Background()

	clients := []struct {
		client CacheClient
		name   string
	}{
		{s.Cache.General, "general"},
		{s.Cache.Session, "session"},
		{s.Cache.User, "user"},
		{s.Cache.ClientAPI, "clientAPI"},
	}

	for _, c := range clients {
		if c.client == nil {
			continue
		}
		if err := c.client.Do(ctx, c.client.B().Flushdb().Build()).Error(); err != nil {
			return log.Err("failed to flush cache database", err, "cache", c.name)
		}
	}

	log.Info("Flushed all cache databases")
	return nil
}
