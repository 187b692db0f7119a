package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// StandingsCache holds rendered standings in Redis so repeated standings
// reads between score recomputations don't hit Postgres. A nil
// *StandingsCache is valid and disables caching entirely.
type StandingsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New connects to Redis at addr. Returns nil (caching disabled) when addr
// is empty or the server is unreachable; standings must work cache-less.
func New(addr string, ttl time.Duration) *StandingsCache {
	if addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("WARN [cache.New] redis unreachable, standings cache disabled: %v", err)
		return nil
	}

	return &StandingsCache{rdb: rdb, ttl: ttl}
}

func weeklyKey(leagueID uuid.UUID, weekNumber int) string {
	return fmt.Sprintf("standings:league:%s:week:%d", leagueID, weekNumber)
}

func overallKey(leagueID uuid.UUID) string {
	return fmt.Sprintf("standings:league:%s:overall", leagueID)
}

func (c *StandingsCache) GetWeekly(ctx context.Context, leagueID uuid.UUID, weekNumber int, v interface{}) bool {
	return c.get(ctx, weeklyKey(leagueID, weekNumber), v)
}

func (c *StandingsCache) SetWeekly(ctx context.Context, leagueID uuid.UUID, weekNumber int, v interface{}) {
	c.set(ctx, weeklyKey(leagueID, weekNumber), v)
}

func (c *StandingsCache) GetOverall(ctx context.Context, leagueID uuid.UUID, v interface{}) bool {
	return c.get(ctx, overallKey(leagueID), v)
}

func (c *StandingsCache) SetOverall(ctx context.Context, leagueID uuid.UUID, v interface{}) {
	c.set(ctx, overallKey(leagueID), v)
}

// Invalidate drops every cached standings view for a league. Called after
// a weekly score recomputation; a week edit also shifts the overall board.
func (c *StandingsCache) Invalidate(ctx context.Context, leagueID uuid.UUID) {
	if c == nil {
		return
	}
	pattern := fmt.Sprintf("standings:league:%s:*", leagueID)
	iter := c.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			log.Printf("ERROR [cache.Invalidate] key=%s: %v", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		log.Printf("ERROR [cache.Invalidate] scan league=%s: %v", leagueID, err)
	}
}

func (c *StandingsCache) get(ctx context.Context, key string, v interface{}) bool {
	if c == nil {
		return false
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("ERROR [cache.get] corrupt entry key=%s: %v", key, err)
		return false
	}
	return true
}

func (c *StandingsCache) set(ctx context.Context, key string, v interface{}) {
	if c == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.Printf("ERROR [cache.set] key=%s: %v", key, err)
	}
}
