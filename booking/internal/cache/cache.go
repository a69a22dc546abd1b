// Package cache keeps recently served booking listings in memory.
package cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	KeyAllBookings = "bookings:all"
	KeyPending     = "bookings:pending"
)

func KeyMine(userID int64) string {
	return fmt.Sprintf("bookings:mine:%d", userID)
}

func KeyReports(userID int64) string {
	return fmt.Sprintf("reports:%d", userID)
}

type Cache struct {
	lru *expirable.LRU[string, any]

	mu sync.Mutex
	// gen is bumped by every Invalidate, loads started before it are dropped.
	gen uint64
}

func New(size int, ttl time.Duration) *Cache {
	return &Cache{lru: expirable.NewLRU[string, any](size, nil, ttl)}
}

// Invalidate drops every entry. Any booking mutation may touch every listing.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.lru.Purge()
}

func (c *Cache) generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// store adds v unless the cache was invalidated since gen was read.
func (c *Cache) store(key string, v any, gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return
	}
	c.lru.Add(key, v)
}

func (c *Cache) Len() int {
	return c.lru.Len()
}

// GetOrLoad returns the cached value under key or stores the result of load.
// Load errors are not cached, neither are results of loads that overlapped
// an Invalidate. A nil cache always loads.
func GetOrLoad[T any](c *Cache, key string, load func() (T, error)) (T, error) {
	var gen uint64
	if c != nil {
		gen = c.generation()
		if v, ok := c.lru.Get(key); ok {
			if typed, ok := v.(T); ok {
				return typed, nil
			}
		}
	}
	v, err := load()
	if err != nil {
		return v, err
	}
	if c != nil {
		c.store(key, v, gen)
	}
	return v, nil
}
