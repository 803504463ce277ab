// Package cache provides a small generic LRU cache.
//
//	c := cache.New[string, int](4)
//	c.Set("key", 42)
//	value, ok := c.Get("key")
//
// Cache is safe for concurrent use and must not be copied after creation
// (it contains a mutex).
package cache
