// Package cache provides a small generic LRU cache.
//
// The units parser uses it to memoize resolved unit expressions so that
// repeated parsing of "km/h" or "kg*m/s^2" skips tokenizing and registry
// lookups:
//
//	c := cache.New[string, int](128)
//	c.Set("key", 42)
//	value, ok := c.Get("key")
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
