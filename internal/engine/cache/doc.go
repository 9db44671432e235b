// Package cache memoizes recomputation results.
//
// A cached result is keyed by the tuple (dataset fingerprint, resolved role
// map, scenario) and expires after a TTL. Caching is purely a performance
// optimization: the engine is deterministic, so a hit and a fresh
// recomputation are indistinguishable, and any change to the key tuple
// naturally misses.
package cache
