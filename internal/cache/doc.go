// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

// Package cache provides a bounded, TTL-expiring LRU cache.
//
// The Canopy client keeps recent archive search results in one so that a
// client paging over the same past window does not repeat the upstream
// search:
//
//	archive := cache.New[[]models.Opportunity](cfg.ArchiveCacheSize, cfg.ArchiveCacheTTL)
//	if hit, ok := archive.Get(key); ok {
//	    return hit, nil
//	}
package cache
