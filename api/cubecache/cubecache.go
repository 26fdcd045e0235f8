// Licensed to NASA JPL under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. NASA JPL licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

// Loaded cubes are kept in memory between requests. A cube is only read once from storage while it stays in
// the cache, the least recently used one is dropped when the cache is full
package cubecache

import (
	"sort"
	"sync"

	"github.com/pixlise/hypercube/core/cube"
	"github.com/pixlise/hypercube/core/fileaccess"
	"github.com/pixlise/hypercube/core/logger"
	"github.com/pixlise/hypercube/core/timestamper"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cubeCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cube_cache_hits_total",
		Help: "Number of cube requests served from the cache.",
	})
	cubeLoads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cube_loads_total",
		Help: "Number of cubes read from storage.",
	})
	cubeLoadErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cube_load_errors_total",
		Help: "Number of cubes that failed to load.",
	})
	cubeEvictions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cube_cache_evictions_total",
		Help: "Number of cubes dropped from the cache to make room.",
	})
)

type cacheEntry struct {
	cube     *cube.DataCube
	lastUsed int64
}

// CubeCache - cubes keyed by header path. Returned cubes are shared, callers must not modify them
type CubeCache struct {
	fs          fileaccess.FileAccess
	root        string
	maxCubes    int
	log         logger.ILogger
	timeStamper timestamper.ITimeStamper

	mutex   sync.Mutex
	entries map[string]*cacheEntry
}

// New - cache reading from root in fs. maxCubes of 0 is treated as 1
func New(fs fileaccess.FileAccess, root string, maxCubes uint, log logger.ILogger, ts timestamper.ITimeStamper) *CubeCache {
	if maxCubes < 1 {
		maxCubes = 1
	}

	return &CubeCache{
		fs:          fs,
		root:        root,
		maxCubes:    int(maxCubes),
		log:         log,
		timeStamper: ts,
		entries:     map[string]*cacheEntry{},
	}
}

// Get - the cube for headerPath, loading it if we don't have it yet
func (c *CubeCache) Get(headerPath string) (*cube.DataCube, error) {
	c.mutex.Lock()
	if entry, ok := c.entries[headerPath]; ok {
		entry.lastUsed = c.timeStamper.GetTimeNowMs()
		c.mutex.Unlock()

		cubeCacheHits.Inc()
		return entry.cube, nil
	}
	c.mutex.Unlock()

	// Loading can take a while, don't hold up requests for cubes we already have
	loaded, err := cube.Load(c.fs, c.root, headerPath, c.log)
	if err != nil {
		cubeLoadErrors.Inc()
		return nil, err
	}
	cubeLoads.Inc()

	c.mutex.Lock()
	defer c.mutex.Unlock()

	// Someone else may have loaded it in the mean time, keep theirs so everyone shares one copy
	if entry, ok := c.entries[headerPath]; ok {
		entry.lastUsed = c.timeStamper.GetTimeNowMs()
		return entry.cube, nil
	}

	c.entries[headerPath] = &cacheEntry{cube: loaded, lastUsed: c.timeStamper.GetTimeNowMs()}
	c.evict()

	return loaded, nil
}

// Must be called with mutex held
func (c *CubeCache) evict() {
	for len(c.entries) > c.maxCubes {
		oldestPath := ""
		var oldest int64

		// Sorted so ties always evict the same one
		for _, path := range c.pathsLocked() {
			entry := c.entries[path]
			if len(oldestPath) <= 0 || entry.lastUsed < oldest {
				oldestPath = path
				oldest = entry.lastUsed
			}
		}

		delete(c.entries, oldestPath)
		cubeEvictions.Inc()
		c.log.Infof("Dropped cube %v from cache", oldestPath)
	}
}

func (c *CubeCache) pathsLocked() []string {
	paths := make([]string, 0, len(c.entries))
	for path := range c.entries {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Forget - drops headerPath so the next Get reads it again. Used after a cube is overwritten
func (c *CubeCache) Forget(headerPath string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.entries, headerPath)
}

// Paths - header paths currently cached, sorted
func (c *CubeCache) Paths() []string {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.pathsLocked()
}

func (c *CubeCache) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return len(c.entries)
}
