// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package catalog

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Rendered diagrams are keyed by catalog version, so stale entries are
	// never read; the TTL only bounds how long they linger.
	DefaultRenderCacheExpiration = 10 * time.Minute
	renderCacheCleanup           = 5 * time.Minute
)

// Format selects the text syntax of a rendered diagram.
type Format string

const (
	FormatMermaid Format = "mermaid"
	FormatDOT     Format = "dot"
)

// ParseFormat accepts "mermaid" or "dot"; an empty string means mermaid.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatMermaid:
		return FormatMermaid, nil
	case FormatDOT:
		return FormatDOT, nil
	}
	return "", fmt.Errorf("unknown diagram format %q (want mermaid or dot)", s)
}

func newRenderCache(ttl time.Duration) *cache.Cache {
	return cache.New(ttl, renderCacheCleanup)
}

func renderKey(format Format, version uint64) string {
	return fmt.Sprintf("%s@%d", format, version)
}

func cacheRender(c *cache.Cache, format Format, version uint64, text string) {
	c.Set(renderKey(format, version), text, cache.DefaultExpiration)
}

func getRender(c *cache.Cache, format Format, version uint64) (string, bool) {
	val, ok := c.Get(renderKey(format, version))
	if !ok {
		return "", false
	}
	return val.(string), true
}
