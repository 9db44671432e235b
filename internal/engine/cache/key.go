package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/rshade/ghgfocus/internal/gwp"
	"github.com/rshade/ghgfocus/internal/schema"
)

// BuildKey derives the cache key for one recomputation. Every component of
// the (dataset, roles, scenario) tuple participates, including the factor
// table itself, so a config-edited scenario with an unchanged name still
// misses.
func BuildKey(fingerprint string, roles schema.RoleMap, scenario gwp.Scenario) string {
	h := sha256.New()
	_, _ = fmt.Fprintf(h, "ds:%s\n", fingerprint)

	resolved := roles.Resolved()
	keys := make([]string, 0, len(resolved))
	for role := range resolved {
		keys = append(keys, string(role))
	}
	sort.Strings(keys)
	for _, role := range keys {
		_, _ = fmt.Fprintf(h, "role:%s=%s\n", role, resolved[schema.Role(role)])
	}

	_, _ = fmt.Fprintf(h, "scenario:%s\n", scenario.Name)
	for _, gas := range scenario.Gases() {
		factor, _ := scenario.Factor(gas)
		_, _ = fmt.Fprintf(h, "factor:%s=%g\n", gas, factor)
	}

	return hex.EncodeToString(h.Sum(nil))
}
