// Package scope matches "resource:action" capabilities against granted
// scope patterns.
package scope

import (
	"strings"
)

// ShouldAllow checks if a holder of userScope can call a function requiring fnScope.
// fnScope format: "resource:action" (e.g. "submission:grade") or empty for public functions
// userScope format: array of "resource:action", "resource:*", "*:action" or "*" patterns
func ShouldAllow(fnScope string, userScope []string) bool {
	if fnScope == "" {
		return true
	}

	fnResource, fnAction, ok := strings.Cut(fnScope, ":")
	if !ok {
		return false
	}

	for _, scope := range userScope {
		if scope == "*" {
			return true
		}

		scopeResource, scopeAction, ok := strings.Cut(scope, ":")
		if !ok {
			continue
		}

		resourceMatch := scopeResource == "*" || scopeResource == fnResource
		actionMatch := scopeAction == "*" || scopeAction == fnAction

		if resourceMatch && actionMatch {
			return true
		}
	}

	return false
}
