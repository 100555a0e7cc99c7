package commands

import (
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cargoupdate/internal/domain/entities"
)

const wildcard = "*"

type planKey struct {
	name    string
	section entities.Section
}

// ComputeUpdates returns the dependencies whose registry version is newer
// than the version their spec pins. It is pure: the same inputs always
// produce the same plan, in the order of deps.
func ComputeUpdates(
	deps []entities.Dependency,
	latest map[string]entities.SemVer,
	filters, rejects []string,
) []entities.Update {
	updates := make([]entities.Update, 0)
	seen := make(map[planKey]bool)

	for _, dep := range deps {
		if !ShouldCheck(dep.Name, filters, rejects) {
			continue
		}
		key := planKey{name: dep.Name, section: dep.Section}
		if seen[key] {
			continue
		}
		seen[key] = true

		latestVer, ok := latest[dep.Name]
		if !ok {
			continue
		}

		current, err := entities.ToComparable(dep.VersionSpec)
		if err != nil {
			logger.Debugf("Skipping %s (%s): %v", dep.Name, dep.VersionSpec, err)
			continue
		}

		if !latestVer.GreaterThan(current) {
			continue
		}

		updates = append(updates, entities.Update{
			Dependency: dep,
			Current:    current,
			Latest:     latestVer,
			Severity:   entities.ClassifySeverity(current, latestVer),
		})
	}

	return updates
}

// ShouldCheck applies the filter and reject patterns to a package name.
// With no filters every name passes; a reject match always excludes.
func ShouldCheck(name string, filters, rejects []string) bool {
	if len(filters) > 0 && !matchesAny(name, filters) {
		return false
	}
	return !matchesAny(name, rejects)
}

func matchesAny(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchesPattern(name, pattern) {
			return true
		}
	}
	return false
}

// matchesPattern treats "*" as a substring wildcard: "serde*" matches any
// name containing "serde". Patterns without "*" must match exactly.
func matchesPattern(name, pattern string) bool {
	if strings.Contains(pattern, wildcard) {
		return strings.Contains(name, strings.ReplaceAll(pattern, wildcard, ""))
	}
	return name == pattern
}
