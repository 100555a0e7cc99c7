package commands

// MatchesPattern exports matchesPattern for testing.
var MatchesPattern = matchesPattern //nolint:gochecknoglobals // test export

// UniqueNames exports uniqueNames for testing.
var UniqueNames = uniqueNames //nolint:gochecknoglobals // test export
