package constants

// Remote API constants
const (
	// DefaultAPIURL is the stats service used when no override is configured.
	DefaultAPIURL = "https://cloud.specstory.com"

	// StatsPathFormat is appended to the base URL; the verb is the project ID.
	StatsPathFormat = "/api/v1/projects/%s/stats"
)

// Environment variables
const (
	// APIURLEnvVar overrides DefaultAPIURL.
	APIURLEnvVar = "SPECSTORY_API_URL"

	// LogLevelEnvVar sets the diagnostic log level.
	LogLevelEnvVar = "SPECSTORY_LOG_LEVEL"

	// DotEnvFile is the optional env file loaded from the working directory.
	DotEnvFile = ".env"
)

// Project metadata paths, relative to the project directory
const (
	// ProjectDir holds SpecStory's per-project state.
	ProjectDir = ".specstory"

	// ProjectFile is the persisted project metadata inside ProjectDir.
	ProjectFile = ".project.json"

	// GitDir is the git metadata directory.
	GitDir = ".git"

	// GitConfigFile is the repository config inside GitDir.
	GitConfigFile = "config"

	// OriginRemote is the remote treated as canonical for identity derivation.
	OriginRemote = "origin"
)

// Identifier hashing
const (
	// HashPrefixLength is how many hex characters of the digest are kept.
	HashPrefixLength = 16

	// HashGroupSize is the number of characters between hyphens.
	HashGroupSize = 4
)

// Logging
const (
	// DefaultLogLevel keeps non-fatal warnings visible and hides tracing.
	DefaultLogLevel = "warn"
)
