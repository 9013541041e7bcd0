package version

// Set with -ldflags "-X github.com/byxorna/standings/pkg/version.Version=..."
var (
	Version = "dev"

	// Environment selects which record source endpoint is used by default.
	// Release builds set it to "production".
	Environment = "development"
)
