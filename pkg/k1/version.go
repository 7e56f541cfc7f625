package k1

// Set with -ldflags "-X github.com/coinbase/cb-secp256k1-go/pkg/k1.Version=..."
// at release time.
var (
	Version = "v0.0.0-in-progress"
	Commit  = "unknown"
)

// ModuleVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func ModuleVersion() string {
	return Version
}

// BuildString returns the version followed by the commit it was built from.
func BuildString() string {
	return Version + " (" + Commit + ")"
}
