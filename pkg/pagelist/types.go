package pagelist

// Format constants.
const (
	// MaxPageAmount is the largest page amount the format can carry.
	// Wide integers reserve 0xFFFF for the function sentinel.
	MaxPageAmount = 0xFFFF - 1

	// MinRunLength is the shortest constant-step run encoded as a function.
	MinRunLength = 4

	// MaxNameLength is the longest extension name a validating encode
	// accepts, matching DefaultLimits so every such stream decodes.
	MaxNameLength = 1024
)

// Mode selects how much checking Encode performs on its input.
type Mode uint8

const (
	// Validating checks ordering, names and the page partition before encoding.
	Validating Mode = iota

	// Trusted skips the partition and ordering checks.
	// Invalid input produces a stream that decodes to something else.
	Trusted
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case Validating:
		return "validating"
	case Trusted:
		return "trusted"
	default:
		return "unknown"
	}
}

// Limits defines resource limits for decoding.
type Limits struct {
	// MaxInputSize is the maximum encoded stream size in bytes.
	// A value of 0 means no limit.
	MaxInputSize int

	// MaxExtensions is the maximum number of extensions in a stream,
	// including the default one.
	// A value of 0 means no limit.
	MaxExtensions int

	// MaxNameLength is the maximum length of an extension name in bytes.
	// A value of 0 means no limit.
	MaxNameLength int
}

// DefaultLimits are the default resource limits.
// These are generous limits suitable for most use cases.
var DefaultLimits = Limits{
	MaxInputSize:  16 * 1024 * 1024, // 16 MB
	MaxExtensions: 65536,
	MaxNameLength: MaxNameLength,
}

// SecureLimits are conservative limits for untrusted input.
var SecureLimits = Limits{
	MaxInputSize:  1024 * 1024, // 1 MB
	MaxExtensions: 1024,
	MaxNameLength: 64,
}

// NoLimits disables all resource limits.
// Use with caution - only for trusted input.
var NoLimits = Limits{}

// EncodeOptions configures encoding behavior.
type EncodeOptions struct {
	// PageAmount overrides the page amount written to the header.
	// A value of 0 means the largest page across all extensions.
	PageAmount int

	// Mode selects validating or trusted encoding.
	Mode Mode
}

// DecodeOptions configures decoding behavior.
type DecodeOptions struct {
	// Limits specifies resource limits.
	Limits Limits
}

// DefaultEncodeOptions validate input and derive the page amount.
var DefaultEncodeOptions = EncodeOptions{
	Mode: Validating,
}

// TrustedEncodeOptions skip validation for callers that guarantee valid input.
var TrustedEncodeOptions = EncodeOptions{
	Mode: Trusted,
}

// DefaultDecodeOptions are the default decoding options.
var DefaultDecodeOptions = DecodeOptions{
	Limits: DefaultLimits,
}

// SecureDecodeOptions are conservative options for untrusted input.
var SecureDecodeOptions = DecodeOptions{
	Limits: SecureLimits,
}

// Version information, set by ldflags at build time.
var (
	// Version is the semantic version of the library.
	Version = "dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// VersionInfo returns a formatted version string.
func VersionInfo() string {
	return Version + " (" + GitCommit + ", " + BuildDate + ")"
}
