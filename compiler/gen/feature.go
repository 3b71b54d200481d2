package gen

var (
	// FeatureText provides a feature-flag for encoding.TextMarshaler and
	// encoding.TextUnmarshaler implementations. Text is the declared name,
	// so the type round-trips through JSON map keys, YAML and flags.
	FeatureText = Feature{
		Name:        "text",
		Stage:       Stable,
		Default:     false,
		Description: "Generates MarshalText and UnmarshalText using the declared constant names",
	}

	// FeatureSQL provides a feature-flag for sql.Scanner and driver.Valuer
	// implementations storing the underlying integer.
	FeatureSQL = Feature{
		Name:        "sql",
		Stage:       Stable,
		Default:     false,
		Description: "Generates Scan and Value so the type can be stored as an integer column",
	}

	// FeatureEager processes the constant names during package
	// initialization instead of on first use.
	FeatureEager = Feature{
		Name:        "eager",
		Stage:       Beta,
		Default:     false,
		Description: "Processes constant names in an init function instead of on first use",
	}

	// FeatureMust provides a feature-flag for Must* constructors that panic
	// on invalid input, for use in tests and package-level variables.
	FeatureMust = Feature{
		Name:        "must",
		Stage:       Beta,
		Default:     false,
		Description: "Generates MustXFromInt and MustXFromString constructors that panic on invalid input",
	}

	// AllFeatures holds a list of all feature-flags.
	AllFeatures = []Feature{
		FeatureText,
		FeatureSQL,
		FeatureEager,
		FeatureMust,
	}
)

// FeatureStage describes the stage of the codegen feature.
type FeatureStage int

const (
	_ FeatureStage = iota

	// Experimental features are in development, and actively being tested.
	Experimental

	// Alpha features are features whose initial development was finished,
	// but we expect breaking-changes to their generated APIs.
	Alpha

	// Beta features are Alpha features with a settled API.
	Beta

	// Stable features are Beta features that were in use for a while.
	Stable
)

// String returns the stage name.
func (s FeatureStage) String() string {
	switch s {
	case Experimental:
		return "experimental"
	case Alpha:
		return "alpha"
	case Beta:
		return "beta"
	case Stable:
		return "stable"
	default:
		return "unknown"
	}
}

// A Feature of the venum codegen.
type Feature struct {
	// Name of the feature.
	Name string

	// Stage of the feature.
	Stage FeatureStage

	// Default values indicates if this feature is enabled by default.
	Default bool

	// A Description of this feature.
	Description string
}

// FeatureByName returns the feature with the given name.
func FeatureByName(name string) (Feature, bool) {
	for _, f := range AllFeatures {
		if f.Name == name {
			return f, true
		}
	}
	return Feature{}, false
}

// FeatureNames returns the names of all features.
func FeatureNames() []string {
	names := make([]string, len(AllFeatures))
	for i, f := range AllFeatures {
		names[i] = f.Name
	}
	return names
}
