package config

// ManifestFileExt is the extension of parsed-module manifests consumed
// by the CLI. Source parsing itself lives in the front end, not here.
const ManifestFileExt = ".yaml"

// ManifestFileExtensions are all recognized manifest extensions.
var ManifestFileExtensions = []string{".yaml", ".yml"}

// Visibility mode names as they appear in module bodies and manifests.
const (
	VisibilityPublicName    = "public"
	VisibilityProtectedName = "protected"
	VisibilityCallbackName  = "callback"
	VisibilityPrivateName   = "private"
)

// PlaceholderPrefix prefixes synthesized wrapper-clause parameters. The
// leading '$' keeps them out of the user identifier namespace, like the
// front end does for compiler-introduced bindings.
const PlaceholderPrefix = "$arg"

// DefaultIndexFile is the default path of the export index database.
const DefaultIndexFile = "cadenza-index.db"
