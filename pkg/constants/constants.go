// Package constants provides shared constants used throughout the dictmap codebase.
// This includes sentinel values, default input file names and file permissions
// that should be consistent across the application.
package constants

// Sentinel values
const (
	// Unknown is the type recorded when a wire-schema reference cannot be resolved
	// or a property shape carries no usable type.
	Unknown = "UNKNOWN"

	// String is the scalar type name used for string-valued synthetic attributes.
	String = "string"
)

// Cardinality constants for synthetic attributes
const (
	// CardinalityOptional bounds a single optional value.
	CardinalityOptional = "0..1"

	// CardinalityMany bounds an unbounded optional collection.
	CardinalityMany = "0..*"
)

// Default input file names, matching the layout of a release folder
const (
	// DefaultUMLFile is the structural model export.
	DefaultUMLFile = "USDM_UML.xmi"

	// DefaultTerminologyFile is the terminology table exported as CSV.
	DefaultTerminologyFile = "USDM_CT.csv"

	// DefaultAPIFile is the wire-schema document.
	DefaultAPIFile = "USDM_API.json"

	// DefaultCardinalityFile holds cardinality overrides.
	DefaultCardinalityFile = "cardinalities.json"

	// DefaultAPIRoot is the schema the wire-schema walk starts from.
	DefaultAPIRoot = "Study-Output"

	// OutputSchemaSuffix is appended to a class name to find its response schema.
	OutputSchemaSuffix = "-Output"
)

// File permission constants
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)
