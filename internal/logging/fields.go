package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldFiles      = "files"

	// Launch fields.
	FieldSoda   = "soda"
	FieldHeight = "height"
	FieldMarker = "marker"
	FieldAsset  = "asset"
	FieldSteps  = "steps"
	FieldBytes  = "bytes"

	// HTTP fields.
	FieldAddr     = "addr"
	FieldMethod   = "method"
	FieldStatus   = "status"
	FieldDuration = "duration"
	FieldRemote   = "remote"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
