// Package validation checks configuration and command-line input.
//
// Struct tags are checked with go-playground/validator, and field names in
// messages follow the mapstructure key the value was loaded from:
//
//	type Config struct {
//	    MaxSteps int64 `mapstructure:"max_steps" validate:"gte=0"`
//	}
//	err := validation.Validate(cfg)
//
// Checks that depend on several values use the programmatic Validator:
//
//	err := validation.New().
//	    OneOf("format", format, []string{"text", "json"}).
//	    OptionalUUID("run_id", runID).
//	    Err()
//
// Both return an INVALID_INPUT errors.AppError with a "fields" detail.
package validation
