// Package validation checks fiter configuration values.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Both report failures as an
// INVALID_INPUT *errors.AppError whose "fields" detail lists each field.
//
// # Struct Tag Validation
//
//	type Config struct {
//	    MaxSteps int `mapstructure:"max_steps" validate:"gte=0"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Custom(!cfg.Metrics || cfg.MeterName != "", "meter_name", "is required when metrics are enabled")
//	err := v.Err()
package validation
