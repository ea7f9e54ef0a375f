// Package config loads fiter's ambient settings: logging, contract guards
// and instrumentation.
//
// It uses Viper to read a YAML file and godotenv to read a .env file, then
// binds FITER_-prefixed environment variables over both. Nested keys are
// separated by underscores, so FITER_GUARD_MAX_STEPS sets guard.max_steps.
//
// # Configuration
//
//	logger:
//	  level: "debug"
//	  format: "json"
//	guard:
//	  checked: true
//	  max_steps: 100000
//	observe:
//	  log_steps: true
//
// # Usage
//
//	cfg, err := config.Load("fiter")
//	if err != nil {
//	    return err
//	}
//	logger.Init(&cfg.Logger)
//	safe := guard.Guard(seq.Naturals(), cfg.Guard)
package config
