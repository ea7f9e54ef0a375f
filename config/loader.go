package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kbukum/fiter/errors"
	"github.com/kbukum/fiter/logger"
)

// DefaultEnvPrefix is the prefix of environment variables bound by the loader.
const DefaultEnvPrefix = "FITER"

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// Resolver handles finding and resolving config and env files.
type Resolver struct {
	FileSystem FileSystem
}

// ResolvedFiles contains the resolved config and env file paths.
type ResolvedFiles struct {
	ConfigFile string
	EnvFile    string
}

// ResolveFiles finds config and env files for name.
// Returns explicit paths if provided, otherwise searches for them.
func (cr *Resolver) ResolveFiles(name string, opts LoaderConfig) ResolvedFiles {
	resolved := ResolvedFiles{
		ConfigFile: opts.ConfigFile,
		EnvFile:    opts.EnvFile,
	}

	if resolved.ConfigFile == "" {
		resolved.ConfigFile = cr.firstExisting(configSearchPaths(name))
	}
	if resolved.EnvFile == "" {
		resolved.EnvFile = cr.firstExisting(envSearchPaths(name))
	}

	return resolved
}

func (cr *Resolver) firstExisting(paths []string) string {
	for _, path := range paths {
		if cr.FileSystem.Exists(path) {
			return path
		}
	}
	return ""
}

// configSearchPaths lists candidate YAML files, most specific first.
func configSearchPaths(name string) []string {
	return []string{
		fmt.Sprintf("./%s.yml", name),
		fmt.Sprintf("./config/%s.yml", name),
		fmt.Sprintf("../config/%s.yml", name),
		"./config/config.yml",
		"../config/config.yml",
		"./config.yml",
	}
}

// envSearchPaths lists candidate .env files, most specific first.
func envSearchPaths(name string) []string {
	envFiles := []string{fmt.Sprintf(".env.%s", name), ".env"}
	dirs := []string{".", "./config", ".."}

	paths := make([]string, 0, len(envFiles)*len(dirs))
	for _, f := range envFiles {
		for _, d := range dirs {
			paths = append(paths, d+"/"+f)
		}
	}
	return paths
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // Direct config file path (optional)
	EnvFile    string // Direct env file path (optional)
	EnvPrefix  string // Only variables with this prefix are bound
}

// LoaderOption is a functional option for LoadConfig.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// WithEnvPrefix overrides DefaultEnvPrefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvPrefix = prefix }
}

// LoadConfig loads configuration for name into the provided cfg struct.
// It searches for a YAML file and a .env file in standard locations, binds
// prefixed environment variables, and unmarshals the result into cfg.
// Environment variables win over the YAML file.
func LoadConfig(name string, cfg interface{}, opts ...LoaderOption) error {
	lc := LoaderConfig{EnvPrefix: DefaultEnvPrefix}
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}

	resolver := &Resolver{FileSystem: lc.FileSystem}
	files := resolver.ResolveFiles(name, lc)

	return loadFromResolvedFiles(name, cfg, files, lc)
}

// loadFromResolvedFiles loads configuration from specific files.
func loadFromResolvedFiles(name string, cfg interface{}, files ResolvedFiles, lc LoaderConfig) error {
	log := logger.Get("config")
	v := viper.New()

	// 1. Load YAML config first (base configuration)
	if files.ConfigFile != "" && lc.FileSystem.Exists(files.ConfigFile) {
		v.SetConfigFile(files.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return errors.InvalidFormat("config_file", "YAML").
				WithDetail("path", files.ConfigFile).
				WithCause(err)
		}
		log.Debug("config file loaded", logger.Fields("path", files.ConfigFile))
	}

	// 2. Load .env file into the process environment
	if files.EnvFile != "" && lc.FileSystem.Exists(files.EnvFile) {
		if err := lc.FileSystem.LoadEnv(files.EnvFile); err != nil {
			log.Warn("failed to load .env file", logger.Fields("path", files.EnvFile, logger.FieldError, err.Error()))
		}
	}

	// 3. Bind prefixed environment variables over the file values
	bindEnvVars(v, os.Environ(), lc.EnvPrefix)

	// 4. Unmarshal into config struct
	if err := v.Unmarshal(cfg); err != nil {
		return errors.New(errors.ErrCodeInvalidFormat, fmt.Sprintf("failed to unmarshal config for %s", name)).
			WithCause(err)
	}

	return nil
}

// bindEnvVars sets every PREFIX_* variable in environ on v, under each
// nested key the remainder could name.
func bindEnvVars(v *viper.Viper, environ []string, prefix string) {
	p := strings.ToUpper(prefix) + "_"
	for _, env := range environ {
		key, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(strings.ToUpper(key), p) {
			continue
		}
		for _, variant := range generateEnvKeyVariants(key[len(p):]) {
			v.Set(variant, value)
		}
	}
}

// generateEnvKeyVariants creates all possible key variants for environment variable binding.
// Examples:
//
//	GUARD_MAX_STEPS -> [guard_max_steps, guard.max.steps, guard.max_steps, guard_max.steps]
//	LOGGER_LEVEL -> [logger_level, logger.level]
func generateEnvKeyVariants(envKey string) []string {
	lowerKey := strings.ToLower(envKey)
	parts := strings.Split(lowerKey, "_")

	if len(parts) <= 1 {
		return []string{lowerKey}
	}

	variants := []string{
		lowerKey,
		strings.ReplaceAll(lowerKey, "_", "."),
	}

	// Progressive nesting: the first i parts are path segments.
	for i := 1; i < len(parts); i++ {
		prefix := strings.Join(parts[:i], ".")
		suffix := strings.Join(parts[i:], "_")
		variants = append(variants, prefix+"."+suffix)
	}

	// Trailing nesting: everything but the last part stays joined.
	if len(parts) >= 3 {
		prefix := strings.Join(parts[:len(parts)-1], "_")
		variants = append(variants, prefix+"."+parts[len(parts)-1])
	}

	return removeDuplicates(variants)
}

// removeDuplicates removes duplicate strings from a slice.
func removeDuplicates(items []string) []string {
	seen := make(map[string]bool, len(items))
	result := make([]string, 0, len(items))

	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}

	return result
}
