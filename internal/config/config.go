package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/gridcraft/cubeci/internal/matrix"
	"github.com/gridcraft/cubeci/internal/paths"
)

// Default value for the environment tag when neither the config file nor
// the caller overrides it.
const DefaultEnvironment = "latest"

// Orchestrator configuration.
//
// Loaded once at startup and immutable afterwards. Every field has a
// documented default; the zero value is not usable, construct via [Default]
// or [Load].
type Config struct {

	// Tag selecting which prebuilt environment/image variant to use.
	// Overridable via --environment or $CUBECI_ENVIRONMENT.
	Environment string `yaml:"environment"`

	// Interpreter versions forming the outer axis of the build matrix.
	InterpreterVersions matrix.VersionSet `yaml:"interpreter_versions"`

	// Geospatial library versions forming the inner axis.
	LibraryVersions matrix.VersionSet `yaml:"library_versions"`

	// Repository of the containerized test image.
	Image string `yaml:"image"`

	// Compose file and service used for containerized test runs.
	ComposeFile    string `yaml:"compose_file"`
	ComposeService string `yaml:"compose_service"`

	// Pip package spec installed by install-test-deps.
	Package string `yaml:"package"`

	// Module measured for coverage and checked by lint.
	Module string `yaml:"module"`

	// Paths handed to the test runner.
	TestPaths []string `yaml:"test_paths"`

	// Shell used for target steps.
	Shell string `yaml:"shell"`

	// Directory receiving per-combination dependency lock files.
	LockDir string `yaml:"lock_dir"`
}

// Returns the built-in default configuration.
func Default() Config {
	return Config{
		Environment:         DefaultEnvironment,
		InterpreterVersions: matrix.VersionSet{"3.6", "3.7", "3.8"},
		LibraryVersions:     matrix.VersionSet{"2.4", "3"},
		Image:               "gridcraft/cubeci-tests",
		ComposeFile:         "docker-compose.yml",
		ComposeService:      "cubeci",
		Package:             ".[test]",
		Module:              "datacube",
		TestPaths:           []string{"tests"},
		Shell:               "/bin/sh",
		LockDir:             "docker/constraints",
	}
}

// Loads configuration from an explicit file path.
//
// Unset keys keep their defaults. Fails with [ErrConfig] if the file cannot
// be read or parsed, or if the result does not validate.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Mark(errors.Wrapf(err, "read %s", path), ErrConfig)
	}
	return parse(raw, path)
}

// Loads configuration from the standard search path.
//
// The project-local cubeci.yaml in workdir wins over the user-level XDG
// config file. When neither exists the defaults are returned as-is.
func Locate(workdir string) (Config, error) {
	for _, path := range paths.ConfigSearch(workdir) {
		raw, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Config{}, errors.Mark(errors.Wrapf(err, "read %s", path), ErrConfig)
		}
		return parse(raw, path)
	}
	return Default(), nil
}

// Decodes YAML over the defaults and validates the result.
func parse(raw []byte, path string) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, errors.Mark(errors.Wrapf(err, "parse %s", path), ErrConfig)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Checks the configuration for values no run can proceed with.
//
// Both matrix axes must be non-empty and numeric, and the environment tag,
// image, and shell must be set.
func (c Config) Validate() error {
	if err := c.InterpreterVersions.Validate(); err != nil {
		return errors.Wrap(err, "interpreter versions")
	}
	if err := c.LibraryVersions.Validate(); err != nil {
		return errors.Wrap(err, "library versions")
	}
	if c.Environment == "" {
		return errors.Mark(errors.New("environment tag is empty"), ErrConfig)
	}
	if c.Image == "" {
		return errors.Mark(errors.New("image is empty"), ErrConfig)
	}
	if c.Shell == "" {
		return errors.Mark(errors.New("shell is empty"), ErrConfig)
	}
	return nil
}
