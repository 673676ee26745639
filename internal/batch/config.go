package batch

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Config drives one generation run. Zero values are not usable; start from
// DefaultConfig or LoadConfig.
type Config struct {
	Trees        int    `yaml:"trees" validate:"gt=0"`
	MinNodes     int    `yaml:"min_nodes" validate:"gt=0"`
	MaxNodes     int    `yaml:"max_nodes" validate:"gtefield=MinNodes"`
	Seed         int64  `yaml:"seed"`
	StartID      int    `yaml:"start_id" validate:"gte=0"`
	ModelsDir    string `yaml:"models_dir" validate:"required"`
	QueriesDir   string `yaml:"queries_dir" validate:"required"`
	MetadataPath string `yaml:"metadata_path" validate:"required"`
}

// DefaultConfig returns the standard evaluation run: 100 trees of 10 to 25
// nodes from seed 42.
func DefaultConfig() Config {
	return Config{
		Trees:        100,
		MinNodes:     10,
		MaxNodes:     25,
		Seed:         42,
		StartID:      1,
		ModelsDir:    "models",
		QueriesDir:   "queries",
		MetadataPath: "tree_metadata.json",
	}
}

// Validate checks the configuration and reports the first problem found.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// LoadConfig reads a YAML config file over the defaults, so a file only
// needs to carry the fields it changes.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Field()
		tag := e.Tag()
		param := e.Param()

		switch tag {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "gt":
			return fmt.Errorf("%s: must be greater than %s", field, param)
		case "gte":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "gtefield":
			return fmt.Errorf("%s: must not be less than %s", field, param)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, tag)
		}
	}

	return err
}
