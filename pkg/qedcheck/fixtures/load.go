package fixtures

import (
	"errors"
	"fmt"
	"os"

	"github.com/ukaji3/qedcheck-go/pkg/qedcheck/models"
	"gopkg.in/yaml.v3"
)

// File is the on-disk form of a fixture set.
type File struct {
	Scenarios []models.Scenario `yaml:"scenarios"`
}

// Load reads scenarios from a YAML file and validates each of them.
func Load(path string) ([]models.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenarios: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scenarios: %w", err)
	}
	if len(file.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios in %s", path)
	}

	var errs []error
	seen := make(map[string]bool, len(file.Scenarios))
	for _, s := range file.Scenarios {
		if err := s.Validate(); err != nil {
			errs = append(errs, err)
		}
		if seen[s.Name] {
			errs = append(errs, fmt.Errorf("duplicate scenario name %q", s.Name))
		}
		seen[s.Name] = true
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return file.Scenarios, nil
}

// Save writes scenarios to a YAML file.
func Save(path string, scenarios []models.Scenario) error {
	data, err := yaml.Marshal(File{Scenarios: scenarios})
	if err != nil {
		return fmt.Errorf("failed to marshal scenarios: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write scenarios: %w", err)
	}
	return nil
}
