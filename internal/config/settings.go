package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultSettingsPath is where settings are read from when no path is given.
const DefaultSettingsPath = "defaults/settings.yaml"

// DefaultTagResourceTypes are the tagging-index categories searched for
// resources belonging to a deployment.
var DefaultTagResourceTypes = []string{"s3", "dynamodb:table", "logs:log-group", "ssm:parameter"}

// Settings holds operator defaults read from a YAML file.
type Settings struct {
	AWS          AWSSettings `yaml:"aws"`
	Teardown     Teardown    `yaml:"teardown"`
	SamconfigDir string      `yaml:"samconfig_dir"`
	LogDir       string      `yaml:"log_dir"`
}

// AWSSettings selects credentials and the API endpoint.
type AWSSettings struct {
	Profile     string `yaml:"profile"`
	Region      string `yaml:"region"`
	EndpointURL string `yaml:"endpoint_url"`
}

// Teardown tunes resource reclamation.
type Teardown struct {
	TagResourceTypes []string `yaml:"tag_resource_types"`
}

// DefaultSettings returns settings used when no file is present.
func DefaultSettings() *Settings {
	return &Settings{
		Teardown: Teardown{
			TagResourceTypes: append([]string(nil), DefaultTagResourceTypes...),
		},
		SamconfigDir: "samconfigs",
		LogDir:       "logs",
	}
}

// LoadSettings reads settings from path. A missing file yields defaults.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		path = DefaultSettingsPath
	}

	s := DefaultSettings()

	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings %s: %w", path, err)
	}

	if len(s.Teardown.TagResourceTypes) == 0 {
		s.Teardown.TagResourceTypes = append([]string(nil), DefaultTagResourceTypes...)
	}
	if s.SamconfigDir == "" {
		s.SamconfigDir = "samconfigs"
	}
	if s.LogDir == "" {
		s.LogDir = "logs"
	}

	return s, nil
}
