// Package config loads command defaults from global and local YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/temirov/shelltree/internal/utils"
)

const (
	errorWorkingDirectoryFormat = "determine working directory: %w"
	errorResolvePathFormat      = "resolve configuration path %s: %w"
	errorStatFormat             = "stat configuration %s: %w"
	errorDirectoryPathFormat    = "configuration path %s is a directory"
	errorReadFormat             = "read configuration from %s: %w"
	errorDecodeFormat           = "decode configuration from %s: %w"
	errorNegativeValueFormat    = "configuration value %s must not be negative, got %d"

	thresholdKey    = "analyze.threshold"
	capacityKey     = "analyze.capacity"
	requiredFreeKey = "analyze.required_free"
)

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
}

// ApplicationConfiguration holds command-specific configuration defaults.
type ApplicationConfiguration struct {
	Analyze AnalyzeConfiguration `mapstructure:"analyze"`
	Tree    TreeConfiguration    `mapstructure:"tree"`
}

// AnalyzeConfiguration defines defaults for the analyze command.
type AnalyzeConfiguration struct {
	Format       string `mapstructure:"format"`
	Threshold    *int64 `mapstructure:"threshold"`
	Capacity     *int64 `mapstructure:"capacity"`
	RequiredFree *int64 `mapstructure:"required_free"`
	Clipboard    *bool  `mapstructure:"clipboard"`
}

// TreeConfiguration defines defaults for the tree command.
type TreeConfiguration struct {
	Format    string `mapstructure:"format"`
	Summary   *bool  `mapstructure:"summary"`
	Clipboard *bool  `mapstructure:"clipboard"`
}

// LoadApplicationConfiguration loads configuration from global and local files.
// Local values override global ones.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, workingDirectoryError := os.Getwd()
		if workingDirectoryError != nil {
			return ApplicationConfiguration{}, fmt.Errorf(errorWorkingDirectoryFormat, workingDirectoryError)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	if homeDirectory, homeError := os.UserHomeDir(); homeError == nil && homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.ConfigFileName)
		globalConfig, loadError := loadConfigurationFromPath(globalPath)
		if loadError != nil {
			return ApplicationConfiguration{}, loadError
		}
		merged = merged.Merge(globalConfig)
	}

	localPath, resolveError := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath)
	if resolveError != nil {
		return ApplicationConfiguration{}, resolveError
	}
	if localPath != "" {
		localConfig, loadError := loadConfigurationFromPath(localPath)
		if loadError != nil {
			return ApplicationConfiguration{}, loadError
		}
		merged = merged.Merge(localConfig)
	}

	if validationError := merged.Validate(); validationError != nil {
		return ApplicationConfiguration{}, validationError
	}
	return merged, nil
}

// Validate rejects negative sizes.
func (config ApplicationConfiguration) Validate() error {
	namedValues := []struct {
		key   string
		value *int64
	}{
		{key: thresholdKey, value: config.Analyze.Threshold},
		{key: capacityKey, value: config.Analyze.Capacity},
		{key: requiredFreeKey, value: config.Analyze.RequiredFree},
	}
	for _, namedValue := range namedValues {
		if namedValue.value != nil && *namedValue.value < 0 {
			return fmt.Errorf(errorNegativeValueFormat, namedValue.key, *namedValue.value)
		}
	}
	return nil
}

func resolveLocalConfigPath(workingDirectory, explicitPath string) (string, error) {
	if explicitPath != "" {
		if filepath.IsAbs(explicitPath) {
			return explicitPath, nil
		}
		if workingDirectory == "" {
			absolutePath, absolutePathError := filepath.Abs(explicitPath)
			if absolutePathError != nil {
				return "", fmt.Errorf(errorResolvePathFormat, explicitPath, absolutePathError)
			}
			return absolutePath, nil
		}
		return filepath.Join(workingDirectory, explicitPath), nil
	}
	if workingDirectory == "" {
		return "", nil
	}
	return filepath.Join(workingDirectory, utils.ConfigFileName), nil
}

func loadConfigurationFromPath(path string) (ApplicationConfiguration, error) {
	if path == "" {
		return ApplicationConfiguration{}, nil
	}
	info, statError := os.Stat(path)
	if statError != nil {
		if os.IsNotExist(statError) {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf(errorStatFormat, path, statError)
	}
	if info.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf(errorDirectoryPathFormat, path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	if readError := reader.ReadInConfig(); readError != nil {
		return ApplicationConfiguration{}, fmt.Errorf(errorReadFormat, path, readError)
	}
	var config ApplicationConfiguration
	if decodeError := reader.Unmarshal(&config); decodeError != nil {
		return ApplicationConfiguration{}, fmt.Errorf(errorDecodeFormat, path, decodeError)
	}
	return config, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
func (config ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := config
	result.Analyze = result.Analyze.merge(override.Analyze)
	result.Tree = result.Tree.merge(override.Tree)
	return result
}

func (config AnalyzeConfiguration) merge(override AnalyzeConfiguration) AnalyzeConfiguration {
	result := config
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Threshold != nil {
		result.Threshold = cloneInt64(override.Threshold)
	}
	if override.Capacity != nil {
		result.Capacity = cloneInt64(override.Capacity)
	}
	if override.RequiredFree != nil {
		result.RequiredFree = cloneInt64(override.RequiredFree)
	}
	if override.Clipboard != nil {
		result.Clipboard = cloneBool(override.Clipboard)
	}
	return result
}

func (config TreeConfiguration) merge(override TreeConfiguration) TreeConfiguration {
	result := config
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Summary != nil {
		result.Summary = cloneBool(override.Summary)
	}
	if override.Clipboard != nil {
		result.Clipboard = cloneBool(override.Clipboard)
	}
	return result
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}

func cloneInt64(value *int64) *int64 {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
