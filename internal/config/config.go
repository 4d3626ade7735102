package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	Input         string `mapstructure:"input"`
	Output        string `mapstructure:"output"`
	Merge         string `mapstructure:"merge"`
	Jobs          int    `mapstructure:"jobs"`
	Progress      bool   `mapstructure:"progress"`
	Verbose       bool   `mapstructure:"verbose"`
	AppendOrphans bool   `mapstructure:"append_orphan_features"`
	SkipHidden    bool   `mapstructure:"skip_hidden"`
}

// C is the global config instance
var C Config

// Init initializes configuration with viper
func Init() error {
	viper.SetDefault("input", "")
	viper.SetDefault("output", "")
	viper.SetDefault("merge", "")
	viper.SetDefault("jobs", 1)
	viper.SetDefault("progress", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("append_orphan_features", true) // glue "ne='A" "B'" back together
	viper.SetDefault("skip_hidden", true)            // dotfiles in input directories

	viper.SetConfigName("ssfner")
	viper.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "ssfner"))
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("SSFNER")
	viper.AutomaticEnv()

	// Try to read config, but don't fail if not found or malformed
	_ = viper.ReadInConfig()

	return viper.Unmarshal(&C)
}

// GetInput returns the input path with tilde expansion
func GetInput() string {
	return expandTilde(viper.GetString("input"))
}

// GetOutput returns the output path with tilde expansion
func GetOutput() string {
	return expandTilde(viper.GetString("output"))
}

// GetMerge returns the merged output path, empty when merging is off
func GetMerge() string {
	return expandTilde(viper.GetString("merge"))
}

// GetJobs returns the number of files processed at once, at least 1
func GetJobs() int {
	if n := viper.GetInt("jobs"); n > 0 {
		return n
	}
	return 1
}

// GetProgress returns whether the progress view is shown
func GetProgress() bool {
	return viper.GetBool("progress")
}

// GetVerbose returns whether debug logging is enabled
func GetVerbose() bool {
	return viper.GetBool("verbose")
}

// GetAppendOrphans returns whether '='-less feature tokens extend ne
func GetAppendOrphans() bool {
	return viper.GetBool("append_orphan_features")
}

// GetSkipHidden returns whether dotfiles are ignored in directory mode
func GetSkipHidden() bool {
	return viper.GetBool("skip_hidden")
}

// expandTilde expands ~ to the user's home directory
func expandTilde(path string) string {
	if len(path) == 0 {
		return path
	}
	if path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
