package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/PalDadhaniya/Attendance-Tracker/internal/model"
)

// configFileNames lists the recognized config file names in priority
// order. The first one found in the project directory is loaded; the
// rest are ignored.
var configFileNames = []string{
	"attendctl.json",
	"attendctl.jsonc",
	"attendctl.yaml",
	"attendctl.yml",
}

// fileSettings mirrors Settings with every field optional, so a config
// file that sets only `port` leaves the other defaults untouched.
// Pointer fields distinguish "absent" from zero values.
type fileSettings struct {
	Port        *int     `json:"port" yaml:"port"`
	BindAddress *string  `json:"bindAddress" yaml:"bindAddress"`
	ProjectDir  *string  `json:"projectDir" yaml:"projectDir"`
	Command     []string `json:"command" yaml:"command"`
}

// Load builds the effective Settings for the given project directory:
// defaults overlaid with the optional config file found there.
//
// projectDir may be empty, in which case the default (the executable's
// directory) is used both as the project directory and as the place to
// look for a config file. A missing config file is not an error — the
// defaults simply apply. A config file that exists but cannot be parsed
// IS an error, because silently ignoring a typo in the operator's config
// would launch the server with the wrong settings.
func Load(projectDir string) (Settings, error) {
	settings := Default()
	if projectDir != "" {
		settings.ProjectDir = projectDir
	}

	path, ok := findConfigFile(settings.ProjectDir)
	if !ok {
		return settings, nil
	}

	if err := applyFile(&settings, path); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// findConfigFile returns the path of the first recognized config file in
// dir, or ok=false when none exists.
func findConfigFile(dir string) (string, bool) {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// applyFile parses the config file at path and overlays its values onto
// settings. The format is chosen by file extension: .yaml/.yml is parsed
// with yaml.v3, everything else as JSONC (comments stripped with
// tidwall/jsonc, then standard encoding/json).
func applyFile(settings *Settings, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.WrapCLIError(model.ExitConfigInvalid,
			fmt.Sprintf("failed to read config file %q", path), err)
	}

	var fs fileSettings
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fs); err != nil {
			return model.WrapCLIError(model.ExitConfigInvalid,
				fmt.Sprintf("failed to parse config file %q", path), err)
		}
	default:
		// jsonc.ToJSON strips // and /* */ comments plus trailing
		// commas, leaving plain JSON for the standard decoder.
		if err := json.Unmarshal(jsonc.ToJSON(data), &fs); err != nil {
			return model.WrapCLIError(model.ExitConfigInvalid,
				fmt.Sprintf("failed to parse config file %q", path), err)
		}
	}

	if fs.Port != nil {
		settings.Port = *fs.Port
	}
	if fs.BindAddress != nil {
		settings.BindAddress = *fs.BindAddress
	}
	if fs.ProjectDir != nil {
		// A relative projectDir in the file is resolved against the
		// file's own directory, not the caller's working directory.
		dir := *fs.ProjectDir
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(filepath.Dir(path), dir)
		}
		settings.ProjectDir = dir
	}
	if len(fs.Command) > 0 {
		settings.Command = fs.Command
	}
	return nil
}
