// Package config defines the explicit configuration structure for the
// attendctl CLI and loads it from optional per-project config files.
//
// The original deployment scripts hardcoded everything: port 8000, bind
// address 0.0.0.0, and the project directory derived from the script's
// own location. Those values remain the defaults, but each is now an
// explicit Settings field that can be overridden by a config file or a
// command-line flag, so simple deployment changes no longer require
// editing source.
//
// Config files are optional and live in the project directory. Both
// JSONC (attendctl.json / attendctl.jsonc, comments stripped with
// github.com/tidwall/jsonc before standard encoding/json parsing) and
// YAML (attendctl.yaml / attendctl.yml, parsed with gopkg.in/yaml.v3)
// are accepted; the first file found wins.
package config
