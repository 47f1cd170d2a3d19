// Package config provides the configuration loader for madrun.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"

	"go.trai.ch/madrun/internal/core/domain"
	"go.trai.ch/madrun/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the only madrun.yaml schema version understood by the loader.
const SupportedVersion = "1"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load returns the harness configuration.
//
// With an empty path, madrun.yaml in the working directory is used when it
// exists and the defaults otherwise. An explicit path must exist.
func (l *Loader) Load(path string) (domain.Config, error) {
	explicit := path != ""
	if !explicit {
		path = domain.ConfigFileName
	}

	// #nosec G304 -- path is the user's own config file
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if explicit {
				return domain.Config{}, errors.Join(domain.ErrConfigNotFound, zerr.With(zerr.Wrap(err, "no such file"), "path", path))
			}
			l.Logger.Debug("no " + domain.ConfigFileName + " found, using defaults")
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, errors.Join(domain.ErrConfigReadFailed, zerr.With(zerr.Wrap(err, "read error"), "path", path))
	}

	var madfile Madfile
	if err := decodeStrict(data, &madfile); err != nil {
		return domain.Config{}, errors.Join(domain.ErrConfigParseFailed, zerr.With(zerr.Wrap(err, "yaml error"), "path", path))
	}

	if madfile.Version != "" && madfile.Version != SupportedVersion {
		l.Logger.Warn(fmt.Sprintf("%s declares version %q, expected %q", path, madfile.Version, SupportedVersion))
	}

	cfg := madfile.apply(domain.DefaultConfig())
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, zerr.With(err, "path", path)
	}

	l.Logger.Debug("loaded configuration from " + path)
	return cfg, nil
}

// decodeStrict unmarshals YAML and rejects keys the schema does not know.
// An empty document leaves target untouched.
func decodeStrict(data []byte, target *Madfile) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// apply overlays the values present in the file onto base.
func (m *Madfile) apply(base domain.Config) domain.Config {
	setIfPresent(&base.Compiler, m.Compiler)
	setIfPresent(&base.BuildCommand, m.Build)
	setIfPresent(&base.SourceDir, m.Source)
	setIfPresent(&base.OutputDir, m.Output)
	setIfPresent(&base.BinaryName, m.Binary)
	setIfPresent(&base.OutputFlag, m.OutputFlag)
	setIfPresent(&base.SanitizeFlag, m.SanitizeFlag)
	if len(m.Flags) > 0 {
		base.BuildFlags = append([]string(nil), m.Flags...)
	}
	if len(m.Env) > 0 {
		base.Environment = maps.Clone(m.Env)
	}
	return base
}

func setIfPresent(dst, src *string) {
	if src != nil {
		*dst = *src
	}
}
