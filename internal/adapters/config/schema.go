package config

// Madfile represents the structure of the madrun.yaml configuration file.
// Absent keys keep their default values.
type Madfile struct {
	Version      string            `yaml:"version"`
	Compiler     *string           `yaml:"compiler"`
	Build        *string           `yaml:"build"`
	Source       *string           `yaml:"source"`
	Output       *string           `yaml:"output"`
	Binary       *string           `yaml:"binary"`
	OutputFlag   *string           `yaml:"outputFlag"`
	SanitizeFlag *string           `yaml:"sanitizeFlag"`
	Flags        []string          `yaml:"flags"`
	Env          map[string]string `yaml:"env"`
}
