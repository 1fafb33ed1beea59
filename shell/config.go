package shell

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EnvHome is the environment variable naming the install root a default
// .gatesynth.yml is resolved relative to when no explicit config path is
// given.
const EnvHome = "UTOPIA_HOME"

// Config is the optional .gatesynth.yml a Session loads at startup:
// aliases for logopt's pass scripts and default bounds for techmap's
// area/delay/power criterion, both of which a user otherwise has to
// spell out on every invocation.
type Config struct {
	// PassAliases maps a short name a user types at logopt to one of
	// transform.Script's registered script names.
	PassAliases map[string]string `yaml:"pass_aliases"`

	// DefaultObjective is the techmap objective used when the techmap
	// verb is called with no --objective flag.
	DefaultObjective string `yaml:"default_objective"`
}

// LoadConfig reads and parses a .gatesynth.yml from path. A missing file
// is not an error — it resolves to the zero Config, matching a fresh
// install with no customization.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, errors.Wrapf(err, "shell: reading config %s", path)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "shell: parsing config %s", path)
	}
	return cfg, nil
}

// ResolvePass expands a user-typed logopt pass name through cfg's
// aliases, falling back to the name itself when no alias matches.
func (c Config) ResolvePass(name string) string {
	if alias, ok := c.PassAliases[name]; ok {
		return alias
	}
	return name
}
