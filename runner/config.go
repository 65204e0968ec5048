package runner

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/notargets/aga8/params"
	"github.com/notargets/aga8/partitions"
	"gopkg.in/yaml.v3"
)

// configFile is the layout of a batch file. In YAML:
//
//	partition_size: 16
//	strategy: block        # block | round-robin
//	samples:
//	  - name: reference
//	    pressure: 50000      # kPa
//	    temperature: 400     # K
//	    composition: {methane: 0.77824, nitrogen: 0.02}
//
// and the same keys in TOML, one [[samples]] table per sample.
type configFile struct {
	PartitionSize int          `yaml:"partition_size" toml:"partition_size"`
	Strategy      string       `yaml:"strategy" toml:"strategy"`
	Samples       []sampleFile `yaml:"samples" toml:"samples"`
}

type sampleFile struct {
	Name        string             `yaml:"name" toml:"name"`
	Pressure    *float64           `yaml:"pressure" toml:"pressure"`
	Temperature *float64           `yaml:"temperature" toml:"temperature"`
	Composition map[string]float64 `yaml:"composition" toml:"composition"`
}

// ParseConfig decodes a YAML batch description. Component names in the
// composition maps are resolved with params.ComponentByName; components that
// are not listed get a zero fraction.
func ParseConfig(data []byte) (Config, error) {
	var f configFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("empty batch configuration")
		}
		return Config{}, fmt.Errorf("failed to decode batch configuration: %w", err)
	}
	return f.config()
}

// ParseTOMLConfig decodes a TOML batch description with the same keys as
// ParseConfig.
func ParseTOMLConfig(data []byte) (Config, error) {
	var f configFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return Config{}, fmt.Errorf("failed to decode batch configuration: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown batch configuration keys %v", undecoded)
	}
	return f.config()
}

func (f configFile) config() (cfg Config, err error) {
	if f.PartitionSize < 0 {
		return cfg, fmt.Errorf("partition_size must not be negative, got %d", f.PartitionSize)
	}
	cfg.PartitionSize = f.PartitionSize
	if cfg.Strategy, err = partitions.ParseStrategy(f.Strategy); err != nil {
		return cfg, err
	}

	if len(f.Samples) == 0 {
		return cfg, fmt.Errorf("batch configuration lists no samples")
	}
	cfg.Samples = make([]Sample, len(f.Samples))
	for i, sf := range f.Samples {
		if cfg.Samples[i], err = sf.sample(i); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// LoadConfig reads and decodes a batch file. Files ending in .toml are read
// as TOML, everything else as YAML.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read batch configuration: %w", err)
	}
	parse := ParseConfig
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		parse = ParseTOMLConfig
	}
	cfg, err := parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (sf sampleFile) sample(i int) (s Sample, err error) {
	s.Name = sf.Name
	if s.Name == "" {
		s.Name = fmt.Sprintf("sample-%d", i)
	}
	if sf.Pressure == nil || sf.Temperature == nil {
		return s, fmt.Errorf("sample %q: pressure and temperature are required", s.Name)
	}
	s.Pressure, s.Temperature = *sf.Pressure, *sf.Temperature
	if len(sf.Composition) == 0 {
		return s, fmt.Errorf("sample %q: empty composition", s.Name)
	}

	s.Composition = make([]float64, params.NumComponents)
	set := make([]string, params.NumComponents)
	for name, x := range sf.Composition {
		c, err := params.ComponentByName(name)
		if err != nil {
			return s, fmt.Errorf("sample %q: %w", s.Name, err)
		}
		if set[c] != "" {
			return s, fmt.Errorf("sample %q: %v given twice (%q and %q)", s.Name, c, set[c], name)
		}
		set[c] = name
		s.Composition[c] = x
	}
	return s, nil
}
