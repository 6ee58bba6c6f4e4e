package niche

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

// Config stores the configuration parameters for a simulation run.
// It is loaded once and shared read-only by every population.
type Config struct {
	Population  PopulationConfig
	Animal      AnimalConfig
	Environment EnvironmentConfig
	Output      OutputConfig
}

// PopulationConfig holds parameters of the reproduction step.
type PopulationConfig struct {
	EnvironmentSizes []int   `ini:"environment_sizes" delim:" "` // Target size per niche; a single value applies to every niche
	RandomChoice     bool    `ini:"random_choice"`               // Random instead of fitness-ranked offspring correction
	VariableSize     bool    `ini:"variable_size"`               // Let the population size float
	Q                float64 `ini:"q"`                           // Poisson rate per unit payoff in variable-size mode
	Generations      int     `ini:"generations"`
	Lifetime         int     `ini:"lifetime"` // Reaction steps per generation
	Seed             uint64  `ini:"seed"`
	Verbose          bool    `ini:"verbose"`
}

// AnimalConfig holds parameters of the genes and their mutation.
type AnimalConfig struct {
	GeneNames     []string  `ini:"gene_names" delim:" "`
	InitialGenes  []float64 `ini:"initial_genes" delim:" "`
	MutationRate  float64   `ini:"mutation_rate"`
	MutationPower float64   `ini:"mutation_power"`
	GeneMin       float64   `ini:"gene_min"`
	GeneMax       float64   `ini:"gene_max"`
}

// EnvironmentConfig describes the signal the animals react to. The core never
// reads it; it is here so that a single file configures a whole run.
type EnvironmentConfig struct {
	Amplitude float64 `ini:"amplitude"`
	Period    float64 `ini:"period"`
	Noise     float64 `ini:"noise"`
	CueNoise  float64 `ini:"cue_noise"`
}

// OutputConfig controls where generation reports go. Empty paths disable the output.
type OutputConfig struct {
	CSVPath     string `ini:"csv_path"`
	HistoryPath string `ini:"history_path"`
	ReportEvery int    `ini:"report_every"`
}

// Values may carry trailing # or ; comments; a backslash escapes the symbol.
var loadOptions = ini.LoadOptions{
	UnescapeValueCommentSymbols: true,
}

// LoadConfig loads configuration parameters from an INI file.
func LoadConfig(filePath string) (*Config, error) {
	cfg, err := ini.LoadSources(loadOptions, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}
	return parseConfig(cfg)
}

// ParseConfig parses configuration parameters from raw INI data.
func ParseConfig(data []byte) (*Config, error) {
	cfg, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return parseConfig(cfg)
}

func parseConfig(cfg *ini.File) (*Config, error) {
	config := &Config{}

	if err := cfg.Section("Population").MapTo(&config.Population); err != nil {
		return nil, fmt.Errorf("failed to map [Population] section: %w", err)
	}
	if err := cfg.Section("Animal").MapTo(&config.Animal); err != nil {
		return nil, fmt.Errorf("failed to map [Animal] section: %w", err)
	}
	if err := cfg.Section("Environment").MapTo(&config.Environment); err != nil {
		return nil, fmt.Errorf("failed to map [Environment] section: %w", err)
	}
	if err := cfg.Section("Output").MapTo(&config.Output); err != nil {
		return nil, fmt.Errorf("failed to map [Output] section: %w", err)
	}

	config.Output.CSVPath = strings.TrimSpace(config.Output.CSVPath)
	config.Output.HistoryPath = strings.TrimSpace(config.Output.HistoryPath)
	for i, name := range config.Animal.GeneNames {
		config.Animal.GeneNames[i] = strings.TrimSpace(name)
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) applyDefaults() {
	if c.Population.Q == 0 {
		c.Population.Q = 1.0
	}
	if c.Population.Generations == 0 {
		c.Population.Generations = 100
	}
	if c.Population.Lifetime == 0 {
		c.Population.Lifetime = 1
	}
	if len(c.Animal.GeneNames) == 0 {
		c.Animal.GeneNames = []string{"g"}
	}
	if len(c.Animal.InitialGenes) == 0 {
		c.Animal.InitialGenes = make([]float64, len(c.Animal.GeneNames))
	}
	if c.Animal.GeneMin == 0 && c.Animal.GeneMax == 0 {
		c.Animal.GeneMin, c.Animal.GeneMax = -2, 2
	}
	if c.Environment.Period == 0 {
		c.Environment.Period = 1
	}
	if c.Output.ReportEvery == 0 {
		c.Output.ReportEvery = 1
	}
}

// Validate checks the configuration for values the simulation cannot run with.
func (c *Config) Validate() error {
	if len(c.Population.EnvironmentSizes) == 0 {
		return fmt.Errorf("config error: environment_sizes must be specified")
	}
	for i, n := range c.Population.EnvironmentSizes {
		if n < 0 {
			return fmt.Errorf("config error: environment_sizes[%d] cannot be negative", i)
		}
	}
	if c.Population.Q <= 0 {
		return fmt.Errorf("config error: q must be positive")
	}
	if c.Population.Generations < 0 {
		return fmt.Errorf("config error: generations cannot be negative")
	}
	if c.Population.Lifetime <= 0 {
		return fmt.Errorf("config error: lifetime must be positive")
	}
	if len(c.Animal.InitialGenes) != len(c.Animal.GeneNames) {
		return fmt.Errorf("config error: initial_genes has %d values for %d gene_names", len(c.Animal.InitialGenes), len(c.Animal.GeneNames))
	}
	if c.Animal.MutationRate < 0 || c.Animal.MutationRate > 1 {
		return fmt.Errorf("config error: mutation_rate must be between 0 and 1")
	}
	if c.Animal.MutationPower < 0 {
		return fmt.Errorf("config error: mutation_power cannot be negative")
	}
	if c.Animal.GeneMax < c.Animal.GeneMin {
		return fmt.Errorf("config error: gene_max cannot be less than gene_min")
	}
	if c.Environment.Period <= 0 {
		return fmt.Errorf("config error: period must be positive")
	}
	if c.Output.ReportEvery < 0 {
		return fmt.Errorf("config error: report_every cannot be negative")
	}
	return nil
}

// Niches returns the number of niches the configuration describes.
func (c *Config) Niches() int {
	return len(c.Population.EnvironmentSizes)
}

// TargetSize returns the configured population size of a niche.
func (c *Config) TargetSize(niche int) (int, error) {
	sizes := c.Population.EnvironmentSizes
	if len(sizes) == 1 {
		return sizes[0], nil
	}
	if niche < 0 || niche >= len(sizes) {
		return 0, fmt.Errorf("niche %d out of range [0, %d)", niche, len(sizes))
	}
	return sizes[niche], nil
}

// Policy returns the offspring correction policy selected by random_choice.
func (c *Config) Policy() Policy {
	if c.Population.RandomChoice {
		return PolicyRandom
	}
	return PolicyRanked
}
