package config

// Logging controls diagnostic output on stderr.
type Logging struct {
	Level string `yaml:"level"`
}

// Scan defines limits on a single range scan.
type Scan struct {
	// MaxSpan caps high-low. Zero disables the check.
	MaxSpan uint64 `yaml:"max_span"`
}

// Config represents the .armstrong/config.yaml file.
type Config struct {
	Logging Logging `yaml:"logging"`
	Scan    Scan    `yaml:"scan"`
}
