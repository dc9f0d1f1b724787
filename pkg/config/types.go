package config

// Config represents the daemon configuration
type Config struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"` // json or text
	GRPCAddr  string `yaml:"grpc_addr"`
	HTTPAddr  string `yaml:"http_addr"`
}

// DefaultConfig returns a Config with the default daemon settings
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "json",
		GRPCAddr:  ":50051",
		HTTPAddr:  ":8080",
	}
}
