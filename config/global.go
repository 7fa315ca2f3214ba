package config

type Config struct {
	LogLevel   string `config:"log.level"`
	LogNoColor bool   `config:"log.nocolor"`
}

var g = &Config{
	LogLevel:   "INFO",
	LogNoColor: false,
}

func G() *Config {
	return g
}
