package config

const (
	AppName = "staticstr"

	EnvPrefix = "STATICSTR_"
)
