package config

import (
	"reflect"
	"strings"
	"testing"
)

func TestEnvCB(t *testing.T) {
	k, v := envCB("STATICSTR_LOG_NOCOLOR", "true")
	if k != "log.nocolor" || v != "true" {
		t.Fatalf("unexpected pair: %s=%v", k, v)
	}
	k, _ = envCB("STATICSTR_LOG_LEVEL", "debug")
	if k != "log.level" {
		t.Fatalf("unexpected key: %s", k)
	}
}

func TestConfigTagsReachableFromEnv(t *testing.T) {
	// envCB rewrites every "_" to ".", so a tag containing "_" can never be
	// populated from the environment or a dotenv file.
	ct := reflect.TypeOf(Config{})
	for i := 0; i < ct.NumField(); i++ {
		tag := ct.Field(i).Tag.Get("config")
		if strings.Contains(tag, "_") {
			t.Fatalf("field %s: tag %q is unreachable through envCB", ct.Field(i).Name, tag)
		}
	}
}
