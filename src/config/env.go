package config

import (
	"os"
	"reflect"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// applyEnvironment sets every field whose `env` variable is non-empty, decoding the value
// as YAML the way configor does after reading a file. It covers the case where no
// configuration file exists, which configor refuses to load.
func applyEnvironment(cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		name := t.Field(i).Tag.Get("env")
		if name == "" {
			continue
		}
		value := os.Getenv(name)
		if value == "" {
			continue
		}
		if err := yaml.Unmarshal([]byte(value), v.Field(i).Addr().Interface()); err != nil {
			return errors.Wrapf(err, "invalid value for %s", name)
		}
	}
	return nil
}
