package viper

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// SetConfigFromEnv fills every field tagged `env:"NAME"` whose variable is set,
// recursing into untagged struct and struct-pointer fields.
func SetConfigFromEnv(config interface{}) {
	configValue := reflect.ValueOf(config)
	if configValue.Kind() == reflect.Ptr {
		configValue = configValue.Elem()
	}
	configType := configValue.Type()

	for i := 0; i < configValue.NumField(); i++ {
		field := configType.Field(i)
		envVarName := field.Tag.Get("env")

		if envVarName != "" {
			_ = viper.BindEnv(envVarName)
			if !viper.IsSet(envVarName) {
				continue
			}
			setField(configValue.Field(i), envVarName)
		} else {
			fieldValue := configValue.Field(i)
			if fieldValue.Kind() == reflect.Ptr {
				if fieldValue.IsNil() {
					continue
				}
				fieldValue = fieldValue.Elem()
			}
			if fieldValue.Kind() == reflect.Struct {
				SetConfigFromEnv(fieldValue.Addr().Interface())
			}
		}
	}
}

func setField(fieldValue reflect.Value, key string) {
	if fieldValue.Type() == reflect.TypeOf(time.Duration(0)) {
		fieldValue.SetInt(int64(viper.GetDuration(key)))
		return
	}
	switch fieldValue.Kind() {
	case reflect.String:
		fieldValue.SetString(viper.GetString(key))
	case reflect.Bool:
		fieldValue.SetBool(viper.GetBool(key))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		fieldValue.SetInt(viper.GetInt64(key))
	case reflect.Slice:
		if fieldValue.Type().Elem().Kind() != reflect.String {
			return
		}
		var values []string
		for _, v := range viper.GetStringSlice(key) {
			// env slices arrive as a single comma separated string
			for _, part := range strings.Split(v, ",") {
				if part = strings.TrimSpace(part); part != "" {
					values = append(values, part)
				}
			}
		}
		fieldValue.Set(reflect.ValueOf(values))
	}
}

var mutex = &sync.Mutex{}

func SetConfigFromFileINI(configFile string, section string, conf interface{}) error {
	mutex.Lock()
	defer mutex.Unlock()

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("ini")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	sec := "default"
	if section != "" {
		sec = section
	}
	if err := v.UnmarshalKey(sec, conf); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return nil
}

// SetConfigFromFile decodes the value under key of a yaml/json/toml file,
// the format being taken from the extension.
func SetConfigFromFile(configFile string, key string, conf interface{}) error {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType(strings.TrimPrefix(filepath.Ext(configFile), "."))

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := v.UnmarshalKey(key, conf); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return nil
}
