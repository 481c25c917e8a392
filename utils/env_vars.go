package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

type envVarType interface {
	string | int | bool | float64
}

// GetEnv reads an environment variable and converts it to the type of the default value.
// It panics if the variable is set but cannot be parsed.
func GetEnv[T envVarType](envVarName string, defaultValue T) T {
	envValue, ok := os.LookupEnv(envVarName)
	if !ok || envValue == "" {
		return defaultValue
	}

	value, err := parseEnvValue[T](envValue)
	if err != nil {
		panic(fmt.Sprintf("Environment variable %s is not valid: %s", envVarName, err))
	}
	return value
}

func GetRequiredEnv[T envVarType](envVarName string) T {
	envValue, ok := os.LookupEnv(envVarName)
	if !ok || envValue == "" {
		log.Fatalf("%s environment variable is required", envVarName)
	}

	value, err := parseEnvValue[T](envValue)
	if err != nil {
		log.Fatalf("%s environment variable is not valid: %s", envVarName, err)
	}
	return value
}

// GetEnvList reads a comma separated list, ignoring empty items.
func GetEnvList(envVarName string) []string {
	raw := GetEnv(envVarName, "")
	if raw == "" {
		return []string{}
	}
	items := make([]string, 0)
	for _, item := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

func parseEnvValue[T envVarType](envValue string) (T, error) {
	var value T
	switch ptr := any(&value).(type) {
	case *string:
		*ptr = envValue
	case *int:
		intValue, err := strconv.Atoi(envValue)
		if err != nil {
			return value, fmt.Errorf("'%s' is not an integer", envValue)
		}
		*ptr = intValue
	case *bool:
		boolValue, err := strconv.ParseBool(envValue)
		if err != nil {
			return value, fmt.Errorf("'%s' cannot be converted to bool", envValue)
		}
		*ptr = boolValue
	case *float64:
		floatValue, err := strconv.ParseFloat(envValue, 64)
		if err != nil {
			return value, fmt.Errorf("'%s' is not a number", envValue)
		}
		*ptr = floatValue
	}
	return value, nil
}
