package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("ORGCHARTS_TEST_INT", "42")
	t.Setenv("ORGCHARTS_TEST_BOOL", "true")
	t.Setenv("ORGCHARTS_TEST_LIST", "http://a.test, ,http://b.test")

	assert.Equal(t, 42, GetEnv("ORGCHARTS_TEST_INT", 5))
	assert.Equal(t, true, GetEnv("ORGCHARTS_TEST_BOOL", false))
	assert.Equal(t, "fallback", GetEnv("ORGCHARTS_TEST_UNSET", "fallback"))
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, GetEnvList("ORGCHARTS_TEST_LIST"))
	assert.Empty(t, GetEnvList("ORGCHARTS_TEST_UNSET"))
}

func TestGetEnv_invalid(t *testing.T) {
	t.Setenv("ORGCHARTS_TEST_INT", "not a number")
	assert.Panics(t, func() { GetEnv("ORGCHARTS_TEST_INT", 5) })
}
