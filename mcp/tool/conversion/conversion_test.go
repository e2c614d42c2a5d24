package conversion

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
)

func flagSet() *pflag.FlagSet {
	set := pflag.NewFlagSet("test", pflag.ContinueOnError)
	set.String("name", "", "Name to greet")
	set.String("host", "localhost", "Server host")
	set.Int("port", 8080, "Server port")
	set.Float64("ratio", 0.5, "Sampling ratio")
	set.Bool("debug", false, "Enable debug mode")
	set.Bool("color", true, "Colorize output")
	set.Duration("timeout", 30*time.Second, "Request timeout")
	set.StringSlice("tag", nil, "Tags to apply")
	set.StringSlice("region", []string{"us", "eu"}, "Regions to target")
	set.IntSlice("shard", []int{1, 2}, "Shards to touch")
	return set
}

func TestFlagProperty(t *testing.T) {
	set := flagSet()

	testCases := []struct {
		description string
		flag        string
		expect      map[string]interface{}
	}{
		{
			description: "string without default",
			flag:        "name",
			expect:      map[string]interface{}{"type": "string", "description": "Name to greet"},
		},
		{
			description: "string with default",
			flag:        "host",
			expect:      map[string]interface{}{"type": "string", "description": "Server host", "default": "localhost"},
		},
		{
			description: "integer default is typed",
			flag:        "port",
			expect:      map[string]interface{}{"type": "integer", "description": "Server port", "default": int64(8080)},
		},
		{
			description: "float maps to number",
			flag:        "ratio",
			expect:      map[string]interface{}{"type": "number", "description": "Sampling ratio", "default": 0.5},
		},
		{
			description: "false boolean default is filtered",
			flag:        "debug",
			expect:      map[string]interface{}{"type": "boolean", "description": "Enable debug mode"},
		},
		{
			description: "true boolean default survives",
			flag:        "color",
			expect:      map[string]interface{}{"type": "boolean", "description": "Colorize output", "default": true},
		},
		{
			description: "duration maps to string with format hint",
			flag:        "timeout",
			expect:      map[string]interface{}{"type": "string", "description": "Request timeout (format: 1h30m, 5m, 30s)", "default": "30s"},
		},
		{
			description: "empty slice default is filtered",
			flag:        "tag",
			expect: map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "string"},
				"description": "Tags to apply",
			},
		},
		{
			description: "string slice default keeps string elements",
			flag:        "region",
			expect: map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "string"},
				"description": "Regions to target",
				"default":     []interface{}{"us", "eu"},
			},
		},
		{
			description: "int slice default has integer elements",
			flag:        "shard",
			expect: map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "integer"},
				"description": "Shards to touch",
				"default":     []interface{}{int64(1), int64(2)},
			},
		},
	}

	for _, tc := range testCases {
		flag := set.Lookup(tc.flag)
		if !assert.NotNil(t, flag, tc.description) {
			continue
		}
		assert.EqualValues(t, tc.expect, FlagProperty(flag), tc.description)
	}
}

// formatValue is a minimal enum-valued pflag.Value.
type formatValue string

func (f *formatValue) String() string { return string(*f) }
func (f *formatValue) Set(v string) error {
	*f = formatValue(v)
	return nil
}
func (f *formatValue) Type() string          { return "format" }
func (f *formatValue) ValidValues() []string { return []string{"json", "yaml", "text"} }

func TestFlagPropertyEnum(t *testing.T) {
	set := pflag.NewFlagSet("test", pflag.ContinueOnError)
	value := formatValue("text")
	set.Var(&value, "format", "Output format")

	prop := FlagProperty(set.Lookup("format"))
	assert.EqualValues(t, "string", prop["type"])
	assert.EqualValues(t, []string{"json", "yaml", "text"}, prop["enum"])
	assert.EqualValues(t, "text", prop["default"])
	assert.Contains(t, prop["description"], "valid options: json, yaml, text")
}

func TestFlagRequired(t *testing.T) {
	set := flagSet()

	assert.True(t, FlagRequired(set.Lookup("name")), "no default, not bool")
	assert.False(t, FlagRequired(set.Lookup("host")), "declared default")
	assert.False(t, FlagRequired(set.Lookup("port")), "numeric default")
	assert.False(t, FlagRequired(set.Lookup("debug")), "booleans are never required")
}

func TestArgumentProperty(t *testing.T) {
	prop := ArgumentProperty("", nil)
	assert.EqualValues(t, map[string]interface{}{"type": "string"}, prop)

	prop = ArgumentProperty("Input file", []string{"a.txt", "b.txt"})
	assert.EqualValues(t, "Input file", prop["description"])
	assert.EqualValues(t, []string{"a.txt", "b.txt"}, prop["enum"])
}
