package conversion

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// JSON schema type names.
const (
	TypeString  = "string"
	TypeBoolean = "boolean"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeArray   = "array"
)

// pflag value types and default sentinels that must never surface in a schema.
const (
	flagTypeBool           = "bool"
	defaultValueFalse      = "false"
	defaultValueEmptyArray = "[]"
)

// enumValuer is implemented by flag values with a fixed choice set. The shape
// matches custom pflag.Value implementations commonly used for enum flags.
type enumValuer interface {
	ValidValues() []string
}

// FlagProperty converts a single pflag declaration into a JSON schema
// property. Help text becomes the description only when declared, and the
// default entry is emitted only for a real declared default, never for the
// empty "unset" sentinel.
func FlagProperty(flag *pflag.Flag) map[string]interface{} {
	if enum, ok := flag.Value.(enumValuer); ok {
		if prop := enumProperty(enum, flag); prop != nil {
			return prop
		}
	}

	prop := map[string]interface{}{}
	switch flag.Value.Type() {
	case flagTypeBool:
		prop["type"] = TypeBoolean
	case "int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64", "count":
		prop["type"] = TypeInteger
	case "float32", "float64":
		prop["type"] = TypeNumber
	case "stringSlice", "stringArray":
		prop["type"] = TypeArray
		prop["items"] = map[string]interface{}{"type": TypeString}
	case "intSlice", "int32Slice", "int64Slice":
		prop["type"] = TypeArray
		prop["items"] = map[string]interface{}{"type": TypeInteger}
	case "duration":
		prop["type"] = TypeString
		if flag.Usage != "" {
			prop["description"] = flag.Usage + " (format: 1h30m, 5m, 30s)"
		} else {
			prop["description"] = "duration (format: 1h30m, 5m, 30s)"
		}
	default:
		prop["type"] = TypeString
	}

	if _, ok := prop["description"]; !ok && flag.Usage != "" {
		prop["description"] = flag.Usage
	}
	itemType := ""
	if items, ok := prop["items"].(map[string]interface{}); ok {
		itemType, _ = items["type"].(string)
	}
	if value, ok := typedDefault(prop["type"].(string), itemType, flag.DefValue); ok {
		prop["default"] = value
	}
	return prop
}

// FlagRequired reports whether a flag belongs in the schema's required list:
// it has no declared default and is not a boolean (booleans default to absent,
// which the framework reads as false).
func FlagRequired(flag *pflag.Flag) bool {
	return flag.DefValue == "" && flag.Value.Type() != flagTypeBool
}

// ArgumentProperty converts a positional argument declaration into a JSON
// schema property. Positional values reach the command parser as plain
// tokens, so the type is always string; a non-empty choice set narrows it to
// an enum.
func ArgumentProperty(description string, validValues []string) map[string]interface{} {
	prop := map[string]interface{}{"type": TypeString}
	if description != "" {
		prop["description"] = description
	}
	if len(validValues) > 0 {
		prop["enum"] = validValues
	}
	return prop
}

func enumProperty(enum enumValuer, flag *pflag.Flag) map[string]interface{} {
	values := enum.ValidValues()
	if len(values) == 0 {
		return nil
	}
	prop := map[string]interface{}{
		"type": TypeString,
		"enum": values,
		"description": fmt.Sprintf("%s (valid options: %s)",
			flag.Usage, strings.Join(values, ", ")),
	}
	if flag.DefValue != "" {
		prop["default"] = flag.DefValue
	}
	return prop
}

// typedDefault parses pflag's textual default into a JSON-typed value. The
// empty string, false booleans and empty arrays are unset sentinels and are
// filtered rather than serialized. Array elements are parsed per itemType so
// an integer-typed list never serializes string elements.
func typedDefault(schemaType, itemType, defValue string) (interface{}, bool) {
	switch {
	case defValue == "":
		return nil, false
	case schemaType == TypeBoolean:
		if defValue == defaultValueFalse {
			return nil, false
		}
		return true, true
	case schemaType == TypeInteger:
		if value, err := strconv.ParseInt(defValue, 10, 64); err == nil {
			return value, true
		}
		return nil, false
	case schemaType == TypeNumber:
		if value, err := strconv.ParseFloat(defValue, 64); err == nil {
			return value, true
		}
		return nil, false
	case schemaType == TypeArray:
		if defValue == defaultValueEmptyArray {
			return nil, false
		}
		items := strings.Split(strings.Trim(defValue, "[]"), ",")
		values := make([]interface{}, 0, len(items))
		for _, item := range items {
			item = strings.TrimSpace(item)
			if itemType == TypeInteger {
				value, err := strconv.ParseInt(item, 10, 64)
				if err != nil {
					return nil, false
				}
				values = append(values, value)
				continue
			}
			values = append(values, item)
		}
		return values, true
	default:
		return defValue, true
	}
}
