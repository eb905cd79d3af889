package tower

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/twp-dev/twp/internal/command"
)

// Recognized option keys for OptionsFromMap
const (
	OptionToJSON     = "to_json"
	OptionConfig     = "config"
	OptionParamsFile = "params_file"
)

// Options are the recognized per-invocation options.
type Options struct {
	// ToJSON requests JSON output with "-o json" before the subcommand.
	ToJSON bool
	// Config appends --config=<path> after the positional arguments.
	Config string
	// ParamsFile appends --params-file=<path> after the positional arguments.
	ParamsFile string
}

// OptionsFromMap builds Options from loosely typed values. Unrecognized
// keys are ignored so callers can pass options newer than this package.
func OptionsFromMap(m map[string]any) Options {
	var opts Options
	for key, value := range m {
		switch key {
		case OptionToJSON:
			opts.ToJSON = truthy(value)
		case OptionConfig:
			opts.Config = stringValue(value)
		case OptionParamsFile:
			opts.ParamsFile = stringValue(value)
		}
	}
	return opts
}

func (o Options) towerOptions() command.TowerOptions {
	return command.TowerOptions{
		JSON:       o.ToJSON,
		Config:     o.Config,
		ParamsFile: o.ParamsFile,
	}
}

func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		return v != ""
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return !rv.IsZero()
	default:
		return true
	}
}

func stringValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
