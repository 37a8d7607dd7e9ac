package formatter

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Option keys recognized by NewSimpleFromOptions
const (
	OptionFormat         = "format"
	OptionDateTimeFormat = "dateTimeFormat"
)

// optionAliases maps alternative spellings found in config files to the
// canonical option keys.
var optionAliases = map[string]string{
	"date_time_format": OptionDateTimeFormat,
	"datetime_format":  OptionDateTimeFormat,
}

// ConfigFromOptions resolves an untyped option record, as produced by
// decoding a config file, into a Config. Missing or nil options keep their
// defaults; unknown keys are ignored. Every option holding a value of the
// wrong type is reported, and each reported error wraps ErrInvalidArgument.
func ConfigFromOptions(opts map[string]interface{}) (Config, error) {
	var cfg Config
	var result *multierror.Error

	resolved := make(map[string]interface{}, len(opts))
	for key, val := range opts {
		if canonical, ok := optionAliases[key]; ok {
			key = canonical
		}
		if val != nil {
			resolved[key] = val
		}
	}

	if val, ok := resolved[OptionFormat]; ok {
		if s, ok := val.(string); ok {
			cfg.Format = s
		} else {
			result = multierror.Append(result, fmt.Errorf("%w: format must be a string, got %T", ErrInvalidArgument, val))
		}
	}
	if val, ok := resolved[OptionDateTimeFormat]; ok {
		if s, ok := val.(string); ok {
			cfg.DateTimeFormat = s
		} else {
			result = multierror.Append(result, fmt.Errorf("%w: dateTimeFormat must be a string, got %T", ErrInvalidArgument, val))
		}
	}

	return cfg, result.ErrorOrNil()
}

// NewSimpleFromOptions creates a template formatter from an untyped option
// record with the keys "format" and "dateTimeFormat".
func NewSimpleFromOptions(opts map[string]interface{}) (*Simple, error) {
	cfg, err := ConfigFromOptions(opts)
	if err != nil {
		return nil, err
	}
	return NewSimple(cfg), nil
}
