package objective

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/Willdata/LightGBM/pkg/errors"
)

// Canonical parameter names.
const (
	ParamObjective   = "objective"
	ParamGaussianEta = "gaussian_eta"
	ParamHuberDelta  = "huber_delta"
	ParamFairC       = "fair_c"
	ParamNumThreads  = "num_threads"
)

// Config holds the loss hyperparameters. Each objective validates only the
// fields it uses.
type Config struct {
	// GaussianEta controls the width of the Gaussian used to approximate the
	// hessian of regression_l1 and of huber outside delta.
	GaussianEta float64 `json:"gaussian_eta" yaml:"gaussian_eta"`
	// HuberDelta separates the quadratic and linear regimes of huber.
	HuberDelta float64 `json:"huber_delta" yaml:"huber_delta"`
	// FairC is the scale of the fair loss.
	FairC float64 `json:"fair_c" yaml:"fair_c"`
	// NumThreads bounds the goroutines used by GetGradients; <= 0 means one per CPU.
	NumThreads int `json:"num_threads" yaml:"num_threads"`
}

// DefaultConfig returns LightGBM's defaults.
func DefaultConfig() Config {
	return Config{
		GaussianEta: 1.0,
		HuberDelta:  1.0,
		FairC:       1.0,
		NumThreads:  0,
	}
}

// paramAliases maps every accepted key to its canonical name.
var paramAliases = map[string]string{
	ParamObjective:   ParamObjective,
	"objective_type": ParamObjective,
	"app":            ParamObjective,
	"application":    ParamObjective,
	"loss":           ParamObjective,

	ParamGaussianEta: ParamGaussianEta,
	ParamHuberDelta:  ParamHuberDelta,
	ParamFairC:       ParamFairC,

	ParamNumThreads: ParamNumThreads,
	"num_thread":    ParamNumThreads,
	"nthread":       ParamNumThreads,
	"nthreads":      ParamNumThreads,
	"n_jobs":        ParamNumThreads,
}

// ConfigFromParams builds a Config from LightGBM-style parameters, starting
// from DefaultConfig. Keys that do not concern objectives are ignored with a
// warning. When several aliases of one parameter are given, the canonical key
// wins, then the alias that sorts first; the others are ignored with a warning.
func ConfigFromParams(params map[string]interface{}) (Config, error) {
	cfg := DefaultConfig()
	resolved := resolveAliases(params)
	for _, key := range sortedKeys(params) {
		canonical, ok := paramAliases[strings.ToLower(key)]
		switch {
		case !ok:
			errors.Warn(errors.NewParameterWarning(key, "ignored by objective configuration"))
		case resolved[canonical] != key:
			errors.Warn(errors.NewParameterWarning(key, "ignored, "+canonical+" is already set by "+resolved[canonical]))
		}
	}

	for _, canonical := range []string{ParamGaussianEta, ParamHuberDelta, ParamFairC, ParamNumThreads} {
		key, ok := resolved[canonical]
		if !ok {
			continue
		}
		value := params[key]

		var err error
		switch canonical {
		case ParamGaussianEta:
			cfg.GaussianEta, err = toFloat64(key, value)
		case ParamHuberDelta:
			cfg.HuberDelta, err = toFloat64(key, value)
		case ParamFairC:
			cfg.FairC, err = toFloat64(key, value)
		case ParamNumThreads:
			cfg.NumThreads, err = toInt(key, value)
		}
		if err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

// NameFromParams returns the objective named in params under any alias of
// "objective", or "regression" when there is none. Alias precedence follows
// ConfigFromParams.
func NameFromParams(params map[string]interface{}) string {
	if key, ok := resolveAliases(params)[ParamObjective]; ok {
		return fmt.Sprint(params[key])
	}
	return NameRegression
}

// resolveAliases maps each canonical parameter present in params to the key
// that supplies its value.
func resolveAliases(params map[string]interface{}) map[string]string {
	resolved := make(map[string]string)
	for _, key := range sortedKeys(params) {
		canonical, ok := paramAliases[strings.ToLower(key)]
		if !ok {
			continue
		}
		prev, seen := resolved[canonical]
		switch {
		case !seen:
			resolved[canonical] = key
		case strings.ToLower(key) == canonical && strings.ToLower(prev) != canonical:
			resolved[canonical] = key
		}
	}
	return resolved
}

// sortedKeys returns the keys of params in a fixed order.
func sortedKeys(params map[string]interface{}) []string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// LoadParamsYAML reads a flat YAML mapping of parameters.
func LoadParamsYAML(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	params := make(map[string]interface{})
	if err := yaml.Unmarshal(data, &params); err != nil {
		return nil, errors.Wrapf(err, "failed to parse YAML config %s", path)
	}
	return params, nil
}

// LoadConfigYAML reads a YAML parameter file into a Config.
func LoadConfigYAML(path string) (Config, error) {
	params, err := LoadParamsYAML(path)
	if err != nil {
		return Config{}, err
	}
	return ConfigFromParams(params)
}

// requirePositive rejects zero, negative, NaN and infinite values.
func requirePositive(param string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.NewConfigurationError(param, "must be finite", v)
	}
	if v <= 0 {
		return errors.NewConfigurationError(param, "must be positive", v)
	}
	return nil
}

func formatParam(name string, v float64) string {
	return name + ":" + strconv.FormatFloat(v, 'g', -1, 64)
}

func toFloat64(param string, value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, errors.NewConfigurationError(param, "not a number", v)
		}
		return f, nil
	default:
		return 0, errors.NewConfigurationError(param, fmt.Sprintf("unsupported type %T", value), value)
	}
}

func toInt(param string, value interface{}) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, errors.NewConfigurationError(param, "must be an integer", v)
		}
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, errors.NewConfigurationError(param, "not an integer", v)
		}
		return n, nil
	default:
		return 0, errors.NewConfigurationError(param, fmt.Sprintf("unsupported type %T", value), value)
	}
}
