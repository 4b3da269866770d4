package objective

import (
	"strings"

	"github.com/Willdata/LightGBM/pkg/errors"
)

// Objective identifiers returned by Name.
const (
	NameRegression   = "regression"
	NameRegressionL1 = "regression_l1"
	NameHuber        = "huber"
	NameFair         = "fair"
)

var objectiveAliases = map[string]string{
	"regression":         NameRegression,
	"regression_l2":      NameRegression,
	"l2":                 NameRegression,
	"mean_squared_error": NameRegression,
	"mse":                NameRegression,

	"regression_l1":       NameRegressionL1,
	"l1":                  NameRegressionL1,
	"mean_absolute_error": NameRegressionL1,
	"mae":                 NameRegressionL1,

	"huber": NameHuber,
	"fair":  NameFair,
}

// CanonicalName resolves an objective name or alias, case-insensitively.
func CanonicalName(name string) (string, error) {
	canonical, ok := objectiveAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", errors.NewConfigurationError(ParamObjective, "unknown objective", name)
	}
	return canonical, nil
}

// CreateObjectiveFunction creates the objective named by name or one of its aliases.
func CreateObjectiveFunction(name string, cfg Config) (ObjectiveFunction, error) {
	canonical, err := CanonicalName(name)
	if err != nil {
		return nil, err
	}

	switch canonical {
	case NameRegression:
		o, err := NewL2Objective(cfg)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create objective %s", canonical)
		}
		return o, nil
	case NameRegressionL1:
		o, err := NewL1Objective(cfg)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create objective %s", canonical)
		}
		return o, nil
	case NameHuber:
		o, err := NewHuberObjective(cfg)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create objective %s", canonical)
		}
		return o, nil
	case NameFair:
		o, err := NewFairObjective(cfg)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create objective %s", canonical)
		}
		return o, nil
	default:
		return nil, errors.NewConfigurationError(ParamObjective, "no implementation for objective", canonical)
	}
}

// NewObjectiveFromParams creates an objective from LightGBM-style parameters.
// The objective defaults to "regression" when params do not name one.
func NewObjectiveFromParams(params map[string]interface{}) (ObjectiveFunction, error) {
	cfg, err := ConfigFromParams(params)
	if err != nil {
		return nil, err
	}
	return CreateObjectiveFunction(NameFromParams(params), cfg)
}
