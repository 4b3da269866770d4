package log

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	lgbmerrors "github.com/Willdata/LightGBM/pkg/errors"
)

// appendFields writes alternating key-value pairs onto a zerolog event.
// An error in a key position is written under zerolog's error field together
// with its cockroachdb stack trace.
func appendFields(e *zerolog.Event, fields []any) {
	for i := 0; i < len(fields); {
		if err, ok := fields[i].(error); ok {
			e.Err(err).Str(ErrorTypeKey, errorType(err))
			if st := extractStacktrace(err); st != "" {
				e.Str(StacktraceKey, st)
			}
			i++
			continue
		}
		if i+1 >= len(fields) {
			e.Interface("!BADKEY", fields[i])
			break
		}

		key := fmt.Sprint(fields[i])
		switch v := fields[i+1].(type) {
		case zerolog.LogObjectMarshaler:
			e.Object(key, v)
		case error:
			e.AnErr(key, v)
		default:
			e.Interface(key, v)
		}
		i += 2
	}
}

func extractStacktrace(err error) string {
	safeDetails := errors.GetSafeDetails(err).SafeDetails
	if len(safeDetails) > 0 {
		return safeDetails[0]
	}
	return ""
}

// errorType names the structured error carried by err, looking through
// wrappers; other errors report the Go type of their root cause.
func errorType(err error) string {
	var (
		cfgErr  *lgbmerrors.ConfigurationError
		initErr *lgbmerrors.NotInitializedError
		dimErr  *lgbmerrors.DimensionMismatchError
		numErr  *lgbmerrors.NumericalInstabilityError
	)
	switch {
	case errors.As(err, &cfgErr):
		return "ConfigurationError"
	case errors.As(err, &initErr):
		return "NotInitializedError"
	case errors.As(err, &dimErr):
		return "DimensionMismatchError"
	case errors.As(err, &numErr):
		return "NumericalInstabilityError"
	default:
		return fmt.Sprintf("%T", errors.UnwrapAll(err))
	}
}
