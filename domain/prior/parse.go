package prior

import (
	"fmt"
	"strconv"
	"strings"

	"bayesgrid/domain/core"
)

// Parse converts a textual prior spec into a Prior. Accepted forms:
//
//	uniform
//	step:<threshold>
//	laplace:<rate>,<center>
//
// This is the format used by CLI flags and environment configuration.
func Parse(spec string) (Prior, error) {
	name, args, _ := strings.Cut(strings.TrimSpace(spec), ":")
	switch strings.ToLower(name) {
	case "uniform", "flat", "":
		return NewUniform(), nil

	case "step":
		threshold, err := strconv.ParseFloat(args, 64)
		if err != nil {
			return Prior{}, core.NewInvalidParameterError("prior", fmt.Sprintf("step threshold %q is not a number", args))
		}
		return NewStep(threshold)

	case "laplace", "double_exponential", "doubleexp":
		parts := strings.Split(args, ",")
		if len(parts) != 2 {
			return Prior{}, core.NewInvalidParameterError("prior", fmt.Sprintf("laplace needs rate,center, got %q", args))
		}
		rate, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return Prior{}, core.NewInvalidParameterError("prior", fmt.Sprintf("laplace rate %q is not a number", parts[0]))
		}
		center, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return Prior{}, core.NewInvalidParameterError("prior", fmt.Sprintf("laplace center %q is not a number", parts[1]))
		}
		return NewDoubleExponential(rate, center)

	default:
		return Prior{}, core.NewInvalidParameterError("prior", fmt.Sprintf("unknown kind %q", name))
	}
}
