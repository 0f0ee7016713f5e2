package workgroup

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/sopaco/antparams"
	"github.com/katalvlaran/sopaco/backend"
	"github.com/katalvlaran/sopaco/colony"
	"github.com/katalvlaran/sopaco/problem"
	"github.com/katalvlaran/sopaco/profiler"
	"github.com/katalvlaran/sopaco/registry"
)

func init() {
	registry.Register(VariantName, "wordbits=32|64", func(prob *problem.Problem, params antparams.Params, prof *profiler.Profiler) (colony.Engine, error) {
		wordBits, err := parseWordBits(params.VariantArgs)
		if err != nil {
			return nil, &colony.ConfigError{Field: "variant_args", Err: err}
		}
		dev, err := backend.SelectDevice(backend.KindAccelerator)
		if err != nil {
			return nil, err
		}
		return New(prob, params, dev, wordBits, prof)
	})
}

// parseWordBits reads the "wordbits=32" or "wordbits=64" variant argument.
// An empty args string yields 0, which New defaults to defaultWordBits.
func parseWordBits(args string) (int, error) {
	if args == "" {
		return 0, nil
	}

	for _, field := range strings.Split(args, ",") {
		key, value, ok := strings.Cut(field, "=")
		if !ok || key != "wordbits" {
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("wordbits: %w", err)
		}
		if n != 32 && n != 64 {
			return 0, fmt.Errorf("wordbits: must be 32 or 64, got %d", n)
		}
		return n, nil
	}

	return 0, nil
}
