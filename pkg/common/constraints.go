package common

import (
	"fmt"

	"github.com/google/cel-go/cel"
)

// LaunchConstraints holds the compiled CEL programs for the configured launch
// constraints. Constraints are evaluated against the decoded, resolved launch
// request before the user is ever asked to confirm; any expression that
// evaluates to false blocks the launch.
type LaunchConstraints struct {
	exprs    []string
	programs []cel.Program
	logger   *Logger
}

// NewLaunchConstraints compiles a list of CEL constraint expressions.
//
// Each expression may reference the string variables "prompt", "dir" and
// "project" and must evaluate to a boolean.
//
// Parameters:
//   - constraints: The CEL expressions from the configuration file
//   - logger: Logger for compilation and evaluation diagnostics (required)
//
// Returns:
//   - A new LaunchConstraints instance, or an error if compilation fails
func NewLaunchConstraints(constraints []string, logger *Logger) (*LaunchConstraints, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is required for constraint compilation")
	}

	if len(constraints) == 0 {
		return &LaunchConstraints{logger: logger}, nil
	}

	env, err := cel.NewEnv(
		cel.Variable("prompt", cel.StringType),
		cel.Variable("dir", cel.StringType),
		cel.Variable("project", cel.StringType),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	var programs []cel.Program
	for _, expr := range constraints {
		ast, issues := env.Compile(expr)
		if issues != nil && issues.Err() != nil {
			return nil, fmt.Errorf("failed to compile constraint '%s': %w", expr, issues.Err())
		}

		prg, err := env.Program(ast)
		if err != nil {
			return nil, fmt.Errorf("failed to create program for constraint '%s': %w", expr, err)
		}

		programs = append(programs, prg)
	}

	return &LaunchConstraints{
		exprs:    constraints,
		programs: programs,
		logger:   logger,
	}, nil
}

// Evaluate evaluates all compiled constraints against the launch request.
//
// Parameters:
//   - prompt, dir, project: The decoded and resolved request fields
//     (empty strings for unset optional fields)
//
// Returns:
//   - true if all constraints pass
//   - the expression of the first failing constraint, when one fails
//   - an error if evaluation itself fails or a result is not a boolean
func (lc *LaunchConstraints) Evaluate(prompt, dir, project string) (bool, string, error) {
	if lc == nil || len(lc.programs) == 0 {
		return true, "", nil
	}

	lc.logger.Debug("Evaluating %d launch constraints", len(lc.programs))

	args := map[string]interface{}{
		"prompt":  prompt,
		"dir":     dir,
		"project": project,
	}

	for i, prg := range lc.programs {
		val, _, err := prg.Eval(args)
		if err != nil {
			lc.logger.Error("Constraint #%d evaluation error: %v", i+1, err)
			return false, lc.exprs[i], fmt.Errorf("constraint evaluation error: %w", err)
		}

		boolVal, ok := val.Value().(bool)
		if !ok {
			return false, lc.exprs[i], fmt.Errorf("constraint '%s' did not evaluate to a boolean", lc.exprs[i])
		}

		if !boolVal {
			lc.logger.Info("Constraint #%d failed: %s", i+1, lc.exprs[i])
			return false, lc.exprs[i], nil
		}
	}

	lc.logger.Debug("All launch constraints passed")
	return true, "", nil
}
