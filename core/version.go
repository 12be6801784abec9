package core

import (
	_ "embed"
	"fmt"
	"strings"

	version "github.com/hashicorp/go-version"
)

//go:embed version
var generatorVersion string

func GeneratorVersion() string {
	return strings.TrimSpace(generatorVersion)
}

// CheckRequiredVersion fails with VersionMismatchError when the running
// generator does not satisfy constraint (e.g. ">= 0.2, < 1.0").
// An empty constraint always passes.
func CheckRequiredVersion(constraint string) error {
	if strings.TrimSpace(constraint) == "" {
		return nil
	}
	constraints, err := version.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("invalid required_version %q: %w", constraint, err)
	}
	current, err := version.NewVersion(GeneratorVersion())
	if err != nil {
		return fmt.Errorf("invalid generator version %q: %w", GeneratorVersion(), err)
	}
	if !constraints.Check(current) {
		return &VersionMismatchError{Required: constraint, Current: current.String()}
	}
	return nil
}
