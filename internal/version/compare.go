package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rxtech-lab/argo-market-strategy/pkg/errors"
)

// CheckCompatibility checks that the binary version satisfies the constraint a
// schedule file declares. Returns nil if compatible, error with details if not.
//
// Rules:
//   - An empty constraint accepts every version
//   - A "main" binary (development build) skips the check
//   - Otherwise the constraint uses Masterminds/semver syntax
//
// Examples:
//   - Constraint ">= 1.0.0", binary 1.2.0 -> OK
//   - Constraint "~1.2", binary 1.2.7 -> OK
//   - Constraint "^2", binary 1.9.0 -> ERROR
//   - Constraint ">= 1.0.0", binary main -> OK (dev build, skip check)
func CheckCompatibility(constraint, binaryVersion string) error {
	constraint = strings.TrimSpace(constraint)
	if constraint == "" {
		return nil
	}

	// Parse constraint first so typos surface even on dev builds
	constraints, err := semver.NewConstraint(constraint)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid version constraint '%s'", constraint)
	}

	binaryVersion = strings.TrimPrefix(binaryVersion, "v")
	if binaryVersion == "main" {
		return nil
	}

	binarySemver, err := semver.NewVersion(binaryVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid binary version '%s'", binaryVersion)
	}

	if ok, reasons := constraints.Validate(binarySemver); !ok {
		messages := make([]string, len(reasons))
		for i, reason := range reasons {
			messages[i] = reason.Error()
		}

		return errors.Newf(errors.ErrCodeInvalidVersion,
			"binary version %s does not satisfy schedule constraint '%s': %s",
			binarySemver, constraint, strings.Join(messages, "; "))
	}

	return nil
}
