package cli

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rkaminsk/trigger/pkg/gitutil"
	"github.com/rkaminsk/trigger/pkg/logger"
)

var validatorsLog = logger.New("cli:validators")

// refRegex accepts the subset of git ref names the release command expects:
// tags like v1.2.0, branch names including slashes, and commit SHAs.
var refRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._/+-]*$`)

// ValidateRef checks that a release ref names a plausible git tag, branch,
// or commit. The API rejects bad refs anyway, but catching them here avoids
// dispatching the pip pipeline and then failing the conda one.
func ValidateRef(ref string) error {
	validatorsLog.Printf("validating release ref: %s", ref)
	if ref == "" {
		return errors.New("release ref cannot be empty")
	}
	if strings.Contains(ref, "..") {
		return fmt.Errorf("release ref %q must not contain '..'", ref)
	}
	if strings.HasSuffix(ref, "/") || strings.HasSuffix(ref, ".lock") {
		return fmt.Errorf("release ref %q has an invalid suffix", ref)
	}
	if !refRegex.MatchString(ref) {
		return fmt.Errorf("release ref %q contains invalid characters", ref)
	}
	return nil
}

// refKind classifies a ref for display purposes. A full or abbreviated hex
// string is reported as a commit, anything else as a tag or branch.
func refKind(ref string) string {
	if len(ref) >= 7 && gitutil.IsHexString(ref) {
		return "commit"
	}
	return "tag or branch"
}
