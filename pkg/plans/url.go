package plans

import (
	"regexp"

	"github.com/theapemachine/yamap-mcp/pkg/errors"
)

const (
	planShape     = "https://<host>/plans/code/<code>"
	printingShape = "https://<host>/plans/code/<code>/printing"
)

var (
	planURL     = regexp.MustCompile(`^https://[^/]+/plans/code/[^/]+$`)
	printingURL = regexp.MustCompile(`^(https://[^/]+/plans/code/[^/]+)/printing$`)
)

/*
Normalize returns the canonical plan URL for raw. A plan URL is returned
unchanged, a printing URL has its /printing suffix removed, and anything
else fails with an error matching errors.ErrInvalidURLFormat.
*/
func Normalize(raw string) (string, error) {
	if planURL.MatchString(raw) {
		return raw, nil
	}

	if m := printingURL.FindStringSubmatch(raw); m != nil {
		return m[1], nil
	}

	return "", errors.NewInvalidURLFormatError(raw, planShape, printingShape)
}
