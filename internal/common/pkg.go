package common

import (
	"path"
	"strings"
	"unicode"
)

// UnknownStr is the String() result for out-of-range enum values.
const UnknownStr = "unknown"

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// SplitQualified splits "pkg/path.Name" into its package path and name.
// A name without a dot yields an empty package path.
func SplitQualified(ref string) (pkgPath, name string) {
	lastDot := strings.LastIndex(ref, ".")
	if lastDot < 0 {
		return "", ref
	}

	return ref[:lastDot], ref[lastDot+1:]
}

// SnakeCase converts an identifier like "LegacyClock" or "clock.IClock"
// into "legacy_clock" / "clock_i_clock".
func SnakeCase(s string) string {
	var sb strings.Builder

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == '.' || r == '/' || r == '-' || r == ' ':
			if sb.Len() > 0 && !strings.HasSuffix(sb.String(), "_") {
				sb.WriteByte('_')
			}
		case unicode.IsUpper(r):
			if i > 0 && sb.Len() > 0 && !strings.HasSuffix(sb.String(), "_") {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
					sb.WriteByte('_')
				}
			}

			sb.WriteRune(unicode.ToLower(r))
		default:
			sb.WriteRune(r)
		}
	}

	return strings.Trim(sb.String(), "_")
}
