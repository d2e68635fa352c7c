package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a major.minor.patch interpreter version. Pre-release suffixes
// such as "3.13.0rc1" are dropped when parsing.
type Version struct {
	Major int
	Minor int
	Patch int
}

func ParseVersion(raw string) (Version, error) {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, "Python ")
	if trimmed == "" {
		return Version{}, fmt.Errorf("parse version: empty input")
	}

	parts := strings.SplitN(trimmed, ".", 3)
	numbers := make([]int, 3)
	for i, part := range parts {
		digits := leadingDigits(part)
		if digits == "" {
			return Version{}, fmt.Errorf("parse version %q: invalid component %q", raw, part)
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			return Version{}, fmt.Errorf("parse version %q: %w", raw, err)
		}
		numbers[i] = n
	}

	return Version{Major: numbers[0], Minor: numbers[1], Patch: numbers[2]}, nil
}

func (v Version) Less(other Version) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	if v.Minor != other.Minor {
		return v.Minor < other.Minor
	}
	return v.Patch < other.Patch
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// MajorMinor renders the version the way minimum requirements are written.
func (v Version) MajorMinor() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

func leadingDigits(s string) string {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}
