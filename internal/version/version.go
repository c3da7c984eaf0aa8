// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version provides a single location to house the version information
// for the blinded address tooling.
package version

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// semanticAlphabet defines the allowed characters for the pre-release and build
// metadata portions of a semantic version string.
const semanticAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-."

// semverRE is a regular expression used to parse a semantic version string into
// its constituent parts.
var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
	`(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*` +
	`[a-zA-Z-][0-9a-zA-Z-]*))*))?(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)

var (
	// Version is the application version per the semantic versioning 2.0.0
	// spec (https://semver.org/).
	//
	// It may be overridden during the build process with:
	// '-ldflags "-X github.com/AkioNak/NElements/internal/version.Version=fullsemver"'
	//
	// It MUST be a full semantic version or the package will panic at runtime.
	Version = "0.1.0-pre"

	// These fields are the individual semantic version components parsed from
	// Version during init.
	Major         uint
	Minor         uint
	Patch         uint
	PreRelease    string
	BuildMetadata string
)

// semVer houses the components of a parsed semantic version string.
type semVer struct {
	major, minor, patch uint
	preRelease, build   string
}

// parseUint converts the passed string to an unsigned integer or returns an
// error if it is invalid.
func parseUint(s string, fieldName string) (uint, error) {
	val, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0, fmt.Errorf("malformed semver %s: %w", fieldName, err)
	}
	return uint(val), nil
}

// parseSemVer parses the semver components of the provided string.
func parseSemVer(s string) (*semVer, error) {
	m := semverRE.FindStringSubmatch(s)
	if m == nil {
		return nil, fmt.Errorf("malformed version string %q: does not "+
			"conform to semver specification", s)
	}

	var ver semVer
	var err error
	fields := []struct {
		dst  *uint
		name string
		val  string
	}{
		{&ver.major, "major", m[1]},
		{&ver.minor, "minor", m[2]},
		{&ver.patch, "patch", m[3]},
	}
	for _, f := range fields {
		if *f.dst, err = parseUint(f.val, f.name); err != nil {
			return nil, err
		}
	}
	ver.preRelease, ver.build = m[4], m[5]
	return &ver, nil
}

// NormalizeString returns the passed string stripped of all characters which
// are not valid in the pre-release and build metadata portions of a semantic
// version.
func NormalizeString(str string) string {
	var result strings.Builder
	for _, r := range str {
		if strings.ContainsRune(semanticAlphabet, r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// withCommit returns the version with the provided commit appended as build
// metadata when the version does not already carry any.
func withCommit(ver, commit string) string {
	commit = NormalizeString(commit)
	if commit == "" || strings.Contains(ver, "+") {
		return ver
	}
	return ver + "+" + commit
}

func init() {
	Version = withCommit(Version, vcsCommitID())
	ver, err := parseSemVer(Version)
	if err != nil {
		panic(err)
	}
	Major, Minor, Patch = ver.major, ver.minor, ver.patch
	PreRelease, BuildMetadata = ver.preRelease, ver.build
}

// String returns the application version as a properly formed string per the
// semantic versioning 2.0.0 spec (https://semver.org/).
func String() string {
	return Version
}
