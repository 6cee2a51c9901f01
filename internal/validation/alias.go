package validation

import (
	"regexp"
	"strings"
)

var aliasPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Path segments that a custom alias must not shadow.
var reservedAliases = map[string]bool{
	"api":       true,
	"health":    true,
	"metrics":   true,
	"debug":     true,
	"login":     true,
	"logout":    true,
	"admin":     true,
	"static":    true,
	"assets":    true,
	"public":    true,
	"analytics": true,
	"index":     true,
	"favicon":   true,
	"robots":    true,
}

func IsValidAlias(alias string) bool {
	return aliasPattern.MatchString(alias)
}

func IsReservedAlias(alias string) bool {
	return reservedAliases[strings.ToLower(alias)]
}
