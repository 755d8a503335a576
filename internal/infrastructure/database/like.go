package database

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes the LIKE wildcards in s so it matches literally.
// Postgres and MySQL both treat backslash as the default escape character.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// Contains returns a LIKE pattern matching values that contain s.
func Contains(s string) string {
	return "%" + EscapeLike(s) + "%"
}

// StartsWith returns a LIKE pattern matching values that start with s.
func StartsWith(s string) string {
	return EscapeLike(s) + "%"
}

// EndsWith returns a LIKE pattern matching values that end with s.
func EndsWith(s string) string {
	return "%" + EscapeLike(s)
}
