package adapter

import (
	"fmt"
	"strings"
)

// ATURI is a parsed at:// record URI: at://<authority>/<collection>/<rkey>.
type ATURI struct {
	Authority  string
	Collection string
	RKey       string
}

// ParseATURI splits an at:// URI into its authority, collection, and record
// key. Returns an error when any component is missing.
func ParseATURI(raw string) (ATURI, error) {
	rest, ok := strings.CutPrefix(raw, "at://")
	if !ok {
		return ATURI{}, fmt.Errorf("not an at:// uri: %q", raw)
	}

	parts := strings.Split(rest, "/")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return ATURI{}, fmt.Errorf("malformed at:// uri: %q", raw)
	}

	return ATURI{Authority: parts[0], Collection: parts[1], RKey: parts[2]}, nil
}

// String reassembles the canonical at:// form.
func (u ATURI) String() string {
	return "at://" + u.Authority + "/" + u.Collection + "/" + u.RKey
}
