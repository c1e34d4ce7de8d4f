package handlers

import "fmt"

func errMissingParam(name string) error {
	return fmt.Errorf("missing required parameter %q", name)
}

func errBadParam(name, hint string) error {
	return fmt.Errorf("invalid parameter %q: %s", name, hint)
}
