package main

import "fmt"

// flagValue represents a flag name and its current value for validation.
type flagValue struct {
	name  string
	value string
}

// requireWith returns an error if dependent is set but required is not.
func requireWith(dependent, required flagValue) error {
	if dependent.value != "" && required.value == "" {
		return fmt.Errorf("%s requires %s", dependent.name, required.name)
	}
	return nil
}
