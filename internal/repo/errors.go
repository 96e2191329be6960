package repo

import "fmt"

// ConfigReadError reports a metadata file that exists but could not be read.
type ConfigReadError struct {
	// Name is the path relative to the project directory, e.g. ".git/config".
	Name string
	Path string
	Err  error
}

func (e *ConfigReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Name, e.Err)
}

func (e *ConfigReadError) Unwrap() error {
	return e.Err
}

// JSONParseError reports a project metadata file that is not valid JSON
// or has fields of the wrong type.
type JSONParseError struct {
	Name string
	Path string
	Err  error
}

func (e *JSONParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Name, e.Err)
}

func (e *JSONParseError) Unwrap() error {
	return e.Err
}
