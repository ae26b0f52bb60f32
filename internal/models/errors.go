package models

import "errors"

var (
	// ErrUnsupportedLanguage is returned when an operation has no behavior
	// for the requested language (creating or running an unknown file type).
	ErrUnsupportedLanguage = errors.New("unsupported file type")

	// ErrInjectionUnsupported is returned by the injector factory for
	// languages without an injection strategy. Callers report it as a
	// diagnostic rather than failing.
	ErrInjectionUnsupported = errors.New("dependency injection is not supported for this language")

	// ErrMalformedManifest is returned when an existing manifest lacks the
	// [dependencies] section header.
	ErrMalformedManifest = errors.New("malformed manifest: missing [dependencies] section header")

	// ErrEmptyDependency is returned when a blank dependency name is injected.
	ErrEmptyDependency = errors.New("dependency name cannot be empty")
)
