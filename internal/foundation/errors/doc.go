// Package errors provides the classified error primitives used across ftsite.
//
// Errors carry a category (config, validation, filesystem, render...), a
// severity and a structured context. The CLI adapter maps categories to exit
// codes and slog levels.
//
//	err := errors.ValidationError("invalid site configuration").
//		WithContext("violations", msgs).
//		Build()
package errors
