// Package logging builds the structured slog loggers used by the morpher and its Fx integration.
// Output is JSON by default, text on request.
package logging
