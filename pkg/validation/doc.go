// Package validation provides input validation for per-turn battle
// choices submitted over the websocket transport (§6).
//
// This package ensures a submitted choice's parameters are sanitized and
// in range before they reach pkg/battle, independent of the JSON
// decoding pkg/server already does.
//
// # Creating a Validator
//
// Create an InputValidator with a maximum request size limit:
//
//	validator := validation.NewInputValidator(4 * 1024) // 4KB limit
//
// # Validating Choices
//
// Validate a submitted choice before building a battle.Choice from it:
//
//	err := validator.ValidateChoice(kind, params, requestSize)
//	if err != nil {
//	    return fmt.Errorf("invalid choice: %w", err)
//	}
//
// # Supported Kinds
//
// The validator includes rules for every choice kind the transport
// accepts: move, switch, item, escape, forfeit, pass.
//
// # Validation Rules
//
//   - move: moveIndex must fall within the four-slot range, targetSlot
//     must be non-negative.
//   - switch: switchTo must be non-negative.
//   - item: itemId must be a non-empty canonical ID (lowercase,
//     alphanumeric, hyphen/underscore), targetSlot non-negative.
//   - escape/forfeit/pass: no parameters required.
//
// # Security Features
//
//   - Request size enforcement prevents DoS via oversized payloads.
//   - Range validation rejects out-of-bounds slot/index values before
//     they reach pkg/battle's handle resolution.
package validation
