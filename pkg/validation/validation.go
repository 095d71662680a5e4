// Package validation provides input validation for per-turn battle
// choices submitted over the websocket transport (§6). It ensures a
// submitted choice's parameters are well-formed before they reach
// pkg/battle, independent of the JSON decoding pkg/server already does.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// ChoiceParams is the subset of a submitted choice relevant to
// validation, mirroring server.ChoiceMessage without importing it (this
// package sits below pkg/server in the import graph).
type ChoiceParams struct {
	MoveIndex  int
	TargetSlot int
	SwitchTo   int
	ItemID     string
}

// InputValidator validates submitted choices by kind, enforcing a
// maximum request size and per-kind parameter checks.
type InputValidator struct {
	maxRequestSize int64
	validators     map[string]func(ChoiceParams) error
}

// NewInputValidator creates an InputValidator that rejects any request
// larger than maxRequestSize bytes.
func NewInputValidator(maxRequestSize int64) *InputValidator {
	v := &InputValidator{
		maxRequestSize: maxRequestSize,
		validators:     make(map[string]func(ChoiceParams) error),
	}
	v.registerValidators()
	return v
}

// ValidateChoice checks requestSize against the configured limit, then
// runs the kind-specific validation rules for params. An unregistered
// kind is an error here too, mirroring choiceKindFromString's closed set.
func (v *InputValidator) ValidateChoice(kind string, params ChoiceParams, requestSize int64) error {
	if requestSize > v.maxRequestSize {
		return fmt.Errorf("request size %d exceeds maximum allowed size %d", requestSize, v.maxRequestSize)
	}

	validator, exists := v.validators[kind]
	if !exists {
		return fmt.Errorf("unknown choice kind: %s", kind)
	}
	return validator(params)
}

func (v *InputValidator) registerValidators() {
	v.validators["move"] = validateMoveChoice
	v.validators["switch"] = validateSwitchChoice
	v.validators["item"] = validateItemChoice
	v.validators["escape"] = validateNoParams
	v.validators["forfeit"] = validateNoParams
	v.validators["pass"] = validateNoParams
}

// maxMoveSlots matches the four-move-slot limit every mon's moveset is
// built from (§3).
const maxMoveSlots = 4

func validateMoveChoice(p ChoiceParams) error {
	if p.MoveIndex < 0 || p.MoveIndex >= maxMoveSlots {
		return fmt.Errorf("moveIndex %d out of range [0,%d)", p.MoveIndex, maxMoveSlots)
	}
	if p.TargetSlot < 0 {
		return fmt.Errorf("targetSlot must be non-negative, got %d", p.TargetSlot)
	}
	return nil
}

func validateSwitchChoice(p ChoiceParams) error {
	if p.SwitchTo < 0 {
		return fmt.Errorf("switchTo must be non-negative, got %d", p.SwitchTo)
	}
	return nil
}

var identifierPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9\-_]{0,63}$`)

func validateItemChoice(p ChoiceParams) error {
	id := strings.TrimSpace(p.ItemID)
	if id == "" {
		return fmt.Errorf("item choice requires a non-empty itemId")
	}
	if !identifierPattern.MatchString(id) {
		return fmt.Errorf("itemId %q is not a valid canonical ID", p.ItemID)
	}
	if p.TargetSlot < 0 {
		return fmt.Errorf("targetSlot must be non-negative, got %d", p.TargetSlot)
	}
	return nil
}

func validateNoParams(ChoiceParams) error {
	return nil
}
