package models

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationCode identifies one kind of selection-set violation.
type ValidationCode string

const (
	CodeMissingRequiredSelection ValidationCode = "missing_required_selection"
	CodeTooManySelections        ValidationCode = "too_many_selections"
	CodeUnknownOptionReference   ValidationCode = "unknown_option_reference"
	CodeInvalidDistribution      ValidationCode = "invalid_distribution"
	CodeConflictingDistribution  ValidationCode = "conflicting_distribution"
)

// ValidationError is one user-correctable problem with a selection set.
// The validator collects every problem instead of stopping at the first
// so the UI can surface them all at once.
type ValidationError struct {
	Code        ValidationCode `json:"code"`
	GroupID     string         `json:"group_id,omitempty"`
	SelectionID string         `json:"selection_id,omitempty"`
	OptionID    string         `json:"option_id,omitempty"`
	Max         int            `json:"max,omitempty"`
	Actual      int            `json:"actual,omitempty"`
}

func (e ValidationError) Error() string {
	switch e.Code {
	case CodeMissingRequiredSelection:
		return fmt.Sprintf("group %s requires a selection", e.GroupID)
	case CodeTooManySelections:
		return fmt.Sprintf("group %s allows at most %d selections, got %d", e.GroupID, e.Max, e.Actual)
	case CodeUnknownOptionReference:
		return fmt.Sprintf("selection %s does not match any option in group %s", e.SelectionID, e.GroupID)
	case CodeInvalidDistribution:
		return fmt.Sprintf("selection %s carries a half distribution on a non-divisible product", e.SelectionID)
	case CodeConflictingDistribution:
		return fmt.Sprintf("option %s mixes whole and half distributions", e.OptionID)
	}
	return string(e.Code)
}

func MissingRequiredSelection(groupID string) ValidationError {
	return ValidationError{Code: CodeMissingRequiredSelection, GroupID: groupID}
}

func TooManySelections(groupID string, max, actual int) ValidationError {
	return ValidationError{Code: CodeTooManySelections, GroupID: groupID, Max: max, Actual: actual}
}

func UnknownOptionReference(selectionID, groupID string) ValidationError {
	return ValidationError{Code: CodeUnknownOptionReference, SelectionID: selectionID, GroupID: groupID}
}

func InvalidDistribution(selectionID string) ValidationError {
	return ValidationError{Code: CodeInvalidDistribution, SelectionID: selectionID}
}

func ConflictingDistribution(optionID string) ValidationError {
	return ValidationError{Code: CodeConflictingDistribution, OptionID: optionID}
}

// ValidationErrors is the full list of problems found in one validation
// pass. It satisfies error so services can return it directly.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return strings.Join(msgs, "; ")
}

// HasCode reports whether any collected error carries the given code.
func (e ValidationErrors) HasCode(code ValidationCode) bool {
	for _, ve := range e {
		if ve.Code == code {
			return true
		}
	}
	return false
}

// ErrNoSuchItem is returned when an edit, duplicate or lookup names a
// cart item id that is not present.
var ErrNoSuchItem = errors.New("no such cart item")

// ErrPreconditionViolation marks a programmer error: the price
// calculator was handed a selection set that never passed validation.
var ErrPreconditionViolation = errors.New("selections were not validated")

// ErrProductNotFound is returned when a cart operation references a
// product id the catalog does not carry.
var ErrProductNotFound = errors.New("product not found")

// ErrInvalidQuantity is returned for quantities below one.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// NoSuchItem wraps ErrNoSuchItem with the offending id.
func NoSuchItem(itemID string) error {
	return fmt.Errorf("%w: %s", ErrNoSuchItem, itemID)
}
