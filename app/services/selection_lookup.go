package services

import (
	"fmt"

	"github.com/lamargherita/go-storefront/app/models"
)

// SelectionLookup resolves raw option references coming from the UI
// into fully labelled CartSelections, using the product's own option
// groups as the canonical source so labels always match what the
// shopper saw. It is built per product and owned by whoever constructs
// it; nothing is registered at package scope.
type SelectionLookup struct {
	byOptionID map[string]selectionMeta
}

type selectionMeta struct {
	label   string
	groupID string
	typ     models.SelectionType
}

// NewSelectionLookup indexes every option of the product.
func NewSelectionLookup(product *models.Product) *SelectionLookup {
	lookup := &SelectionLookup{byOptionID: make(map[string]selectionMeta)}
	for _, group := range product.OptionGroups {
		for _, opt := range group.Options {
			lookup.byOptionID[lookupKey(group.ID, opt.ID)] = selectionMeta{
				label:   opt.Name,
				groupID: group.ID,
				typ:     group.Type,
			}
		}
	}
	return lookup
}

func lookupKey(groupID, optionID string) string {
	return groupID + "/" + optionID
}

// Resolve builds a CartSelection for the referenced option. The
// distribution is only honored for types that can be halved; callers
// get an error rather than a silently re-tagged selection.
func (l *SelectionLookup) Resolve(groupID, optionID string, dist models.Distribution) (models.CartSelection, error) {
	meta, ok := l.byOptionID[lookupKey(groupID, optionID)]
	if !ok {
		// Let the validator report it with full context; the handler
		// still needs a typed selection to hand over.
		return models.NewSelection(models.SelectionOther, optionID, optionID, groupID), nil
	}
	if dist.Normalize().IsHalf() {
		sel, err := models.NewHalfSelection(meta.typ, optionID, meta.label, meta.groupID, dist)
		if err != nil {
			return models.CartSelection{}, fmt.Errorf("option %s: %w", optionID, err)
		}
		return sel, nil
	}
	return models.NewSelection(meta.typ, optionID, meta.label, meta.groupID), nil
}
