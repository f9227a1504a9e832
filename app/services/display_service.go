package services

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/lamargherita/go-storefront/app/models"
)

// DisplayService builds the human-readable cart summaries the UI
// renders: the line title with quantity and size, and the selections
// grouped under their banner titles with half-pizza annotations.
type DisplayService struct {
	catalog map[string]*models.Product
	rules   map[string]displayRule
}

// displayRule captures per-product display quirks as data instead of
// conditionals scattered across the formatter.
type displayRule struct {
	// pieceCountAsTitle rewrites "Wings (10 pcs)" style names to
	// "10 Wings" in the line title.
	pieceCountAsTitle bool
	// hideZeroPriceGroups drops groups whose every selection is free,
	// used for appetizers whose cook-level choices are noise in the
	// cart.
	hideZeroPriceGroups bool
}

var pcsPattern = regexp.MustCompile(`(?i)\(?(\d+)\s*(?:pcs|pieces|pc)\)?`)

func NewDisplayService(products []models.Product, rules map[string]displayRule) *DisplayService {
	catalog := make(map[string]*models.Product, len(products))
	for i := range products {
		catalog[products[i].ID] = &products[i]
	}
	if rules == nil {
		rules = DefaultDisplayRules()
	}
	return &DisplayService{catalog: catalog, rules: rules}
}

// DefaultDisplayRules is the storefront's per-product display table.
func DefaultDisplayRules() map[string]displayRule {
	return map[string]displayRule{
		"wg-buffalo-wings":   {pieceCountAsTitle: true},
		"wg-boneless-wings":  {pieceCountAsTitle: true},
		"ap-chicken-tenders": {hideZeroPriceGroups: true},
		"ap-mozz-sticks":     {hideZeroPriceGroups: true},
	}
}

// LineTitle renders "2 Margherita Pizza (Large)" style titles.
func (d *DisplayService) LineTitle(item *models.CartItem) string {
	name := item.ProductName
	rule := d.rules[item.ProductID]
	if rule.pieceCountAsTitle {
		if m := pcsPattern.FindStringSubmatch(name); m != nil {
			name = fmt.Sprintf("%s Wings", m[1])
		}
	}

	title := name
	if size := d.sizeLabel(item); size != "" {
		title = fmt.Sprintf("%s (%s)", title, size)
	}
	if item.Quantity > 1 {
		title = fmt.Sprintf("%d %s", item.Quantity, title)
	}
	return title
}

func (d *DisplayService) sizeLabel(item *models.CartItem) string {
	for _, sel := range item.Selections {
		if sel.Type == models.SelectionSize {
			return sel.Label
		}
	}
	return ""
}

// SelectionGroup is one display block: a banner title and its chosen
// options, annotated with half-pizza sides where relevant.
type SelectionGroup struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// GroupedSelections organizes an item's selections by group title,
// skipping the size selection (it already lives in the title) and any
// groups suppressed by the product's display rule.
func (d *DisplayService) GroupedSelections(item *models.CartItem) []SelectionGroup {
	rule := d.rules[item.ProductID]
	product := d.catalog[item.ProductID]

	grouped := make(map[string][]string)
	var order []string
	for _, sel := range item.Selections {
		if sel.Type == models.SelectionSize {
			continue
		}
		title := d.groupTitle(product, sel.GroupID)
		if rule.hideZeroPriceGroups && d.groupIsFree(product, sel.GroupID) {
			continue
		}
		if _, seen := grouped[title]; !seen {
			order = append(order, title)
		}
		grouped[title] = append(grouped[title], annotate(sel))
	}

	out := make([]SelectionGroup, 0, len(order))
	for _, title := range order {
		items := grouped[title]
		sort.Strings(items)
		out = append(out, SelectionGroup{Title: title, Items: items})
	}
	return out
}

func (d *DisplayService) groupTitle(product *models.Product, groupID string) string {
	if product != nil {
		if group := product.FindGroup(groupID); group != nil {
			return group.Title
		}
	}
	// Fallback: humanize the raw id.
	parts := strings.FieldsFunc(groupID, func(r rune) bool { return r == '-' || r == '_' })
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}

func (d *DisplayService) groupIsFree(product *models.Product, groupID string) bool {
	if product == nil {
		return false
	}
	group := product.FindGroup(groupID)
	if group == nil {
		return false
	}
	for _, opt := range group.Options {
		if !opt.Price.IsZero() {
			return false
		}
	}
	return true
}

func annotate(sel models.CartSelection) string {
	switch sel.Distribution.Normalize() {
	case models.DistributionLeft:
		return sel.Label + " (Left Half)"
	case models.DistributionRight:
		return sel.Label + " (Right Half)"
	}
	return sel.Label
}
