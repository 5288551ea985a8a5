package usecase

import (
	"fmt"

	"github.com/flysnipe/flysnipe/internal/domain"
)

// FreeTierPreviewSize is the number of offers a free user may see.
const FreeTierPreviewSize = 3

// TierView is the part of a page a user is allowed to see.
type TierView struct {
	// Visible holds the offers to display
	Visible []domain.Offer

	// Hidden is the number of filtered offers withheld from a free user
	Hidden int

	// Premium is true when nothing was withheld because of the tier
	Premium bool
}

// UpsellMessage returns the teaser shown to free users, or "" when nothing is hidden.
func (v TierView) UpsellMessage() string {
	if v.Premium || v.Hidden <= 0 {
		return ""
	}
	return fmt.Sprintf("+%d more flights available with Premium", v.Hidden)
}

// PreviewForTier trims a page to what the entitlement allows.
// Premium users see the page unchanged. Free users see at most
// FreeTierPreviewSize offers and a count of the rest of the filtered set.
func PreviewForTier(page domain.Page, ent domain.Entitlement) TierView {
	if ent.IsPremium {
		return TierView{Visible: page.Items, Premium: true}
	}

	visible := page.Items
	if len(visible) > FreeTierPreviewSize {
		visible = visible[:FreeTierPreviewSize]
	}

	return TierView{
		Visible: visible,
		Hidden:  page.Total - len(visible),
	}
}
