package ebay

import (
	"strconv"

	domain "github.com/donaldgifford/bullion-desk/pkg/types"
)

// StatusUnpublished marks an inventory item that has no live offer.
const StatusUnpublished = "UNPUBLISHED"

func toSoldItem(item *findingItem) domain.SoldItem {
	price := first(first(item.SellingStatus).CurrentPrice)
	seller := first(item.SellerInfo)

	s := domain.SoldItem{
		ID:         first(item.ItemID),
		Title:      first(item.Title),
		Currency:   price.CurrencyID,
		SoldDate:   first(first(item.ListingInfo).EndTime),
		Condition:  first(first(item.Condition).ConditionDisplayName),
		SellerName: first(seller.SellerUserName),
		URL:        first(item.ViewItemURL),
		Source:     domain.SoldFromCompletedSearch,
	}

	if p, err := strconv.ParseFloat(price.Value, 64); err == nil {
		s.Price = p
	}
	if fb, err := strconv.Atoi(first(seller.FeedbackScore)); err == nil {
		s.SellerFeedback = fb
	}
	if pct, err := strconv.ParseFloat(first(seller.PositiveFeedbackPercent), 64); err == nil {
		s.SellerFeedbackPct = pct
	}

	return s
}

// OfferToListing converts a published offer into a listing keyed by its
// listing id. It reports false for offers that were never published.
func OfferToListing(item *InventoryItem, offer *Offer) (domain.Listing, bool) {
	if offer.Listing == nil || offer.Listing.ListingID == "" {
		return domain.Listing{}, false
	}

	status := offer.Listing.ListingStatus
	if status == "" {
		status = offer.Status
	}

	qty := offer.AvailableQuantity
	if qty == 0 && item != nil {
		qty = item.Availability.ShipToLocationAvailability.Quantity
	}

	l := domain.Listing{
		ID:       offer.Listing.ListingID,
		Price:    offer.PricingSummary.Price.Float(),
		Currency: offer.PricingSummary.Price.Currency,
		Status:   status,
		Quantity: qty,
		SKU:      offer.SKU,
		Source:   domain.SourceInventoryAPI,
	}
	if item != nil {
		l.Title = item.Product.Title
		if l.SKU == "" {
			l.SKU = item.SKU
		}
	}
	return l, true
}

// UnpublishedListing converts an inventory item without a live offer into a
// listing keyed by its SKU.
func UnpublishedListing(item *InventoryItem) domain.Listing {
	return domain.Listing{
		ID:       item.SKU,
		Title:    item.Product.Title,
		Status:   StatusUnpublished,
		Quantity: item.Availability.ShipToLocationAvailability.Quantity,
		SKU:      item.SKU,
		Source:   domain.SourceInventoryAPI,
	}
}

// TrafficListings converts a traffic report into listings. The report
// carries no price, so Price is zero and Status is ACTIVE.
func TrafficListings(report *TrafficReport) []domain.Listing {
	titles := report.ListingTitles()
	ids := report.ListingIDs()

	listings := make([]domain.Listing, 0, len(ids))
	for _, id := range ids {
		listings = append(listings, domain.Listing{
			ID:     id,
			Title:  titles[id],
			Status: "ACTIVE",
			Source: domain.SourceAnalytics,
		})
	}
	return listings
}

// AdListing converts a promoted-listing ad into a listing.
func AdListing(ad *Ad) (domain.Listing, bool) {
	if ad.ListingID == "" {
		return domain.Listing{}, false
	}
	return domain.Listing{
		ID:     ad.ListingID,
		Status: ad.AdStatus,
		Source: domain.SourceMarketing,
	}, true
}

// ToOrders converts fulfillment orders into domain orders.
func ToOrders(orders []FulfillmentOrder) []domain.Order {
	out := make([]domain.Order, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		order := domain.Order{
			ID:           o.OrderID,
			CreationDate: o.CreationDate,
			Total:        o.PricingSummary.Total.Float(),
			Currency:     o.PricingSummary.Total.Currency,
			Status:       o.OrderFulfillmentStatus,
			LineItems:    make([]domain.LineItem, 0, len(o.LineItems)),
		}
		for j := range o.LineItems {
			li := &o.LineItems[j]
			order.LineItems = append(order.LineItems, domain.LineItem{
				ID:           li.LineItemID,
				LegacyItemID: li.LegacyItemID,
				Title:        li.Title,
				SKU:          li.SKU,
				Quantity:     li.Quantity,
				Price:        li.LineItemCost.Float(),
			})
		}
		out = append(out, order)
	}
	return out
}

// SoldFromOrders derives sold items from order line items whose legacy item
// id is not in active. Each line item yields at most one sold item.
func SoldFromOrders(orders []domain.Order, active map[string]bool) []domain.SoldItem {
	var sold []domain.SoldItem
	seen := make(map[string]bool)
	for i := range orders {
		o := &orders[i]
		for j := range o.LineItems {
			li := &o.LineItems[j]
			id := li.LegacyItemID
			if id == "" {
				id = li.ID
			}
			key := o.ID + "/" + li.ID
			if active[li.LegacyItemID] || seen[key] {
				continue
			}
			seen[key] = true
			sold = append(sold, domain.SoldItem{
				ID:       id,
				Title:    li.Title,
				Price:    li.Price,
				Currency: o.Currency,
				SoldDate: o.CreationDate,
				Source:   domain.SoldFromFulfillment,
			})
		}
	}
	return sold
}
