package inventory

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/bullion-desk/internal/ebay"
	"github.com/donaldgifford/bullion-desk/internal/metrics"
	domain "github.com/donaldgifford/bullion-desk/pkg/types"
)

// outcome records how one source fared. A skipped source was never called
// because the call it depends on failed.
type outcome struct {
	status  int
	count   int
	err     error
	skipped bool
}

func newOutcome(err error, count int) outcome {
	return outcome{status: ebay.StatusCode(err), count: count, err: err}
}

type inventoryPart struct {
	listings []domain.Listing
	offers   outcome
	inv      outcome
}

type marketingPart struct {
	listings  []domain.Listing
	campaigns outcome
	ads       outcome
}

// Listings fetches every source concurrently and merges the results. Only
// an unauthorized inventory call is returned as an error; every other
// failure degrades to an empty contribution recorded in Errors and
// APIStatus.
func (a *Aggregator) Listings(ctx context.Context, token string) (*ListingsResult, error) {
	start := time.Now()
	defer func() {
		metrics.AggregationDuration.WithLabelValues("listings").Observe(time.Since(start).Seconds())
	}()

	var (
		g         errgroup.Group
		username  string
		identity  outcome
		inv       inventoryPart
		mkt       marketingPart
		traffic   []domain.Listing
		analytics outcome
		orders    []domain.Order
		fulfill   outcome
	)

	g.Go(func() error {
		user, err := a.api.GetUser(ctx, token)
		if err == nil {
			username = user.Username
		}
		identity = newOutcome(err, 0)
		return nil
	})

	g.Go(func() error {
		inv = a.fetchInventory(ctx, token)
		return nil
	})

	g.Go(func() error {
		mkt = a.fetchMarketing(ctx, token)
		return nil
	})

	g.Go(func() error {
		to := a.nowFunc()
		report, err := a.api.GetTrafficReport(ctx, token, to.Add(-ebay.TrafficWindow), to)
		if err == nil {
			traffic = ebay.TrafficListings(report)
		}
		analytics = newOutcome(err, len(traffic))
		return nil
	})

	g.Go(func() error {
		page, err := a.api.ListOrders(ctx, token, a.orderLimit)
		if err == nil {
			orders = ebay.ToOrders(page.Orders)
		}
		fulfill = newOutcome(err, len(orders))
		return nil
	})

	// Every goroutine above reports through its outcome.
	_ = g.Wait() //nolint:errcheck // goroutines never return errors

	if ebay.IsUnauthorized(inv.inv.err) {
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, inv.inv.err)
	}

	res := &ListingsResult{
		Username:  username,
		Raw:       make(map[string]int),
		Errors:    make(map[string]string),
		APIStatus: make(map[string]int),
	}

	for name, o := range map[string]outcome{
		SourceIdentity:    identity,
		SourceInventory:   inv.inv,
		SourceOffers:      inv.offers,
		SourceCampaigns:   mkt.campaigns,
		SourceAds:         mkt.ads,
		SourceAnalytics:   analytics,
		SourceFulfillment: fulfill,
	} {
		if o.skipped {
			continue
		}
		res.APIStatus[name] = o.status
		res.Raw[name] = o.count
		if o.err != nil {
			res.Errors[name] = o.err.Error()
			metrics.AggregationSourceFailuresTotal.WithLabelValues(name).Inc()
			a.log.Warn("listing source failed", "source", name, "status", o.status, "error", o.err)
		}
	}

	res.Listings = MergeListings(inv.listings, traffic, mkt.listings)

	active := make(map[string]bool, len(res.Listings))
	for i := range res.Listings {
		active[res.Listings[i].ID] = true
	}
	res.SoldItems = ebay.SoldFromOrders(orders, active)
	res.RecentOrders = orders

	return res, nil
}

// fetchInventory walks inventory pages and resolves each SKU's offers with
// bounded concurrency. Items whose offers are fetched but unpublished are
// keyed by SKU; items whose offer lookup fails are left out.
func (a *Aggregator) fetchInventory(ctx context.Context, token string) inventoryPart {
	var part inventoryPart

	page, err := a.paginator.Paginate(ctx, token)
	if err != nil {
		part.inv = newOutcome(err, 0)
		part.offers = outcome{skipped: true}
		return part
	}
	part.inv = newOutcome(nil, len(page.Items))

	items := page.Items
	if len(items) > a.maxOfferLookups {
		a.log.Warn("offer lookups capped", "skus", len(items), "max", a.maxOfferLookups)
		items = items[:a.maxOfferLookups]
	}

	perItem := make([][]domain.Listing, len(items))

	var (
		mu       sync.Mutex
		firstErr error
		offers   int
	)

	g := new(errgroup.Group)
	g.SetLimit(a.offerConcurrency)
	for i := range items {
		item := &items[i]
		g.Go(func() error {
			resp, err := a.api.ListOffers(ctx, token, item.SKU)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("sku %s: %w", item.SKU, err)
				}
				mu.Unlock()
				return nil
			}

			var out []domain.Listing
			for j := range resp.Offers {
				if l, ok := ebay.OfferToListing(item, &resp.Offers[j]); ok {
					out = append(out, l)
				}
			}
			if len(out) == 0 {
				out = append(out, ebay.UnpublishedListing(item))
			}
			perItem[i] = out

			mu.Lock()
			offers += len(resp.Offers)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // goroutines never return errors

	for _, ls := range perItem {
		part.listings = append(part.listings, ls...)
	}
	part.offers = newOutcome(firstErr, offers)
	if firstErr == nil && len(items) < len(page.Items) {
		part.offers = outcome{
			status: http.StatusOK,
			count:  offers,
			err:    fmt.Errorf("offer lookups capped at %d of %d SKUs", len(items), len(page.Items)),
		}
	}
	return part
}

// fetchMarketing lists campaigns and then the ads in each one.
func (a *Aggregator) fetchMarketing(ctx context.Context, token string) marketingPart {
	var part marketingPart

	campaigns, err := a.api.ListCampaigns(ctx, token)
	if err != nil {
		part.campaigns = newOutcome(err, 0)
		part.ads = outcome{skipped: true}
		return part
	}
	part.campaigns = newOutcome(nil, len(campaigns.Campaigns))

	var adsErr error
	adCount := 0
	for i := range campaigns.Campaigns {
		ads, err := a.api.ListAds(ctx, token, campaigns.Campaigns[i].CampaignID)
		if err != nil {
			if adsErr == nil {
				adsErr = fmt.Errorf("campaign %s: %w", campaigns.Campaigns[i].CampaignID, err)
			}
			continue
		}
		adCount += len(ads.Ads)
		for j := range ads.Ads {
			if l, ok := ebay.AdListing(&ads.Ads[j]); ok {
				part.listings = append(part.listings, l)
			}
		}
	}
	part.ads = newOutcome(adsErr, adCount)
	return part
}

// MergeListings deduplicates by ID across sources given in precedence
// order. The first occurrence keeps its source; later occurrences only fill
// an empty title.
func MergeListings(sources ...[]domain.Listing) []domain.Listing {
	var merged []domain.Listing
	index := make(map[string]int)

	for _, src := range sources {
		for _, l := range src {
			if l.ID == "" {
				continue
			}
			if i, ok := index[l.ID]; ok {
				if merged[i].Title == "" {
					merged[i].Title = l.Title
				}
				continue
			}
			index[l.ID] = len(merged)
			merged = append(merged, l)
		}
	}
	return merged
}
