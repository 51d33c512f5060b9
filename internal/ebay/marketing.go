package ebay

import (
	"context"
	"net/url"
)

const campaignsPath = "/sell/marketing/v1/ad_campaign"

// ListCampaigns returns the seller's Promoted Listings campaigns.
func (c *SellClient) ListCampaigns(ctx context.Context, token string) (*CampaignsPage, error) {
	params := url.Values{}
	params.Set("limit", "100")

	var page CampaignsPage
	if err := c.getJSON(ctx, "campaigns", token, c.endpointURL(campaignsPath, params), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ListAds returns the ads in one campaign.
func (c *SellClient) ListAds(ctx context.Context, token, campaignID string) (*AdsPage, error) {
	params := url.Values{}
	params.Set("limit", "500")

	path := campaignsPath + "/" + url.PathEscape(campaignID) + "/ad"

	var page AdsPage
	if err := c.getJSON(ctx, "ads", token, c.endpointURL(path, params), &page); err != nil {
		return nil, err
	}
	return &page, nil
}
