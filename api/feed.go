package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/areahq/areactl/model"
)

// FeedService browses the public workflow feed.
type FeedService struct {
	client *Client
}

func NewFeedService(client *Client) *FeedService {
	return &FeedService{client: client}
}

type FeedQuery struct {
	Skip   int
	Limit  int
	Search string
}

func (s *FeedService) Workflows(ctx context.Context, query FeedQuery) ([]model.FeedItem, error) {
	params := url.Values{}
	if query.Skip > 0 {
		params.Set("skip", strconv.Itoa(query.Skip))
	}
	if query.Limit > 0 {
		params.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.Search != "" {
		params.Set("search", query.Search)
	}
	path := "/feed/workflows"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}
	var items []model.FeedItem
	if err := s.client.do(ctx, "GET", path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}
