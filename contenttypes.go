package tsgen

import (
	"context"
	"net/url"
	"strconv"

	"github.com/goccy/go-json"
)

const pageLimit = 100

type ContentTypesService service

// Get fetches a single page of content types.
func (s *ContentTypesService) Get(ctx context.Context, query url.Values) (*ContentTypes, error) {
	path := s.client.environmentPath() + pathContentTypes
	data, err := s.client.get(ctx, path, query)
	if err != nil {
		return nil, err
	}

	res := &ContentTypes{}
	err = json.Unmarshal(data, res)
	if err != nil {
		return nil, wrapKind(ErrFetch, err)
	}
	return res, nil
}

// GetTypes pages through all content types of the space, raising skip until
// the accumulated count reaches total.
func (s *ContentTypesService) GetTypes(ctx context.Context) (*ContentTypes, error) {
	res := &ContentTypes{
		Items: make([]*ContentType, 0),
	}

	skip := 0
	for {
		query := url.Values{}
		query.Set("skip", strconv.Itoa(skip))
		query.Set("limit", strconv.Itoa(pageLimit))

		page, err := s.Get(ctx, query)
		if err != nil {
			return nil, err
		}

		res.Items = append(res.Items, page.Items...)
		res.Total = page.Total
		skip += len(page.Items)

		// an empty page would otherwise loop forever on an inconsistent total
		if skip >= page.Total || len(page.Items) == 0 {
			break
		}
	}

	res.Limit = len(res.Items)
	return res, nil
}
