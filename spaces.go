package tsgen

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
)

type SpacesService service

func (s *SpacesService) GetSpace(ctx context.Context) (*Space, error) {
	path := fmt.Sprintf(pathSpace, s.client.Options.SpaceID)
	data, err := s.client.get(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	space := &Space{}
	err = json.Unmarshal(data, space)
	if err != nil {
		return nil, wrapKind(ErrFetch, err)
	}
	return space, nil
}
