package dal

import (
	"context"

	"github.com/matzehuels/vosi/pkg/vosi"
)

// Tables returns the service's declared tables.
//
// The endpoint comes from the first capability whose standard id starts
// with [vosi.StandardIDTables]: each access URL of each of its interfaces is
// tried in order. Without such a capability, {base}/tables and then the
// sibling path are tried. An error fetching capabilities is returned as is.
func (s *Service) Tables(ctx context.Context) (*Tables, error) {
	return s.tables.Get(func() (*Tables, error) {
		c, err := s.tablesCandidates(ctx)
		if err != nil {
			return nil, err
		}
		body, u, err := c.open(ctx, s)
		if err != nil {
			return nil, err
		}
		defer body.Close()

		ts, err := vosi.ParseTables(body)
		if err != nil {
			return nil, err
		}
		return NewTables(ts, u, s.client), nil
	})
}

func (s *Service) tablesCandidates(ctx context.Context) (candidates, error) {
	caps, err := s.Capabilities(ctx)
	if err != nil {
		return candidates{}, err
	}
	if capa, ok := caps.FindByStandardID(vosi.StandardIDTables); ok {
		s.logger.Debug("tables endpoint declared in capabilities", "standard_id", capa.StandardID)
		return candidates{kind: "tables", urls: capa.AccessURLs()}, nil
	}
	return conventionCandidates(s.baseURL, "tables"), nil
}
