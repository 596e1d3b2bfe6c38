package dal

import (
	"context"

	"github.com/matzehuels/vosi/pkg/vosi"
)

// Capabilities returns the service capabilities document. It tries
// {base}/capabilities, then the sibling path; the result records the URL
// that answered.
func (s *Service) Capabilities(ctx context.Context) (*vosi.Capabilities, error) {
	return s.capabilities.Get(func() (*vosi.Capabilities, error) {
		body, u, err := conventionCandidates(s.baseURL, "capabilities").open(ctx, s)
		if err != nil {
			return nil, err
		}
		defer body.Close()
		return vosi.ParseCapabilities(body, u)
	})
}
