package dal

import (
	"context"
	"time"

	"github.com/matzehuels/vosi/pkg/errors"
	"github.com/matzehuels/vosi/pkg/httputil"
	"github.com/matzehuels/vosi/pkg/vosi"
)

// Availability returns the service availability document from
// {base}/availability. The document reports live state, so it bypasses the
// client's response cache. A transport failure is returned as a
// SERVICE_ERROR carrying the URL.
func (s *Service) Availability(ctx context.Context) (*vosi.Availability, error) {
	return s.availability.Get(func() (*vosi.Availability, error) {
		u := httputil.JoinURL(s.baseURL, "availability")
		body, err := s.client.OpenUncached(ctx, u)
		if err != nil {
			return nil, errors.ServiceError(err, u)
		}
		defer body.Close()
		return vosi.ParseAvailability(body)
	})
}

// Available reports whether the service declares itself available.
func (s *Service) Available(ctx context.Context) (bool, error) {
	a, err := s.Availability(ctx)
	if err != nil {
		return false, err
	}
	return a.Available, nil
}

// UpSince returns the time the service came up, or nil if not declared.
func (s *Service) UpSince(ctx context.Context) (*time.Time, error) {
	a, err := s.Availability(ctx)
	if err != nil {
		return nil, err
	}
	return a.UpSince, nil
}
