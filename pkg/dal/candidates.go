package dal

import (
	"context"
	"io"

	"github.com/matzehuels/vosi/pkg/errors"
	"github.com/matzehuels/vosi/pkg/httputil"
	"github.com/matzehuels/vosi/pkg/observability"
)

// candidates is an ordered list of endpoint URLs for one document kind.
type candidates struct {
	kind string
	urls []string
}

// conventionCandidates returns {base}/segment followed by the sibling path.
func conventionCandidates(base, segment string) candidates {
	return candidates{
		kind: segment,
		urls: []string{
			httputil.JoinURL(base, segment),
			httputil.SiblingURL(base, segment),
		},
	}
}

// open requests each URL in order and returns the body of the first one
// that answers with a 2xx status, together with that URL. Failures are
// logged and skipped. If every URL fails the error is NO_ENDPOINT.
func (c candidates) open(ctx context.Context, s *Service) (io.ReadCloser, string, error) {
	hooks := observability.Endpoint()
	for i, u := range c.urls {
		body, err := s.client.Open(ctx, u)
		if err != nil {
			if ctx.Err() != nil {
				return nil, "", ctx.Err()
			}
			s.logger.Debug("endpoint candidate failed", "kind", c.kind, "url", u, "err", err)
			hooks.OnFallback(ctx, c.kind, u, err)
			continue
		}
		s.logger.Debug("endpoint resolved", "kind", c.kind, "url", u)
		hooks.OnResolved(ctx, c.kind, u, i+1)
		return body, u, nil
	}
	hooks.OnExhausted(ctx, c.kind, len(c.urls))
	return nil, "", errors.New(errors.ErrCodeNoEndpoint, "no working %s endpoint", c.kind)
}
