package dal

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/vosi/pkg/errors"
	"github.com/matzehuels/vosi/pkg/httputil"
	"github.com/matzehuels/vosi/pkg/lazy"
	"github.com/matzehuels/vosi/pkg/vosi"
)

// Service is a VOSI client for one service base URL.
//
// All methods are safe for concurrent use. The first call to Availability,
// Capabilities or Tables performs the fetch; concurrent callers wait for it.
type Service struct {
	baseURL string
	client  *httputil.Client
	logger  *log.Logger

	availability lazy.Cell[*vosi.Availability]
	capabilities lazy.Cell[*vosi.Capabilities]
	tables       lazy.Cell[*Tables]
}

// Option configures a Service.
type Option func(*Service)

// WithClient sets the HTTP client used for all requests.
func WithClient(c *httputil.Client) Option {
	return func(s *Service) {
		if c != nil {
			s.client = c
		}
	}
}

// WithLogger sets the logger that receives endpoint discovery details.
func WithLogger(l *log.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates a client for the service at baseURL, which must be an
// absolute http or https URL.
func NewService(baseURL string, opts ...Option) (*Service, error) {
	if err := errors.ValidateBaseURL(baseURL); err != nil {
		return nil, err
	}
	s := &Service{
		baseURL: baseURL,
		client:  httputil.DefaultClient(),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// BaseURL returns the service base URL.
func (s *Service) BaseURL() string { return s.baseURL }
