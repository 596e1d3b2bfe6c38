package dal

import (
	"context"
	"iter"

	"github.com/matzehuels/vosi/pkg/errors"
	"github.com/matzehuels/vosi/pkg/httputil"
	"github.com/matzehuels/vosi/pkg/lazy"
	"github.com/matzehuels/vosi/pkg/vosi"
)

// Tables is a read-only view of a service's declared tables, keyed by name.
//
// Declared summaries that lack both columns and foreign keys are completed
// on first lookup by fetching {endpoint}/{name}. Completed tables are kept
// for the life of the Tables value.
type Tables struct {
	set      *vosi.TableSet
	endpoint string
	client   *httputil.Client
	cache    lazy.Map[string, *vosi.Table]
}

var _ lazy.Collection[*vosi.Table] = (*Tables)(nil)

// NewTables wraps a parsed table set fetched from endpoint. A nil client
// uses [httputil.DefaultClient].
func NewTables(set *vosi.TableSet, endpoint string, client *httputil.Client) *Tables {
	if client == nil {
		client = httputil.DefaultClient()
	}
	return &Tables{set: set, endpoint: endpoint, client: client}
}

// EndpointURL returns the URL the table set was fetched from.
func (t *Tables) EndpointURL() string { return t.endpoint }

// TableSet returns the declared table set.
func (t *Tables) TableSet() *vosi.TableSet { return t.set }

// Len returns the number of declared tables. It does not change as tables
// are completed.
func (t *Tables) Len() int { return t.set.Len() }

// Lookup returns the table called name. Unknown names fail with
// TABLE_NOT_FOUND; a failed fetch fails with SERVICE_ERROR and is retried on
// the next lookup.
func (t *Tables) Lookup(ctx context.Context, name string) (*vosi.Table, error) {
	summary, ok := t.set.Table(name)
	if !ok {
		return nil, errors.New(errors.ErrCodeTableNotFound, "no table named %q", name)
	}
	return t.cache.Get(name, func() (*vosi.Table, error) {
		if !summary.IsShallow() {
			return summary, nil
		}
		return t.fetch(ctx, name)
	})
}

// Loaded reports whether name has been looked up successfully. It does not
// wait for a lookup in progress.
func (t *Tables) Loaded(name string) bool {
	_, ok := t.cache.Peek(name)
	return ok
}

// LoadedCount returns how many tables have been looked up successfully.
func (t *Tables) LoadedCount() int { return t.cache.Len() }

func (t *Tables) fetch(ctx context.Context, name string) (*vosi.Table, error) {
	u := httputil.JoinURL(t.endpoint, name)
	body, err := t.client.Open(ctx, u)
	if err != nil {
		return nil, errors.ServiceError(err, u)
	}
	defer body.Close()
	return vosi.ParseTable(body)
}

// Keys yields the declared table names in order without fetching anything.
func (t *Tables) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for table := range t.set.All() {
			if !yield(table.Name) {
				return
			}
		}
	}
}

// Values yields each table in declared order, completing summaries as
// needed. Iteration stops after the first error.
func (t *Tables) Values(ctx context.Context) iter.Seq2[*vosi.Table, error] {
	return func(yield func(*vosi.Table, error) bool) {
		for name := range t.Keys() {
			table, err := t.Lookup(ctx, name)
			if !yield(table, err) || err != nil {
				return
			}
		}
	}
}

// Items yields each name with its table in declared order, completing
// summaries as needed. Iteration stops after the first error.
func (t *Tables) Items(ctx context.Context) iter.Seq2[lazy.Item[*vosi.Table], error] {
	return func(yield func(lazy.Item[*vosi.Table], error) bool) {
		for name := range t.Keys() {
			table, err := t.Lookup(ctx, name)
			if !yield(lazy.Item[*vosi.Table]{Name: name, Value: table}, err) || err != nil {
				return
			}
		}
	}
}
