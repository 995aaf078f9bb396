package avatar

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DefaultSchemaURL is the avatar style schema listing every option value.
const DefaultSchemaURL = "https://api.dicebear.com/9.x/avataaars/schema.json"

// maxSchemaBytes bounds the downloaded schema.
const maxSchemaBytes = 4 << 20

// Fetcher loads the option catalog from the remote schema. Successful
// results are cached for the life of the Fetcher.
type Fetcher struct {
	URL     string
	Client  *http.Client
	Timeout time.Duration
	Logger  *zap.Logger

	group singleflight.Group

	mu     sync.Mutex
	cached *Catalog
}

// NewFetcher returns a Fetcher for url. An empty url uses DefaultSchemaURL.
func NewFetcher(url string, timeout time.Duration, logger *zap.Logger) *Fetcher {
	if url == "" {
		url = DefaultSchemaURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{
		URL:     url,
		Client:  http.DefaultClient,
		Timeout: timeout,
		Logger:  logger,
	}
}

// Catalog returns the remote catalog, or FallbackCatalog when it cannot be
// loaded. It never fails.
func (f *Fetcher) Catalog(ctx context.Context) Catalog {
	cat, err := f.Fetch(ctx)
	if err != nil {
		f.Logger.Warn("avatar schema unavailable, using fallback options",
			zap.String("url", f.URL), zap.Error(err))
		return FallbackCatalog()
	}
	return cat
}

// Fetch downloads and compiles the schema. Concurrent callers share one
// request.
func (f *Fetcher) Fetch(ctx context.Context) (Catalog, error) {
	f.mu.Lock()
	if f.cached != nil {
		cat := *f.cached
		f.mu.Unlock()
		return cat, nil
	}
	f.mu.Unlock()

	v, err, _ := f.group.Do(f.URL, func() (any, error) {
		enums, err := f.download(ctx)
		if err != nil {
			return nil, err
		}
		cat := merge(enums)
		f.mu.Lock()
		f.cached = &cat
		f.mu.Unlock()
		return cat, nil
	})
	if err != nil {
		return Catalog{}, err
	}
	return v.(Catalog), nil
}

func (f *Fetcher) download(ctx context.Context) (map[string][]string, error) {
	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch schema: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch schema: HTTP %d", resp.StatusCode)
	}

	doc, err := jsonschema.UnmarshalJSON(io.LimitReader(resp.Body, maxSchemaBytes))
	if err != nil {
		return nil, fmt.Errorf("decode schema: %w", err)
	}
	return compileEnums(f.URL, doc)
}

// compileEnums compiles doc and collects the enumerated values of every
// catalog property.
func compileEnums(url string, doc any) (map[string][]string, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	sch, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	var cat Catalog
	enums := make(map[string][]string)
	for key := range cat.schemaKeys() {
		if prop, ok := sch.Properties[key]; ok {
			enums[key] = enumValues(prop, 0)
		}
	}
	return enums, nil
}

// enumValues reads enum strings from s: its own enum, the union over anyOf,
// or the enum of its array items. References are followed.
func enumValues(s *jsonschema.Schema, depth int) []string {
	if s == nil || depth > 4 {
		return nil
	}
	if s.Ref != nil {
		if vs := enumValues(s.Ref, depth+1); len(vs) > 0 {
			return vs
		}
	}
	if s.Enum != nil {
		return stringsOf(s.Enum.Values)
	}
	if len(s.AnyOf) > 0 {
		var out []string
		for _, sub := range s.AnyOf {
			if sub.Enum != nil {
				out = append(out, stringsOf(sub.Enum.Values)...)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	if items, ok := s.Items.(*jsonschema.Schema); ok {
		if vs := enumValues(items, depth+1); len(vs) > 0 {
			return vs
		}
	}
	return enumValues(s.Items2020, depth+1)
}

func stringsOf(values []any) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
