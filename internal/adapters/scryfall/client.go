// internal/adapters/scryfall/client.go
package scryfall

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"github.com/ammerola/cdi-tracker/internal/core/domain"
	"github.com/ammerola/cdi-tracker/internal/core/ports"
	"github.com/ammerola/cdi-tracker/internal/pkg/metrics"
)

// Config holds Scryfall client settings
type Config struct {
	BaseURL           string
	RequestsPerSecond float64
	Timeout           time.Duration
	CacheTTL          time.Duration
	UserAgent         string
}

// Client resolves card printings against the Scryfall API
type Client struct {
	http    *http.Client
	baseURL string
	agent   string
	limiter *rate.Limiter
	cache   ports.CacheRepository
	ttl     time.Duration
	metrics *metrics.Metrics
	logger  *slog.Logger
}

var _ ports.CardResolver = (*Client)(nil)

// NewClient creates a Scryfall client. cache and m may be nil.
func NewClient(cfg Config, cache ports.CacheRepository, m *metrics.Metrics, logger *slog.Logger) *Client {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 10
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		agent:   cfg.UserAgent,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		cache:   cache,
		ttl:     cfg.CacheTTL,
		metrics: m,
		logger:  logger.With(slog.String("adapter", "scryfall")),
	}
}

// card is the subset of the Scryfall card object we read
type card struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Set             string `json:"set"`
	CollectorNumber string `json:"collector_number"`
	Rarity          string `json:"rarity"`
	Lang            string `json:"lang"`
	Prices          struct {
		USD     *string `json:"usd"`
		USDFoil *string `json:"usd_foil"`
	} `json:"prices"`
	ImageURIs *imageURIs `json:"image_uris"`
	CardFaces []struct {
		ImageURIs *imageURIs `json:"image_uris"`
	} `json:"card_faces"`
}

type imageURIs struct {
	Small  string `json:"small"`
	Normal string `json:"normal"`
}

func (u *imageURIs) pick() string {
	if u == nil {
		return ""
	}
	if u.Small != "" {
		return u.Small
	}
	return u.Normal
}

// Lookup returns metadata for one printing. Unknown printings yield a
// NotFound error.
func (c *Client) Lookup(ctx context.Context, lookup domain.CardLookup) (*domain.CardMetadata, error) {
	if err := lookup.Validate(); err != nil {
		return nil, err
	}

	setCode := strings.ToLower(strings.TrimSpace(lookup.SetCode))
	number := strings.TrimSpace(lookup.CollectorNumber)
	key := ports.CacheKey(ports.CachePrefixCards, setCode, number)

	if c.cache != nil {
		var cached domain.CardMetadata
		err := c.cache.Get(ctx, key, &cached)
		if err == nil {
			c.metrics.ResolverLookup("hit")
			return &cached, nil
		}
		if !errors.Is(err, ports.ErrCacheMiss) {
			c.logger.WarnContext(ctx, "card cache read failed",
				slog.String("key", key),
				slog.String("error", err.Error()))
		}
	}

	meta, err := c.fetch(ctx, setCode, number)
	if err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			c.metrics.ResolverLookup("miss")
		} else {
			c.metrics.ResolverLookup("error")
		}
		return nil, err
	}
	c.metrics.ResolverLookup("fetched")

	if c.cache != nil && c.ttl > 0 {
		if err := c.cache.SetWithTTL(ctx, key, meta, c.ttl); err != nil {
			c.logger.WarnContext(ctx, "failed to cache card metadata",
				slog.String("key", key),
				slog.String("error", err.Error()))
		}
	}
	return meta, nil
}

func (c *Client) fetch(ctx context.Context, setCode, number string) (*domain.CardMetadata, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/cards/%s/%s", c.baseURL, url.PathEscape(setCode), url.PathEscape(number))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build scryfall request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.agent != "" {
		req.Header.Set("User-Agent", c.agent)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, domain.WrapError(domain.KindPersistence, err,
			"Card lookup failed for %s/%s.", strings.ToUpper(setCode), number)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "scryfall request",
		slog.String("url", endpoint),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		io.Copy(io.Discard, resp.Body)
		return nil, domain.NewError(domain.KindNotFound,
			"No card found for %s/%s.", strings.ToUpper(setCode), number)
	case resp.StatusCode != http.StatusOK:
		io.Copy(io.Discard, resp.Body)
		return nil, domain.NewError(domain.KindPersistence,
			"Card lookup failed for %s/%s: status %d.", strings.ToUpper(setCode), number, resp.StatusCode)
	}

	var body card
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, domain.WrapError(domain.KindPersistence, err,
			"Card lookup returned an unreadable response for %s/%s.", strings.ToUpper(setCode), number)
	}
	return body.toMetadata(), nil
}

func (b *card) toMetadata() *domain.CardMetadata {
	meta := &domain.CardMetadata{
		Name:            b.Name,
		SetCode:         strings.ToUpper(b.Set),
		CollectorNumber: b.CollectorNumber,
		Rarity:          titleCase(b.Rarity),
		Language:        strings.ToUpper(b.Lang),
		ScryfallID:      b.ID,
	}
	meta.MarketPriceUSD = parsePrice(b.Prices.USD)
	meta.FoilMarketPriceUSD = parsePrice(b.Prices.USDFoil)

	meta.ImageURI = b.ImageURIs.pick()
	if meta.ImageURI == "" {
		for _, face := range b.CardFaces {
			if uri := face.ImageURIs.pick(); uri != "" {
				meta.ImageURI = uri
				break
			}
		}
	}
	return meta
}

// parsePrice drops prices Scryfall sends as null or garbage
func parsePrice(s *string) *decimal.Decimal {
	if s == nil || *s == "" {
		return nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil
	}
	return &d
}

func titleCase(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
