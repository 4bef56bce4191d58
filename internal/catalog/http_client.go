package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"stylecurator/internal/models"

	"github.com/valyala/fasthttp"
)

// DefaultTimeout bounds every catalog request unless the context expires sooner.
const DefaultTimeout = 10 * time.Second

// Doer sends a request and waits for the response until the deadline.
// *fasthttp.Client satisfies it.
type Doer interface {
	DoDeadline(req *fasthttp.Request, resp *fasthttp.Response, deadline time.Time) error
}

// HTTPClient is the Catalog implementation backed by the remote catalog API.
type HTTPClient struct {
	baseURL string
	doer    Doer
	timeout time.Duration
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithDoer replaces the underlying fasthttp client.
func WithDoer(d Doer) Option {
	return func(c *HTTPClient) {
		c.doer = d
	}
}

// NewHTTPClient creates a client for the catalog rooted at baseURL, e.g. "http://localhost:8001/api".
func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.doer == nil {
		c.doer = &fasthttp.Client{
			Name:                "stylecurator",
			MaxIdleConnDuration: 30 * time.Second,
		}
	}
	return c
}

// ListProducts fetches products matching the query. Filtering happens on the catalog side.
func (c *HTTPClient) ListProducts(ctx context.Context, query models.ListQuery) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, fasthttp.MethodGet, "/products", EncodeListQuery(query), &products); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return normalizeAll(products), nil
}

// GetProduct fetches a single product. It returns ErrNotFound for unknown IDs.
func (c *HTTPClient) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, fasthttp.MethodGet, "/products/"+url.PathEscape(id), "", &product); err != nil {
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}
	product.Normalize()
	return &product, nil
}

// TrendingProducts fetches the top products by trend score, highest first.
func (c *HTTPClient) TrendingProducts(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	query := "limit=" + strconv.Itoa(limit)
	if err := c.do(ctx, fasthttp.MethodGet, "/products/trending", query, &products); err != nil {
		return nil, fmt.Errorf("failed to get trending products: %w", err)
	}
	return normalizeAll(products), nil
}

// LikeProduct records a like and returns the trend score the catalog now holds.
// When the like response does not carry the score, the product is re-read.
func (c *HTTPClient) LikeProduct(ctx context.Context, id string) (*models.LikeResult, error) {
	var ack struct {
		TrendScore *int `json:"trend_score"`
	}
	if err := c.do(ctx, fasthttp.MethodPost, "/products/"+url.PathEscape(id)+"/like", "", &ack); err != nil {
		return nil, fmt.Errorf("failed to like product %s: %w", id, err)
	}
	if ack.TrendScore != nil {
		return &models.LikeResult{ProductID: id, TrendScore: *ack.TrendScore}, nil
	}

	product, err := c.GetProduct(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read trend score after like: %w", err)
	}
	return &models.LikeResult{ProductID: id, TrendScore: product.TrendScore}, nil
}

// FilterOptions fetches the distinct facet values the catalog knows about.
func (c *HTTPClient) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	var opts models.FilterOptions
	if err := c.do(ctx, fasthttp.MethodGet, "/filters", "", &opts); err != nil {
		return nil, fmt.Errorf("failed to get filter options: %w", err)
	}
	return &opts, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path, query string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	uri := c.baseURL + path
	if query != "" {
		uri += "?" + query
	}
	req.SetRequestURI(uri)
	req.Header.SetMethod(method)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")

	if err := c.doer.DoDeadline(req, resp, c.deadline(ctx)); err != nil {
		return fmt.Errorf("catalog %s %s: %w", method, path, err)
	}

	status := resp.StatusCode()
	if status == fasthttp.StatusNotFound {
		return ErrNotFound
	}
	if status < 200 || status >= 300 {
		return &StatusError{Method: method, Path: path, Status: status, Body: string(resp.Body())}
	}

	body := bytes.TrimSpace(resp.Body())
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("catalog %s %s: decode response: %w", method, path, err)
	}
	return nil
}

func (c *HTTPClient) deadline(ctx context.Context) time.Time {
	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		return ctxDeadline
	}
	return deadline
}

// EncodeListQuery renders a list query as the catalog's query string. Empty
// exact-match fields and empty sets are omitted; price bounds are sent unless
// the query ignores them.
func EncodeListQuery(q models.ListQuery) string {
	args := fasthttp.AcquireArgs()
	defer fasthttp.ReleaseArgs(args)

	f := q.Filters
	if f.Category != "" {
		args.Add("category", f.Category)
	}
	if f.Brand != "" {
		args.Add("brand", f.Brand)
	}
	if f.Search != "" {
		args.Add("search", f.Search)
	}
	if !q.AnyPrice {
		args.Add("min_price", strconv.FormatFloat(f.MinPrice, 'f', -1, 64))
		args.Add("max_price", strconv.FormatFloat(f.MaxPrice, 'f', -1, 64))
	}
	if !f.Sizes.IsEmpty() {
		args.Add("sizes", f.Sizes.String())
	}
	if !f.Colors.IsEmpty() {
		args.Add("colors", f.Colors.String())
	}
	if !f.Tags.IsEmpty() {
		args.Add("tags", f.Tags.String())
	}
	if q.SortBy != "" {
		args.Add("sort_by", q.SortBy)
	}
	if q.SortOrder != "" {
		args.Add("sort_order", q.SortOrder)
	}
	if q.Limit > 0 {
		args.Add("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		args.Add("offset", strconv.Itoa(q.Offset))
	}
	return args.String()
}

func normalizeAll(products []models.Product) []models.Product {
	if products == nil {
		return []models.Product{}
	}
	for i := range products {
		products[i].Normalize()
	}
	return products
}
