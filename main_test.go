package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stylecurator/internal/catalog"
	"stylecurator/internal/models"
	"stylecurator/internal/services"
	"stylecurator/internal/views"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion, originalCommit := version, commit
	t.Cleanup(func() {
		version, commit = originalVersion, originalCommit
	})
	version = "1.4.0"
	commit = "c0ffee1"

	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "StyleCurator 1.4.0")
	assert.Contains(t, out, "c0ffee1")
}

func TestBrowseOffline(t *testing.T) {
	out, err := run(t, "browse", "--offline", "--json")
	require.NoError(t, err)

	var grid views.GridView
	require.NoError(t, json.Unmarshal([]byte(out), &grid))
	assert.Equal(t, 12, grid.Count)

	out, err = run(t, "browse", "--offline", "--json", "--colors", "Blue,Light Blue", "--max-price", "60")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &grid))
	assert.True(t, grid.HasActiveFilters)
	require.Equal(t, 1, grid.Count)
	assert.Equal(t, "Floral Summer Dress", grid.Products[0].Name)
}

func TestBrowseRejectsInvertedPriceRange(t *testing.T) {
	_, err := run(t, "browse", "--offline", "--min-price", "500", "--max-price", "100")
	assert.Error(t, err)
}

func TestBrowseRendersGrid(t *testing.T) {
	out, err := run(t, "browse", "--offline", "--search", "leather")
	require.NoError(t, err)
	assert.Contains(t, out, "Discover Products (3)")
}

func TestProductLikeOffline(t *testing.T) {
	out, err := run(t, "product", "2", "--offline", "--like", "--size", "M", "--json")
	require.NoError(t, err)

	var view views.DetailView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, 93, view.Product.TrendScore)
	assert.Equal(t, "M", view.SelectedSize)

	_, err = run(t, "product", "nope", "--offline")
	assert.Error(t, err)
}

// startLikeFailingCatalog serves the seed products but answers every like with a 500.
func startLikeFailingCatalog(t *testing.T) string {
	t.Helper()

	store := catalog.NewMemoryCatalog(catalog.SeedProducts()...)
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/api/products/:id", func(c *fiber.Ctx) error {
		product, err := store.GetProduct(c.Context(), c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "Product not found"})
		}
		return c.JSON(product)
	})
	app.Post("/api/products/:id/like", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Internal server error"})
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	return "http://" + ln.Addr().String() + "/api"
}

func TestProductLikeFailureStillRendersProduct(t *testing.T) {
	baseURL := startLikeFailingCatalog(t)

	root := newRootCmd()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetArgs([]string{"product", "2", "--catalog-url", baseURL, "--like", "--json", "--log-level", "error"})
	require.NoError(t, root.Execute())

	var view views.DetailView
	require.NoError(t, json.Unmarshal(out.Bytes(), &view))
	assert.Equal(t, "2", view.Product.ID)
	assert.Equal(t, 92, view.Product.TrendScore)
	assert.Contains(t, errOut.String(), "Could not like product")
}

func TestTrendingOffline(t *testing.T) {
	out, err := run(t, "trending", "--offline")
	require.NoError(t, err)
	assert.Contains(t, out, "Trending Now")
	assert.Contains(t, out, "Floral Summer Dress")
}

func TestRecommendOffline(t *testing.T) {
	out, err := run(t, "recommend", "--offline", "--seed", "3", "--style", "streetwear", "--occasion", "party", "--json")
	require.NoError(t, err)

	var rec models.Recommendation
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	require.Len(t, rec.Outfits, 6)
	assert.Equal(t, "Streetwear Look 1", rec.Outfits[0].Name)

	again, err := run(t, "recommend", "--offline", "--seed", "3", "--style", "streetwear", "--occasion", "party", "--json")
	require.NoError(t, err)
	var rec2 models.Recommendation
	require.NoError(t, json.Unmarshal([]byte(again), &rec2))
	assert.Equal(t, rec.Outfits, rec2.Outfits, "same seed, same outfits")

	_, err = run(t, "recommend", "--offline", "--style", "gothic")
	assert.Error(t, err)
}

func TestEventsRequiresBroker(t *testing.T) {
	t.Setenv("RABBITMQ_URL", "")
	_, err := run(t, "events")
	assert.ErrorContains(t, err, "RABBITMQ_URL")
}

func TestHealthEndpoint(t *testing.T) {
	root := newRootCmd()
	root.SetErr(io.Discard)
	a, err := newAppContext(root, &rootFlags{offline: true}, false)
	require.NoError(t, err)

	resp, err := newApp(a).Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "offline", body["catalog"])
	assert.Equal(t, "disabled", body["events"])
}

func TestAppServesProducts(t *testing.T) {
	root := newRootCmd()
	root.SetErr(io.Discard)
	a, err := newAppContext(root, &rootFlags{offline: true}, false)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?category=Shoes", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	resp, err := newApp(a).Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	var grid views.GridView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&grid))
	assert.Equal(t, 2, grid.Count)
}

func TestPrintEvent(t *testing.T) {
	at := time.Date(2025, 5, 4, 10, 0, 0, 0, time.UTC)
	body, err := json.Marshal(services.InteractionEvent{
		Type: services.EventProductLiked, ProductID: "7", TrendScore: 89, OccurredAt: at,
	})
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, printEvent(buf, body))
	assert.Equal(t, "2025-05-04T10:00:00Z  product.liked  product 7 trend score 89\n", buf.String())

	assert.Error(t, printEvent(buf, []byte("{")))
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}
