package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/streadway/amqp"

	"stylecurator/internal/config"
	"stylecurator/internal/models"
	"stylecurator/internal/render"
	"stylecurator/internal/services"
	"stylecurator/pkg/rabbitmq"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type rootFlags struct {
	catalogURL string
	logLevel   string
	configFile string
	offline    bool
	jsonOutput bool
	seed       uint64
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "stylecurator",
		Short:         "StyleCurator browses a fashion catalog and suggests outfits",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.catalogURL, "catalog-url", "", "Catalog API base URL (overrides CATALOG_BASE_URL)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	cmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "Optional YAML config file, reloaded on change")
	cmd.PersistentFlags().BoolVar(&flags.offline, "offline", false, "Use the built-in sample catalog instead of the catalog API")
	cmd.PersistentFlags().BoolVar(&flags.jsonOutput, "json", false, "Output in JSON format")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newBrowseCmd(flags))
	cmd.AddCommand(newProductCmd(flags))
	cmd.AddCommand(newTrendingCmd(flags))
	cmd.AddCommand(newRecommendCmd(flags))
	cmd.AddCommand(newEventsCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "StyleCurator %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
			return nil
		},
	}
}

func newServeCmd(flags *rootFlags) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the product views over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAppContext(cmd, flags, true)
			if err != nil {
				return err
			}
			defer a.Close()

			config.Watch(a.viper, func(cfg *config.Config) {
				if err := a.log.SetLevel(cfg.LogLevel); err != nil {
					a.log.Error(err, "failed to apply log level")
					return
				}
				a.log.With("level", cfg.LogLevel).Info("log level reloaded")
			}, func(err error) {
				a.log.Error(err, "ignoring invalid configuration change")
			})

			addr := a.cfg.AppPort
			if port != "" {
				addr = port
			}
			return serve(cmd.Context(), a, addr)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "Listen address (overrides APP_PORT)")
	return cmd
}

func serve(ctx context.Context, a *appContext, addr string) error {
	app := newApp(a)

	errCh := make(chan error, 1)
	go func() {
		a.log.With("addr", addr).Info("starting server")
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	a.log.Info("shutting down server")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		return fmt.Errorf("error during shutdown: %w", err)
	}
	a.log.Info("server gracefully stopped")
	return nil
}

type browseOptions struct {
	category  string
	brand     string
	search    string
	minPrice  float64
	maxPrice  float64
	sizes     []string
	colors    []string
	tags      []string
	limit     int
	offset    int
	sortBy    string
	sortOrder string
}

func (o browseOptions) query() models.ListQuery {
	f := models.DefaultFilters()
	f.Category = o.category
	f.Brand = o.brand
	f.Search = o.search
	f.MinPrice = o.minPrice
	f.MaxPrice = o.maxPrice
	f.Sizes = models.NewStringSet(o.sizes...)
	f.Colors = models.NewStringSet(o.colors...)
	f.Tags = models.NewStringSet(o.tags...)

	q := models.NewListQuery(f, o.limit)
	q.Offset = o.offset
	if o.sortBy != "" {
		q.SortBy = o.sortBy
	}
	if o.sortOrder != "" {
		q.SortOrder = o.sortOrder
	}
	return q
}

func newBrowseCmd(flags *rootFlags) *cobra.Command {
	opts := &browseOptions{}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "List products matching the given filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := opts.query()
			if err := q.Filters.Validate(); err != nil {
				return fmt.Errorf("invalid filters: %w", err)
			}
			a, err := newAppContext(cmd, flags, false)
			if err != nil {
				return err
			}
			grid := a.browse.Browse(cmd.Context(), q)
			return output(cmd.OutOrStdout(), flags, grid, func(r *render.Renderer) string { return r.Grid(grid) })
		},
	}

	cmd.Flags().StringVar(&opts.category, "category", "", "Category")
	cmd.Flags().StringVar(&opts.brand, "brand", "", "Brand")
	cmd.Flags().StringVar(&opts.search, "search", "", "Search name, brand, description and tags")
	cmd.Flags().Float64Var(&opts.minPrice, "min-price", models.DefaultMinPrice, "Minimum price")
	cmd.Flags().Float64Var(&opts.maxPrice, "max-price", models.DefaultMaxPrice, "Maximum price")
	cmd.Flags().StringSliceVar(&opts.sizes, "sizes", nil, "Sizes, comma separated")
	cmd.Flags().StringSliceVar(&opts.colors, "colors", nil, "Colors, comma separated")
	cmd.Flags().StringSliceVar(&opts.tags, "tags", nil, "Tags, comma separated")
	cmd.Flags().IntVar(&opts.limit, "limit", services.DefaultListLimit, "Maximum number of products")
	cmd.Flags().IntVar(&opts.offset, "offset", 0, "Number of products to skip")
	cmd.Flags().StringVar(&opts.sortBy, "sort-by", "", "Sort field: trend_score, price, rating or name")
	cmd.Flags().StringVar(&opts.sortOrder, "sort-order", "", "Sort order: asc or desc")
	return cmd
}

type productOptions struct {
	like     bool
	image    int
	size     string
	color    string
	quantity int
}

func newProductCmd(flags *rootFlags) *cobra.Command {
	opts := &productOptions{}

	cmd := &cobra.Command{
		Use:   "product <id>",
		Short: "Show one product, optionally liking it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAppContext(cmd, flags, opts.like)
			if err != nil {
				return err
			}
			defer a.Close()

			state, err := a.detail.Open(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("product not found: %w", err)
			}
			state = state.SelectImage(opts.image).SelectSize(opts.size).SelectColor(opts.color).SetQuantity(opts.quantity)

			if opts.like {
				state, err = a.detail.LikeAndApply(cmd.Context(), state)
				if err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), "Could not like product; showing the last known trend score")
				}
			}

			view := state.View()
			return output(cmd.OutOrStdout(), flags, view, func(r *render.Renderer) string { return r.Detail(view) })
		},
	}

	cmd.Flags().BoolVar(&opts.like, "like", false, "Like the product and show the updated trend score")
	cmd.Flags().IntVar(&opts.image, "image", 0, "Image index to show")
	cmd.Flags().StringVar(&opts.size, "size", "", "Size to select")
	cmd.Flags().StringVar(&opts.color, "color", "", "Color to select")
	cmd.Flags().IntVar(&opts.quantity, "quantity", 1, "Quantity")
	return cmd
}

func newTrendingCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "trending",
		Short: "Show the top trending products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAppContext(cmd, flags, false)
			if err != nil {
				return err
			}
			view := a.trending.Trending(cmd.Context())
			return output(cmd.OutOrStdout(), flags, view, func(r *render.Renderer) string { return r.Trending(view) })
		},
	}
}

type recommendOptions struct {
	style      string
	occasion   string
	budget     float64
	colors     []string
	categories []string
}

func (o recommendOptions) preferences() models.StylePreferences {
	prefs := models.DefaultPreferences().
		WithStyle(models.StyleType(o.style)).
		WithOccasion(models.Occasion(o.occasion)).
		WithBudget(o.budget)
	for _, c := range o.colors {
		prefs = prefs.ToggleColor(c)
	}
	for _, c := range o.categories {
		prefs = prefs.ToggleCategory(c)
	}
	return prefs
}

func newRecommendCmd(flags *rootFlags) *cobra.Command {
	opts := &recommendOptions{}

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Generate outfit suggestions for a style and occasion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs := opts.preferences()
			if err := prefs.Validate(); err != nil {
				return fmt.Errorf("invalid preferences: %w", err)
			}
			a, err := newAppContext(cmd, flags, true)
			if err != nil {
				return err
			}
			defer a.Close()

			rec, err := a.recommendations.Recommend(cmd.Context(), prefs)
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), flags, rec, func(r *render.Renderer) string { return r.Recommendation(rec) })
		},
	}

	cmd.Flags().StringVar(&opts.style, "style", string(models.StyleCasual), "Style: casual, formal, streetwear, bohemian, minimalist or vintage")
	cmd.Flags().StringVar(&opts.occasion, "occasion", string(models.OccasionEveryday), "Occasion: everyday, work, party, date, travel or workout")
	cmd.Flags().Float64Var(&opts.budget, "budget", models.DefaultBudget, "Maximum price per item")
	cmd.Flags().StringSliceVar(&opts.colors, "colors", nil, "Preferred colors, comma separated")
	cmd.Flags().StringSliceVar(&opts.categories, "categories", nil, "Preferred categories, comma separated")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "Seed for reproducible outfits (0 picks one at random)")
	return cmd
}

func newEventsCmd(flags *rootFlags) *cobra.Command {
	var binding string

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Tail interaction events from RabbitMQ",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAppContext(cmd, flags, false)
			if err != nil {
				return err
			}
			if !a.cfg.EventsEnabled() {
				return fmt.Errorf("RABBITMQ_URL is not set")
			}

			mq, err := rabbitmq.NewClient(rabbitmq.Config{URL: a.cfg.RabbitMQURL, Exchange: a.cfg.EventsExchange}, a.log)
			if err != nil {
				return err
			}
			defer mq.Close()

			out := cmd.OutOrStdout()
			return mq.Consume(cmd.Context(), binding, func(msg amqp.Delivery) error {
				return printEvent(out, msg.Body)
			})
		},
	}

	cmd.Flags().StringVar(&binding, "binding", "#", "Routing key pattern to subscribe to")
	return cmd
}

func printEvent(w io.Writer, body []byte) error {
	var event services.InteractionEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("malformed event: %w", err)
	}
	switch event.Type {
	case services.EventProductLiked:
		_, err := fmt.Fprintf(w, "%s  %s  product %s trend score %d\n",
			event.OccurredAt.Format(time.RFC3339), event.Type, event.ProductID, event.TrendScore)
		return err
	case services.EventOutfitsMade:
		_, err := fmt.Fprintf(w, "%s  %s  run %s with %d outfits\n",
			event.OccurredAt.Format(time.RFC3339), event.Type, event.RunID, event.Outfits)
		return err
	default:
		_, err := fmt.Fprintf(w, "%s  %s\n", event.OccurredAt.Format(time.RFC3339), event.Type)
		return err
	}
}

// output writes v as JSON when --json is set, and the rendered view otherwise.
func output(w io.Writer, flags *rootFlags, v any, draw func(*render.Renderer) string) error {
	if flags.jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(w, draw(render.New()))
	return err
}
