package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/flysnipe/flysnipe/internal/domain"
	"github.com/flysnipe/flysnipe/internal/infrastructure/timeutil"
	"github.com/flysnipe/flysnipe/internal/usecase"
)

type searchOptions struct {
	from       string
	to         string
	date       string
	passengers int
	full       bool

	class    string
	stops    string
	maxPrice float64
	sort     string
	pageSize int
	pages    int
}

func newSearchCmd(a *app) *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search flight offers",
		Long: `Search flight offers for a route and date.

Free accounts see the first three matching offers; premium accounts see
every page. --full requests the complete result list from the backend.

Example:
  flysnipe search --from "New York" --to London --date 2026-12-01 --sort price --stops 0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := opts.filterSpec(cmd)
			if err != nil {
				return err
			}
			return a.runSearch(cmd, opts, filter)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.from, "from", "", "origin city or airport (required)")
	f.StringVar(&opts.to, "to", "", "destination city or airport (required)")
	f.StringVar(&opts.date, "date", "", "departure date YYYY-MM-DD (default: tomorrow)")
	f.IntVar(&opts.passengers, "passengers", 1, "number of passengers (1-9)")
	f.BoolVar(&opts.full, "full", false, "request the complete result list")
	f.StringVar(&opts.class, "class", "", "fare class: economy, premium, business, first")
	f.StringVar(&opts.stops, "stops", "all", `stops: "all", "2+" or an exact count`)
	f.Float64Var(&opts.maxPrice, "max-price", 0, "maximum price, inclusive")
	f.StringVar(&opts.sort, "sort", "price", "sort: none, price, price-desc, duration, departure, arrival")
	f.IntVar(&opts.pageSize, "page-size", domain.DefaultPageSize, "offers revealed per page")
	f.IntVar(&opts.pages, "pages", 1, "number of pages to reveal")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// filterSpec builds the filter from flags. --max-price only applies when set.
func (o *searchOptions) filterSpec(cmd *cobra.Command) (domain.FilterSpec, error) {
	var spec domain.FilterSpec

	if o.class != "" {
		class, ok := domain.ParseFareClass(o.class)
		if !ok {
			return spec, domain.WrapInvalidArgument("unknown fare class %q", o.class)
		}
		spec.Class = &class
	}

	stops, err := domain.ParseStopsFilter(o.stops)
	if err != nil {
		return spec, err
	}
	spec.Stops = stops

	if cmd.Flags().Changed("max-price") {
		maxPrice := o.maxPrice
		spec.MaxPrice = &maxPrice
	}
	return spec, spec.Validate()
}

func (a *app) runSearch(cmd *cobra.Command, opts *searchOptions, filter domain.FilterSpec) error {
	ctx := cmd.Context()

	ent, err := a.store.LoadEntitlement(ctx)
	if err != nil {
		return err
	}

	criteria := domain.SearchCriteria{
		From:          opts.from,
		To:            opts.to,
		DepartureDate: opts.date,
		Passengers:    opts.passengers,
		Premium:       ent.IsPremium || opts.full,
	}
	if criteria.DepartureDate == "" {
		criteria.DepartureDate = timeutil.Tomorrow(timeutil.NewRealClock())
	}
	criteria.SetDefaults()
	if err := criteria.Validate(); err != nil {
		return err
	}

	sortKey, err := domain.ParseSortKey(opts.sort)
	if err != nil {
		return err
	}

	results := usecase.NewResultSet()
	if err := results.SetPageSize(opts.pageSize); err != nil {
		return err
	}
	if err := results.SetFilter(filter); err != nil {
		return err
	}
	if err := results.SetSort(sortKey); err != nil {
		return err
	}

	offers, err := a.client.Search(ctx, criteria)
	if err != nil {
		return err
	}
	results.SetOffers(offers)

	if err := a.store.SaveLastSearch(ctx, criteria); err != nil {
		a.logger.Warn().Err(err).Msg("Failed to remember last search")
	}

	for i := 1; i < opts.pages && results.CurrentPage().HasMore; i++ {
		results.NextPage()
	}

	page := results.CurrentPage()
	view := usecase.PreviewForTier(page, ent)
	renderResults(cmd.OutOrStdout(), criteria, page, view)
	return nil
}

// renderResults prints the visible offers as a table followed by paging and
// upsell hints.
func renderResults(w io.Writer, criteria domain.SearchCriteria, page domain.Page, view usecase.TierView) {
	fmt.Fprintf(w, "%s -> %s on %s, %d passenger(s)\n", criteria.From, criteria.To, criteria.DepartureDate, criteria.Passengers)

	if page.Total == 0 {
		fmt.Fprintln(w, "No flights match your filters.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FLIGHT\tCLASS\tDEPART\tARRIVE\tDURATION\tSTOPS\tPRICE")
	for _, o := range view.Visible {
		fmt.Fprintf(tw, "%s\t%s\t%s %s\t%s %s\t%s\t%s\t%s\n",
			o.FlightNumber,
			o.Class,
			o.Departure.Time, o.Departure.Airport,
			o.Arrival.Time, o.Arrival.Airport,
			o.FormattedDuration(),
			o.StopsLabel(),
			formatPrice(o),
		)
	}
	_ = tw.Flush()

	fmt.Fprintf(w, "Showing %d of %d\n", len(view.Visible), page.Total)
	if msg := view.UpsellMessage(); msg != "" {
		fmt.Fprintln(w, msg)
		fmt.Fprintln(w, "Run `flysnipe upgrade` to unlock every result.")
	} else if page.HasMore {
		fmt.Fprintf(w, "%d more; rerun with --pages %d to see them\n", page.NextBatch(), page.PageIndex+1)
	}
}

func formatPrice(o domain.Offer) string {
	currency := strings.ToUpper(o.Currency)
	if currency == "" {
		currency = "USD"
	}
	return fmt.Sprintf("%.2f %s", o.Price, currency)
}
