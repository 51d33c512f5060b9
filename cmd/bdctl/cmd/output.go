package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	apiclient "github.com/donaldgifford/bullion-desk/internal/api/client"
	domain "github.com/donaldgifford/bullion-desk/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printSpotTable(w io.Writer, s *domain.SpotPrices) error {
	tw := newTabWriter(w)
	tw.writef("METAL\tUSD/OZT\n")
	tw.writef("Gold\t$%.2f\n", s.Gold)
	tw.writef("Silver\t$%.2f\n", s.Silver)
	tw.writef("Platinum\t$%.2f\n", s.Platinum)
	tw.writef("Palladium\t$%.2f\n", s.Palladium)
	tw.writef("\nSource:\t%s\n", s.Source)
	tw.writef("As of:\t%s\n", s.Timestamp)
	if s.Error != "" {
		tw.writef("Error:\t%s\n", s.Error)
	}
	return tw.finish()
}

func printSoldSummary(w io.Writer, r *apiclient.SoldResponse) error {
	tw := newTabWriter(w)
	tw.writef("Query:\t%s\n", r.Query)
	tw.writef("Sales:\t%d of %d\n", r.Stats.Count, r.Total)
	tw.writef("Average:\t$%.2f\n", r.Stats.Average)
	tw.writef("Median:\t$%.2f\n", r.Stats.Median)
	tw.writef("Low / High:\t$%.2f / $%.2f\n", r.Stats.Low, r.Stats.High)
	if len(r.PriceDistribution) > 0 {
		tw.writef("\nRANGE\tCOUNT\t\n")
		for _, b := range r.PriceDistribution {
			tw.writef("%s\t%d\t%s\n", b.Label, b.Count, strings.Repeat("#", b.Count))
		}
	}
	return tw.finish()
}

func printSoldTable(w io.Writer, items []domain.SoldItem) error {
	tw := newTabWriter(w)
	tw.writef("ID\tTITLE\tPRICE\tSOLD\tCONDITION\n")
	for i := range items {
		tw.writef("%s\t%s\t$%.2f\t%s\t%s\n",
			items[i].ID,
			truncate(items[i].Title, 40),
			items[i].Price,
			items[i].SoldDate,
			items[i].Condition,
		)
	}
	return tw.finish()
}

func printListingsTable(w io.Writer, listings []domain.Listing) error {
	tw := newTabWriter(w)
	tw.writef("ID\tTITLE\tPRICE\tQTY\tSTATUS\tSOURCE\n")
	for i := range listings {
		tw.writef("%s\t%s\t$%.2f\t%d\t%s\t%s\n",
			listings[i].ID,
			truncate(listings[i].Title, 40),
			listings[i].Price,
			listings[i].Quantity,
			listings[i].Status,
			listings[i].Source,
		)
	}
	return tw.finish()
}

func printSourceErrors(w io.Writer, errs map[string]string) error {
	if len(errs) == 0 {
		return nil
	}
	tw := newTabWriter(w)
	tw.writef("\nSOURCE\tERROR\n")
	for _, name := range sortedKeys(errs) {
		tw.writef("%s\t%s\n", name, truncate(errs[name], 70))
	}
	return tw.finish()
}

func printStatusTable(w io.Writer, r *apiclient.StatusResponse) error {
	tw := newTabWriter(w)
	tw.writef("ENDPOINT\tSTATUS\tCOUNT\tERROR\n")
	for _, name := range sortedKeys(r.Endpoints) {
		ep := r.Endpoints[name]
		errText := ""
		if ep.Error != nil {
			errText = truncate(ep.Error.Message, 50)
		}
		tw.writef("%s\t%d\t%d\t%s\n", name, ep.Status, ep.Count, errText)
	}
	tw.writef("\nOK: %d  Failed: %d\n", r.Summary.OK, r.Summary.Failed)
	return tw.finish()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
