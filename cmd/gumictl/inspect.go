package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/MKhiriev/gumi-collection/internal/csvcodec"
	"github.com/MKhiriev/gumi-collection/internal/engine"
	"github.com/MKhiriev/gumi-collection/models"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Show how a CSV file would be imported",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := readItems(args[0])
			if err != nil {
				return err
			}
			return writeInspection(cmd.OutOrStdout(), items, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "rows to print, 0 for all")
	return cmd
}

func readItems(path string) ([]models.CollectionItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	items, err := csvcodec.Import(f, csvcodec.ImportOptions{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

func writeInspection(w io.Writer, items []models.CollectionItem, limit int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tIP\tCHARACTER\tCATEGORY\tSTATUS\tPAYMENT\tTOTAL\tDATE")
	for i, item := range items {
		if limit > 0 && i == limit {
			break
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i+1, item.Name, item.IP, item.Character, item.Category, item.Status, item.PaymentStatus,
			engine.FormatAmount(item.TotalCost()), item.PurchaseDate)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	counts := make(map[models.ItemStatus]int)
	for _, item := range items {
		counts[item.Status]++
	}
	fmt.Fprintf(w, "\n%d rows", len(items))
	for _, s := range models.AllItemStatuses() {
		if counts[s] > 0 {
			fmt.Fprintf(w, ", %s %d", s, counts[s])
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
