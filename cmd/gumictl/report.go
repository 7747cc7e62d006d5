package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/gumi-collection/internal/engine"
	"github.com/MKhiriev/gumi-collection/models"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

const reportTopN = 10

func newReportCmd() *cobra.Command {
	var (
		raw   bool
		style string
		date   string
		period string
		width  int
	)

	cmd := &cobra.Command{
		Use:   "report FILE",
		Short: "Render a spending report for an exported CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if date != "" {
				t, ok := engine.ParseDate(date)
				if !ok {
					return fmt.Errorf("--date: expected %s, got %q", models.DateLayout, date)
				}
				now = t
			}

			g, err := engine.ParseGranularity(period)
			if err != nil {
				return fmt.Errorf("--period: %w", err)
			}

			items, err := readItems(args[0])
			if err != nil {
				return err
			}

			md := buildReport(items, g, now)
			if raw {
				_, err = fmt.Fprint(cmd.OutOrStdout(), md)
				return err
			}

			out, err := renderMarkdown(md, style, width)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print markdown without rendering")
	cmd.Flags().StringVar(&style, "style", "auto", `glamour style ("auto", "dark", "light", "notty")`)
	cmd.Flags().StringVar(&date, "date", "", "report date, defaults to today")
	cmd.Flags().StringVar(&period, "period", "month", `ranking period ("week", "month", "year")`)
	cmd.Flags().IntVar(&width, "width", 100, "word wrap width")
	return cmd
}

func renderMarkdown(md, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	return r.Render(md)
}

// buildReport renders the statistics of items as markdown. The category
// ranking covers the g-period containing now.
func buildReport(items []models.CollectionItem, g engine.Granularity, now time.Time) string {
	bundle := engine.BuildStatsBundle(items, now)
	totals := engine.ProfileTotals(items)

	var b strings.Builder
	fmt.Fprintf(&b, "# 收藏报告\n\n")
	fmt.Fprintf(&b, "%s · %d 条记录 · %d 件 · %d 个 IP\n\n",
		now.Format(models.DateLayout), len(items), totals.TotalItems, totals.TotalDomains)

	b.WriteString("## 总览\n\n")
	b.WriteString("| 区间 | 支出 | 回血 | 净支出 |\n|---|---:|---:|---:|\n")
	for _, row := range []struct {
		name string
		p    models.OverviewPeriod
	}{
		{"本周", bundle.OverviewWeek},
		{"本月", bundle.OverviewMonth},
		{"全部", bundle.OverviewAll},
	} {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", row.name,
			engine.FormatAmount(row.p.Total), engine.FormatAmount(row.p.Sold), engine.FormatAmount(row.p.Net))
	}

	writeDistributionTable(&b, "分类", bundle.CategoryAmount)
	writeDistributionTable(&b, "IP", bundle.IPAmount)

	label := engine.LabelFor(g, now)
	if ranking := engine.Rank(bundle.Series, g, label, engine.ByCategory); len(ranking) > 0 {
		fmt.Fprintf(&b, "\n## %s 分类排行\n\n", label)
		for i, r := range ranking {
			fmt.Fprintf(&b, "%d. **%s** %s (%.1f%%)\n", i+1, r.Key, engine.FormatAmount(r.Sum), r.Percent)
		}
	}

	if reminders := engine.Reminders(items); len(reminders) > 0 {
		b.WriteString("\n## 待收货\n\n")
		for _, item := range reminders {
			date := item.PurchaseDate
			if date == "" {
				date = "未知日期"
			}
			fmt.Fprintf(&b, "- %s · %s · %s\n", date, item.Status, item.Name)
		}
	}

	return b.String()
}

func writeDistributionTable(b *strings.Builder, title string, entries []models.DistributionEntry) {
	entries = engine.SortDistribution(entries, true)
	if len(entries) == 0 {
		return
	}

	fmt.Fprintf(b, "\n## %s\n\n| %s | 件数 | 金额 |\n|---|---:|---:|\n", title, title)
	for i, e := range entries {
		if i == reportTopN {
			break
		}
		fmt.Fprintf(b, "| %s | %d | %s |\n", e.Key, e.Count, engine.FormatAmount(e.Amount))
	}
}
