package tui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/gumi-collection/internal/engine"
	"github.com/MKhiriev/gumi-collection/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
)

const (
	statsBarWidth = 24
	statsTopN     = 5
)

var granularities = []engine.Granularity{engine.Week, engine.Month, engine.Year}

type statsModel struct {
	bundle  models.StatsBundle
	loading bool
	loaded  bool

	granularity int
	ranges      []string
	rangeIdx    int
	rankBy      engine.RankKey
	byAmount    bool
}

func (m *statsModel) setBundle(bundle models.StatsBundle, now time.Time) {
	m.bundle = bundle
	m.loaded = true
	m.selectRanges(now)
}

// selectRanges rebuilds the period list for the current granularity and
// preselects the period containing now.
func (m *statsModel) selectRanges(now time.Time) {
	g := granularities[m.granularity]

	dates := make([]time.Time, 0, len(m.bundle.Series))
	for _, r := range m.bundle.Series {
		if t, ok := engine.ParseDate(r.Date); ok {
			dates = append(dates, t)
		}
	}

	m.ranges = engine.TimeRanges(g, dates, now)
	m.rangeIdx = slices.Index(m.ranges, engine.DefaultRange(g, m.ranges, now))
}

func (m statsModel) label() string {
	if m.rangeIdx < 0 || m.rangeIdx >= len(m.ranges) {
		return ""
	}
	return m.ranges[m.rangeIdx]
}

func (m statsModel) View() string {
	if m.loading || !m.loaded {
		return renderPage("统计", "加载中...", "esc 返回")
	}

	var b strings.Builder
	writeOverview(&b, "本周", m.bundle.OverviewWeek)
	writeOverview(&b, "本月", m.bundle.OverviewMonth)
	writeOverview(&b, "全部", m.bundle.OverviewAll)
	b.WriteString("\n")

	g := granularities[m.granularity]
	label := m.label()
	if label == "" {
		b.WriteString("还没有带购入日期的记录\n")
	} else {
		m.writePeriod(&b, g, label)
	}

	b.WriteString("\n")
	m.writeDistribution(&b, "分类分布", m.bundle.CategoryCount, m.bundle.CategoryAmount)
	m.writeDistribution(&b, "IP 分布", m.bundle.IPCount, m.bundle.IPAmount)

	return renderPage("统计", b.String(), "g 周/月/年  ←/→ 切换区间  b 排行维度  a 数量/金额  esc 返回")
}

func writeOverview(b *strings.Builder, title string, p models.OverviewPeriod) {
	fmt.Fprintf(b, "%s  支出 %s  回血 %s  净支出 %s\n", title, money(p.Total), money(p.Sold), money(p.Net))
}

func (m statsModel) writePeriod(b *strings.Builder, g engine.Granularity, label string) {
	fmt.Fprintf(b, "‹ %s › (%d/%d)\n", label, m.rangeIdx+1, len(m.ranges))

	series, err := engine.Bucketize(m.bundle.Series, g, label)
	if err != nil {
		b.WriteString(err.Error() + "\n")
		return
	}

	summary := engine.Summarize(series.Values)
	for i, name := range series.Names {
		v := series.Values[i]
		if g == engine.Month && v.IsZero() {
			continue
		}
		fmt.Fprintf(b, "%5s %-*s %s\n", name, statsBarWidth, bar(v, summary.Max, statsBarWidth), money(v))
	}
	fmt.Fprintf(b, "合计 %s  平均 %s  最高 %s\n", money(summary.Total), money(summary.Average), money(summary.Max))

	title := "分类排行"
	if m.rankBy == engine.ByIPKey {
		title = "IP 排行"
	}
	b.WriteString("\n" + title + "\n")
	ranking := engine.Rank(m.bundle.Series, g, label, m.rankBy)
	for i, r := range ranking {
		if i == statsTopN {
			break
		}
		fmt.Fprintf(b, "%d. %s  %s  %s\n", i+1, r.Key, money(r.Sum), percent(r.Percent))
	}
}

func (m statsModel) writeDistribution(b *strings.Builder, title string, byCount, byAmount []models.DistributionEntry) {
	entries := byCount
	if m.byAmount {
		entries = byAmount
	}
	entries = engine.SortDistribution(entries, m.byAmount)

	b.WriteString(title + "\n")
	if len(entries) == 0 {
		b.WriteString("  -\n")
		return
	}

	maxValue := decimal.Zero
	for _, e := range entries {
		maxValue = decimal.Max(maxValue, distributionValue(e, m.byAmount))
	}
	for i, e := range entries {
		if i == statsTopN {
			break
		}
		v := distributionValue(e, m.byAmount)
		shown := fmt.Sprintf("%d 件", e.Count)
		if m.byAmount {
			shown = money(e.Amount)
		}
		fmt.Fprintf(b, "  %-8s %-*s %s\n", fitText(e.Key, 8), statsBarWidth, bar(v, maxValue, statsBarWidth), shown)
	}
}

func distributionValue(e models.DistributionEntry, byAmount bool) decimal.Decimal {
	if byAmount {
		return e.Amount
	}
	return decimal.NewFromInt(int64(e.Count))
}

func (m appModel) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.period):
		m.stats.granularity = (m.stats.granularity + 1) % len(granularities)
		m.stats.selectRanges(m.now())
	case key.Matches(keyMsg, keys.left):
		if m.stats.rangeIdx > 0 {
			m.stats.rangeIdx--
		}
	case key.Matches(keyMsg, keys.right):
		if m.stats.rangeIdx < len(m.stats.ranges)-1 {
			m.stats.rangeIdx++
		}
	case key.Matches(keyMsg, keys.rankBy):
		if m.stats.rankBy == engine.ByCategory {
			m.stats.rankBy = engine.ByIPKey
		} else {
			m.stats.rankBy = engine.ByCategory
		}
	case key.Matches(keyMsg, keys.sortBy):
		m.stats.byAmount = !m.stats.byAmount
	}
	return m, nil
}
