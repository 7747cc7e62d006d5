package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/gumi-collection/internal/engine"
	"github.com/shopspring/decimal"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: 退出"))

	return b.String()
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

// fitText cuts v to max runes.
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func money(v decimal.Decimal) string {
	return engine.FormatAmount(v)
}

func nullMoney(v decimal.NullDecimal) string {
	if !v.Valid {
		return "-"
	}
	return money(v.Decimal)
}

// bar renders v relative to max as a row of blocks.
func bar(v, max decimal.Decimal, width int) string {
	if max.Sign() <= 0 || v.Sign() <= 0 {
		return ""
	}
	n := int(v.Div(max).Mul(decimal.NewFromInt(int64(width))).Round(0).IntPart())
	if n < 1 {
		n = 1
	}
	return strings.Repeat("█", n)
}

func percent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
