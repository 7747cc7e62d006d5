package csvcodec

import "strings"

// SplitLine splits one CSV line into cells.
//
// A double quote toggles quoted mode; inside quoted mode a doubled quote
// yields one literal quote. Commas separate cells only outside quotes.
// Quotes are never kept around a cell, and a quote in the middle of an
// unquoted cell simply opens quoted mode.
func SplitLine(line string) []string {
	var (
		cells    []string
		current  strings.Builder
		inQuotes bool
	)

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '"' && inQuotes && i+1 < len(runes) && runes[i+1] == '"':
			current.WriteRune('"')
			i++
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			cells = append(cells, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}

	return append(cells, current.String())
}
