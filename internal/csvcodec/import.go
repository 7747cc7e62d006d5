package csvcodec

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/gumi-collection/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// DefaultImportName replaces an empty name cell.
	DefaultImportName = "未命名"

	// DefaultImportLabel replaces empty IP and character cells.
	DefaultImportLabel = "其他"
)

// ImportOptions tunes the values Import fills in for missing cells.
type ImportOptions struct {
	// Now supplies the default purchase date. time.Now when nil.
	Now func() time.Time

	// NewID generates record ids. Random UUIDs when nil.
	NewID func() string
}

func (o ImportOptions) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func (o ImportOptions) newID() string {
	if o.NewID != nil {
		return o.NewID()
	}
	return uuid.NewString()
}

// PlaceholderImageURL returns the random stock image used when an imported
// row has no image link.
func PlaceholderImageURL(seed string) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/400/400", seed)
}

// Import parses a CSV document into items.
//
// The BOM is stripped, the first line is treated as the header and ignored,
// blank lines are skipped and the cells are mapped by position in the export
// column order. Unreadable cells fall back to defaults; a row is never
// rejected. A document without data rows yields [ErrNoValidRows].
func Import(r io.Reader, opts ImportOptions) ([]models.CollectionItem, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingInput, err)
	}
	return ImportString(string(data), opts)
}

// ImportString is Import over an in-memory document.
func ImportString(text string, opts ImportOptions) ([]models.CollectionItem, error) {
	text = strings.TrimPrefix(text, BOM)

	lines := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}

	if len(lines) <= 1 {
		return nil, ErrNoValidRows
	}

	today := opts.now().Format(models.DateLayout)
	items := make([]models.CollectionItem, 0, len(lines)-1)
	for _, line := range lines[1:] {
		items = append(items, UnmarshalItem(SplitLine(line), today, opts.newID()))
	}

	return items, nil
}

// UnmarshalItem builds an item from the cells of one row. Missing trailing
// cells are treated as empty.
func UnmarshalItem(record []string, today, id string) models.CollectionItem {
	raw := func(i int) string {
		if i < len(record) {
			return record[i]
		}
		return ""
	}
	cell := func(i int) string { return strings.TrimSpace(raw(i)) }

	item := models.CollectionItem{
		ID:            id,
		Name:          orDefault(raw(colName), DefaultImportName),
		IP:            orDefault(raw(colIP), DefaultImportLabel),
		Character:     orDefault(raw(colChar), DefaultImportLabel),
		SourceType:    models.DefaultSourceType,
		Category:      models.DefaultCategory,
		Price:         decimal.Zero,
		Quantity:      1,
		Status:        models.DefaultItemStatus,
		PaymentStatus: models.DefaultPaymentStatus,
		PurchaseDate:  today,
		Notes:         raw(colNotes),
		ImageURL:      cell(colImage),
	}

	if v, ok := models.ParseSourceType(cell(colSource)); ok {
		item.SourceType = v
	}
	if v, ok := models.ParseItemCategory(cell(colCategory)); ok {
		item.Category = v
	}
	if v, ok := models.ParseItemStatus(cell(colStatus)); ok {
		item.Status = v
	}
	if v, ok := models.ParsePaymentStatus(cell(colPayment)); ok {
		item.PaymentStatus = v
	}

	if v, ok := parseAmount(cell(colPrice)); ok {
		item.Price = v
	}
	if v, ok := parseCount(cell(colQuantity)); ok {
		item.Quantity = v
	}

	item.DepositAmount = optionalAmount(cell(colDeposit))
	item.FinalPaymentAmount = optionalAmount(cell(colFinal))
	item.SoldPrice = optionalAmount(cell(colSoldPrc))
	if v, ok := parseCount(cell(colSoldQty)); ok {
		item.SoldQuantity = &v
	}

	if d := cell(colDate); d != "" {
		if _, err := time.Parse(models.DateLayout, d); err == nil {
			item.PurchaseDate = d
		}
	}

	if item.ImageURL == "" {
		item.ImageURL = PlaceholderImageURL(uuid.NewString()[:8])
	}

	return item
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// parseAmount accepts non-negative decimals.
func parseAmount(s string) (decimal.Decimal, bool) {
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero, false
	}
	return d, true
}

// optionalAmount treats unparseable and zero amounts as absent.
func optionalAmount(s string) decimal.NullDecimal {
	d, ok := parseAmount(s)
	if !ok || d.IsZero() {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// parseCount accepts integers of at least one.
func parseCount(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
