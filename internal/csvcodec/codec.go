// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package csvcodec converts collection items to and from the spreadsheet
// friendly CSV format used for backups, bulk import and the import template.
//
// Files start with a UTF-8 byte order mark so spreadsheet applications pick
// the right encoding, the header row is written unquoted and every data cell
// is wrapped in double quotes.
package csvcodec

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/gumi-collection/models"
	"github.com/shopspring/decimal"
)

// BOM is the UTF-8 byte order mark prepended to every produced file.
const BOM = "\ufeff"

// TemplateFileName is the suggested name of the empty import template.
const TemplateFileName = "求求你别再买了导入模板.csv"

const (
	numFields   = 16
	colName     = 0
	colSource   = 1
	colIP       = 2
	colChar     = 3
	colCategory = 4
	colPrice    = 5
	colQuantity = 6
	colStatus   = 7
	colPayment  = 8
	colDeposit  = 9
	colFinal    = 10
	colDate     = 11
	colSoldPrc  = 12
	colSoldQty  = 13
	colNotes    = 14
	colImage    = 15
)

// Header lists the column labels in file order.
var Header = []string{
	"名称", "来源类型", "IP", "角色", "分类", "购入单价", "购入数量", "当前状态",
	"付款状态", "定金金额", "尾款金额", "购入日期", "卖出单价", "卖出数量", "备注", "图片链接",
}

// ExportFileName returns gumi_collection_{YYYY-MM-DD}.csv for the given day.
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("gumi_collection_%s.csv", now.Format(models.DateLayout))
}

// Template returns the empty import template: the BOM and the header row.
func Template() string {
	return BOM + strings.Join(Header, ",")
}

// Export writes the BOM, the header row and one quoted row per item.
// Rows are separated by a single "\n" and the output has no trailing newline.
func Export(w io.Writer, items []models.CollectionItem) error {
	if _, err := io.WriteString(w, ExportString(items)); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingOutput, err)
	}
	return nil
}

// ExportString is Export into a string.
func ExportString(items []models.CollectionItem) string {
	var b strings.Builder
	b.WriteString(BOM)
	b.WriteString(strings.Join(Header, ","))

	for _, item := range items {
		b.WriteByte('\n')
		for i, cell := range MarshalItem(item) {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(quote(cell))
		}
	}

	return b.String()
}

// MarshalItem converts an item to its CSV cells in column order.
// Absent optional values become empty cells.
func MarshalItem(item models.CollectionItem) []string {
	row := make([]string, numFields)
	row[colName] = item.Name
	row[colSource] = string(item.SourceType)
	row[colIP] = item.IP
	row[colChar] = item.Character
	row[colCategory] = string(item.Category)
	row[colPrice] = item.Price.String()
	row[colQuantity] = strconv.Itoa(item.Quantity)
	row[colStatus] = string(item.Status)
	row[colPayment] = string(item.PaymentStatus)
	row[colDeposit] = nullDecimal(item.DepositAmount)
	row[colFinal] = nullDecimal(item.FinalPaymentAmount)
	row[colDate] = item.PurchaseDate
	row[colSoldPrc] = nullDecimal(item.SoldPrice)
	if item.SoldQuantity != nil {
		row[colSoldQty] = strconv.Itoa(*item.SoldQuantity)
	}
	row[colNotes] = item.Notes
	row[colImage] = item.ImageURL
	return row
}

func nullDecimal(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}

func quote(cell string) string {
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}
