package store

import (
	"fmt"

	"github.com/MKhiriev/gumi-collection/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	loadSummaries = `SELECT id, name, ip, character_name, category, status, purchase_date
		FROM item_summaries
		WHERE user_id = ?
		ORDER BY position;`

	maxSummaryPosition = `SELECT COALESCE(MAX(position), -1) FROM item_summaries;`

	clearSummaries = `DELETE FROM item_summaries;`

	saveSession = `INSERT INTO session (slot, user_id, login, token, created_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT (slot) DO UPDATE
		SET user_id = excluded.user_id, login = excluded.login, token = excluded.token, created_at = excluded.created_at;`

	loadSession = `SELECT user_id, login, token, created_at FROM session WHERE slot = 1;`

	clearSession = `DELETE FROM session;`
)

// buildInsertSummariesQuery writes summaries at consecutive positions
// starting from first.
func buildInsertSummariesQuery(userID int64, first int, summaries []models.ItemSummary) (string, []any, error) {
	insert := sq.Insert("item_summaries").
		Columns("position", "user_id", "id", "name", "ip", "character_name", "category", "status", "purchase_date")

	for i, s := range summaries {
		insert = insert.Values(first+i, userID, s.ID, s.Name, s.IP, s.Character, string(s.Category), string(s.Status), s.PurchaseDate)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
