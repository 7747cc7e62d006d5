package store

import (
	"fmt"

	"github.com/MKhiriev/gumi-collection/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (login, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, login, password_hash, created_at;`

	findUserByLogin = `SELECT user_id, login, password_hash, created_at
    FROM users
    WHERE login = $1;`

	getProfile = `SELECT user_id, name, bio, avatar, updated_at
    FROM profiles
    WHERE user_id = $1;`

	upsertProfile = `INSERT INTO profiles (user_id, name, bio, avatar, updated_at)
    VALUES ($1, $2, $3, $4, now())
    ON CONFLICT (user_id) DO UPDATE
    SET name = EXCLUDED.name, bio = EXCLUDED.bio, avatar = EXCLUDED.avatar, updated_at = now()
    RETURNING user_id, name, bio, avatar, updated_at;`

	countItems = `SELECT COUNT(*) FROM collection_items WHERE user_id = $1;`

	deleteAllItems = `DELETE FROM collection_items WHERE user_id = $1;`
)

const itemsTable = "collection_items"

// itemColumns is the scan order used by scanItem.
var itemColumns = []string{
	"id", "user_id", "name", "ip", "character_name", "category", "source_type",
	"price", "quantity", "payment_status", "deposit_amount", "final_payment_amount",
	"status", "sold_price", "sold_quantity", "purchase_date", "notes", "image_url",
	"is_pinned", "is_reminder_enabled", "created_at",
}

// itemPageOrder puts pinned items first, then the newest purchases. Items
// without a date sort after dated ones.
var itemPageOrder = []string{"is_pinned DESC", "purchase_date DESC", "created_at DESC"}

// psql renders $n placeholders for PostgreSQL.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildItemPageQuery(req models.PageRequest) (string, []any, error) {
	query, args, err := psql.
		Select(itemColumns...).
		From(itemsTable).
		Where(sq.Eq{"user_id": req.UserID}).
		OrderBy(itemPageOrder...).
		Limit(uint64(req.Limit)).
		Offset(uint64(req.Offset)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildAllItemsQuery(userID int64) (string, []any, error) {
	query, args, err := psql.
		Select(itemColumns...).
		From(itemsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy(itemPageOrder...).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildItemQuery(userID int64, id string) (string, []any, error) {
	query, args, err := psql.
		Select(itemColumns...).
		From(itemsTable).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// upsertItemConflict updates every user-editable column. The WHERE clause
// keeps an id owned by another account untouched, in which case no row is
// returned.
const upsertItemConflict = `ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    ip = EXCLUDED.ip,
    character_name = EXCLUDED.character_name,
    category = EXCLUDED.category,
    source_type = EXCLUDED.source_type,
    price = EXCLUDED.price,
    quantity = EXCLUDED.quantity,
    payment_status = EXCLUDED.payment_status,
    deposit_amount = EXCLUDED.deposit_amount,
    final_payment_amount = EXCLUDED.final_payment_amount,
    status = EXCLUDED.status,
    sold_price = EXCLUDED.sold_price,
    sold_quantity = EXCLUDED.sold_quantity,
    purchase_date = EXCLUDED.purchase_date,
    notes = EXCLUDED.notes,
    image_url = EXCLUDED.image_url,
    is_pinned = EXCLUDED.is_pinned,
    is_reminder_enabled = EXCLUDED.is_reminder_enabled
WHERE collection_items.user_id = EXCLUDED.user_id
RETURNING created_at`

func buildUpsertItemQuery(item models.CollectionItem) (string, []any, error) {
	query, args, err := psql.
		Insert(itemsTable).
		Columns(itemColumns[:len(itemColumns)-1]...).
		Values(
			item.ID, item.UserID, item.Name, item.IP, item.Character,
			string(item.Category), string(item.SourceType),
			item.Price, item.Quantity, string(item.PaymentStatus),
			item.DepositAmount, item.FinalPaymentAmount,
			string(item.Status), item.SoldPrice, item.SoldQuantity,
			item.PurchaseDate, item.Notes, item.ImageURL,
			item.IsPinned, item.IsReminderEnabled,
		).
		Suffix(upsertItemConflict).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildPatchItemQuery(patch models.ItemPatch) (string, []any, error) {
	update := psql.Update(itemsTable)
	if patch.IsPinned != nil {
		update = update.Set("is_pinned", *patch.IsPinned)
	}
	if patch.IsReminderEnabled != nil {
		update = update.Set("is_reminder_enabled", *patch.IsReminderEnabled)
	}

	query, args, err := update.
		Where(sq.Eq{"id": patch.ID, "user_id": patch.UserID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildFacetQuery lists the distinct non-empty values of column.
func buildFacetQuery(userID int64, column string) (string, []any, error) {
	query, args, err := psql.
		Select("DISTINCT " + column).
		From(itemsTable).
		Where(sq.And{sq.Eq{"user_id": userID}, sq.NotEq{column: ""}}).
		OrderBy(column).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
