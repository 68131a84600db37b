package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jmoiron/sqlx"
)

// creates a new settings repository
func NewRepository(db sqlx.QueryerContext) *Repository {
	return &Repository{db: db}
}

// loads the first settings row owned by userID. returns ErrNotFound when
// the user has no row
func (r *Repository) FindByUser(ctx context.Context, userID int64) (Settings, error) {
	query, args, err := queryFindByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to build settings query: %w", err)
	}

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings for user %d: %w", userID, err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to load settings for user %d: %w", userID, err)
		}

		return nil, ErrNotFound
	}

	columnTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("failed to read settings columns: %w", err)
	}

	row := make(map[string]any)
	if err := rows.MapScan(row); err != nil {
		return nil, fmt.Errorf("failed to scan settings for user %d: %w", userID, err)
	}

	dbTypes := make(map[string]string, len(columnTypes))
	for _, ct := range columnTypes {
		dbTypes[ct.Name()] = strings.ToUpper(ct.DatabaseTypeName())
	}

	return normalize(row, dbTypes), nil
}

// encoding/json would base64 raw bytes. json columns pass through as JSON,
// bytea stays binary (base64 on the wire) and any other bytes are text when
// they are valid UTF-8
func normalize(row map[string]any, dbTypes map[string]string) Settings {
	out := make(Settings, len(row))

	for column, value := range row {
		switch dbTypes[column] {
		case "JSON", "JSONB":
			value = jsonValue(value)
		case "BYTEA":
		default:
			if raw, ok := value.([]byte); ok && utf8.Valid(raw) {
				value = string(raw)
			}
		}

		out[column] = value
	}

	return out
}

func jsonValue(value any) any {
	var raw []byte

	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return value
	}

	if json.Valid(raw) {
		return json.RawMessage(raw)
	}

	return string(raw)
}
