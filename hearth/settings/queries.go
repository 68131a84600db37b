package settings

import (
	"codeberg.org/hearth/server/internal/database"
	sq "github.com/Masterminds/squirrel"
)

const (
	table      = "user_settings"
	userColumn = `"user"` // reserved word in postgres
)

// SELECT * FROM user_settings WHERE "user" = $1 LIMIT 1
func queryFindByUser(userID int64) (string, []any, error) {
	return database.Builder().
		Select("*").
		From(table).
		Where(sq.Eq{userColumn: userID}).
		Limit(1).
		ToSql()
}
