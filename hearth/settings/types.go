package settings

import (
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("user settings not found")

// handles user_settings reads
type Repository struct {
	db sqlx.QueryerContext
}

// a user_settings row keyed by column name. the columns are owned by the
// schema, this package only passes them through
type Settings map[string]any
