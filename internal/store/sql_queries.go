package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const keyCacheTable = "key_cache"

// sqlite builds queries with "?" placeholders understood by go-sqlite3.
var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func selectItemQuery(key string) (string, []any, error) {
	return sqlite.Select("value").
		From(keyCacheTable).
		Where(sq.Eq{"id": key}).
		Limit(1).
		ToSql()
}

func upsertItemQuery(key, value string, now time.Time) (string, []any, error) {
	return sqlite.Insert(keyCacheTable).
		Columns("id", "value", "updated_at").
		Values(key, value, now).
		Suffix("ON CONFLICT(id) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func deleteItemQuery(key string) (string, []any, error) {
	return sqlite.Delete(keyCacheTable).
		Where(sq.Eq{"id": key}).
		ToSql()
}
