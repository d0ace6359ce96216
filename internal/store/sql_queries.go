package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	tablePreferences = "preferences"

	columnNamespace = "namespace"
	columnKey       = "key"
	columnValue     = "value"
	columnUpdatedAt = "updated_at"
)

const upsertPreferenceSuffix = "ON CONFLICT (namespace, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"

// preferenceQueries builds the SQL of one namespace.
type preferenceQueries struct {
	builder   sq.StatementBuilderType
	namespace string
}

func (q preferenceQueries) get(key string) (string, []any, error) {
	return q.builder.
		Select(columnValue).
		From(tablePreferences).
		Where(sq.Eq{columnNamespace: q.namespace}).
		Where(sq.Eq{columnKey: key}).
		ToSql()
}

func (q preferenceQueries) put(key, value string, now time.Time) (string, []any, error) {
	return q.builder.
		Insert(tablePreferences).
		Columns(columnNamespace, columnKey, columnValue, columnUpdatedAt).
		Values(q.namespace, key, value, now).
		Suffix(upsertPreferenceSuffix).
		ToSql()
}

func (q preferenceQueries) remove(key string) (string, []any, error) {
	return q.builder.
		Delete(tablePreferences).
		Where(sq.Eq{columnNamespace: q.namespace}).
		Where(sq.Eq{columnKey: key}).
		ToSql()
}

func (q preferenceQueries) clear() (string, []any, error) {
	return q.builder.
		Delete(tablePreferences).
		Where(sq.Eq{columnNamespace: q.namespace}).
		ToSql()
}

func (q preferenceQueries) keys() (string, []any, error) {
	return q.builder.
		Select(columnKey).
		From(tablePreferences).
		Where(sq.Eq{columnNamespace: q.namespace}).
		OrderBy(columnKey).
		ToSql()
}
