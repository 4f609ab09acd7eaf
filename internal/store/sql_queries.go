package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-sync-keeper/models"
)

const (
	syncRecordColumns = `r.record_id, r.uuid, r.original_uuid, r.creator, r.database_version,
		r.timestamp, r.retry_count, r.state, r.contained_classes`

	remoteServerColumns = `server_id, uuid, nickname, type, address, username, password,
		child_username, child_password_hash, last_sync, classes_sent, classes_received, disabled`
)

func buildGetGlobalPropertyQuery(b sq.StatementBuilderType, name string) (string, []any, error) {
	query, args, err := b.Select("value").
		From("global_property").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSetGlobalPropertyQuery upserts one property. Both dialects accept
// the ON CONFLICT clause.
func buildSetGlobalPropertyQuery(b sq.StatementBuilderType, name, value string) (string, []any, error) {
	query, args, err := b.Insert("global_property").
		Columns("name", "value").
		Values(name, value).
		Suffix("ON CONFLICT (name) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetConceptWordsQuery(b sq.StatementBuilderType, conceptUUID string) (string, []any, error) {
	query, args, err := b.Select("concept_uuid", "concept_name_uuid", "word", "locale").
		From("concept_word").
		Where(sq.Eq{"concept_uuid": conceptUUID}).
		OrderBy("word", "locale", "concept_name_uuid").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteConceptNameWordsQuery(b sq.StatementBuilderType, nameUUID string) (string, []any, error) {
	query, args, err := b.Delete("concept_word").
		Where(sq.Eq{"concept_name_uuid": nameUUID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildInsertConceptWordsQuery writes all words of one name in a single
// statement. words must not be empty.
func buildInsertConceptWordsQuery(b sq.StatementBuilderType, nameUUID string, words []models.ConceptWord) (string, []any, error) {
	q := b.Insert("concept_word").Columns("concept_uuid", "concept_name_uuid", "word", "locale")
	for _, w := range words {
		q = q.Values(w.ConceptUUID, nameUUID, w.Word, w.Locale)
	}
	query, args, err := q.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func stateStrings(states []models.SyncRecordState) []string {
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = string(s)
	}
	return out
}

// buildGetSyncRecordsQuery selects the queue in delivery order. A non-zero
// ServerID joins the delivery sub-state of that child.
func buildGetSyncRecordsQuery(b sq.StatementBuilderType, filter SyncRecordFilter) (string, []any, error) {
	q := b.Select(syncRecordColumns).From("sync_record r")

	if filter.ServerID != 0 {
		q = q.Join("sync_server_record s ON s.record_id = r.record_id").
			Where(sq.Eq{"s.server_id": filter.ServerID})
		if len(filter.States) > 0 {
			q = q.Where(sq.Eq{"s.state": stateStrings(filter.States)})
		}
	} else if len(filter.States) > 0 {
		q = q.Where(sq.Eq{"r.state": stateStrings(filter.States)})
	}

	q = q.OrderBy("r.timestamp", "r.record_id")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetSyncRecordsBetweenQuery(b sq.StatementBuilderType, from, to time.Time) (string, []any, error) {
	query, args, err := b.Select(syncRecordColumns).
		From("sync_record r").
		Where(sq.GtOrEq{"r.timestamp": from}).
		Where(sq.Lt{"r.timestamp": to}).
		OrderBy("r.timestamp", "r.record_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildGetSyncRecordQuery selects a single record by an equality filter,
// ordered so that the oldest or newest match comes first.
func buildGetSyncRecordQuery(b sq.StatementBuilderType, where sq.Sqlizer, newestFirst bool) (string, []any, error) {
	q := b.Select(syncRecordColumns).From("sync_record r")
	if where != nil {
		q = q.Where(where)
	}
	if newestFirst {
		q = q.OrderBy("r.timestamp DESC", "r.record_id DESC")
	} else {
		q = q.OrderBy("r.timestamp", "r.record_id")
	}

	query, args, err := q.Limit(1).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetItemsQuery(b sq.StatementBuilderType, recordIDs []int64) (string, []any, error) {
	query, args, err := b.Select("record_id", "item_key", "state", "contained_type", "content").
		From("sync_item").
		Where(sq.Eq{"record_id": recordIDs}).
		OrderBy("record_id", "position").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetServerRecordsQuery(b sq.StatementBuilderType, recordIDs []int64) (string, []any, error) {
	query, args, err := b.Select("server_record_id", "record_id", "server_id", "state", "retry_count").
		From("sync_server_record").
		Where(sq.Eq{"record_id": recordIDs}).
		OrderBy("record_id", "server_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildCountByStateQuery groups the record states, or the server record
// states of one child.
func buildCountByStateQuery(b sq.StatementBuilderType, serverID int64) (string, []any, error) {
	var q sq.SelectBuilder
	if serverID != 0 {
		q = b.Select("state", "COUNT(*)").
			From("sync_server_record").
			Where(sq.Eq{"server_id": serverID}).
			GroupBy("state")
	} else {
		q = b.Select("state", "COUNT(*)").
			From("sync_record").
			GroupBy("state")
	}

	query, args, err := q.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
