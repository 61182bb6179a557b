package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/veridian-labs/dirsearch/internal/core/domain"
	"github.com/veridian-labs/dirsearch/internal/core/ports/driven"
	"github.com/veridian-labs/dirsearch/internal/logger"
)

// entryStore implements driven.EntryStore.
type entryStore struct {
	store *Store
}

var _ driven.EntryStore = (*entryStore)(nil)

// ReplaceEntries atomically replaces all entries of a collection.
// The FTS index follows via triggers on the entries table.
func (s *entryStore) ReplaceEntries(ctx context.Context, collectionID string, entries []domain.Entry) error {
	if collectionID == "" {
		return domain.ErrInvalidInput
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM entries WHERE collection_id = ?", collectionID); err != nil {
		return fmt.Errorf("clearing previous entries: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO entries (id, collection_id, name, tags, contact_info, entry_data, search_text, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for i := range entries {
		entry := &entries[i]
		if entry.CreatedAt.IsZero() {
			entry.CreatedAt = now
		}
		entry.UpdatedAt = now

		tagsJSON, err := json.Marshal(entry.Tags)
		if err != nil {
			return fmt.Errorf("marshalling tags: %w", err)
		}
		contactJSON, err := json.Marshal(entry.ContactInfo)
		if err != nil {
			return fmt.Errorf("marshalling contact info: %w", err)
		}
		dataJSON, err := json.Marshal(entry.EntryData)
		if err != nil {
			return fmt.Errorf("marshalling entry data: %w", err)
		}

		if _, err := stmt.ExecContext(ctx, entry.ID, collectionID, entry.Name,
			string(tagsJSON), string(contactJSON), string(dataJSON),
			entry.SearchText(), entry.CreatedAt, entry.UpdatedAt); err != nil {
			return fmt.Errorf("saving entry %s: %w", entry.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// CountByCollection returns the number of entries in a collection.
func (s *entryStore) CountByCollection(ctx context.Context, collectionID string) (int, error) {
	var count int
	err := s.store.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM entries WHERE collection_id = ?", collectionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting entries: %w", err)
	}
	return count, nil
}

// Search executes one query within the tenant-filtered candidate set.
func (s *entryStore) Search(ctx context.Context, q domain.SearchQuery) ([]domain.ScoredEntry, error) {
	// Preconditions: an empty candidate set means nothing is accessible.
	if len(q.CollectionIDs) == 0 {
		return []domain.ScoredEntry{}, nil
	}

	switch q.Mode {
	case domain.SearchModeExact:
		return s.searchPlain(ctx, q, true)
	case domain.SearchModeFullText:
		return s.searchFullText(ctx, q)
	default:
		return s.searchPlain(ctx, q, false)
	}
}

// searchPlain handles the exact and substring modes: name predicate and
// tag overlap in SQL, word-boundary structured filters applied to the
// decoded rows, store-native order, truncation last.
func (s *entryStore) searchPlain(ctx context.Context, q domain.SearchQuery, exact bool) ([]domain.ScoredEntry, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT id, collection_id, name, tags, contact_info, entry_data, created_at, updated_at
		FROM entries WHERE collection_id IN (`)
	sb.WriteString(placeholders(len(q.CollectionIDs)))
	sb.WriteString(")")

	args := make([]any, 0, len(q.CollectionIDs)+len(q.Tags)+1)
	for _, id := range q.CollectionIDs {
		args = append(args, id)
	}

	if q.NameQuery != "" {
		if exact {
			sb.WriteString(" AND name = ?")
			args = append(args, q.NameQuery)
		} else {
			sb.WriteString(` AND name LIKE ? ESCAPE '\'`)
			args = append(args, "%"+escapeLike(q.NameQuery)+"%")
		}
	}

	appendTagClause(&sb, &args, q.Tags)

	rows, err := s.store.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	results := make([]domain.ScoredEntry, 0)
	limit := q.EffectiveLimit()
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		if !entry.MatchesFilters(q.Filters) {
			continue
		}
		results = append(results, domain.ScoredEntry{Entry: *entry})
		if len(results) >= limit {
			break
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}

	return results, nil
}

// searchFullText handles ranked full-text mode. All terms from the name
// query and every filter value are folded into one AND-combined match
// expression and ranked together; mixing the stemmed index with literal
// substring filters would silently drop correct results. A match
// expression the engine cannot parse falls back to substring mode and
// is never surfaced to the caller.
func (s *entryStore) searchFullText(ctx context.Context, q domain.SearchQuery) ([]domain.ScoredEntry, error) {
	expr := buildMatchExpression(q.NameQuery, q.Filters)
	if expr == "" {
		// Nothing to rank against: behave like an unfiltered substring
		// query so tag filters still apply.
		plain := q
		plain.NameQuery = ""
		plain.Filters = nil
		return s.searchPlain(ctx, plain, false)
	}

	var sb strings.Builder
	sb.WriteString(`
		SELECT e.id, e.collection_id, e.name, e.tags, e.contact_info, e.entry_data, e.created_at, e.updated_at,
			bm25(entries_fts) AS rank
		FROM entries_fts
		JOIN entries e ON e.id = entries_fts.entry_id
		WHERE entries_fts MATCH ? AND e.collection_id IN (`)
	sb.WriteString(placeholders(len(q.CollectionIDs)))
	sb.WriteString(")")

	args := make([]any, 0, len(q.CollectionIDs)+len(q.Tags)+2)
	args = append(args, expr)
	for _, id := range q.CollectionIDs {
		args = append(args, id)
	}

	appendTagClauseFor(&sb, &args, q.Tags, "e.tags")

	sb.WriteString(" ORDER BY rank LIMIT ?")
	args = append(args, q.EffectiveLimit())

	results, err := s.collectRanked(ctx, sb.String(), args)
	if err != nil {
		// Pathological query text the FTS engine cannot parse: degrade
		// to substring mode rather than surfacing a parse error. The
		// parse error can surface either at query time or on the first
		// row step depending on the driver.
		logger.Warn("Full-text expression %q failed (%v); falling back to substring mode", expr, err)
		fallback := q
		fallback.Mode = domain.SearchModeSubstring
		return s.searchPlain(ctx, fallback, false)
	}

	return results, nil
}

func (s *entryStore) collectRanked(ctx context.Context, query string, args []any) ([]domain.ScoredEntry, error) {
	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]domain.ScoredEntry, 0)
	for rows.Next() {
		var rank float64
		entry, err := scanEntryWithRank(rows, &rank)
		if err != nil {
			return nil, err
		}
		// bm25 reports better matches as lower values; negate so
		// callers see descending relevance.
		results = append(results, domain.ScoredEntry{Entry: *entry, Score: -rank})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// buildMatchExpression tokenizes the name query plus every filter value
// into one AND-combined FTS expression. Tokens are passed through as
// written; the caller handles engine parse failures by falling back.
func buildMatchExpression(nameQuery string, filters map[string]string) string {
	terms := strings.Fields(nameQuery)
	for _, value := range filters {
		terms = append(terms, strings.Fields(value)...)
	}
	return strings.Join(terms, " AND ")
}

// appendTagClause adds the set-overlap tag predicate: the entry's JSON
// tag array must intersect the requested list, case-insensitively.
func appendTagClause(sb *strings.Builder, args *[]any, tags []string) {
	appendTagClauseFor(sb, args, tags, "tags")
}

func appendTagClauseFor(sb *strings.Builder, args *[]any, tags []string, column string) {
	if len(tags) == 0 {
		return
	}
	fmt.Fprintf(sb, ` AND EXISTS (
		SELECT 1 FROM json_each(%s) WHERE lower(json_each.value) IN (%s))`,
		column, placeholders(len(tags)))
	for _, tag := range tags {
		*args = append(*args, strings.ToLower(tag))
	}
}

// escapeLike escapes LIKE wildcards in user-supplied query text.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

// scanEntry scans an entry from *sql.Rows.
func scanEntry(rows *sql.Rows) (*domain.Entry, error) {
	var entry domain.Entry
	var tagsJSON, contactJSON, dataJSON string
	var createdAt, updatedAt sql.NullTime

	if err := rows.Scan(&entry.ID, &entry.CollectionID, &entry.Name,
		&tagsJSON, &contactJSON, &dataJSON, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("scanning entry: %w", err)
	}

	return decodeEntry(&entry, tagsJSON, contactJSON, dataJSON, createdAt, updatedAt)
}

// scanEntryWithRank scans an entry plus its bm25 rank.
func scanEntryWithRank(rows *sql.Rows, rank *float64) (*domain.Entry, error) {
	var entry domain.Entry
	var tagsJSON, contactJSON, dataJSON string
	var createdAt, updatedAt sql.NullTime

	if err := rows.Scan(&entry.ID, &entry.CollectionID, &entry.Name,
		&tagsJSON, &contactJSON, &dataJSON, &createdAt, &updatedAt, rank); err != nil {
		return nil, fmt.Errorf("scanning ranked entry: %w", err)
	}

	return decodeEntry(&entry, tagsJSON, contactJSON, dataJSON, createdAt, updatedAt)
}

func decodeEntry(
	entry *domain.Entry,
	tagsJSON, contactJSON, dataJSON string,
	createdAt, updatedAt sql.NullTime,
) (*domain.Entry, error) {
	if err := json.Unmarshal([]byte(tagsJSON), &entry.Tags); err != nil {
		return nil, fmt.Errorf("unmarshalling tags: %w", err)
	}
	if err := json.Unmarshal([]byte(contactJSON), &entry.ContactInfo); err != nil {
		return nil, fmt.Errorf("unmarshalling contact info: %w", err)
	}
	if err := json.Unmarshal([]byte(dataJSON), &entry.EntryData); err != nil {
		return nil, fmt.Errorf("unmarshalling entry data: %w", err)
	}

	if createdAt.Valid {
		entry.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		entry.UpdatedAt = updatedAt.Time
	}

	return entry, nil
}
