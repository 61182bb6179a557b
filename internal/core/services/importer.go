package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/veridian-labs/dirsearch/internal/core/domain"
	"github.com/veridian-labs/dirsearch/internal/core/ports/driven"
	"github.com/veridian-labs/dirsearch/internal/core/ports/driving"
	"github.com/veridian-labs/dirsearch/internal/logger"
	"github.com/veridian-labs/dirsearch/internal/mappers"
)

// Ensure ImportService implements the interface.
var _ driving.ImportService = (*ImportService)(nil)

// ImportService runs the administrative CSV import pipeline: map rows
// through the entry-type mapper, validate against the schema, then
// replace the collection's entries. Malformed rows are skipped and
// counted; only a missing or unreadable file aborts the run.
type ImportService struct {
	collectionStore driven.CollectionStore
	entryStore      driven.EntryStore
	schemaRegistry  driven.SchemaRegistry
	mappers         *mappers.Registry
}

// NewImportService creates a new import service.
func NewImportService(
	collectionStore driven.CollectionStore,
	entryStore driven.EntryStore,
	schemaRegistry driven.SchemaRegistry,
	mapperRegistry *mappers.Registry,
) *ImportService {
	return &ImportService{
		collectionStore: collectionStore,
		entryStore:      entryStore,
		schemaRegistry:  schemaRegistry,
		mappers:         mapperRegistry,
	}
}

// ImportCSV maps, validates and persists one CSV file into a collection.
func (s *ImportService) ImportCSV(ctx context.Context, req domain.ImportRequest) (*domain.ImportResult, error) {
	if req.Path == "" || req.TenantID == "" || req.CollectionName == "" || req.EntryType == "" {
		return nil, fmt.Errorf("%w: path, tenant ID, collection name and entry type are required",
			domain.ErrInvalidInput)
	}

	mapper, err := s.mappers.Get(req.EntryType)
	if err != nil {
		return nil, err
	}

	var schema *domain.SchemaDef
	if req.SchemaFile != "" {
		schema, err = s.schemaRegistry.LoadSchema(req.SchemaFile)
		if err != nil {
			return nil, fmt.Errorf("loading schema %s: %w", req.SchemaFile, err)
		}
	}

	entries, stats, err := s.parseFile(req.Path, mapper, schema)
	if err != nil {
		return nil, err
	}

	collection, err := s.upsertCollection(ctx, req)
	if err != nil {
		return nil, err
	}

	for i := range entries {
		entries[i].CollectionID = collection.ID
	}
	if err := s.entryStore.ReplaceEntries(ctx, collection.ID, entries); err != nil {
		return nil, fmt.Errorf("replacing entries: %w", err)
	}

	logger.Info("Imported %d/%d rows into collection %s (%d skipped)",
		stats.Parsed, stats.Total, collection.Name, stats.Skipped)

	return &domain.ImportResult{Collection: *collection, Stats: stats}, nil
}

// parseFile reads the CSV and maps each data row to an entry. Rows the
// mapper or schema rejects are skipped and counted.
func (s *ImportService) parseFile(
	path string, mapper mappers.FieldMapper, schema *domain.SchemaDef,
) ([]domain.Entry, domain.ImportStats, error) {
	var stats domain.ImportStats

	file, err := os.Open(path)
	if err != nil {
		return nil, stats, fmt.Errorf("opening CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // tolerate ragged rows; short rows read as blanks

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, stats, fmt.Errorf("%w: CSV file has no header row", domain.ErrInvalidInput)
		}
		return nil, stats, fmt.Errorf("reading CSV header: %w", err)
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}

	var entries []domain.Entry //nolint:prealloc // row count unknown
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			stats.Total++
			stats.Skipped++
			logger.Debug("Skipping unreadable row %d: %v", stats.Total, err)
			continue
		}
		stats.Total++

		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = strings.TrimSpace(record[i])
			}
		}

		mapped, err := mapper.Map(row)
		if err != nil {
			stats.Skipped++
			logger.Debug("Skipping row %d: %v", stats.Total, err)
			continue
		}
		if mapped.Name == "" {
			stats.Skipped++
			logger.Debug("Skipping row %d: missing name", stats.Total)
			continue
		}

		if schema != nil {
			if field, err := schema.ValidateEntry(mapped.Name, mapped.EntryData); err != nil {
				stats.Skipped++
				logger.Debug("Skipping row %d (%s): invalid field %q: %v",
					stats.Total, mapped.Name, field, err)
				continue
			}
		}

		entries = append(entries, domain.Entry{
			ID:          uuid.New().String(),
			Name:        mapped.Name,
			Tags:        mapped.Tags,
			ContactInfo: mapped.ContactInfo,
			EntryData:   mapped.EntryData,
		})
		stats.Parsed++
	}

	return entries, stats, nil
}

// upsertCollection reuses the tenant's existing collection of the same
// name or creates a new one. Re-importing under a different entry type
// is rejected; the schema governs the stored data.
func (s *ImportService) upsertCollection(
	ctx context.Context, req domain.ImportRequest,
) (*domain.Collection, error) {
	existing, err := s.collectionStore.GetByName(ctx, req.TenantID, req.CollectionName)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("looking up collection: %w", err)
	}

	var collection domain.Collection
	if existing != nil {
		if existing.EntryType != req.EntryType {
			return nil, fmt.Errorf("%w: collection %s has entry type %s, not %s",
				domain.ErrInvalidInput, existing.Name, existing.EntryType, req.EntryType)
		}
		collection = *existing
		if req.Description != "" {
			collection.Description = req.Description
		}
		if req.SchemaFile != "" {
			collection.SchemaFile = req.SchemaFile
		}
	} else {
		collection = domain.Collection{
			ID:          uuid.New().String(),
			TenantID:    req.TenantID,
			Name:        req.CollectionName,
			Description: req.Description,
			EntryType:   req.EntryType,
			SchemaFile:  req.SchemaFile,
		}
	}

	if err := s.collectionStore.Save(ctx, collection); err != nil {
		return nil, fmt.Errorf("saving collection: %w", err)
	}
	return &collection, nil
}
