package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-import-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-import-api/internal/domain"
)

const importLedgerTable = "import_ledger"

// ImportRepository é o contrato do ledger de importações: identidade por hash
// de conteúdo, progresso e transições de status. O estado processing só
// transita para completed ou failed, nunca de volta.
type ImportRepository interface {
	Create(entry *domain.ImportLedgerEntry) (*domain.CreateImportResult, error)
	GetByID(id string) (*domain.ImportLedgerEntry, error)
	ListRecent(limit int) ([]*domain.ImportLedgerEntry, error)
	UpdateProgress(importID string, progress int, stats domain.ImportStats) error
	Complete(importID string, stats domain.ImportStats) error
	Fail(importID string, cause string, stats domain.ImportStats) error
	Delete(importID string) (bool, error)
	FailStaleProcessing(olderThan time.Time, cause string) (int64, error)
	DeleteOlderThan(cutoff time.Time) (int64, error)
}

type importRepository struct {
	conn *postgres.Connection
}

func NewImportRepository(conn *postgres.Connection) ImportRepository {
	return &importRepository{
		conn: conn,
	}
}

const importColumns = `id, account_id, account_name, file_name, file_hash, imported_at, status, error,
	total_rows, campaigns, ad_groups, keywords, ads, processed_rows, progress`

// Create registra uma nova importação. Quando já existe uma entrada com o
// mesmo file_hash, devolve a entrada existente com AlreadyExists=true e o
// reprocessamento é bloqueado pelo chamador.
func (r *importRepository) Create(entry *domain.ImportLedgerEntry) (*domain.CreateImportResult, error) {
	existing, err := r.getByFileHash(entry.FileHash)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return &domain.CreateImportResult{Entry: existing, AlreadyExists: true}, nil
	}

	insertSQL, insertArgs, err := squirrel.
		Insert(importLedgerTable).
		Columns("id", "account_id", "account_name", "file_name", "file_hash", "imported_at", "status", "progress").
		Values(entry.ID, entry.AccountID, entry.AccountName, entry.FileName, entry.FileHash, entry.ImportedAt, entry.Status, entry.Progress).
		Suffix("ON CONFLICT (file_hash) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	result, err := r.conn.Exec(insertSQL, insertArgs...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return nil, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}

	// Outra submissão com o mesmo hash venceu a corrida: devolve a entrada dela
	if affected == 0 {
		existing, err = r.getByFileHash(entry.FileHash)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, fmt.Errorf("entrada do ledger não encontrada após conflito de hash: %s", entry.FileHash)
		}

		return &domain.CreateImportResult{Entry: existing, AlreadyExists: true}, nil
	}

	return &domain.CreateImportResult{Entry: entry, AlreadyExists: false}, nil
}

func (r *importRepository) GetByID(id string) (*domain.ImportLedgerEntry, error) {
	return r.getImport(squirrel.Eq{"id": id})
}

func (r *importRepository) getByFileHash(fileHash string) (*domain.ImportLedgerEntry, error) {
	return r.getImport(squirrel.Eq{"file_hash": fileHash})
}

func (r *importRepository) getImport(whereClause map[string]interface{}) (*domain.ImportLedgerEntry, error) {
	querySQL, queryArgs, err := squirrel.
		Select(importColumns).
		From(importLedgerTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(querySQL, queryArgs...)

	entry, err := r.deserializeImport(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return entry, nil
}

func (r *importRepository) ListRecent(limit int) ([]*domain.ImportLedgerEntry, error) {
	querySQL, queryArgs, err := squirrel.
		Select(importColumns).
		From(importLedgerTable).
		OrderBy("imported_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(querySQL, queryArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.ImportLedgerEntry, 0)

	for rows.Next() {
		entry, err := r.deserializeImport(rows)
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// UpdateProgress grava um snapshot consultivo de progresso enquanto a
// importação está em processamento
func (r *importRepository) UpdateProgress(importID string, progress int, stats domain.ImportStats) error {
	return r.update(importID, map[string]interface{}{
		"progress":       progress,
		"total_rows":     stats.TotalRows,
		"campaigns":      stats.Campaigns,
		"ad_groups":      stats.AdGroups,
		"keywords":       stats.Keywords,
		"ads":            stats.Ads,
		"processed_rows": stats.ProcessedRows,
	}, squirrel.Eq{"id": importID, "status": domain.ImportStatusProcessing})
}

func (r *importRepository) Complete(importID string, stats domain.ImportStats) error {
	return r.update(importID, map[string]interface{}{
		"status":         domain.ImportStatusCompleted,
		"progress":       100,
		"total_rows":     stats.TotalRows,
		"campaigns":      stats.Campaigns,
		"ad_groups":      stats.AdGroups,
		"keywords":       stats.Keywords,
		"ads":            stats.Ads,
		"processed_rows": stats.ProcessedRows,
	}, squirrel.Eq{"id": importID, "status": domain.ImportStatusProcessing})
}

func (r *importRepository) Fail(importID string, cause string, stats domain.ImportStats) error {
	return r.update(importID, map[string]interface{}{
		"status":         domain.ImportStatusFailed,
		"error":          cause,
		"total_rows":     stats.TotalRows,
		"campaigns":      stats.Campaigns,
		"ad_groups":      stats.AdGroups,
		"keywords":       stats.Keywords,
		"ads":            stats.Ads,
		"processed_rows": stats.ProcessedRows,
	}, squirrel.Eq{"id": importID, "status": domain.ImportStatusProcessing})
}

func (r *importRepository) update(importID string, values map[string]interface{}, whereClause squirrel.Eq) error {
	updateSQL, updateArgs, err := squirrel.
		Update(importLedgerTable).
		SetMap(values).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(updateSQL, updateArgs...)
	return err
}

func (r *importRepository) Delete(importID string) (bool, error) {
	deleteSQL, deleteArgs, err := squirrel.
		Delete(importLedgerTable).
		Where(squirrel.Eq{"id": importID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, err
	}

	result, err := r.conn.Exec(deleteSQL, deleteArgs...)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// FailStaleProcessing marca como failed importações presas em processing além
// do orçamento de execução (o aborto por orçamento deixa o ledger no último
// snapshot de progresso, sem transição terminal)
func (r *importRepository) FailStaleProcessing(olderThan time.Time, cause string) (int64, error) {
	updateSQL, updateArgs, err := squirrel.
		Update(importLedgerTable).
		Set("status", domain.ImportStatusFailed).
		Set("error", cause).
		Where(squirrel.Eq{"status": domain.ImportStatusProcessing}).
		Where(squirrel.Lt{"imported_at": olderThan}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	result, err := r.conn.Exec(updateSQL, updateArgs...)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func (r *importRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	deleteSQL, deleteArgs, err := squirrel.
		Delete(importLedgerTable).
		Where(squirrel.Lt{"imported_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	result, err := r.conn.Exec(deleteSQL, deleteArgs...)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *importRepository) deserializeImport(row rowScanner) (*domain.ImportLedgerEntry, error) {
	entry := &domain.ImportLedgerEntry{}

	if err := row.Scan(
		&entry.ID,
		&entry.AccountID,
		&entry.AccountName,
		&entry.FileName,
		&entry.FileHash,
		&entry.ImportedAt,
		&entry.Status,
		&entry.Error,
		&entry.Stats.TotalRows,
		&entry.Stats.Campaigns,
		&entry.Stats.AdGroups,
		&entry.Stats.Keywords,
		&entry.Stats.Ads,
		&entry.Stats.ProcessedRows,
		&entry.Progress,
	); err != nil {
		return nil, err
	}

	return entry, nil
}
