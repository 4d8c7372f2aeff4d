package domain

import (
	"time"
)

type ImportStatus string

const (
	ImportStatusProcessing ImportStatus = "processing"
	ImportStatusCompleted  ImportStatus = "completed"
	ImportStatusFailed     ImportStatus = "failed"
)

// ImportStats acumula os contadores de uma importação
type ImportStats struct {
	TotalRows     int `json:"total_rows"`
	Campaigns     int `json:"campaigns"`
	AdGroups      int `json:"ad_groups"`
	Keywords      int `json:"keywords"`
	Ads           int `json:"ads"`
	ProcessedRows int `json:"processed_rows"`
}

// ImportLedgerEntry registra a identidade, o status e as estatísticas de uma importação.
// A chave natural de deduplicação é o FileHash: duas submissões com o mesmo hash
// são a mesma importação lógica.
type ImportLedgerEntry struct {
	ID          string       `json:"id"`
	AccountID   string       `json:"account_id"`
	AccountName string       `json:"account_name"`
	FileName    string       `json:"file_name"`
	FileHash    string       `json:"file_hash"`
	ImportedAt  time.Time    `json:"imported_at"`
	Status      ImportStatus `json:"status"`
	Error       *string      `json:"error,omitempty"`
	Stats       ImportStats  `json:"stats"`
	Progress    int          `json:"progress"`
}

// CreateImportResult é o resultado da criação de uma entrada no ledger
type CreateImportResult struct {
	Entry         *ImportLedgerEntry
	AlreadyExists bool
}

// ImportResultResponse é a resposta estruturada do endpoint de importação
type ImportResultResponse struct {
	ImportID      string       `json:"import_id"`
	AlreadyExists bool         `json:"already_exists"`
	Status        ImportStatus `json:"status"`
	Stats         ImportStats  `json:"stats"`
	Error         *string      `json:"error,omitempty"`
}

// ImportByPathRequest é o corpo da requisição para importar um arquivo
// já presente no sistema de arquivos (exportações grandes demais para upload)
type ImportByPathRequest struct {
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
	Path        string `json:"path"`
}

type DeleteImportResponse struct {
	ImportID string `json:"import_id"`
	Deleted  bool   `json:"deleted"`
}
