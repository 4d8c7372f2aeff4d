package importing

import (
	"context"
	"io"

	"github.com/vfg2006/ads-import-api/internal/domain"
)

// ImportFileRequest descreve uma submissão de arquivo de estrutura de conta
type ImportFileRequest struct {
	AccountID   string
	AccountName string
	FileName    string

	// Source é o fluxo de bytes brutos do arquivo (UTF-16LE, BOM opcional)
	Source io.Reader

	// Size é o tamanho total em bytes quando conhecido (upload ou arquivo
	// local); zero quando desconhecido. Usado apenas para estimar progresso.
	Size int64
}

// Importer define a interface do pipeline de importação de estrutura de conta
type Importer interface {
	// ImportFile processa um arquivo de ponta a ponta: fingerprint,
	// criação no ledger (com dedup por hash), extração e inserção em lotes.
	// Reprocessamento do mesmo arquivo é um curto-circuito, não um erro.
	ImportFile(ctx context.Context, req ImportFileRequest) (*domain.ImportResultResponse, error)

	// GetImport busca uma entrada do ledger pelo id
	GetImport(id string) (*domain.ImportLedgerEntry, error)

	// ListImports lista as entradas mais recentes do ledger
	ListImports() ([]*domain.ImportLedgerEntry, error)

	// DeleteImport remove uma entrada do ledger junto com seus registros
	DeleteImport(id string) (*domain.DeleteImportResponse, error)
}
