package importing

import (
	"bytes"
	"context"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-import-api/infrastructure/repository"
	"github.com/vfg2006/ads-import-api/internal/config"
	"github.com/vfg2006/ads-import-api/internal/domain"
	"github.com/vfg2006/ads-import-api/pkg/utils"
)

const (
	// Intervalo de linhas entre atualizações consultivas de progresso
	progressRowInterval = 100_000

	// Intervalo de linhas entre verificações de cancelamento do contexto
	budgetCheckInterval = 1024
)

// Service implementa o pipeline de importação de estrutura de conta.
// Cada importação é conduzida por um único consumidor sequencial: as linhas
// são processadas na ordem do arquivo e os conjuntos de deduplicação não
// precisam de lock. Importações de arquivos distintos rodam como pipelines
// independentes sem estado mutável compartilhado além do ledger.
type Service struct {
	cfg        *config.Config
	importRepo repository.ImportRepository
	recordRepo repository.RecordRepository
}

// NewService cria uma nova instância do serviço de importação
func NewService(
	cfg *config.Config,
	importRepo repository.ImportRepository,
	recordRepo repository.RecordRepository,
) Importer {
	return &Service{
		cfg:        cfg,
		importRepo: importRepo,
		recordRepo: recordRepo,
	}
}

// ImportFile processa uma submissão de ponta a ponta. Sempre que o ledger já
// tem uma entrada, a resposta carrega o id e as estatísticas acumuladas,
// inclusive nas falhas tardias de lote (resultado geral de falha com as
// estatísticas do que foi efetivamente gravado).
func (s *Service) ImportFile(ctx context.Context, req ImportFileRequest) (*domain.ImportResultResponse, error) {
	prefix := make([]byte, fingerprintPrefixSize)
	n, err := io.ReadFull(req.Source, prefix)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, errors.Wrap(err, "falha ao ler o prefixo do arquivo")
	}
	prefix = prefix[:n]

	entry := &domain.ImportLedgerEntry{
		AccountID:   req.AccountID,
		AccountName: req.AccountName,
		FileName:    req.FileName,
		FileHash:    fingerprint(prefix),
		ImportedAt:  time.Now().UTC(),
		Status:      domain.ImportStatusProcessing,
	}

	entry.ID, err = utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "falha ao gerar o id da importação")
	}

	created, err := s.importRepo.Create(entry)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao criar a entrada no ledger")
	}

	// Mesmo hash de conteúdo: mesma importação lógica. Curto-circuito sem
	// reprocessar e sem nenhuma inserção de lote adicional.
	if created.AlreadyExists {
		logrus.WithFields(logrus.Fields{
			"import_id": created.Entry.ID,
			"file_hash": created.Entry.FileHash,
			"file_name": req.FileName,
		}).Info("Arquivo já importado; reaproveitando a entrada existente do ledger")

		return &domain.ImportResultResponse{
			ImportID:      created.Entry.ID,
			AlreadyExists: true,
			Status:        created.Entry.Status,
			Stats:         created.Entry.Stats,
			Error:         created.Entry.Error,
		}, nil
	}

	logrus.WithFields(logrus.Fields{
		"import_id":  entry.ID,
		"account_id": req.AccountID,
		"file_name":  req.FileName,
		"file_size":  req.Size,
	}).Info("Iniciando processamento do arquivo de estrutura de conta")

	budget := time.Duration(s.cfg.Import.ExecutionBudgetSeconds) * time.Second
	runCtx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	// O prefixo consumido pelo fingerprint volta para a frente do fluxo
	source := io.MultiReader(bytes.NewReader(prefix), req.Source)

	stats, runErr := s.processStream(runCtx, entry.ID, req, source)

	response := &domain.ImportResultResponse{
		ImportID: entry.ID,
		Status:   domain.ImportStatusCompleted,
		Stats:    stats,
	}

	if runErr != nil {
		cause := runErr.Error()
		response.Status = domain.ImportStatusFailed
		response.Error = &cause

		if failErr := s.importRepo.Fail(entry.ID, cause, stats); failErr != nil {
			logrus.WithField("import_id", entry.ID).WithError(failErr).
				Error("Falha ao registrar o estado de erro no ledger")
		}

		return response, runErr
	}

	if err := s.importRepo.Complete(entry.ID, stats); err != nil {
		return nil, errors.Wrap(err, "falha ao concluir a entrada no ledger")
	}

	logrus.WithFields(logrus.Fields{
		"import_id":  entry.ID,
		"total_rows": stats.TotalRows,
		"campaigns":  stats.Campaigns,
		"ad_groups":  stats.AdGroups,
		"keywords":   stats.Keywords,
		"ads":        stats.Ads,
	}).Info("Importação concluída com sucesso")

	return response, nil
}

// processStream consome o fluxo decodificado linha a linha: a primeira linha
// constrói o mapeamento de cabeçalho, as demais passam pelo classificador.
// Erros de linha são recuperados localmente; só erros estruturais, de leitura
// ou de orçamento interrompem o pipeline.
func (s *Service) processStream(
	ctx context.Context,
	importID string,
	req ImportFileRequest,
	source io.Reader,
) (domain.ImportStats, error) {
	stats := domain.ImportStats{}
	lines := newLineReader(source)

	headerLine, ok, err := lines.Next()
	if err != nil {
		return stats, errors.Wrap(err, "falha ao ler o cabeçalho do arquivo")
	}
	if !ok {
		return stats, errors.New("arquivo vazio: nenhuma linha de cabeçalho encontrada")
	}

	mapping, err := newHeaderMapping(strings.Split(headerLine, "\t"))
	if err != nil {
		return stats, err
	}

	ext := newExtractor(importID, req.AccountID, mapping)
	batch := newBatcher(s.recordRepo, importID, &stats)

	for {
		if stats.ProcessedRows%budgetCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return stats, errors.Wrap(ctx.Err(), "orçamento de execução excedido")
			default:
			}
		}

		line, ok, err := lines.Next()
		if err != nil {
			return stats, errors.Wrap(err, "falha ao ler o arquivo")
		}
		if !ok {
			break
		}

		stats.TotalRows++
		ext.processRow(strings.Split(line, "\t"), batch)
		stats.ProcessedRows++

		if stats.ProcessedRows%progressRowInterval == 0 {
			progress := estimateProgress(lines.BytesRead(), req.Size)
			if err := s.importRepo.UpdateProgress(importID, progress, stats); err != nil {
				// Progresso é consultivo: a falha não interrompe o pipeline
				logrus.WithField("import_id", importID).WithError(err).
					Warn("Falha ao atualizar o progresso da importação")
			}
		}
	}

	batch.flushAll()

	if flushErr := batch.FlushError(); flushErr != nil {
		return stats, errors.Wrap(flushErr, "falha ao gravar lote de registros")
	}

	return stats, nil
}

// estimateProgress estima o progresso pela fração de bytes já consumidos.
// Fica em zero quando o tamanho total é desconhecido e nunca reporta 100
// antes da conclusão.
func estimateProgress(bytesRead, totalSize int64) int {
	if totalSize <= 0 {
		return 0
	}

	progress := int(bytesRead * 100 / totalSize)
	if progress > 99 {
		progress = 99
	}

	return progress
}

func (s *Service) GetImport(id string) (*domain.ImportLedgerEntry, error) {
	return s.importRepo.GetByID(id)
}

func (s *Service) ListImports() ([]*domain.ImportLedgerEntry, error) {
	return s.importRepo.ListRecent(s.cfg.Import.ListLimit)
}

// DeleteImport remove a entrada do ledger e todos os registros de entidades
// associados à importação
func (s *Service) DeleteImport(id string) (*domain.DeleteImportResponse, error) {
	if err := s.recordRepo.DeleteByImportID(id); err != nil {
		return nil, errors.Wrap(err, "falha ao remover os registros da importação")
	}

	deleted, err := s.importRepo.Delete(id)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao remover a entrada do ledger")
	}

	return &domain.DeleteImportResponse{ImportID: id, Deleted: deleted}, nil
}
