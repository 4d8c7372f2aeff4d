package importing

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-import-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-import-api/internal/config"
	"github.com/vfg2006/ads-import-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(importRepo *mocks.MockImportRepository, recordRepo *mocks.MockRecordRepository) Importer {
	cfg := &config.Config{
		Import: config.Import{
			ExecutionBudgetSeconds: 60,
			ListLimit:              20,
		},
	}

	return NewService(cfg, importRepo, recordRepo)
}

func testFileRequest(content string) ImportFileRequest {
	encoded := encodeUTF16LE(content, true)

	return ImportFileRequest{
		AccountID:   "ACC001",
		AccountName: "Loja A",
		FileName:    "export.csv",
		Source:      bytes.NewReader(encoded),
		Size:        int64(len(encoded)),
	}
}

func expectCreateNewEntry(importRepo *mocks.MockImportRepository, t *testing.T) {
	importRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(entry *domain.ImportLedgerEntry) (*domain.CreateImportResult, error) {
			assert.Len(t, entry.FileHash, 64)
			assert.Equal(t, domain.ImportStatusProcessing, entry.Status)
			assert.NotEmpty(t, entry.ID)
			return &domain.CreateImportResult{Entry: entry}, nil
		})
}

func TestService_ImportFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockImportRepo := mocks.NewMockImportRepository(ctrl)
	mockRecordRepo := mocks.NewMockRecordRepository(ctrl)
	service := newTestService(mockImportRepo, mockRecordRepo)

	content := strings.Join([]string{
		extractTestHeader,
		"123\tSummer Sale\t\t\t\tEnabled\t₹5,000.00\tPromo; Verão\t\t\t\t\t",
		"123\tSummer Sale\tShoes\trunning shoes\tExact\tEnabled\t\t\t\t\t\t\t",
		"123\tSummer Sale\tShoes\t\t\tEnabled\t\t\tResponsive search ad\thttps://loja.example/sale\tTênis de corrida\tFrete grátis\tCompre agora",
	}, "\r\n")

	expectCreateNewEntry(mockImportRepo, t)

	var campaigns []*domain.CampaignRecord
	mockRecordRepo.EXPECT().
		BatchInsertCampaigns(gomock.Any()).
		DoAndReturn(func(records []*domain.CampaignRecord) error {
			campaigns = records
			return nil
		})

	mockRecordRepo.EXPECT().BatchInsertAdGroups(gomock.Len(1)).Return(nil)
	mockRecordRepo.EXPECT().BatchInsertKeywords(gomock.Len(1)).Return(nil)
	mockRecordRepo.EXPECT().BatchInsertAds(gomock.Len(1)).Return(nil)

	mockImportRepo.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(importID string, stats domain.ImportStats) error {
			assert.Equal(t, 3, stats.TotalRows)
			assert.Equal(t, 3, stats.ProcessedRows)
			return nil
		})

	response, err := service.ImportFile(context.Background(), testFileRequest(content))

	require.NoError(t, err)
	require.NotNil(t, response)
	assert.False(t, response.AlreadyExists)
	assert.Equal(t, domain.ImportStatusCompleted, response.Status)
	assert.Equal(t, domain.ImportStats{
		TotalRows:     3,
		Campaigns:     1,
		AdGroups:      1,
		Keywords:      1,
		Ads:           1,
		ProcessedRows: 3,
	}, response.Stats)

	require.Len(t, campaigns, 1)
	assert.Equal(t, "Summer Sale", campaigns[0].CampaignName)
	require.NotNil(t, campaigns[0].Budget)
	assert.Equal(t, 5000.0, *campaigns[0].Budget)
}

func TestService_ImportFile_ArquivoJaImportado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockImportRepo := mocks.NewMockImportRepository(ctrl)
	// Nenhuma expectativa no repositório de registros: o curto-circuito
	// não pode disparar nenhuma inserção de lote
	mockRecordRepo := mocks.NewMockRecordRepository(ctrl)
	service := newTestService(mockImportRepo, mockRecordRepo)

	existing := &domain.ImportLedgerEntry{
		ID:       "abc123",
		FileHash: strings.Repeat("a", 64),
		Status:   domain.ImportStatusCompleted,
		Stats: domain.ImportStats{
			TotalRows: 10,
			Keywords:  4,
		},
	}

	mockImportRepo.EXPECT().
		Create(gomock.Any()).
		Return(&domain.CreateImportResult{Entry: existing, AlreadyExists: true}, nil)

	content := extractTestHeader + "\n123\tSummer Sale\tShoes\trunning shoes\tExact\tEnabled\t\t\t\t\t\t\t"
	response, err := service.ImportFile(context.Background(), testFileRequest(content))

	require.NoError(t, err)
	assert.True(t, response.AlreadyExists)
	assert.Equal(t, "abc123", response.ImportID)
	assert.Equal(t, domain.ImportStatusCompleted, response.Status)
	assert.Equal(t, existing.Stats, response.Stats)
}

func TestService_ImportFile_FalhaDeLoteViraFalhaGeral(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockImportRepo := mocks.NewMockImportRepository(ctrl)
	mockRecordRepo := mocks.NewMockRecordRepository(ctrl)
	service := newTestService(mockImportRepo, mockRecordRepo)

	expectCreateNewEntry(mockImportRepo, t)

	insertErr := errors.New("conexão perdida")
	mockRecordRepo.EXPECT().BatchInsertCampaigns(gomock.Any()).Return(nil)
	mockRecordRepo.EXPECT().BatchInsertAdGroups(gomock.Any()).Return(nil)
	mockRecordRepo.EXPECT().BatchInsertKeywords(gomock.Any()).Return(insertErr)

	mockImportRepo.EXPECT().
		Fail(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(importID, cause string, stats domain.ImportStats) error {
			// As estatísticas refletem só o que foi efetivamente gravado
			assert.Equal(t, 1, stats.Campaigns)
			assert.Equal(t, 0, stats.Keywords)
			assert.Contains(t, cause, "falha ao gravar lote de registros")
			return nil
		})

	content := extractTestHeader + "\n123\tSummer Sale\tShoes\trunning shoes\tExact\tEnabled\t\t\t\t\t\t\t"
	response, err := service.ImportFile(context.Background(), testFileRequest(content))

	require.Error(t, err)
	require.NotNil(t, response)
	assert.Equal(t, domain.ImportStatusFailed, response.Status)
	require.NotNil(t, response.Error)
	assert.Equal(t, 1, response.Stats.Campaigns)
}

func TestService_ImportFile_ArquivoVazio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockImportRepo := mocks.NewMockImportRepository(ctrl)
	mockRecordRepo := mocks.NewMockRecordRepository(ctrl)
	service := newTestService(mockImportRepo, mockRecordRepo)

	expectCreateNewEntry(mockImportRepo, t)
	mockImportRepo.EXPECT().Fail(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	response, err := service.ImportFile(context.Background(), ImportFileRequest{
		AccountID: "ACC001",
		FileName:  "vazio.csv",
		Source:    bytes.NewReader(nil),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "arquivo vazio")
	assert.Equal(t, domain.ImportStatusFailed, response.Status)
}

func TestService_ImportFile_CabecalhoSemColunasObrigatorias(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockImportRepo := mocks.NewMockImportRepository(ctrl)
	mockRecordRepo := mocks.NewMockRecordRepository(ctrl)
	service := newTestService(mockImportRepo, mockRecordRepo)

	expectCreateNewEntry(mockImportRepo, t)
	mockImportRepo.EXPECT().Fail(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	content := "Account\tStatus\n123\tEnabled"
	response, err := service.ImportFile(context.Background(), testFileRequest(content))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "coluna obrigatória")
	assert.Equal(t, domain.ImportStatusFailed, response.Status)
}

func TestService_ImportFile_OrcamentoExcedido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockImportRepo := mocks.NewMockImportRepository(ctrl)
	mockRecordRepo := mocks.NewMockRecordRepository(ctrl)

	cfg := &config.Config{
		Import: config.Import{
			// Orçamento nulo: o contexto expira antes da primeira linha
			ExecutionBudgetSeconds: 0,
			ListLimit:              20,
		},
	}
	service := NewService(cfg, mockImportRepo, mockRecordRepo)

	expectCreateNewEntry(mockImportRepo, t)
	mockImportRepo.EXPECT().
		Fail(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(importID, cause string, stats domain.ImportStats) error {
			assert.Contains(t, cause, "orçamento de execução excedido")
			return nil
		})

	content := extractTestHeader + "\n123\tSummer Sale\tShoes\trunning shoes\tExact\tEnabled\t\t\t\t\t\t\t"
	response, err := service.ImportFile(context.Background(), testFileRequest(content))

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, domain.ImportStatusFailed, response.Status)
}

func TestService_DeleteImport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockImportRepo := mocks.NewMockImportRepository(ctrl)
	mockRecordRepo := mocks.NewMockRecordRepository(ctrl)
	service := newTestService(mockImportRepo, mockRecordRepo)

	tests := []struct {
		name    string
		setup   func()
		deleted bool
	}{
		{
			name: "Remove os registros antes da entrada do ledger",
			setup: func() {
				gomock.InOrder(
					mockRecordRepo.EXPECT().DeleteByImportID("abc123").Return(nil),
					mockImportRepo.EXPECT().Delete("abc123").Return(true, nil),
				)
			},
			deleted: true,
		},
		{
			name: "Entrada inexistente devolve deleted falso",
			setup: func() {
				mockRecordRepo.EXPECT().DeleteByImportID("abc123").Return(nil)
				mockImportRepo.EXPECT().Delete("abc123").Return(false, nil)
			},
			deleted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			response, err := service.DeleteImport("abc123")

			require.NoError(t, err)
			assert.Equal(t, "abc123", response.ImportID)
			assert.Equal(t, tt.deleted, response.Deleted)
		})
	}
}

func TestService_ListImports_UsaLimiteConfigurado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockImportRepo := mocks.NewMockImportRepository(ctrl)
	mockRecordRepo := mocks.NewMockRecordRepository(ctrl)
	service := newTestService(mockImportRepo, mockRecordRepo)

	entries := []*domain.ImportLedgerEntry{{ID: "abc123"}}
	mockImportRepo.EXPECT().ListRecent(20).Return(entries, nil)

	got, err := service.ListImports()

	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestEstimateProgress(t *testing.T) {
	tests := []struct {
		name      string
		bytesRead int64
		totalSize int64
		expected  int
	}{
		{name: "Meio do arquivo", bytesRead: 50, totalSize: 100, expected: 50},
		{name: "Tamanho desconhecido fica em zero", bytesRead: 500, totalSize: 0, expected: 0},
		{name: "Nunca reporta 100 antes da conclusão", bytesRead: 100, totalSize: 100, expected: 99},
		{name: "Leitura além do tamanho informado", bytesRead: 150, totalSize: 100, expected: 99},
		{name: "Início do arquivo", bytesRead: 0, totalSize: 100, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, estimateProgress(tt.bytesRead, tt.totalSize))
		})
	}
}
