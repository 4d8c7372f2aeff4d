package importing

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-import-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-import-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestBatcher_FlushPorLimiarDeKeywords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecordRepo := mocks.NewMockRecordRepository(ctrl)

	var batchSizes []int
	mockRecordRepo.EXPECT().
		BatchInsertKeywords(gomock.Any()).
		DoAndReturn(func(records []*domain.KeywordRecord) error {
			batchSizes = append(batchSizes, len(records))
			return nil
		}).
		Times(3)

	stats := &domain.ImportStats{}
	batch := newBatcher(mockRecordRepo, "imp123", stats)

	for i := 0; i < 2500; i++ {
		batch.addKeyword(&domain.KeywordRecord{
			ImportID: "imp123",
			Keyword:  fmt.Sprintf("kw %d", i),
		})
	}
	batch.flushAll()

	// 2500 keywords com limiar de 1000: dois lotes cheios e o resto no final
	assert.Equal(t, []int{1000, 1000, 500}, batchSizes)
	assert.Equal(t, 2500, stats.Keywords)
	assert.NoError(t, batch.FlushError())
}

func TestBatcher_FlushPorLimiarDeCampanhas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecordRepo := mocks.NewMockRecordRepository(ctrl)

	var batchSizes []int
	mockRecordRepo.EXPECT().
		BatchInsertCampaigns(gomock.Any()).
		DoAndReturn(func(records []*domain.CampaignRecord) error {
			batchSizes = append(batchSizes, len(records))
			return nil
		}).
		Times(2)

	stats := &domain.ImportStats{}
	batch := newBatcher(mockRecordRepo, "imp123", stats)

	for i := 0; i < 150; i++ {
		batch.addCampaign(&domain.CampaignRecord{CampaignName: fmt.Sprintf("c%d", i)})
	}
	batch.flushAll()

	assert.Equal(t, []int{100, 50}, batchSizes)
	assert.Equal(t, 150, stats.Campaigns)
}

func TestBatcher_BuffersVaziosNaoGeramChamadas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma expectativa registrada: qualquer chamada falha o teste
	mockRecordRepo := mocks.NewMockRecordRepository(ctrl)

	stats := &domain.ImportStats{}
	batch := newBatcher(mockRecordRepo, "imp123", stats)
	batch.flushAll()

	assert.Equal(t, domain.ImportStats{}, *stats)
}

func TestBatcher_FalhaDeFlushAbsorvida(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecordRepo := mocks.NewMockRecordRepository(ctrl)

	insertErr := errors.New("conexão perdida")
	gomock.InOrder(
		mockRecordRepo.EXPECT().
			BatchInsertKeywords(gomock.Any()).
			Return(insertErr),
		mockRecordRepo.EXPECT().
			BatchInsertKeywords(gomock.Any()).
			Return(nil),
	)

	stats := &domain.ImportStats{}
	batch := newBatcher(mockRecordRepo, "imp123", stats)

	for i := 0; i < keywordFlushThreshold; i++ {
		batch.addKeyword(&domain.KeywordRecord{Keyword: "perdida"})
	}

	// O lote falho foi descartado, mas o pipeline segue acumulando
	require.Equal(t, 0, stats.Keywords)

	for i := 0; i < 10; i++ {
		batch.addKeyword(&domain.KeywordRecord{Keyword: "gravada"})
	}
	batch.flushAll()

	assert.Equal(t, 10, stats.Keywords)
	assert.ErrorIs(t, batch.FlushError(), insertErr)
}
