package importing

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-import-api/infrastructure/repository"
	"github.com/vfg2006/ads-import-api/internal/domain"
)

// Limiares de flush por tipo de registro. Equilibram o overhead de round-trips
// contra o limite de payload do colaborador de persistência.
const (
	campaignFlushThreshold = 100
	adGroupFlushThreshold  = 500
	keywordFlushThreshold  = 1000
	adFlushThreshold       = 500
)

// batcher acumula registros extraídos por tipo e os envia em lotes ao
// repositório. Uma falha de flush é registrada e absorvida: o pipeline
// continua e aquele lote é perdido (política aceita de perda parcial,
// sem retry automático). A falha fica retida para o resultado final.
type batcher struct {
	recordRepo repository.RecordRepository
	importID   string
	stats      *domain.ImportStats

	campaigns []*domain.CampaignRecord
	adGroups  []*domain.AdGroupRecord
	keywords  []*domain.KeywordRecord
	ads       []*domain.AdRecord

	flushErr error
}

func newBatcher(recordRepo repository.RecordRepository, importID string, stats *domain.ImportStats) *batcher {
	return &batcher{
		recordRepo: recordRepo,
		importID:   importID,
		stats:      stats,
	}
}

func (b *batcher) addCampaign(record *domain.CampaignRecord) {
	b.campaigns = append(b.campaigns, record)
	if len(b.campaigns) >= campaignFlushThreshold {
		b.flushCampaigns()
	}
}

func (b *batcher) addAdGroup(record *domain.AdGroupRecord) {
	b.adGroups = append(b.adGroups, record)
	if len(b.adGroups) >= adGroupFlushThreshold {
		b.flushAdGroups()
	}
}

func (b *batcher) addKeyword(record *domain.KeywordRecord) {
	b.keywords = append(b.keywords, record)
	if len(b.keywords) >= keywordFlushThreshold {
		b.flushKeywords()
	}
}

func (b *batcher) addAd(record *domain.AdRecord) {
	b.ads = append(b.ads, record)
	if len(b.ads) >= adFlushThreshold {
		b.flushAds()
	}
}

// flushAll força o envio de todos os buffers não vazios ao fim do fluxo
func (b *batcher) flushAll() {
	b.flushCampaigns()
	b.flushAdGroups()
	b.flushKeywords()
	b.flushAds()
}

// FlushError devolve a última falha de flush absorvida, se houve alguma
func (b *batcher) FlushError() error {
	return b.flushErr
}

func (b *batcher) flushCampaigns() {
	if len(b.campaigns) == 0 {
		return
	}

	if err := b.recordRepo.BatchInsertCampaigns(b.campaigns); err != nil {
		b.absorb("campaigns", len(b.campaigns), err)
	} else {
		b.stats.Campaigns += len(b.campaigns)
	}

	b.campaigns = nil
}

func (b *batcher) flushAdGroups() {
	if len(b.adGroups) == 0 {
		return
	}

	if err := b.recordRepo.BatchInsertAdGroups(b.adGroups); err != nil {
		b.absorb("ad_groups", len(b.adGroups), err)
	} else {
		b.stats.AdGroups += len(b.adGroups)
	}

	b.adGroups = nil
}

func (b *batcher) flushKeywords() {
	if len(b.keywords) == 0 {
		return
	}

	if err := b.recordRepo.BatchInsertKeywords(b.keywords); err != nil {
		b.absorb("keywords", len(b.keywords), err)
	} else {
		b.stats.Keywords += len(b.keywords)
	}

	b.keywords = nil
}

func (b *batcher) flushAds() {
	if len(b.ads) == 0 {
		return
	}

	if err := b.recordRepo.BatchInsertAds(b.ads); err != nil {
		b.absorb("ads", len(b.ads), err)
	} else {
		b.stats.Ads += len(b.ads)
	}

	b.ads = nil
}

func (b *batcher) absorb(kind string, size int, err error) {
	logrus.WithFields(logrus.Fields{
		"import_id":  b.importID,
		"kind":       kind,
		"batch_size": size,
	}).WithError(err).Error("Falha ao inserir lote de registros; lote descartado e pipeline continua")

	b.flushErr = err
}
