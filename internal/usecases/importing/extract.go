package importing

import (
	"strconv"
	"strings"

	"github.com/vfg2006/ads-import-api/internal/domain"
)

// extractor classifica cada linha de dados e monta os registros de campanha,
// grupo de anúncios, palavra-chave e anúncio. Os conjuntos de deduplicação
// pertencem à instância: importações concorrentes nunca se contaminam.
type extractor struct {
	importID        string
	accountID       string
	mapping         *headerMapping
	seenCampaigns   map[string]struct{}
	seenAdGroupKeys map[string]struct{}
}

func newExtractor(importID, accountID string, mapping *headerMapping) *extractor {
	return &extractor{
		importID:        importID,
		accountID:       accountID,
		mapping:         mapping,
		seenCampaigns:   make(map[string]struct{}),
		seenAdGroupKeys: make(map[string]struct{}),
	}
}

// processRow aplica as regras de classificação a uma linha de dados:
//  1. primeira ocorrência de uma campanha gera o CampaignRecord (e nunca é sobrescrita)
//  2. primeira ocorrência do par campanha+grupo gera o AdGroupRecord
//  3. toda linha com keyword gera um KeywordRecord, sem deduplicação
//  4. senão, linha com tipo de anúncio gera um AdRecord
//
// Linhas sem keyword e sem tipo de anúncio só contribuem para a descoberta
// de campanhas/grupos e para a contagem de linhas.
func (e *extractor) processRow(cols []string, batch *batcher) {
	campaignName := e.mapping.value(cols, fieldCampaign)
	adGroupName := e.mapping.value(cols, fieldAdGroup)

	if campaignName != "" {
		if _, seen := e.seenCampaigns[campaignName]; !seen {
			e.seenCampaigns[campaignName] = struct{}{}
			batch.addCampaign(e.buildCampaign(cols, campaignName))
		}
	}

	if campaignName != "" && adGroupName != "" {
		key := campaignName + "|" + adGroupName
		if _, seen := e.seenAdGroupKeys[key]; !seen {
			e.seenAdGroupKeys[key] = struct{}{}
			batch.addAdGroup(e.buildAdGroup(cols, campaignName, adGroupName))
		}
	}

	if keyword := e.mapping.value(cols, fieldKeyword); keyword != "" {
		batch.addKeyword(e.buildKeyword(cols, campaignName, adGroupName, keyword))
		return
	}

	if adType := e.mapping.value(cols, fieldAdType); adType != "" {
		batch.addAd(e.buildAd(cols, campaignName, adGroupName, adType))
	}
}

func (e *extractor) buildCampaign(cols []string, campaignName string) *domain.CampaignRecord {
	return &domain.CampaignRecord{
		ImportID:        e.importID,
		AccountID:       e.accountID,
		CampaignName:    campaignName,
		Labels:          splitLabels(e.mapping.value(cols, fieldLabels)),
		CampaignType:    e.mapping.value(cols, fieldCampaignType),
		Networks:        optional(e.mapping.value(cols, fieldNetworks)),
		Budget:          parseNumeric(e.mapping.value(cols, fieldBudget)),
		BudgetType:      optional(e.mapping.value(cols, fieldBudgetType)),
		BidStrategyType: optional(e.mapping.value(cols, fieldBidStrategyType)),
		BidStrategyName: optional(e.mapping.value(cols, fieldBidStrategyName)),
		TargetCPA:       parseNumeric(e.mapping.value(cols, fieldTargetCPA)),
		TargetROAS:      parseNumeric(e.mapping.value(cols, fieldTargetROAS)),
		MaxCPCBidLimit:  parseNumeric(e.mapping.value(cols, fieldMaxCPCBidLimit)),
		StartDate:       optional(e.mapping.value(cols, fieldStartDate)),
		EndDate:         optional(e.mapping.value(cols, fieldEndDate)),
		AdSchedule:      optional(e.mapping.value(cols, fieldAdSchedule)),
		Status:          e.mapping.value(cols, fieldStatus),
	}
}

func (e *extractor) buildAdGroup(cols []string, campaignName, adGroupName string) *domain.AdGroupRecord {
	record := &domain.AdGroupRecord{
		ImportID:           e.importID,
		AccountID:          e.accountID,
		CampaignName:       campaignName,
		AdGroupName:        adGroupName,
		AdGroupType:        optional(e.mapping.value(cols, fieldAdGroupType)),
		OptimizedTargeting: optional(e.mapping.value(cols, fieldOptimizedTargeting)),
		Status:             e.mapping.value(cols, fieldStatus),
	}

	bids := &domain.AdGroupBids{
		MaxCPC:     parseNumeric(e.mapping.value(cols, fieldMaxCPC)),
		MaxCPM:     parseNumeric(e.mapping.value(cols, fieldMaxCPM)),
		TargetCPC:  parseNumeric(e.mapping.value(cols, fieldTargetCPC)),
		TargetROAS: parseNumeric(e.mapping.value(cols, fieldTargetROAS)),
	}
	if bids.MaxCPC != nil || bids.MaxCPM != nil || bids.TargetCPC != nil || bids.TargetROAS != nil {
		record.Bids = bids
	}

	modifiers := &domain.DeviceBidModifiers{
		Desktop: parseNumeric(e.mapping.value(cols, fieldDesktopModifier)),
		Mobile:  parseNumeric(e.mapping.value(cols, fieldMobileModifier)),
		Tablet:  parseNumeric(e.mapping.value(cols, fieldTabletModifier)),
	}
	if modifiers.Desktop != nil || modifiers.Mobile != nil || modifiers.Tablet != nil {
		record.DeviceBidModifiers = modifiers
	}

	return record
}

func (e *extractor) buildKeyword(cols []string, campaignName, adGroupName, keyword string) *domain.KeywordRecord {
	record := &domain.KeywordRecord{
		ImportID:     e.importID,
		AccountID:    e.accountID,
		CampaignName: campaignName,
		AdGroupName:  adGroupName,
		Keyword:      keyword,
		MatchType:    domain.MatchType(e.mapping.value(cols, fieldMatchType)),
		Status:       e.mapping.value(cols, fieldStatus),
	}

	bids := &domain.KeywordBids{
		FirstPageBid:     parseNumeric(e.mapping.value(cols, fieldFirstPageBid)),
		TopOfPageBid:     parseNumeric(e.mapping.value(cols, fieldTopOfPageBid)),
		FirstPositionBid: parseNumeric(e.mapping.value(cols, fieldFirstPositionBid)),
	}
	if bids.FirstPageBid != nil || bids.TopOfPageBid != nil || bids.FirstPositionBid != nil {
		record.Bids = bids
	}

	quality := &domain.KeywordQuality{
		QualityScore:          parseNumeric(e.mapping.value(cols, fieldQualityScore)),
		LandingPageExperience: optional(e.mapping.value(cols, fieldLandingPageExperience)),
		ExpectedCTR:           optional(e.mapping.value(cols, fieldExpectedCTR)),
		AdRelevance:           optional(e.mapping.value(cols, fieldAdRelevance)),
	}
	if quality.QualityScore != nil || quality.LandingPageExperience != nil ||
		quality.ExpectedCTR != nil || quality.AdRelevance != nil {
		record.Quality = quality
	}

	return record
}

func (e *extractor) buildAd(cols []string, campaignName, adGroupName, adType string) *domain.AdRecord {
	return &domain.AdRecord{
		ImportID:       e.importID,
		AccountID:      e.accountID,
		CampaignName:   campaignName,
		AdGroupName:    adGroupName,
		AdType:         adType,
		FinalURL:       optional(e.mapping.value(cols, fieldFinalURL)),
		Headlines:      collect(cols, e.mapping.headlines),
		Descriptions:   collect(cols, e.mapping.descriptions),
		Path1:          optional(e.mapping.value(cols, fieldPath1)),
		Path2:          optional(e.mapping.value(cols, fieldPath2)),
		Status:         e.mapping.value(cols, fieldStatus),
		ApprovalStatus: optional(e.mapping.value(cols, fieldApprovalStatus)),
		AdStrength:     optional(e.mapping.value(cols, fieldAdStrength)),
	}
}

// parseNumeric faz a coerção tolerante de valores numéricos exportados com
// símbolos de moeda e separadores de milhar. Mantém apenas dígitos, um ponto
// decimal e um sinal negativo inicial. Quando o resto não parseia, o campo
// fica ausente, nunca zero.
func parseNumeric(raw string) *float64 {
	if raw == "" {
		return nil
	}

	var b strings.Builder
	seenDot := false

	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !seenDot:
			seenDot = true
			b.WriteRune(r)
		case r == '-' && b.Len() == 0:
			b.WriteRune(r)
		}
	}

	value, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return nil
	}

	return &value
}

// splitLabels separa a lista de rótulos por ';', descartando entradas vazias
func splitLabels(raw string) []string {
	if raw == "" {
		return []string{}
	}

	parts := strings.Split(raw, ";")
	labels := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			labels = append(labels, trimmed)
		}
	}

	return labels
}

func optional(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}
