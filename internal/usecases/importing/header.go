package importing

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-import-api/internal/domain"
)

// Chaves lógicas do registro de aliases de cabeçalho
const (
	fieldAccount               = "account"
	fieldCampaign              = "campaign"
	fieldAdGroup               = "adGroup"
	fieldKeyword               = "keyword"
	fieldMatchType             = "matchType"
	fieldStatus                = "status"
	fieldLabels                = "labels"
	fieldCampaignType          = "campaignType"
	fieldNetworks              = "networks"
	fieldBudget                = "budget"
	fieldBudgetType            = "budgetType"
	fieldBidStrategyType       = "bidStrategyType"
	fieldBidStrategyName       = "bidStrategyName"
	fieldTargetCPA             = "targetCpa"
	fieldTargetROAS            = "targetRoas"
	fieldMaxCPCBidLimit        = "maxCpcBidLimit"
	fieldStartDate             = "startDate"
	fieldEndDate               = "endDate"
	fieldAdSchedule            = "adSchedule"
	fieldAdGroupType           = "adGroupType"
	fieldMaxCPC                = "maxCpc"
	fieldMaxCPM                = "maxCpm"
	fieldTargetCPC             = "targetCpc"
	fieldDesktopModifier       = "desktopBidModifier"
	fieldMobileModifier        = "mobileBidModifier"
	fieldTabletModifier        = "tabletBidModifier"
	fieldOptimizedTargeting    = "optimizedTargeting"
	fieldFirstPageBid          = "firstPageBid"
	fieldTopOfPageBid          = "topOfPageBid"
	fieldFirstPositionBid      = "firstPositionBid"
	fieldQualityScore          = "qualityScore"
	fieldLandingPageExperience = "landingPageExperience"
	fieldExpectedCTR           = "expectedCtr"
	fieldAdRelevance           = "adRelevance"
	fieldAdType                = "adType"
	fieldFinalURL              = "finalUrl"
	fieldPath1                 = "path1"
	fieldPath2                 = "path2"
	fieldApprovalStatus        = "approvalStatus"
	fieldAdStrength            = "adStrength"
)

// headerMarker é a sequência espúria que algumas exportações prefixam na
// primeira célula do cabeçalho (um BOM UTF-8 que sobreviveu à reexportação)
const headerMarker = "\ufeff"

// fieldAliases mapeia cada chave lógica para os nomes literais aceitos no
// cabeçalho. A comparação é exata e insensível a maiúsculas. Construído uma
// única vez; as colunas que podem abrir o arquivo aceitam a variante com marcador.
var fieldAliases = map[string][]string{
	fieldAccount:               {"account", headerMarker + "account"},
	fieldCampaign:              {"campaign", headerMarker + "campaign"},
	fieldAdGroup:               {"ad group", "adgroup"},
	fieldKeyword:               {"keyword"},
	fieldMatchType:             {"match type", "criterion type"},
	fieldStatus:                {"status", "campaign status"},
	fieldLabels:                {"labels", "label"},
	fieldCampaignType:          {"campaign type"},
	fieldNetworks:              {"networks"},
	fieldBudget:                {"budget"},
	fieldBudgetType:            {"budget type"},
	fieldBidStrategyType:       {"bid strategy type"},
	fieldBidStrategyName:       {"bid strategy name"},
	fieldTargetCPA:             {"target cpa"},
	fieldTargetROAS:            {"target roas"},
	fieldMaxCPCBidLimit:        {"maximum cpc bid limit", "max cpc bid limit"},
	fieldStartDate:             {"start date"},
	fieldEndDate:               {"end date"},
	fieldAdSchedule:            {"ad schedule"},
	fieldAdGroupType:           {"ad group type"},
	fieldMaxCPC:                {"max cpc", "default max. cpc", "max. cpc"},
	fieldMaxCPM:                {"max cpm", "max. cpm"},
	fieldTargetCPC:             {"target cpc"},
	fieldDesktopModifier:       {"desktop bid modifier"},
	fieldMobileModifier:        {"mobile bid modifier"},
	fieldTabletModifier:        {"tablet bid modifier"},
	fieldOptimizedTargeting:    {"optimized targeting"},
	fieldFirstPageBid:          {"first page bid", "est. first page bid"},
	fieldTopOfPageBid:          {"top of page bid", "est. top of page bid"},
	fieldFirstPositionBid:      {"first position bid", "est. first position bid"},
	fieldQualityScore:          {"quality score"},
	fieldLandingPageExperience: {"landing page experience"},
	fieldExpectedCTR:           {"expected ctr"},
	fieldAdRelevance:           {"ad relevance"},
	fieldAdType:                {"ad type"},
	fieldFinalURL:              {"final url"},
	fieldPath1:                 {"path 1"},
	fieldPath2:                 {"path 2"},
	fieldApprovalStatus:        {"approval status"},
	fieldAdStrength:            {"ad strength"},
}

// headerMapping é o mapeamento imutável de chave lógica para índice de coluna,
// calculado uma única vez por importação a partir da primeira linha do arquivo.
// As colunas numeradas de títulos e descrições viram listas ordenadas de índices.
type headerMapping struct {
	cols         map[string]int
	headlines    []int
	descriptions []int
}

// newHeaderMapping constrói o mapeamento a partir dos nomes de coluna da
// primeira linha não vazia. Cabeçalhos não reconhecidos são ignorados.
func newHeaderMapping(headers []string) (*headerMapping, error) {
	byName := make(map[string]int, len(headers))
	for idx, name := range headers {
		normalized := strings.ToLower(strings.TrimSpace(name))
		if _, exists := byName[normalized]; !exists {
			byName[normalized] = idx
		}
	}

	m := &headerMapping{cols: make(map[string]int, len(fieldAliases))}

	for key, aliases := range fieldAliases {
		for _, alias := range aliases {
			if idx, ok := byName[alias]; ok {
				m.cols[key] = idx
				break
			}
		}
	}

	for i := 1; i <= domain.MaxAdHeadlines; i++ {
		if idx, ok := byName[fmt.Sprintf("headline %d", i)]; ok {
			m.headlines = append(m.headlines, idx)
		}
	}

	for i := 1; i <= domain.MaxAdDescriptions; i++ {
		if idx, ok := byName[fmt.Sprintf("description %d", i)]; ok {
			m.descriptions = append(m.descriptions, idx)
		}
	}

	// Sem estas colunas não há como classificar nenhuma linha do arquivo
	for _, required := range []string{fieldCampaign, fieldAdGroup, fieldKeyword} {
		if _, ok := m.cols[required]; !ok {
			return nil, errors.Errorf(
				"cabeçalho inválido: coluna obrigatória %q não encontrada (aliases aceitos: %s)",
				required, strings.Join(fieldAliases[required], ", "),
			)
		}
	}

	return m, nil
}

// value lê o valor de uma chave lógica em uma linha de dados. Uma chave sem
// coluna correspondente resulta em valor vazio, nunca em erro.
func (m *headerMapping) value(cols []string, key string) string {
	idx, ok := m.cols[key]
	if !ok || idx >= len(cols) {
		return ""
	}

	return strings.TrimSpace(cols[idx])
}

// collect lê os índices ordenados (títulos ou descrições), mantendo apenas
// os valores não vazios na ordem original das colunas
func collect(cols []string, indexes []int) []string {
	values := make([]string, 0, len(indexes))
	for _, idx := range indexes {
		if idx >= len(cols) {
			continue
		}

		if v := strings.TrimSpace(cols[idx]); v != "" {
			values = append(values, v)
		}
	}

	return values
}
