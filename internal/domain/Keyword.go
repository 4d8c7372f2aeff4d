package domain

type MatchType string

const (
	MatchTypeExact  MatchType = "Exact"
	MatchTypePhrase MatchType = "Phrase"
	MatchTypeBroad  MatchType = "Broad"
)

// KeywordBids agrupa as estimativas de lance por posição
type KeywordBids struct {
	FirstPageBid     *float64 `json:"first_page_bid,omitempty"`
	TopOfPageBid     *float64 `json:"top_of_page_bid,omitempty"`
	FirstPositionBid *float64 `json:"first_position_bid,omitempty"`
}

// KeywordQuality agrupa as métricas de qualidade da palavra-chave
type KeywordQuality struct {
	QualityScore          *float64 `json:"quality_score,omitempty"`
	LandingPageExperience *string  `json:"landing_page_experience,omitempty"`
	ExpectedCTR           *string  `json:"expected_ctr,omitempty"`
	AdRelevance           *string  `json:"ad_relevance,omitempty"`
}

// KeywordRecord representa uma palavra-chave extraída do arquivo.
// Palavras-chave não são deduplicadas: toda linha de keyword é preservada.
type KeywordRecord struct {
	ImportID     string          `json:"import_id"`
	AccountID    string          `json:"account_id"`
	CampaignName string          `json:"campaign_name"`
	AdGroupName  string          `json:"ad_group_name"`
	Keyword      string          `json:"keyword"`
	MatchType    MatchType       `json:"match_type"`
	Bids         *KeywordBids    `json:"bids,omitempty"`
	Quality      *KeywordQuality `json:"quality,omitempty"`
	Status       string          `json:"status"`
}
