package domain

const (
	MaxAdHeadlines    = 15
	MaxAdDescriptions = 5
)

// AdRecord representa um anúncio extraído do arquivo. Os títulos e descrições
// preservam a ordem das colunas numeradas do cabeçalho, sem valores em branco.
type AdRecord struct {
	ImportID       string   `json:"import_id"`
	AccountID      string   `json:"account_id"`
	CampaignName   string   `json:"campaign_name"`
	AdGroupName    string   `json:"ad_group_name"`
	AdType         string   `json:"ad_type"`
	FinalURL       *string  `json:"final_url,omitempty"`
	Headlines      []string `json:"headlines"`
	Descriptions   []string `json:"descriptions"`
	Path1          *string  `json:"path1,omitempty"`
	Path2          *string  `json:"path2,omitempty"`
	Status         string   `json:"status"`
	ApprovalStatus *string  `json:"approval_status,omitempty"`
	AdStrength     *string  `json:"ad_strength,omitempty"`
}
