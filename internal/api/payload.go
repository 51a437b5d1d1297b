// internal/api/payload.go
package api

// CampaignPayload is the resolved form snapshot sent to the create, update
// and preview endpoints. Every enumerated field is already flattened to its
// effective scalar; hashtags stay as the raw comma-separated string and are
// split by downstream consumers.
type CampaignPayload struct {
	Name            string `json:"name"`
	Goal            string `json:"goal"`
	Audience        string `json:"audience"`
	Platform        string `json:"platform"`
	Tone            string `json:"tone"`
	PostLength      string `json:"postLength"`
	BrandVoiceNotes string `json:"brandVoiceNotes"`
	CallToAction    string `json:"callToAction"`
	Offer           string `json:"offer"`
	PainPoint       string `json:"painPoint"`
	Hashtags        string `json:"hashtags"`
	Budget          int    `json:"budget"`
	StrategyID      string `json:"strategyId"`
}
