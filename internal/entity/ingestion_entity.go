package entity

import "time"

// IngestionPayload is the clean projection of a completed session that gets
// buffered for downstream consumers, decoupled from the session state record.
type IngestionPayload struct {
	Task         string     `json:"task"`
	Role         string     `json:"role"`
	ProductType  string     `json:"product_type"`
	UsageContext string     `json:"usage_context"`
	WorkContext  string     `json:"work_context"`
	Resources    string     `json:"resources"`
	Constraints  string     `json:"constraints"`
	StartTime    *time.Time `json:"start_time"`
	EndTime      time.Time  `json:"end_time"`
	Duration     int        `json:"duration"`
	EnergyLevel  string     `json:"energy_level"`
	FocusLevel   string     `json:"focus_level"`
	QualityLevel string     `json:"quality_level"`
	Summary      string     `json:"summary"`
	NextStep     string     `json:"next_step"`
}
