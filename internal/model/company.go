package model

// Source tags identify which upstream produced a record. The values are the
// Korean labels the original data portals are known by, so responses stay
// recognizable to downstream consumers.
const (
	SourceDataGo        = "공공데이터"
	SourceFoodSafety    = "식품안전나라"
	SourceLivestock     = "식품안전나라(I1300)"
	SourceHealthFoodC3  = "식품안전나라(C003)"
	SourceRawMaterials  = "식품안전나라(C002)"
	SourceHealthFoodC6  = "식품안전나라(C006)"
	SourceStaticCatalog = "샘플"
)

// CompanyRecord is the canonical, provider-independent shape of a food
// business. Name is the natural key; records without a name are dropped
// during normalization.
type CompanyRecord struct {
	Name           string `json:"name"`
	LicenseNo      string `json:"license_no,omitempty"`
	BusinessType   string `json:"business_type,omitempty"`
	Representative string `json:"representative,omitempty"`
	Address        string `json:"address,omitempty"`
	Region         string `json:"region,omitempty"`
	Status         string `json:"status,omitempty"`
	LicenseDate    string `json:"license_date,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Institution    string `json:"institution,omitempty"`
	Source         string `json:"api_source,omitempty"`
}
