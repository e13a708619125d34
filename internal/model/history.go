package model

// Change types reported in representative history entries.
const (
	ChangeTypeCurrent = "현재 대표자"
	ChangeTypeChanged = "변경"
)

// RepresentativeChangeRecord is one entry in a company's representative
// history, newest first.
type RepresentativeChangeRecord struct {
	Representative string `json:"representative_name"`
	ChangeDate     string `json:"change_date,omitempty"`
	ChangeType     string `json:"change_type,omitempty"`
	LicenseNo      string `json:"license_no,omitempty"`
}

// RepresentativeHistory wraps a company's representative change entries.
type RepresentativeHistory struct {
	CompanyName string                       `json:"company_name"`
	TotalCount  int                          `json:"total_count"`
	Items       []RepresentativeChangeRecord `json:"items"`
}

// LicenseChangeRecord is one raw license-change ledger row. Fields keep
// their upstream values verbatim; empty strings stay in the payload so the
// row shape is stable for tabular consumers.
type LicenseChangeRecord struct {
	CompanyName   string `json:"company_name"`
	BusinessType  string `json:"business_type"`
	LicenseNo     string `json:"license_no"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	ChangeDate    string `json:"change_date"`
	BeforeContent string `json:"before_content"`
	AfterContent  string `json:"after_content"`
	ChangeReason  string `json:"change_reason"`
}

// LicenseChangeHistory wraps a company's license-change ledger.
type LicenseChangeHistory struct {
	CompanyName string                `json:"company_name"`
	TotalCount  int                   `json:"total_count"`
	Items       []LicenseChangeRecord `json:"items"`
}
