package model

// ProductRecord is the canonical shape of a food product. Nutrition fields
// are pointers so that "value absent upstream" serializes as a missing key
// rather than a literal zero.
type ProductRecord struct {
	Name             string   `json:"product_name"`
	Code             string   `json:"product_code,omitempty"`
	Category         string   `json:"category,omitempty"`
	ServingSize      string   `json:"serving_size,omitempty"`
	Calories         *float64 `json:"calories,omitempty"`
	Carbohydrate     *float64 `json:"carbohydrate,omitempty"`
	Protein          *float64 `json:"protein,omitempty"`
	Fat              *float64 `json:"fat,omitempty"`
	Sugar            *float64 `json:"sugar,omitempty"`
	Sodium           *float64 `json:"sodium,omitempty"`
	Manufacturer     string   `json:"manufacturer,omitempty"`
	ReportNo         string   `json:"report_no,omitempty"`
	RawMaterials     string   `json:"raw_materials,omitempty"`
	LicenseNo        string   `json:"license_no,omitempty"`
	PermitDate       string   `json:"permit_date,omitempty"`
	ExpiryDate       string   `json:"expiry_date,omitempty"`
	ShelfLifeDays    string   `json:"shelf_life_days,omitempty"`
	Usage            string   `json:"usage,omitempty"`
	Purpose          string   `json:"purpose,omitempty"`
	ProductForm      string   `json:"product_form,omitempty"`
	Packaging        string   `json:"packaging,omitempty"`
	ProductionStatus string   `json:"production_status,omitempty"`
	HighCalorieFood  string   `json:"high_calorie_food,omitempty"`
	ChildCertified   string   `json:"child_certified,omitempty"`
	LastUpdate       string   `json:"last_update,omitempty"`
	Source           string   `json:"api_source,omitempty"`
}
