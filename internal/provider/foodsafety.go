package provider

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/opendatakr/foodsearch/internal/model"
	"github.com/opendatakr/foodsearch/pkg/foodsafety"
)

// The permit datasets only list active businesses.
const statusOperating = "운영"

// FoodCompanies searches the food manufacturing permit dataset (I1220).
// The upstream windows results and applies the name filter itself, so
// output covers only the requested page.
type FoodCompanies struct {
	client foodsafety.Client
}

// NewFoodCompanies creates the I1220 company adapter.
func NewFoodCompanies(client foodsafety.Client) *FoodCompanies {
	return &FoodCompanies{client: client}
}

func (p *FoodCompanies) Name() string { return foodsafety.ServiceFoodCompanies }

type i1220Row struct {
	Name        wireText `json:"BSSH_NM"`
	LicenseNo   wireText `json:"LCNS_NO"`
	Business    wireText `json:"INDUTY_NM"`
	Rep         wireText `json:"PRSDNT_NM"`
	Address     wireText `json:"LOCP_ADDR"`
	LicenseDate wireText `json:"PRMS_DT"`
	Phone       wireText `json:"TELNO"`
	Institution wireText `json:"INSTT_NM"`
}

func (p *FoodCompanies) SearchCompanies(ctx context.Context, q model.CompanyQuery) (*CompanyResult, error) {
	start := (q.Page-1)*q.PerPage + 1
	end := start + q.PerPage - 1
	params := map[string]string{}
	if q.Keyword != "" {
		params["BSSH_NM"] = q.Keyword
	}

	payload, err := p.client.Fetch(ctx, foodsafety.ServiceFoodCompanies, start, end, params)
	if err != nil {
		return nil, eris.Wrap(err, "provider: I1220 companies")
	}
	rows, err := decodeRows[i1220Row](payload.Rows)
	if err != nil {
		return nil, err
	}

	records := make([]model.CompanyRecord, 0, len(rows))
	for _, r := range rows {
		name := model.NormalizeText(string(r.Name))
		if name == "" {
			continue
		}
		records = append(records, model.CompanyRecord{
			Name:           name,
			LicenseNo:      string(r.LicenseNo),
			BusinessType:   string(r.Business),
			Representative: string(r.Rep),
			Address:        string(r.Address),
			Status:         statusOperating,
			LicenseDate:    string(r.LicenseDate),
			Phone:          string(r.Phone),
			Institution:    string(r.Institution),
			Source:         model.SourceFoodSafety,
		})
	}
	return &CompanyResult{Records: records, Total: payload.TotalCount, Windowed: true}, nil
}

// LivestockCompanies searches the livestock processing permit dataset
// (I1300). The upstream matches business names exactly, so keyword search
// cannot be delegated; a catalog slice is fetched and filtered locally.
type LivestockCompanies struct {
	client foodsafety.Client
	window int
}

// NewLivestockCompanies creates the I1300 company adapter. window bounds
// the catalog fetch; 0 selects the default.
func NewLivestockCompanies(client foodsafety.Client, window int) *LivestockCompanies {
	if window <= 0 {
		window = DefaultCatalogWindow
	}
	return &LivestockCompanies{client: client, window: window}
}

func (p *LivestockCompanies) Name() string { return foodsafety.ServiceLivestockCompanies }

type i1300Row struct {
	Name        wireText `json:"BSSH_NM"`
	LicenseNo   wireText `json:"LCNS_NO"`
	Rep         wireText `json:"PRSDNT_NM"`
	SiteAddr    wireText `json:"SITE_ADDR"`
	LocAddr     wireText `json:"LOCP_ADDR"`
	Phone       wireText `json:"TELNO"`
	LicenseDate wireText `json:"PRMS_DT"`
}

func (p *LivestockCompanies) SearchCompanies(ctx context.Context, q model.CompanyQuery) (*CompanyResult, error) {
	payload, err := p.client.Fetch(ctx, foodsafety.ServiceLivestockCompanies, 1, p.window, nil)
	if err != nil {
		return nil, eris.Wrap(err, "provider: I1300 companies")
	}
	rows, err := decodeRows[i1300Row](payload.Rows)
	if err != nil {
		return nil, err
	}

	records := make([]model.CompanyRecord, 0, len(rows))
	for _, r := range rows {
		name := model.NormalizeText(string(r.Name))
		if name == "" {
			continue
		}
		records = append(records, model.CompanyRecord{
			Name:           name,
			LicenseNo:      string(r.LicenseNo),
			BusinessType:   model.BusinessTypeLivestock,
			Representative: string(r.Rep),
			Address:        firstNonEmpty(string(r.SiteAddr), string(r.LocAddr)),
			Status:         statusOperating,
			LicenseDate:    string(r.LicenseDate),
			Phone:          string(r.Phone),
			Source:         model.SourceLivestock,
		})
	}
	return &CompanyResult{Records: records, Total: payload.TotalCount, Windowed: false}, nil
}

// HealthFoodCompanies derives health functional food businesses from the
// license change ledger (I2860). Same exact-match limitation as I1300, so
// it fetches a catalog slice for local filtering.
type HealthFoodCompanies struct {
	client foodsafety.Client
	window int
}

// NewHealthFoodCompanies creates the I2860 company adapter.
func NewHealthFoodCompanies(client foodsafety.Client, window int) *HealthFoodCompanies {
	if window <= 0 {
		window = DefaultCatalogWindow
	}
	return &HealthFoodCompanies{client: client, window: window}
}

func (p *HealthFoodCompanies) Name() string { return foodsafety.ServiceHealthFoodLicenses }

type i2860Row struct {
	Name      wireText `json:"BSSH_NM"`
	LicenseNo wireText `json:"LCNS_NO"`
	Business  wireText `json:"INDUTY_CD_NM"`
	SiteAddr  wireText `json:"SITE_ADDR"`
	Phone     wireText `json:"TELNO"`
}

func (p *HealthFoodCompanies) SearchCompanies(ctx context.Context, q model.CompanyQuery) (*CompanyResult, error) {
	payload, err := p.client.Fetch(ctx, foodsafety.ServiceHealthFoodLicenses, 1, p.window, nil)
	if err != nil {
		return nil, eris.Wrap(err, "provider: I2860 companies")
	}
	rows, err := decodeRows[i2860Row](payload.Rows)
	if err != nil {
		return nil, err
	}

	records := make([]model.CompanyRecord, 0, len(rows))
	for _, r := range rows {
		name := model.NormalizeText(string(r.Name))
		if name == "" {
			continue
		}
		records = append(records, model.CompanyRecord{
			Name:         name,
			LicenseNo:    string(r.LicenseNo),
			BusinessType: firstNonEmpty(string(r.Business), model.BusinessTypeHealthFood),
			Address:      string(r.SiteAddr),
			Status:       statusOperating,
			Phone:        string(r.Phone),
			Source:       model.SourceFoodSafety,
		})
	}
	return &CompanyResult{Records: records, Total: payload.TotalCount, Windowed: false}, nil
}

// ItemReports searches the product report datasets that share one row
// shape: C002 (food, with raw materials), C003 (health food, with raw
// materials) and C006 (health food items). The upstream windows results
// and filters by company and product name itself.
type ItemReports struct {
	client          foodsafety.Client
	service         string
	source          string
	defaultCategory string
	rawMaterials    bool
}

// NewFoodReports creates the C002 product adapter.
func NewFoodReports(client foodsafety.Client) *ItemReports {
	return &ItemReports{
		client:       client,
		service:      foodsafety.ServiceFoodReports,
		source:       model.SourceRawMaterials,
		rawMaterials: true,
	}
}

// NewHealthFoodReports creates the C003 product adapter.
func NewHealthFoodReports(client foodsafety.Client) *ItemReports {
	return &ItemReports{
		client:          client,
		service:         foodsafety.ServiceHealthFoodReports,
		source:          model.SourceHealthFoodC3,
		defaultCategory: model.BusinessTypeHealthFood,
		rawMaterials:    true,
	}
}

// NewHealthFoodItems creates the C006 product adapter.
func NewHealthFoodItems(client foodsafety.Client) *ItemReports {
	return &ItemReports{
		client:          client,
		service:         foodsafety.ServiceHealthFoodItems,
		source:          model.SourceHealthFoodC6,
		defaultCategory: model.BusinessTypeHealthFood,
	}
}

func (p *ItemReports) Name() string { return p.service }

type reportRow struct {
	Name       wireText `json:"PRDLST_NM"`
	ReportNo   wireText `json:"PRDLST_REPORT_NO"`
	Category   wireText `json:"PRDLST_DCNM"`
	Maker      wireText `json:"BSSH_NM"`
	RawMtrl    wireText `json:"RAWMTRL_NM"`
	LicenseNo  wireText `json:"LCNS_NO"`
	PermitDate wireText `json:"PRMS_DT"`
	ChangeDate wireText `json:"CHNG_DT"`
}

func (p *ItemReports) SearchProducts(ctx context.Context, q ProductQuery) (*ProductResult, error) {
	payload, err := p.client.Fetch(ctx, p.service, rangeStart(q), rangeEnd(q), productParams(q))
	if err != nil {
		return nil, eris.Wrapf(err, "provider: %s products", p.service)
	}
	rows, err := decodeRows[reportRow](payload.Rows)
	if err != nil {
		return nil, err
	}

	records := make([]model.ProductRecord, 0, len(rows))
	for _, r := range rows {
		name := model.NormalizeText(string(r.Name))
		if name == "" {
			continue
		}
		rec := model.ProductRecord{
			Name:         name,
			Code:         string(r.ReportNo),
			Category:     firstNonEmpty(string(r.Category), p.defaultCategory),
			Manufacturer: string(r.Maker),
			ReportNo:     string(r.ReportNo),
			LicenseNo:    string(r.LicenseNo),
			PermitDate:   string(r.PermitDate),
			LastUpdate:   string(r.ChangeDate),
			Source:       p.source,
		}
		if p.rawMaterials {
			rec.RawMaterials = string(r.RawMtrl)
		}
		records = append(records, rec)
	}
	return &ProductResult{Records: records, Total: payload.TotalCount, Windowed: true}, nil
}

// FoodItems searches the food item report dataset (I1250), which carries
// the full product detail block.
type FoodItems struct {
	client foodsafety.Client
}

// NewFoodItems creates the I1250 product adapter.
func NewFoodItems(client foodsafety.Client) *FoodItems {
	return &FoodItems{client: client}
}

func (p *FoodItems) Name() string { return foodsafety.ServiceFoodItems }

type i1250Row struct {
	Name           wireText `json:"PRDLST_NM"`
	ReportNo       wireText `json:"PRDLST_REPORT_NO"`
	Category       wireText `json:"PRDLST_DCNM"`
	Maker          wireText `json:"BSSH_NM"`
	LicenseNo      wireText `json:"LCNS_NO"`
	PermitDate     wireText `json:"PRMS_DT"`
	Expiry         wireText `json:"POG_DAYCNT"`
	ShelfLife      wireText `json:"QLITY_MNTNC_TMLMT_DAYCNT"`
	Usage          wireText `json:"USAGE"`
	Purpose        wireText `json:"PRPOS"`
	Form           wireText `json:"DISPOS"`
	Packaging      wireText `json:"FRMLC_MTRQLT"`
	Production     wireText `json:"PRODUCTION"`
	HighCalorie    wireText `json:"HIENG_LNTRT_DVS_NM"`
	ChildCertified wireText `json:"CHILD_CRTFC_YN"`
	LastUpdate     wireText `json:"LAST_UPDT_DTM"`
}

func (p *FoodItems) SearchProducts(ctx context.Context, q ProductQuery) (*ProductResult, error) {
	payload, err := p.client.Fetch(ctx, foodsafety.ServiceFoodItems, rangeStart(q), rangeEnd(q), productParams(q))
	if err != nil {
		return nil, eris.Wrap(err, "provider: I1250 products")
	}
	rows, err := decodeRows[i1250Row](payload.Rows)
	if err != nil {
		return nil, err
	}

	records := make([]model.ProductRecord, 0, len(rows))
	for _, r := range rows {
		name := model.NormalizeText(string(r.Name))
		if name == "" {
			continue
		}
		records = append(records, model.ProductRecord{
			Name:             name,
			Code:             string(r.ReportNo),
			Category:         string(r.Category),
			Manufacturer:     string(r.Maker),
			ReportNo:         string(r.ReportNo),
			LicenseNo:        string(r.LicenseNo),
			PermitDate:       string(r.PermitDate),
			ExpiryDate:       string(r.Expiry),
			ShelfLifeDays:    string(r.ShelfLife),
			Usage:            string(r.Usage),
			Purpose:          string(r.Purpose),
			ProductForm:      string(r.Form),
			Packaging:        string(r.Packaging),
			ProductionStatus: string(r.Production),
			HighCalorieFood:  string(r.HighCalorie),
			ChildCertified:   string(r.ChildCertified),
			LastUpdate:       string(r.LastUpdate),
			Source:           model.SourceFoodSafety,
		})
	}
	return &ProductResult{Records: records, Total: payload.TotalCount, Windowed: true}, nil
}

// HealthFoodHistory extracts representative changes from the health
// functional food license change ledger (I2860).
type HealthFoodHistory struct {
	client foodsafety.Client
	window int
}

// NewHealthFoodHistory creates the I2860 history adapter. window bounds
// the ledger scan; 0 selects the default.
func NewHealthFoodHistory(client foodsafety.Client, window int) *HealthFoodHistory {
	if window <= 0 {
		window = DefaultHistoryWindow
	}
	return &HealthFoodHistory{client: client, window: window}
}

func (p *HealthFoodHistory) Name() string { return foodsafety.ServiceHealthFoodLicenses }

type i2860HistoryRow struct {
	Rep          wireText `json:"PRSDNT_NM"`
	ChangeDate   wireText `json:"CHNG_DT"`
	ApprovalDate wireText `json:"CHNG_APVL_DT"`
	ChangeType   wireText `json:"CHNG_CN"`
	Reason       wireText `json:"CHNG_RESON_CN"`
	LicenseNo    wireText `json:"LCNS_NO"`
}

func (p *HealthFoodHistory) RepresentativeHistory(ctx context.Context, companyName, licenseNo string) ([]model.RepresentativeChangeRecord, error) {
	params := map[string]string{}
	if companyName != "" {
		params["BSSH_NM"] = companyName
	}
	payload, err := p.client.Fetch(ctx, foodsafety.ServiceHealthFoodLicenses, 1, p.window, params)
	if err != nil {
		return nil, eris.Wrap(err, "provider: I2860 history")
	}
	rows, err := decodeRows[i2860HistoryRow](payload.Rows)
	if err != nil {
		return nil, err
	}

	records := make([]model.RepresentativeChangeRecord, 0, len(rows))
	for _, r := range rows {
		// Rows without an explicit representative column still count when
		// the change reason names a representative change.
		rep := string(r.Rep)
		if rep == "" && strings.Contains(string(r.Reason), "대표") {
			rep = string(r.Reason)
		}
		if rep == "" {
			continue
		}
		records = append(records, model.RepresentativeChangeRecord{
			Representative: rep,
			ChangeDate:     firstNonEmpty(string(r.ChangeDate), string(r.ApprovalDate)),
			ChangeType:     firstNonEmpty(string(r.ChangeType), model.ChangeTypeChanged),
			LicenseNo:      string(r.LicenseNo),
		})
	}
	return records, nil
}

// LicenseChanges searches the food business license change ledger (I2859).
type LicenseChanges struct {
	client foodsafety.Client
	window int
}

// NewLicenseChanges creates the I2859 adapter. window bounds the ledger
// scan; 0 selects the default.
func NewLicenseChanges(client foodsafety.Client, window int) *LicenseChanges {
	if window <= 0 {
		window = DefaultHistoryWindow
	}
	return &LicenseChanges{client: client, window: window}
}

func (p *LicenseChanges) Name() string { return foodsafety.ServiceLicenseChanges }

type i2859Row struct {
	Name       wireText `json:"BSSH_NM"`
	Business   wireText `json:"INDUTY_CD_NM"`
	LicenseNo  wireText `json:"LCNS_NO"`
	Phone      wireText `json:"TELNO"`
	SiteAddr   wireText `json:"SITE_ADDR"`
	ChangeDate wireText `json:"CHNG_DT"`
	Before     wireText `json:"CHNG_BF_CN"`
	After      wireText `json:"CHNG_AF_CN"`
	Provision  wireText `json:"CHNG_PRVNS"`
}

func (p *LicenseChanges) LicenseChanges(ctx context.Context, companyName, licenseNo string) (*LicenseChangeResult, error) {
	params := map[string]string{}
	if licenseNo != "" {
		params["LCNS_NO"] = licenseNo
	}
	if companyName != "" {
		params["BSSH_NM"] = companyName
	}
	payload, err := p.client.Fetch(ctx, foodsafety.ServiceLicenseChanges, 1, p.window, params)
	if err != nil {
		return nil, eris.Wrap(err, "provider: I2859 changes")
	}
	rows, err := decodeRows[i2859Row](payload.Rows)
	if err != nil {
		return nil, err
	}

	records := make([]model.LicenseChangeRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, model.LicenseChangeRecord{
			CompanyName:   string(r.Name),
			BusinessType:  string(r.Business),
			LicenseNo:     string(r.LicenseNo),
			Phone:         string(r.Phone),
			Address:       string(r.SiteAddr),
			ChangeDate:    string(r.ChangeDate),
			BeforeContent: string(r.Before),
			AfterContent:  string(r.After),
			ChangeReason:  string(r.Provision),
		})
	}
	return &LicenseChangeResult{Records: records, Total: payload.TotalCount}, nil
}

func rangeStart(q ProductQuery) int { return (q.Page-1)*q.PerPage + 1 }

func rangeEnd(q ProductQuery) int { return rangeStart(q) + q.PerPage - 1 }

func productParams(q ProductQuery) map[string]string {
	params := map[string]string{}
	if q.CompanyName != "" {
		params["BSSH_NM"] = q.CompanyName
	}
	if q.Keyword != "" {
		params["PRDLST_NM"] = q.Keyword
	}
	return params
}
