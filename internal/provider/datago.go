package provider

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/opendatakr/foodsearch/internal/model"
	"github.com/opendatakr/foodsearch/pkg/datago"
)

// PortalProducts searches the data.go.kr food item report service. The
// portal pages results and applies company/product name filters itself.
type PortalProducts struct {
	client datago.Client
}

// NewPortalProducts creates the data.go.kr product adapter.
func NewPortalProducts(client datago.Client) *PortalProducts {
	return &PortalProducts{client: client}
}

func (p *PortalProducts) Name() string { return "datago" }

type portalRow struct {
	Name     wireText `json:"PRDLST_NM"`
	ReportNo wireText `json:"PRDLST_REPORT_NO"`
	Shape    wireText `json:"PRDT_SHAP_CD_NM"`
	Category wireText `json:"PRDLST_DCNM"`
	Custody  wireText `json:"CSTDY_MTHD"`
	Maker    wireText `json:"BSSH_NM"`
	RawMtrl  wireText `json:"RAWMTRL_NM"`
	Energy   wireText `json:"NUTR_CONT1"`
	Carbs    wireText `json:"NUTR_CONT2"`
	Protein  wireText `json:"NUTR_CONT3"`
	Fat      wireText `json:"NUTR_CONT4"`
	Sugar    wireText `json:"NUTR_CONT5"`
	Sodium   wireText `json:"NUTR_CONT6"`
}

func (p *PortalProducts) SearchProducts(ctx context.Context, q ProductQuery) (*ProductResult, error) {
	payload, err := p.client.Fetch(ctx, q.Page, q.PerPage,
		datago.WithCompanyName(q.CompanyName),
		datago.WithProductName(q.Keyword),
	)
	if err != nil {
		return nil, eris.Wrap(err, "provider: portal products")
	}
	rows, err := decodeRows[portalRow](payload.Items)
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
			Name:         name,
			Code:         string(r.ReportNo),
			Category:     firstNonEmpty(string(r.Shape), string(r.Category)),
			ServingSize:  string(r.Custody),
			Calories:     parseFloat(string(r.Energy)),
			Carbohydrate: parseFloat(string(r.Carbs)),
			Protein:      parseFloat(string(r.Protein)),
			Fat:          parseFloat(string(r.Fat)),
			Sugar:        parseFloat(string(r.Sugar)),
			Sodium:       parseFloat(string(r.Sodium)),
			Manufacturer: string(r.Maker),
			ReportNo:     string(r.ReportNo),
			RawMaterials: string(r.RawMtrl),
			Source:       model.SourceDataGo,
		})
	}
	return &ProductResult{Records: records, Total: payload.TotalCount, Windowed: true}, nil
}
