// Package export writes query results to xlsx reports.
package export

import (
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/opendatakr/foodsearch/internal/model"
)

// WriteCompanies writes a company result page to path, one sheet with a
// header row.
func WriteCompanies(path string, res model.PagedResult[model.CompanyRecord]) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("업체")
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	writeRow(sheet, "업체명", "인허가번호", "업종", "대표자", "소재지", "지역", "영업상태", "인허가일자", "전화번호", "출처")
	for _, c := range res.Items {
		writeRow(sheet, c.Name, c.LicenseNo, c.BusinessType, c.Representative, c.Address, c.Region, c.Status, c.LicenseDate, c.Phone, c.Source)
	}

	if err := f.Save(path); err != nil {
		return eris.Wrap(err, "export: save file")
	}
	return nil
}

// WriteProducts writes a product result page to path. Nutrition columns
// stay empty when the provider reported no value.
func WriteProducts(path string, res model.PagedResult[model.ProductRecord]) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("품목")
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	writeRow(sheet, "제품명", "분류", "제조사", "품목보고번호", "원재료", "열량(kcal)", "나트륨(mg)", "유통기한", "출처")
	for _, p := range res.Items {
		writeRow(sheet, p.Name, p.Category, p.Manufacturer, p.ReportNo, p.RawMaterials,
			number(p.Calories), number(p.Sodium), p.ExpiryDate, p.Source)
	}

	if err := f.Save(path); err != nil {
		return eris.Wrap(err, "export: save file")
	}
	return nil
}

func writeRow(sheet *xlsx.Sheet, values ...string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().Value = v
	}
}

func number(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
