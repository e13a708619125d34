package model

// FilterAll is the vocabulary entry that disables a region or business
// type filter.
const FilterAll = "전체"

// Business type display names accepted by company search.
const (
	BusinessTypeFood       = "식품"
	BusinessTypeHealthFood = "건강기능식품"
	BusinessTypeLivestock  = "축산"
	BusinessTypeRestaurant = "음식점"
)

// RegionCode maps a region display name to the short token that appears
// inside upstream address strings.
type RegionCode struct {
	Name  string `json:"name"`
	Token string `json:"token"`
}

// regionCodes is ordered for stable presentation: the "no filter" entry
// first, then the official administrative ordering.
var regionCodes = []RegionCode{
	{Name: FilterAll, Token: ""},
	{Name: "서울특별시", Token: "서울"},
	{Name: "부산광역시", Token: "부산"},
	{Name: "대구광역시", Token: "대구"},
	{Name: "인천광역시", Token: "인천"},
	{Name: "광주광역시", Token: "광주"},
	{Name: "대전광역시", Token: "대전"},
	{Name: "울산광역시", Token: "울산"},
	{Name: "세종특별자치시", Token: "세종"},
	{Name: "경기도", Token: "경기"},
	{Name: "강원특별자치도", Token: "강원"},
	{Name: "충청북도", Token: "충북"},
	{Name: "충청남도", Token: "충남"},
	{Name: "전북특별자치도", Token: "전북"},
	{Name: "전라남도", Token: "전남"},
	{Name: "경상북도", Token: "경북"},
	{Name: "경상남도", Token: "경남"},
	{Name: "제주특별자치도", Token: "제주"},
}

var businessTypes = []string{
	FilterAll,
	BusinessTypeFood,
	BusinessTypeHealthFood,
	BusinessTypeLivestock,
	BusinessTypeRestaurant,
}

// Regions returns the supported region filters in presentation order.
func Regions() []RegionCode {
	out := make([]RegionCode, len(regionCodes))
	copy(out, regionCodes)
	return out
}

// RegionToken resolves a region display name to its address token. Unknown
// names resolve to the empty token, which matches everything.
func RegionToken(name string) string {
	for _, rc := range regionCodes {
		if rc.Name == name {
			return rc.Token
		}
	}
	return ""
}

// BusinessTypes returns the supported business type filters in
// presentation order.
func BusinessTypes() []string {
	out := make([]string, len(businessTypes))
	copy(out, businessTypes)
	return out
}
