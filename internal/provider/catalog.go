package provider

import "github.com/opendatakr/foodsearch/internal/model"

// Catalog is the curated dataset behind the static provider. It is built
// once at startup and read concurrently without synchronization, so it
// must never be mutated after construction.
type Catalog struct {
	Companies    []model.CompanyRecord
	Products     map[string][]model.ProductRecord
	RepHistories map[string][]model.RepresentativeChangeRecord
	// KeywordPool is the product universe for keyword search, drawn from
	// the flagship manufacturers.
	KeywordPool []model.ProductRecord
}

// DefaultCatalog returns the built-in demo dataset: the major Korean food
// manufacturers with their flagship products and representative history.
func DefaultCatalog() Catalog {
	products := defaultProducts()

	pool := make([]model.ProductRecord, 0, 18)
	for _, name := range []string{"농심(주)", "삼양식품(주)", "오뚜기(주)"} {
		pool = append(pool, products[name]...)
	}

	return Catalog{
		Companies:    defaultCompanies(),
		Products:     products,
		RepHistories: defaultRepHistories(),
		KeywordPool:  pool,
	}
}

func company(name, licenseNo, businessType, rep, address, region string) model.CompanyRecord {
	return model.CompanyRecord{
		Name:           name,
		LicenseNo:      licenseNo,
		BusinessType:   businessType,
		Representative: rep,
		Address:        address,
		Region:         region,
		Status:         statusOperating,
		Source:         model.SourceStaticCatalog,
	}
}

func defaultCompanies() []model.CompanyRecord {
	return []model.CompanyRecord{
		// 서울
		company("삼양식품(주)", "19670001", "식품", "김정수", "서울특별시 성북구 삼양로 123", "서울"),
		company("농심(주)", "19680002", "식품", "이병학", "서울특별시 동작구 신대방동 456", "서울"),
		company("CJ제일제당(주)", "19530004", "식품", "최은석", "서울특별시 중구 을지로 123", "서울"),
		company("대상(주)", "19560005", "식품", "임정배", "서울특별시 종로구 종로 456", "서울"),
		company("풀무원식품(주)", "19840006", "식품", "이효율", "서울특별시 강남구 테헤란로 789", "서울"),
		company("롯데제과(주)", "19670008", "식품", "민명기", "서울특별시 영등포구 양평동 111", "서울"),
		company("해태제과(주)", "19680010", "식품", "신정훈", "서울특별시 용산구 한강로 222", "서울"),
		company("동서식품(주)", "19680011", "식품", "김광수", "서울특별시 강남구 삼성동 333", "서울"),
		// 경기
		company("오뚜기(주)", "19690003", "식품", "함영준", "경기도 안양시 동안구 평촌동 123", "경기"),
		company("빙그레(주)", "19670007", "식품", "전창원", "경기도 남양주시 진접읍 456", "경기"),
		company("매일유업(주)", "19690012", "식품", "김선희", "경기도 용인시 기흥구 789", "경기"),
		company("남양유업(주)", "19640013", "식품", "이광범", "경기도 세종시 세종로 111", "경기"),
		// 축산
		company("하림(주)", "19860014", "축산", "김홍국", "전북특별자치도 익산시 왕궁면 789", "전북"),
		company("마니커(주)", "19920201", "축산", "박철", "충청남도 천안시 동남구 123", "충남"),
		company("선진(주)", "19800202", "축산", "이범권", "경기도 파주시 문산읍 456", "경기"),
		company("목우촌(주)", "19840203", "축산", "이상열", "경상북도 영천시 북안면 789", "경북"),
		company("도드람푸드(주)", "19950204", "축산", "박광욱", "경기도 안성시 미양면 111", "경기"),
		company("체리부로(주)", "19850205", "축산", "정희용", "충청북도 음성군 대소면 222", "충북"),
		company("사조팜스(주)", "19900206", "축산", "주지홍", "경상북도 상주시 함창읍 333", "경북"),
		// 부산
		company("삼진어묵(주)", "19530020", "식품", "박용준", "부산광역시 영도구 봉래동 123", "부산"),
		company("동원F&B(주) 부산공장", "19690021", "식품", "김재철", "부산광역시 사하구 장림동 456", "부산"),
		// 대구
		company("팔도(주)", "19830030", "식품", "이영재", "대구광역시 달성군 다사읍 123", "대구"),
		// 충북
		company("청정원(주)", "19870040", "식품", "임정배", "충청북도 청주시 흥덕구 123", "충북"),
		// 충남
		company("사조대림(주)", "19710041", "식품", "주지홍", "충청남도 아산시 배방읍 456", "충남"),
		// 전북
		company("동원F&B(주)", "19690050", "식품", "김재철", "전북특별자치도 익산시 왕궁면 789", "전북"),
		// 경북
		company("정식품(주)", "19730060", "식품", "박승주", "경상북도 칠곡군 지천면 123", "경북"),
		// 경남
		company("사조해표(주)", "19720070", "식품", "주지홍", "경상남도 창원시 마산회원구 456", "경남"),
		// 건강기능식품
		company("한국야쿠르트(주)", "19710100", "건강기능식품", "김병진", "서울특별시 서초구 서초동 123", "서울"),
		company("종근당건강(주)", "19830101", "건강기능식품", "김영주", "서울특별시 강동구 성내동 456", "서울"),
		company("뉴트리(주)", "20000102", "건강기능식품", "강준희", "경기도 성남시 분당구 789", "경기"),
		company("고려은단(주)", "19730103", "건강기능식품", "장영호", "서울특별시 강남구 역삼동 111", "서울"),
	}
}

func product(name, category, maker, reportNo, rawMaterials string) model.ProductRecord {
	return model.ProductRecord{
		Name:         name,
		Category:     category,
		Manufacturer: maker,
		ReportNo:     reportNo,
		RawMaterials: rawMaterials,
		Source:       model.SourceStaticCatalog,
	}
}

func defaultProducts() map[string][]model.ProductRecord {
	return map[string][]model.ProductRecord{
		"농심(주)": {
			product("신라면", "라면", "농심(주)", "NM001", "밀가루, 팜유, 전분, 고춧가루"),
			product("안성탕면", "라면", "농심(주)", "NM002", "밀가루, 팜유, 된장분말"),
			product("짜파게티", "라면", "농심(주)", "NM003", "밀가루, 팜유, 춘장분말"),
			product("너구리", "라면", "농심(주)", "NM004", "밀가루, 팜유, 다시마"),
			product("새우깡", "스낵", "농심(주)", "NM005", "밀가루, 새우분말, 팜유"),
			product("양파링", "스낵", "농심(주)", "NM006", "밀가루, 양파분말, 팜유"),
			product("포테토칩 오리지널", "스낵", "농심(주)", "NM007", "감자, 팜유, 소금"),
		},
		"삼양식품(주)": {
			product("삼양라면", "라면", "삼양식품(주)", "SY001", "밀가루, 팜유, 소금"),
			product("불닭볶음면", "라면", "삼양식품(주)", "SY002", "밀가루, 팜유, 고춧가루, 캡사이신"),
			product("짜짜로니", "라면", "삼양식품(주)", "SY003", "밀가루, 팜유, 춘장"),
			product("까르보불닭볶음면", "라면", "삼양식품(주)", "SY004", "밀가루, 팜유, 크림분말"),
			product("핵불닭볶음면", "라면", "삼양식품(주)", "SY005", "밀가루, 팜유, 청양고추"),
		},
		"오뚜기(주)": {
			product("진라면 순한맛", "라면", "오뚜기(주)", "OT001", "밀가루, 팜유, 소고기분말"),
			product("진라면 매운맛", "라면", "오뚜기(주)", "OT002", "밀가루, 팜유, 고춧가루"),
			product("참깨라면", "라면", "오뚜기(주)", "OT003", "밀가루, 팜유, 참깨"),
			product("오뚜기 카레 순한맛", "즉석조리", "오뚜기(주)", "OT004", "카레분말, 양파, 감자"),
			product("3분 짜장", "즉석조리", "오뚜기(주)", "OT005", "춘장, 돼지고기, 양파"),
			product("케찹", "소스", "오뚜기(주)", "OT006", "토마토, 설탕, 식초"),
		},
		"CJ제일제당(주)": {
			product("햇반", "즉석밥", "CJ제일제당(주)", "CJ001", "쌀, 정제수"),
			product("비비고 왕교자", "만두", "CJ제일제당(주)", "CJ002", "밀가루, 돼지고기, 배추"),
			product("스팸 클래식", "캔햄", "CJ제일제당(주)", "CJ003", "돼지고기, 전분, 소금"),
			product("다시다", "조미료", "CJ제일제당(주)", "CJ004", "소고기엑기스, 소금, MSG"),
			product("백설 식용유", "식용유", "CJ제일제당(주)", "CJ005", "대두유"),
		},
		"롯데제과(주)": {
			product("초코파이", "과자", "롯데제과(주)", "LT001", "밀가루, 설탕, 초콜릿"),
			product("빼빼로", "과자", "롯데제과(주)", "LT002", "밀가루, 초콜릿, 설탕"),
			product("꼬깔콘", "스낵", "롯데제과(주)", "LT003", "옥수수, 팜유, 소금"),
			product("칸쵸", "과자", "롯데제과(주)", "LT004", "밀가루, 설탕, 초콜릿"),
		},
		"빙그레(주)": {
			product("바나나맛우유", "가공유", "빙그레(주)", "BG001", "원유, 설탕, 바나나농축액"),
			product("메로나", "아이스크림", "빙그레(주)", "BG002", "정제수, 설탕, 멜론농축액"),
			product("투게더", "아이스크림", "빙그레(주)", "BG003", "원유, 설탕, 바닐라향"),
			product("요플레", "발효유", "빙그레(주)", "BG004", "원유, 유산균, 설탕"),
		},
		"풀무원식품(주)": {
			product("풀무원 두부", "두부", "풀무원식품(주)", "PM001", "대두, 정제수, 응고제"),
			product("생면식감 라면", "라면", "풀무원식품(주)", "PM002", "밀가루, 팜유, 소금"),
			product("김치", "김치", "풀무원식품(주)", "PM003", "배추, 고춧가루, 젓갈"),
		},
		"대상(주)": {
			product("청정원 순창고추장", "장류", "대상(주)", "DS001", "고춧가루, 찹쌀, 메주"),
			product("청정원 된장", "장류", "대상(주)", "DS002", "대두, 소금, 밀"),
			product("미원", "조미료", "대상(주)", "DS003", "MSG"),
		},
		"한국야쿠르트(주)": {
			product("야쿠르트", "발효유", "한국야쿠르트(주)", "YK001", "탈지분유, 유산균, 설탕"),
			product("쿠퍼스", "건강음료", "한국야쿠르트(주)", "YK002", "정제수, 비타민, 미네랄"),
		},
		// 축산 업체
		"하림(주)": {
			product("하림 IFF 치킨너겟", "닭고기가공품", "하림(주)", "HR001", "닭고기, 밀가루, 빵가루"),
			product("하림 닭가슴살", "닭고기", "하림(주)", "HR002", "닭가슴살"),
			product("하림 치킨까스", "닭고기가공품", "하림(주)", "HR003", "닭고기, 밀가루, 빵가루"),
			product("하림 닭볶음탕용", "닭고기", "하림(주)", "HR004", "닭고기"),
			product("하림 더미니 소시지", "소시지", "하림(주)", "HR005", "닭고기, 전분, 소금"),
		},
		"마니커(주)": {
			product("마니커 순살치킨", "닭고기가공품", "마니커(주)", "MK001", "닭고기, 밀가루, 전분"),
			product("마니커 치킨텐더", "닭고기가공품", "마니커(주)", "MK002", "닭고기, 밀가루, 빵가루"),
			product("마니커 닭다리살", "닭고기", "마니커(주)", "MK003", "닭다리살"),
		},
		"선진(주)": {
			product("선진 한돈 삼겹살", "돼지고기", "선진(주)", "SJ001", "돼지고기"),
			product("선진 한돈 목살", "돼지고기", "선진(주)", "SJ002", "돼지고기"),
			product("선진 한돈 앞다리살", "돼지고기", "선진(주)", "SJ003", "돼지고기"),
		},
		"목우촌(주)": {
			product("목우촌 뚝심한우", "소고기", "목우촌(주)", "MW001", "한우"),
			product("목우촌 주부9단 베이컨", "베이컨", "목우촌(주)", "MW002", "돼지고기, 소금, 향신료"),
			product("목우촌 프리미엄 소시지", "소시지", "목우촌(주)", "MW003", "돼지고기, 전분, 소금"),
		},
		"도드람푸드(주)": {
			product("도드람 한돈 삼겹살", "돼지고기", "도드람푸드(주)", "DD001", "돼지고기"),
			product("도드람 수제 햄", "햄", "도드람푸드(주)", "DD002", "돼지고기, 소금, 향신료"),
			product("도드람 프랑크 소시지", "소시지", "도드람푸드(주)", "DD003", "돼지고기, 전분, 소금"),
		},
		"체리부로(주)": {
			product("체리부로 닭가슴살", "닭고기", "체리부로(주)", "CB001", "닭가슴살"),
			product("체리부로 훈제치킨", "닭고기가공품", "체리부로(주)", "CB002", "닭고기, 소금, 훈연향"),
			product("체리부로 닭안심", "닭고기", "체리부로(주)", "CB003", "닭안심"),
		},
		"사조팜스(주)": {
			product("사조팜스 통닭다리", "닭고기", "사조팜스(주)", "SP001", "닭다리"),
			product("사조팜스 닭볶음탕용", "닭고기", "사조팜스(주)", "SP002", "닭고기"),
			product("사조팜스 닭가슴살 슬라이스", "닭고기", "사조팜스(주)", "SP003", "닭가슴살"),
		},
	}
}

func repChange(rep, date, changeType string) model.RepresentativeChangeRecord {
	return model.RepresentativeChangeRecord{
		Representative: rep,
		ChangeDate:     date,
		ChangeType:     changeType,
	}
}

func defaultRepHistories() map[string][]model.RepresentativeChangeRecord {
	return map[string][]model.RepresentativeChangeRecord{
		"삼양식품(주)": {
			repChange("김정수", "2020-03-15", model.ChangeTypeCurrent),
			repChange("김윤", "2015-01-20", "대표자 변경"),
			repChange("전중윤", "2008-05-10", "대표자 변경"),
		},
		"농심(주)": {
			repChange("이병학", "2021-12-01", model.ChangeTypeCurrent),
			repChange("박준", "2017-03-15", "대표자 변경"),
			repChange("신춘호", "2003-07-01", "대표자 변경"),
		},
		"CJ제일제당(주)": {
			repChange("최은석", "2022-04-01", model.ChangeTypeCurrent),
			repChange("강신호", "2018-09-01", "대표자 변경"),
		},
		"오뚜기(주)": {
			repChange("함영준", "2019-06-01", model.ChangeTypeCurrent),
			repChange("함태호", "1980-01-01", "설립"),
		},
		"롯데제과(주)": {
			repChange("민명기", "2021-09-01", model.ChangeTypeCurrent),
			repChange("이재혁", "2017-11-01", "대표자 변경"),
		},
		"하림(주)": {
			repChange("김홍국", "2000-01-01", model.ChangeTypeCurrent),
		},
		"빙그레(주)": {
			repChange("전창원", "2019-03-01", model.ChangeTypeCurrent),
			repChange("박영호", "2010-05-01", "대표자 변경"),
		},
	}
}
