package taxonomy

import "github.com/zafkielzz/match-made-ai-pipeline/internal/domain"

// Fallback datasets. Occupations follow ESCO-style codes, industries the
// VSIC 2018 sections, locations the Vietnamese provinces the platform
// serves.

var occupations = []domain.TaxonomyRef{
	{Code: "2511", Label: "Systems Analyst"},
	{Code: "2512", Label: "Software Developer"},
	{Code: "2513", Label: "Web and Multimedia Developer"},
	{Code: "2514", Label: "Applications Programmer"},
	{Code: "2519", Label: "Software and Applications Tester"},
	{Code: "2521", Label: "Database Designer and Administrator"},
	{Code: "2522", Label: "Systems Administrator"},
	{Code: "2523", Label: "Computer Network Professional"},
	{Code: "2166", Label: "Graphic and Multimedia Designer"},
	{Code: "2421", Label: "Management and Organization Analyst"},
	{Code: "2431", Label: "Advertising and Marketing Professional"},
	{Code: "3322", Label: "Commercial Sales Representative"},
	{Code: "4222", Label: "Contact Centre Information Clerk"},
	{Code: "1212", Label: "Human Resource Manager"},
}

var industries = []domain.TaxonomyRef{
	{Code: "J62", Label: "Computer programming, consultancy and related activities"},
	{Code: "J63", Label: "Information service activities"},
	{Code: "K64", Label: "Financial service activities"},
	{Code: "K66", Label: "Activities auxiliary to financial services"},
	{Code: "G47", Label: "Retail trade"},
	{Code: "C26", Label: "Manufacture of computer, electronic and optical products"},
	{Code: "M70", Label: "Head office and management consultancy activities"},
	{Code: "M73", Label: "Advertising and market research"},
	{Code: "N78", Label: "Employment activities"},
	{Code: "P85", Label: "Education"},
	{Code: "H52", Label: "Warehousing and transport support activities"},
	{Code: "L68", Label: "Real estate activities"},
}

var provinces = []domain.TaxonomyRef{
	{Code: "SG", Label: "Hồ Chí Minh"},
	{Code: "HN", Label: "Hà Nội"},
	{Code: "DN", Label: "Đà Nẵng"},
	{Code: "HP", Label: "Hải Phòng"},
	{Code: "CT", Label: "Cần Thơ"},
	{Code: "BD", Label: "Bình Dương"},
	{Code: "DNA", Label: "Đồng Nai"},
	{Code: "KH", Label: "Khánh Hòa"},
	{Code: "TTH", Label: "Thừa Thiên Huế"},
	{Code: "QN", Label: "Quảng Ninh"},
}
