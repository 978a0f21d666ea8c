// internal/models/registration.go
package models

import "time"

// RegistrationRequest is the distributor-registration form payload. Every
// field is enumerated explicitly with its constraint; the sheet row is
// produced in the same fixed order the intake tab expects.
type RegistrationRequest struct {
	// Company
	CompanyNameEn      string `json:"company_name_en" validate:"required,max=255"`
	CompanyNameAr      string `json:"company_name_ar" validate:"max=255"`
	TradeName          string `json:"trade_name" validate:"max=255"`
	Country            string `json:"country" validate:"required,max=100"`
	City               string `json:"city" validate:"required,max=100"`
	Address            string `json:"address" validate:"max=512"`
	Phone              string `json:"phone" validate:"required,max=50"`
	Mobile             string `json:"mobile" validate:"max=50"`
	Email              string `json:"email" validate:"required,email,max=255"`
	Website            string `json:"website" validate:"max=255"`
	RegistrationNumber string `json:"registration_number" validate:"max=100"`
	TaxNumber          string `json:"tax_number" validate:"max=100"`
	EstablishmentYear  string `json:"establishment_year" validate:"max=10"`

	// Business profile
	BusinessType         string `json:"business_type" validate:"max=100"`
	EmployeeCount        string `json:"employee_count" validate:"max=50"`
	SalesTeamSize        string `json:"sales_team_size" validate:"max=50"`
	WarehouseCount       string `json:"warehouse_count" validate:"max=50"`
	WarehouseArea        string `json:"warehouse_area" validate:"max=100"`
	DistributionChannels string `json:"distribution_channels" validate:"max=512"`
	CoveredRegions       string `json:"covered_regions" validate:"max=512"`
	RetailOutlets        string `json:"retail_outlets" validate:"max=100"`
	HasColdChain         string `json:"has_cold_chain" validate:"max=20"`
	ImportLicense        string `json:"import_license" validate:"max=100"`

	// Market experience
	CurrentBrands      string `json:"current_brands" validate:"max=512"`
	YearsInCosmetics   string `json:"years_in_cosmetics" validate:"max=20"`
	AnnualRevenue      string `json:"annual_revenue" validate:"max=100"`
	TargetProducts     string `json:"target_products" validate:"max=512"`
	ExpectedOrderSize  string `json:"expected_order_size" validate:"max=100"`
	MarketingPlan      string `json:"marketing_plan" validate:"max=2000"`
	CompetitorAnalysis string `json:"competitor_analysis" validate:"max=2000"`

	// Contact person
	ContactName     string `json:"contact_name" validate:"required,max=255"`
	ContactTitle    string `json:"contact_title" validate:"max=100"`
	ContactPhone    string `json:"contact_phone" validate:"max=50"`
	ContactEmail    string `json:"contact_email" validate:"omitempty,email,max=255"`
	ContactLanguage string `json:"contact_language" validate:"max=20"`

	// References
	BankName       string `json:"bank_name" validate:"max=255"`
	BankBranch     string `json:"bank_branch" validate:"max=255"`
	TradeReference string `json:"trade_reference" validate:"max=512"`
	Notes          string `json:"notes" validate:"max=2000"`

	// Consent gate. The handler refuses to touch the spreadsheet while
	// this is false.
	AgreeTerms bool `json:"agree_terms"`
}

// Row flattens the form into one spreadsheet row, submission time first.
// Column order is fixed; the intake tab's header row mirrors it.
func (r *RegistrationRequest) Row(submittedAt time.Time) []interface{} {
	return []interface{}{
		submittedAt.UTC().Format(time.RFC3339),
		r.CompanyNameEn,
		r.CompanyNameAr,
		r.TradeName,
		r.Country,
		r.City,
		r.Address,
		r.Phone,
		r.Mobile,
		r.Email,
		r.Website,
		r.RegistrationNumber,
		r.TaxNumber,
		r.EstablishmentYear,
		r.BusinessType,
		r.EmployeeCount,
		r.SalesTeamSize,
		r.WarehouseCount,
		r.WarehouseArea,
		r.DistributionChannels,
		r.CoveredRegions,
		r.RetailOutlets,
		r.HasColdChain,
		r.ImportLicense,
		r.CurrentBrands,
		r.YearsInCosmetics,
		r.AnnualRevenue,
		r.TargetProducts,
		r.ExpectedOrderSize,
		r.MarketingPlan,
		r.CompetitorAnalysis,
		r.ContactName,
		r.ContactTitle,
		r.ContactPhone,
		r.ContactEmail,
		r.ContactLanguage,
		r.BankName,
		r.BankBranch,
		r.TradeReference,
		r.Notes,
	}
}
