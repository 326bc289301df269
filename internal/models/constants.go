package models

// Well-known category codes. The classifier prompt rules and the
// categorization fallback path depend on these existing in the catalog.
const (
	CategoryCodeGroceries     = "100"
	CategoryCodeDining        = "200"
	CategoryCodeTransport     = "300"
	CategoryCodeOther         = "500"
	CategoryCodeSoftware      = "600"
	CategoryCodePharmacy      = "700"
	CategoryCodeEntertainment = "800"
	CategoryCodeUtilities     = "900"
	CategoryCodeIncome        = "1000"
)

// Budgeting types for categories.
const (
	CategoryTypeFixed    = "fixed"
	CategoryTypeVariable = "variable"
)

// Category kinds (sign of money flow).
const (
	CategoryKindExpense = "Expense"
	CategoryKindIncome  = "Income"
)

// UnknownCategoryName is the placeholder used at aggregation time for
// category codes that no longer exist in the catalog.
const UnknownCategoryName = "Unknown"

// DefaultCategories is the catalog seeded on first use. Codes match the
// fixed rules embedded in the classifier prompt.
func DefaultCategories() []Category {
	return []Category{
		{Code: CategoryCodeGroceries, Name: "Groceries", Type: CategoryTypeVariable, CategoryType: CategoryKindExpense},
		{Code: CategoryCodeDining, Name: "Dining & Takeaway", Type: CategoryTypeVariable, CategoryType: CategoryKindExpense},
		{Code: CategoryCodeTransport, Name: "Transport", Type: CategoryTypeVariable, CategoryType: CategoryKindExpense},
		{Code: CategoryCodeOther, Name: "Other", Type: CategoryTypeVariable, CategoryType: CategoryKindExpense},
		{Code: CategoryCodeSoftware, Name: "Software & Tech", Type: CategoryTypeFixed, CategoryType: CategoryKindExpense},
		{Code: CategoryCodePharmacy, Name: "Pharmacy & Medical", Type: CategoryTypeVariable, CategoryType: CategoryKindExpense},
		{Code: CategoryCodeEntertainment, Name: "Entertainment", Type: CategoryTypeVariable, CategoryType: CategoryKindExpense},
		{Code: CategoryCodeUtilities, Name: "Phone & Utilities", Type: CategoryTypeFixed, CategoryType: CategoryKindExpense},
		{Code: CategoryCodeIncome, Name: "Income", Type: CategoryTypeFixed, CategoryType: CategoryKindIncome},
	}
}
