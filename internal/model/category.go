package model

// Category is a menu item: Code goes into callback data, Name into sheets and reports
type Category struct {
	Code string
	Name string
}

var IncomeCategories = []Category{
	{Code: "business", Name: "Business"},
	{Code: "investments", Name: "Investments"},
	{Code: "passive", Name: "Passive Income"},
	{Code: "additional", Name: "Additional Income"},
}

var ExpenseCategories = []Category{
	{Code: "housing", Name: "Housing"},
	{Code: "products", Name: "Products"},
	{Code: "restaurants", Name: "Restaurants"},
	{Code: "development", Name: "Development"},
	{Code: "transport", Name: "Transport"},
	{Code: "entertainment", Name: "Entertainment"},
	{Code: "health", Name: "Health"},
	{Code: "style", Name: "Style"},
	{Code: "unexpected", Name: "Unexpected Expenses"},
}

func Categories(kind Kind) []Category {
	switch kind {
	case Income:
		return IncomeCategories
	case Expense:
		return ExpenseCategories
	}
	return nil
}

func CategoryByCode(kind Kind, code string) (Category, bool) {
	for _, c := range Categories(kind) {
		if c.Code == code {
			return c, true
		}
	}
	return Category{}, false
}

func IsCategory(kind Kind, name string) bool {
	for _, c := range Categories(kind) {
		if c.Name == name {
			return true
		}
	}
	return false
}
