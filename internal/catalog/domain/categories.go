package domain

import "strings"

// Categories is the closed vocabulary for listings. Category values are
// stored lowercased; subcategories keep their display casing. The store does
// not enforce any of this, validation happens at submission time only.
var Categories = map[string][]string{
	"phone":     {"Feature Phone", "Smart Phone", "Smart Watch"},
	"computer":  {"Laptop", "Desktop", "Monitor", "Mouse", "Keyboard", "Others"},
	"vehicle":   {"Bicycle", "Motorbikes"},
	"textbooks": {"CSE", "EEE", "Textile", "Civil"},
}

// ValidCategory reports whether the (lowercased) category is in the vocabulary.
func ValidCategory(category string) bool {
	_, ok := Categories[strings.ToLower(category)]
	return ok
}

// ValidSubcategory reports whether the subcategory belongs to the category.
func ValidSubcategory(category, subcategory string) bool {
	subcategories, ok := Categories[strings.ToLower(category)]
	if !ok {
		return false
	}
	for _, s := range subcategories {
		if s == subcategory {
			return true
		}
	}
	return false
}
