package catalog

import "strings"

// AllergenMap is the EU 14-allergen list with Slovak labels, keyed by the
// legally mandated allergen number.
var AllergenMap = map[string]string{
	"1":  "Obilniny obsahujúce lepok",
	"2":  "Kôrovce a výrobky z nich",
	"3":  "Vajcia a výrobky z nich",
	"4":  "Ryby a výrobky z nich",
	"5":  "Arašidy a výrobky z nich",
	"6":  "Sója a výrobky z nej",
	"7":  "Mlieko a výrobky z neho",
	"8":  "Orechy",
	"9":  "Zeler a výrobky z neho",
	"10": "Horčica a výrobky z nej",
	"11": "Sezamové semená a výrobky z nich",
	"12": "Oxid siričitý a siričitany",
	"13": "Vlčí bôb (lupina) a výrobky z neho",
	"14": "Mäkkýše a výrobky z nich",
}

// AllergenNames maps allergen numbers to their Slovak names. Unknown numbers
// keep a generic label instead of being dropped.
func AllergenNames(numbers []string) []string {
	names := make([]string, 0, len(numbers))
	for _, num := range numbers {
		if name, ok := AllergenMap[num]; ok {
			names = append(names, name)
		} else {
			names = append(names, "Alergén "+num)
		}
	}
	return names
}

// FormatAllergens renders a display string, either full names or numbers.
func FormatAllergens(numbers []string, useNames bool) string {
	if len(numbers) == 0 {
		return ""
	}
	if useNames {
		return strings.Join(AllergenNames(numbers), ", ")
	}
	return strings.Join(numbers, ", ")
}
