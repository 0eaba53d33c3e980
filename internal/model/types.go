package model

// TypeKeys lists the disaster categories in the order the register form and
// dashboard charts present them.
var TypeKeys = []string{
	"alagamentos",
	"colapso_barragens",
	"colapso_edificios",
	"colapso_solo",
	"deslizamentos",
	"enxurradas",
	"erosao_costeira",
	"erosao_margem_fluvial",
	"inundacoes",
	"liberacao_quimicos",
	"tempestade_raios",
	"tombamentos_rolamentos",
	"tremor_terra",
}

// TypeNames maps a disaster category key to its display name.
var TypeNames = map[string]string{
	"alagamentos":            "Alagamentos",
	"colapso_barragens":      "Colapso de Barragens",
	"colapso_edificios":      "Colapso de Edifícios",
	"colapso_solo":           "Colapso de Solo",
	"deslizamentos":          "Deslizamentos",
	"enxurradas":             "Enxurradas",
	"erosao_costeira":        "Erosão Costeira",
	"erosao_margem_fluvial":  "Erosão de Margem Fluvial",
	"inundacoes":             "Inundações",
	"liberacao_quimicos":     "Liberação de Químicos",
	"tempestade_raios":       "Tempestade de Raios",
	"tombamentos_rolamentos": "Tombamentos e Rolamentos",
	"tremor_terra":           "Tremor de Terra",
}

// TypeName resolves a category key to its display name, falling back to the
// key itself for values the catalogue does not know.
func TypeName(key string) string {
	if name, ok := TypeNames[key]; ok {
		return name
	}
	return key
}

// TypeCountBucket is one slice of the type-distribution chart payload.
type TypeCountBucket struct {
	Type  string `json:"tipo"`
	Count int    `json:"count"`
}

// MonthlyCountBucket is one (year, month, type) bucket of the
// monthly-distribution chart payload.
type MonthlyCountBucket struct {
	Type  string `json:"tipo"`
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Count int    `json:"count"`
}

// MonthNames maps a 1-indexed month to its display name, used for the
// monthly-distribution chart labels.
var MonthNames = map[int]string{
	1:  "Janeiro",
	2:  "Fevereiro",
	3:  "Março",
	4:  "Abril",
	5:  "Maio",
	6:  "Junho",
	7:  "Julho",
	8:  "Agosto",
	9:  "Setembro",
	10: "Outubro",
	11: "Novembro",
	12: "Dezembro",
}
