package suggestion

// TypeCategory - группа кодов типа в списке выбора. Порядок кодов - порядок вывода.
type TypeCategory struct {
	Name  string
	Codes []int
}

// Поддерживаемые коды типа по категориям. Код вне этой таблицы пользователю не предлагается.
var typeCategories = []TypeCategory{
	{Name: "PIPE", Codes: []int{1000, 1010}},
	{Name: "ELBOW", Codes: []int{2110, 2100, 2610, 2600}},
	{Name: "TEE", Codes: []int{3000, 3100, 3150, 3160}},
	{Name: "REDUCER", Codes: []int{4000, 4010}},
	{Name: "CAP", Codes: []int{5000}},
	{Name: "FLANGE", Codes: []int{6000, 7000}},
}

// TypeCategories возвращает таблицу категорий.
func TypeCategories() []TypeCategory {
	out := make([]TypeCategory, len(typeCategories))
	copy(out, typeCategories)
	return out
}
