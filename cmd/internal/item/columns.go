package item

// Column - имя поля позиции, по которому идёт классификация, поиск в справочнике и подсказки.
type Column string

const (
	ColumnTypeID   Column = "typeId"
	ColumnQuantity Column = "quantity"
	ColumnDN1      Column = "dn1"
	ColumnDN2      Column = "dn2"
	ColumnS1       Column = "s1"
	ColumnS2       Column = "s2"
	ColumnMaterial Column = "material"
)

// AllColumns задаёт канонический порядок полей. В этом же порядке пользователь
// заполняет позицию, и в нём же выполняется постепенная фильтрация справочника.
var AllColumns = []Column{
	ColumnTypeID,
	ColumnMaterial,
	ColumnDN1,
	ColumnS1,
	ColumnDN2,
	ColumnS2,
	ColumnQuantity,
}

// ParseColumn проверяет, что имя поля известно.
func ParseColumn(name string) (Column, bool) {
	for _, c := range AllColumns {
		if string(c) == name {
			return c, true
		}
	}
	return "", false
}

// IsNumeric - числовые поля (диаметры, толщины, количество).
func (c Column) IsNumeric() bool {
	switch c {
	case ColumnDN1, ColumnDN2, ColumnS1, ColumnS2, ColumnQuantity:
		return true
	}
	return false
}

// IsDiameter - поля номинального диаметра.
func (c Column) IsDiameter() bool {
	return c == ColumnDN1 || c == ColumnDN2
}

// IsThickness - поля толщины стенки.
func (c Column) IsThickness() bool {
	return c == ColumnS1 || c == ColumnS2
}

// ColumnsBefore возвращает колонки списка до target, не включая её.
// Если target не входит в список, возвращается весь список.
func ColumnsBefore(columns []Column, target Column) []Column {
	for i, c := range columns {
		if c == target {
			return columns[:i:i]
		}
	}
	return columns
}
