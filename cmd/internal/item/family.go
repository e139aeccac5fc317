package item

import "github.com/zhukovvlad/fittings-go/cmd/internal/rules"

// Family - форма фитинга, определяет набор обязательных полей.
type Family string

const (
	FamilyPipe           Family = "PIPE"
	FamilyElbow          Family = "ELBOW"
	FamilyTee            Family = "TEE"
	FamilyReducingTee    Family = "REDUCING_TEE"
	FamilyReducer        Family = "REDUCER"
	FamilyCap            Family = "CAP"
	FamilyBlindFlange    Family = "BLIND_FLANGE"
	FamilyWeldNeckFlange Family = "WELD_NECK_FLANGE"
	FamilyUnknown        Family = "UNKNOWN"
)

var (
	singleEndColumns = []Column{ColumnTypeID, ColumnMaterial, ColumnDN1, ColumnS1, ColumnQuantity}
	twoEndColumns    = []Column{ColumnTypeID, ColumnMaterial, ColumnDN1, ColumnS1, ColumnDN2, ColumnS2, ColumnQuantity}
	flangeColumns    = []Column{ColumnTypeID, ColumnMaterial, ColumnDN1, ColumnQuantity}
	unknownColumns   = []Column{ColumnTypeID, ColumnQuantity}
)

type familySpec struct {
	family  Family
	columns []Column
}

// Таблица форм по кодам типа. Границы совпадают с таблицей трудозатрат,
// но таблица независима: она задаёт только состав полей.
var families = rules.MustTable("families",
	rules.Entry[familySpec]{Name: "pipe", Condition: rules.Between(1000, 1999), Handler: familySpec{FamilyPipe, singleEndColumns}},
	rules.Entry[familySpec]{Name: "elbow", Condition: rules.Between(2000, 2999), Handler: familySpec{FamilyElbow, singleEndColumns}},
	rules.Entry[familySpec]{Name: "tee", Condition: rules.Between(3000, 3099), Handler: familySpec{FamilyTee, singleEndColumns}},
	rules.Entry[familySpec]{Name: "reducing tee", Condition: rules.Between(3100, 3199), Handler: familySpec{FamilyReducingTee, twoEndColumns}},
	rules.Entry[familySpec]{Name: "reducer", Condition: rules.Between(4000, 4999), Handler: familySpec{FamilyReducer, twoEndColumns}},
	rules.Entry[familySpec]{Name: "cap", Condition: rules.Between(5000, 5999), Handler: familySpec{FamilyCap, singleEndColumns}},
	rules.Entry[familySpec]{Name: "blind flange", Condition: rules.Between(6000, 6999), Handler: familySpec{FamilyBlindFlange, flangeColumns}},
	rules.Entry[familySpec]{Name: "weld neck flange", Condition: rules.Between(7000, 7999), Handler: familySpec{FamilyWeldNeckFlange, singleEndColumns}},
)

// FamilyOf возвращает форму для кода типа.
func FamilyOf(code int) Family {
	e, ok := families.Resolve(code)
	if !ok {
		return FamilyUnknown
	}
	return e.Handler.family
}

func columnsOf(code int) []Column {
	e, ok := families.Resolve(code)
	if !ok {
		return unknownColumns
	}
	return e.Handler.columns
}
