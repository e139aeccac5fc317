package item

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/zhukovvlad/fittings-go/cmd/internal/util"
)

// Category - вид позиции. Новый вид добавляется новым вариантом и своими
// таблицами правил, а не ветвлением внутри существующих.
type Category string

const CategoryPipeFitting Category = "PIPE_FITTING"

// Item - общие возможности позиции любого вида.
type Item interface {
	Category() Category
	IsComplete() bool
	RelevantColumns() []Column
	IsColumnAvailable(col Column) bool
}

// PipeFittingItem - позиция трубопроводной арматуры: труба, отвод, тройник и т.д.
// Создаётся на каждый запрос и изменяется на месте стадиями расчёта.
type PipeFittingItem struct {
	TypeID     string     `json:"typeId"`
	Quantity   *float64   `json:"quantity,omitempty"`
	DN1        *float64   `json:"dn1,omitempty"`
	DN2        *float64   `json:"dn2,omitempty"`
	S1         *float64   `json:"s1,omitempty"`
	S2         *float64   `json:"s2,omitempty"`
	Material   *string    `json:"material,omitempty"`
	Attributes Attributes `json:"attributes"`
}

var _ Item = (*PipeFittingItem)(nil)

func (it *PipeFittingItem) Category() Category {
	return CategoryPipeFitting
}

// TypeCode разбирает typeId в число.
func (it *PipeFittingItem) TypeCode() (int, error) {
	raw := strings.TrimSpace(it.TypeID)
	if raw == "" {
		return 0, fmt.Errorf("typeId не задан")
	}
	code, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("typeId %q не является целым числом", it.TypeID)
	}
	return code, nil
}

// Family возвращает форму фитинга по typeId.
func (it *PipeFittingItem) Family() Family {
	code, err := it.TypeCode()
	if err != nil {
		return FamilyUnknown
	}
	return FamilyOf(code)
}

// RelevantColumns возвращает обязательные поля для типа позиции в каноническом порядке.
// Пока typeId не задан, доступны все поля.
func (it *PipeFittingItem) RelevantColumns() []Column {
	if strings.TrimSpace(it.TypeID) == "" {
		return slices.Clone(AllColumns)
	}
	code, err := it.TypeCode()
	if err != nil {
		return slices.Clone(unknownColumns)
	}
	return slices.Clone(columnsOf(code))
}

func (it *PipeFittingItem) IsColumnAvailable(col Column) bool {
	return slices.Contains(it.RelevantColumns(), col)
}

// MissingColumns возвращает обязательные поля, которые не заполнены.
func (it *PipeFittingItem) MissingColumns() []Column {
	var missing []Column
	for _, col := range it.RelevantColumns() {
		if it.Get(col) == nil {
			missing = append(missing, col)
		}
	}
	return missing
}

// IsComplete: тип известен, все обязательные поля заполнены, количество положительное.
func (it *PipeFittingItem) IsComplete() bool {
	if it.Family() == FamilyUnknown {
		return false
	}
	if len(it.MissingColumns()) > 0 {
		return false
	}
	return it.Quantity != nil && *it.Quantity > 0
}

// Get возвращает значение поля или nil, если поле не заполнено.
func (it *PipeFittingItem) Get(col Column) any {
	switch col {
	case ColumnTypeID:
		if strings.TrimSpace(it.TypeID) == "" {
			return nil
		}
		return it.TypeID
	case ColumnMaterial:
		if it.Material == nil || *it.Material == "" {
			return nil
		}
		return *it.Material
	}
	if p := it.numericField(col); p != nil && *p != nil {
		return **p
	}
	return nil
}

// Float возвращает числовое значение поля.
func (it *PipeFittingItem) Float(col Column) (float64, bool) {
	v, ok := it.Get(col).(float64)
	return v, ok
}

// Set записывает значение поля. Числовые поля принимают числа и строки
// (строка разбирается по правилам util.ParseNumeric). nil очищает поле.
func (it *PipeFittingItem) Set(col Column, value any) error {
	if value == nil {
		it.Unset(col)
		return nil
	}
	switch col {
	case ColumnTypeID:
		switch v := value.(type) {
		case string:
			it.TypeID = strings.TrimSpace(v)
		default:
			f, ok := util.ToFloat(v)
			if !ok {
				return fmt.Errorf("typeId: неподдерживаемый тип %T", value)
			}
			if f != math.Trunc(f) {
				return fmt.Errorf("typeId: ожидается целое число, получено %g", f)
			}
			it.TypeID = strconv.Itoa(int(f))
		}
		return nil
	case ColumnMaterial:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("material: ожидается строка, получено %T", value)
		}
		it.Material = util.NilIfEmpty(strings.TrimSpace(s))
		return nil
	}

	p := it.numericField(col)
	if p == nil {
		return fmt.Errorf("неизвестное поле %q", col)
	}
	var f float64
	switch v := value.(type) {
	case string:
		// В подписях подсказок дробная часть отделяется запятой.
		parsed, ok := util.ParseNumeric(strings.ReplaceAll(v, ",", "."))
		if !ok {
			return fmt.Errorf("%s: не удалось разобрать число %q", col, v)
		}
		f = parsed
	default:
		parsed, ok := util.ToFloat(v)
		if !ok {
			return fmt.Errorf("%s: неподдерживаемый тип %T", col, value)
		}
		f = parsed
	}
	*p = util.Float64Ptr(f)
	return nil
}

// Unset очищает поле.
func (it *PipeFittingItem) Unset(col Column) {
	switch col {
	case ColumnTypeID:
		it.TypeID = ""
	case ColumnMaterial:
		it.Material = nil
	default:
		if p := it.numericField(col); p != nil {
			*p = nil
		}
	}
}

func (it *PipeFittingItem) numericField(col Column) **float64 {
	switch col {
	case ColumnQuantity:
		return &it.Quantity
	case ColumnDN1:
		return &it.DN1
	case ColumnDN2:
		return &it.DN2
	case ColumnS1:
		return &it.S1
	case ColumnS2:
		return &it.S2
	}
	return nil
}

// MaterialGrade возвращает марку материала или "".
func (it *PipeFittingItem) MaterialGrade() string {
	return util.Deref(it.Material)
}

// QuantityValue возвращает количество; для незаполненного количества 0.
func (it *PipeFittingItem) QuantityValue() float64 {
	if it.Quantity == nil {
		return 0
	}
	return *it.Quantity
}

// ClearAttributes сбрасывает все вычисленные атрибуты перед новым расчётом.
func (it *PipeFittingItem) ClearAttributes() {
	it.Attributes = Attributes{}
}

// Clone возвращает глубокую копию позиции.
func (it *PipeFittingItem) Clone() *PipeFittingItem {
	return &PipeFittingItem{
		TypeID:     it.TypeID,
		Quantity:   clonePtr(it.Quantity),
		DN1:        clonePtr(it.DN1),
		DN2:        clonePtr(it.DN2),
		S1:         clonePtr(it.S1),
		S2:         clonePtr(it.S2),
		Material:   clonePtr(it.Material),
		Attributes: it.Attributes.clone(),
	}
}
