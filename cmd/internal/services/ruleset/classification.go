package ruleset

import (
	"github.com/zhukovvlad/fittings-go/cmd/internal/item"
	"github.com/zhukovvlad/fittings-go/cmd/internal/rules"
)

// Колонки справочной записи.
const (
	FieldID         = "id"
	FieldStandard   = "standard"
	FieldMaterialID = "materialId"
	FieldD1         = "d1"
	FieldD2         = "d2"
	FieldThickness1 = "thickness1"
	FieldThickness2 = "thickness2"
	FieldWeight     = "weight"
)

// Коды отводов 90°, из которых при загрузке справочника выводятся отводы 45° (код − 10).
var ElbowDerivationCodes = []int{2110, 2610}

// Тройники с редуцированным отводом ищутся в группе обычного редуцирующего тройника.
var reducingOutletTeeCodes = []int{3150, 3160}

const (
	reducingTeeCode        = 3100
	reducingOutletTeeRatio = 0.85
)

var singleEndMapping = map[item.Column]string{
	item.ColumnTypeID:   FieldID,
	item.ColumnMaterial: FieldMaterialID,
	item.ColumnDN1:      FieldD1,
	item.ColumnS1:       FieldThickness1,
}

var twoEndMapping = map[item.Column]string{
	item.ColumnTypeID:   FieldID,
	item.ColumnMaterial: FieldMaterialID,
	item.ColumnDN1:      FieldD1,
	item.ColumnS1:       FieldThickness1,
	item.ColumnDN2:      FieldD2,
	item.ColumnS2:       FieldThickness2,
}

var flangeMapping = map[item.Column]string{
	item.ColumnTypeID:   FieldID,
	item.ColumnMaterial: FieldMaterialID,
	item.ColumnDN1:      FieldD1,
}

var materialOnly = map[item.Column]Transformer{
	item.ColumnMaterial: MaterialTypeTransformer,
}

func lookup(name string, mapping map[item.Column]string) *LookupRule {
	return &LookupRule{Name: name, CSVAttributeMapping: mapping, Transformers: materialOnly}
}

// Таблица классификации. Границы диапазонов независимы от таблиц цен
// и трудозатрат и сохраняются как есть.
var classificationTable = rules.MustTable("classification",
	rules.Entry[RuleSet]{Name: "pipe", Condition: rules.Between(1000, 1999), Handler: pipeRule},
	rules.Entry[RuleSet]{Name: "seamless elbow", Condition: rules.Between(2000, 2999).WithDigit(100, 1),
		Handler: lookup("seamless elbow", singleEndMapping)},
	rules.Entry[RuleSet]{Name: "welded elbow", Condition: rules.Between(2000, 2999).WithDigit(100, 6),
		Handler: lookup("welded elbow", singleEndMapping)},
	rules.Entry[RuleSet]{Name: "equal tee", Condition: rules.Between(3000, 3099),
		Handler: lookup("equal tee", singleEndMapping)},
	rules.Entry[RuleSet]{Name: "reducing outlet tee", Condition: rules.OneOf(reducingOutletTeeCodes...),
		Handler: &LookupRule{
			Name:                "reducing outlet tee",
			CSVAttributeMapping: twoEndMapping,
			Transformers: map[item.Column]Transformer{
				item.ColumnTypeID:   TypeIDAlias(reducingTeeCode),
				item.ColumnMaterial: MaterialTypeTransformer,
			},
			WeightTransformer: ScaleWeight(reducingOutletTeeRatio),
		}},
	rules.Entry[RuleSet]{Name: "reducing tee", Condition: rules.Between(3100, 3199).Except(reducingOutletTeeCodes...),
		Handler: lookup("reducing tee", twoEndMapping)},
	rules.Entry[RuleSet]{Name: "reducer", Condition: rules.Between(4000, 4999),
		Handler: lookup("reducer", twoEndMapping)},
	rules.Entry[RuleSet]{Name: "cap", Condition: rules.Between(5000, 5999),
		Handler: lookup("cap", singleEndMapping)},
	rules.Entry[RuleSet]{Name: "blind flange", Condition: rules.Between(6000, 6999),
		Handler: lookup("blind flange", flangeMapping)},
	rules.Entry[RuleSet]{Name: "weld neck flange", Condition: rules.Between(7000, 7999),
		Handler: lookup("weld neck flange", singleEndMapping)},
)
