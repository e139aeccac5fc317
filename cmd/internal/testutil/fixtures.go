package testutil

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zhukovvlad/fittings-go/cmd/internal/item"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/dataset"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/ruleset"
	"github.com/zhukovvlad/fittings-go/cmd/internal/util"
	"github.com/zhukovvlad/fittings-go/cmd/pkg/logging"
)

// ReferenceCSV - небольшой справочник для тестов. Строки подобраны так, чтобы
// в каждой группе записи были уникальны по значимым полям, плюс несколько
// заведомо отбрасываемых строк (труба, пустой вес, нестандартный диаметр).
const ReferenceCSV = `id;standard;materialId;d1;d2;thickness1;thickness2;weight
2110;EN 10253-2;P235GH;114.3;;3.6;;4.0
2110;EN 10253-2;P235GH;60.3;;2.9;;0.9
2110;EN 10253-4;1.4301;114.3;;3.6;;4.1
2610;EN 10253-2;P235GH;168.3;;4.5;;11.2
3000;EN 10253-2;P235GH;114.3;;3.6;;5.3
3100;EN 10253-2;P235GH;114.3;60.3;3.6;2.9;4.8
3100;EN 10253-2;P235GH;114.3;76.1;3.6;2.9;5.0
4000;EN 10253-2;P235GH;114.3;60.3;3.6;2.9;1.6
4000;EN 10253-4;1.4571;114.3;60.3;3.6;2.9;1.7
5000;EN 10253-2;P235GH;114.3;;3.6;;0.9
6000;EN 1092-1;P235GH;114.3;;;;6.5
7000;EN 1092-1;P235GH;114.3;;3.6;;4.2
1000;EN 10216-2;P235GH;114.3;;3.6;;9.83
2110;EN 10253-2;P235GH;88.9;;3.2;;
2110;EN 10253-2;P235GH;100.0;;3.6;;3.5
`

// ReferenceRecords разбирает ReferenceCSV.
func ReferenceRecords(t *testing.T) []dataset.Record {
	t.Helper()

	records, err := dataset.NewCSVReaderSource(strings.NewReader(ReferenceCSV), ";").Records(context.Background())
	require.NoError(t, err, "Failed to parse reference CSV")
	return records
}

// NewReferenceDataset строит справочник из ReferenceCSV.
func NewReferenceDataset(t *testing.T) *dataset.Dataset {
	t.Helper()

	ds, err := dataset.NewBuilder(ruleset.NewDispatcher(), logging.NewNopLogger()).Build(ReferenceRecords(t))
	require.NoError(t, err, "Failed to build reference dataset")
	return ds
}

// NewItem создаёт позицию. Пустые строки и нулевые размеры означают «не задано».
func NewItem(typeID, material string, quantity, dn1, s1, dn2, s2 float64) *item.PipeFittingItem {
	it := &item.PipeFittingItem{
		TypeID:   typeID,
		Material: util.NilIfEmpty(material),
	}
	set := func(dst **float64, v float64) {
		if v != 0 {
			*dst = util.Float64Ptr(v)
		}
	}
	set(&it.Quantity, quantity)
	set(&it.DN1, dn1)
	set(&it.S1, s1)
	set(&it.DN2, dn2)
	set(&it.S2, s2)
	return it
}
