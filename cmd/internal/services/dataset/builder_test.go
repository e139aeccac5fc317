package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhukovvlad/fittings-go/cmd/internal/item"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/apierrors"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/dataset"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/ruleset"
	"github.com/zhukovvlad/fittings-go/cmd/internal/testutil"
	"github.com/zhukovvlad/fittings-go/cmd/pkg/logging"
)

func newBuilder() *dataset.Builder {
	return dataset.NewBuilder(ruleset.NewDispatcher(), logging.NewNopLogger())
}

func TestBuilder_Build(t *testing.T) {
	ds := testutil.NewReferenceDataset(t)

	t.Run("группы и количество записей", func(t *testing.T) {
		assert.Equal(t, []int{2100, 2110, 2600, 2610, 3000, 3100, 4000, 5000, 6000, 7000}, ds.TypeCodes())
		assert.Equal(t, 16, ds.Len())
		assert.Len(t, ds.Group(2110), 3)
		assert.Len(t, ds.Group(3100), 2)
	})

	t.Run("трубы в справочник не попадают", func(t *testing.T) {
		assert.False(t, ds.HasGroup(1000))
		assert.Empty(t, ds.Group(1000))
	})

	t.Run("марка приводится к группе материала", func(t *testing.T) {
		for _, row := range ds.All() {
			m := row.MaterialGrade()
			assert.True(t, m == "N" || m == "S", "material %q", m)
		}
	})

	t.Run("вес и стандарт в атрибутах", func(t *testing.T) {
		row := ds.Group(3000)[0]
		require.NotNil(t, row.Attributes.Weight)
		assert.InDelta(t, 5.3, *row.Attributes.Weight, 1e-9)
		require.NotNil(t, row.Attributes.Standard)
		assert.Equal(t, "EN 10253-2", *row.Attributes.Standard)
	})

	t.Run("фланец без толщины считается полным", func(t *testing.T) {
		rows := ds.Group(6000)
		require.Len(t, rows, 1)
		assert.Nil(t, rows[0].S1)
		assert.True(t, rows[0].IsComplete())
	})
}

func TestBuilder_DerivedElbows(t *testing.T) {
	// GIVEN: отвод 90° с весом 4.0
	records := []dataset.Record{
		{"id": "2110", "standard": "EN 10253-2", "materialId": "P235GH", "d1": "114.3", "thickness1": "3.6", "weight": "4.0"},
	}

	// WHEN
	ds, err := newBuilder().Build(records)
	require.NoError(t, err)

	// THEN: появился отвод 45° той же размерности с половинным весом
	derived := ds.Group(2100)
	require.Len(t, derived, 1)
	assert.Equal(t, "2100", derived[0].TypeID)
	assert.InDelta(t, 2.0, *derived[0].Attributes.Weight, 1e-9)
	assert.Equal(t, 114.3, *derived[0].DN1)
	assert.Equal(t, 3.6, *derived[0].S1)
	assert.Equal(t, "N", derived[0].MaterialGrade())
	assert.Equal(t, "EN 10253-2", *derived[0].Attributes.Standard)

	t.Run("исходная запись не изменилась", func(t *testing.T) {
		assert.InDelta(t, 4.0, *ds.Group(2110)[0].Attributes.Weight, 1e-9)
	})

	t.Run("сварной отвод 2610 даёт 2600", func(t *testing.T) {
		ds, err := newBuilder().Build([]dataset.Record{
			{"id": "2610", "materialId": "1.4301", "d1": "60.3", "thickness1": "2.0", "weight": "1.1"},
		})
		require.NoError(t, err)
		require.Len(t, ds.Group(2600), 1)
		assert.InDelta(t, 0.55, *ds.Group(2600)[0].Attributes.Weight, 1e-9)
	})
}

func TestBuilder_SkippedRecords(t *testing.T) {
	cases := []struct {
		name   string
		record dataset.Record
	}{
		{"нет id", dataset.Record{"materialId": "P235GH", "d1": "114.3", "thickness1": "3.6", "weight": "4"}},
		{"пустой вес", dataset.Record{"id": "3000", "materialId": "P235GH", "d1": "114.3", "thickness1": "3.6", "weight": " "}},
		{"нет материала", dataset.Record{"id": "3000", "d1": "114.3", "thickness1": "3.6", "weight": "4"}},
		{"нестандартный диаметр", dataset.Record{"id": "3000", "materialId": "P235GH", "d1": "100", "thickness1": "3.6", "weight": "4"}},
		{"нет толщины", dataset.Record{"id": "3000", "materialId": "P235GH", "d1": "114.3", "weight": "4"}},
		{"вес не число", dataset.Record{"id": "3000", "materialId": "P235GH", "d1": "114.3", "thickness1": "3.6", "weight": "n/a"}},
		{"труба считается по формуле", dataset.Record{"id": "1010", "materialId": "P235GH", "d1": "114.3", "thickness1": "3.6", "weight": "9.8"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ds, err := newBuilder().Build([]dataset.Record{tc.record})
			require.NoError(t, err)
			assert.Equal(t, 0, ds.Len())
		})
	}
}

func TestBuilder_UnknownTypeIsFatal(t *testing.T) {
	records := []dataset.Record{
		{"id": "3000", "materialId": "P235GH", "d1": "114.3", "thickness1": "3.6", "weight": "5.3"},
		{"id": "8000", "materialId": "P235GH", "d1": "114.3", "thickness1": "3.6", "weight": "1"},
	}

	ds, err := newBuilder().Build(records)
	require.Error(t, err)
	assert.Nil(t, ds)
	assert.ErrorIs(t, err, apierrors.ErrRulesetNotFound)
	assert.Contains(t, err.Error(), "запись 2")
}

func TestBuilder_ReducingOutletTeeRecordsJoinBaseGroup(t *testing.T) {
	ds, err := newBuilder().Build([]dataset.Record{
		{"id": "3150", "materialId": "P235GH", "d1": "114.3", "d2": "60.3", "thickness1": "3.6", "thickness2": "2.9", "weight": "4.8"},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{3100}, ds.TypeCodes())
}

func TestDataset_Immutable(t *testing.T) {
	ds := testutil.NewReferenceDataset(t)

	group := ds.Group(3100)
	group[0] = &item.PipeFittingItem{TypeID: "9999"}

	assert.Equal(t, "3100", ds.Group(3100)[0].TypeID)
}

func TestDataset_Stats(t *testing.T) {
	ds := testutil.NewReferenceDataset(t)
	stats := ds.Stats()

	assert.Equal(t, 10, stats.Groups)
	assert.Equal(t, 16, stats.Records)
	assert.Equal(t, 3, stats.PerType[2100])
	assert.Len(t, stats.Fingerprint, 64)

	t.Run("отпечаток стабилен", func(t *testing.T) {
		assert.Equal(t, stats.Fingerprint, testutil.NewReferenceDataset(t).Stats().Fingerprint)
	})

	t.Run("отпечаток меняется вместе с данными", func(t *testing.T) {
		records := testutil.ReferenceRecords(t)
		records[0]["weight"] = "4.01"
		other, err := newBuilder().Build(records)
		require.NoError(t, err)
		assert.NotEqual(t, stats.Fingerprint, other.Stats().Fingerprint)
	})
}
