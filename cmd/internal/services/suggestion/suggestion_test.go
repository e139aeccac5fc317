package suggestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/zhukovvlad/fittings-go/cmd/internal/item"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/apierrors"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/labels"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/labels/mocks"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/resolver"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/ruleset"
	"github.com/zhukovvlad/fittings-go/cmd/internal/testutil"
	"github.com/zhukovvlad/fittings-go/cmd/pkg/logging"
)

func newTestEngine(t *testing.T, translator labels.Translator) *Engine {
	t.Helper()
	dispatcher := ruleset.NewDispatcher()
	ds := testutil.NewReferenceDataset(t)
	logger := logging.NewNopLogger()
	return NewEngine(dispatcher, ds, resolver.NewResolver(dispatcher, ds, logger), translator, "de", logger)
}

func values(candidates []Candidate) []any {
	out := make([]any, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.Value)
	}
	return out
}

func candidateLabels(candidates []Candidate) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.Label)
	}
	return out
}

func TestEngine_TypeCandidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	translator := mocks.NewMockTranslator(ctrl)
	translator.EXPECT().Translate(gomock.Any(), "ru").DoAndReturn(func(key, _ string) string {
		return "ru:" + key
	}).AnyTimes()

	e := newTestEngine(t, translator)

	got, err := e.GetCandidates(&item.PipeFittingItem{}, item.ColumnTypeID, "ru")
	require.NoError(t, err)

	t.Run("формульные коды, коды справочника и псевдонимы с существующей группой", func(t *testing.T) {
		assert.Equal(t, []any{
			"1000", "1010",
			"2110", "2100", "2610", "2600",
			"3000", "3100", "3150", "3160",
			"4000",
			"5000",
			"6000", "7000",
		}, values(got))
	})

	t.Run("подписи и группы", func(t *testing.T) {
		assert.Equal(t, "ru:type.1000", got[0].Label)
		assert.Equal(t, "PIPE", got[0].Group)
		assert.Equal(t, "ru:category.PIPE", got[0].GroupLabel)
		assert.Equal(t, "FLANGE", got[len(got)-1].Group)
	})
}

func TestEngine_DefaultLocale(t *testing.T) {
	ctrl := gomock.NewController(t)
	translator := mocks.NewMockTranslator(ctrl)
	translator.EXPECT().Translate(gomock.Any(), "de").Return("x").MinTimes(1)

	e := newTestEngine(t, translator)
	_, err := e.GetCandidates(&item.PipeFittingItem{}, item.ColumnTypeID, "")
	require.NoError(t, err)
}

func TestEngine_WithoutTypeID(t *testing.T) {
	e := newTestEngine(t, labels.NewCatalogTranslator())

	t.Run("материалы всего справочника", func(t *testing.T) {
		got, err := e.GetCandidates(&item.PipeFittingItem{}, item.ColumnMaterial, "de")
		require.NoError(t, err)
		assert.Equal(t, []any{"16MO3", "P235GH", "P265GH", "1.4571", "1.4301"}, values(got))
		assert.Equal(t, "N", got[0].Group)
		assert.Equal(t, "C-Stahl", got[0].GroupLabel)
		assert.Equal(t, "S", got[4].Group)
		assert.Equal(t, "Edelstahl", got[4].GroupLabel)
	})

	t.Run("диаметры по известному материалу", func(t *testing.T) {
		it := testutil.NewItem("", "P235GH", 0, 0, 0, 0, 0)
		got, err := e.GetCandidates(it, item.ColumnDN1, "de")
		require.NoError(t, err)
		assert.Equal(t, []any{60.3, 114.3, 168.3}, values(got))
		assert.Equal(t, []string{"DN50 (60,3)", "DN100 (114,3)", "DN150 (168,3)"}, candidateLabels(got))
	})

	t.Run("нержавеющая сталь", func(t *testing.T) {
		it := testutil.NewItem("", "1.4301", 0, 0, 0, 0, 0)
		got, err := e.GetCandidates(it, item.ColumnDN1, "de")
		require.NoError(t, err)
		assert.Equal(t, []any{114.3}, values(got))
	})
}

func TestEngine_LookupRule(t *testing.T) {
	e := newTestEngine(t, labels.NewCatalogTranslator())

	t.Run("диаметры отвода", func(t *testing.T) {
		got, err := e.GetCandidates(testutil.NewItem("2110", "P235GH", 0, 0, 0, 0, 0), item.ColumnDN1, "de")
		require.NoError(t, err)
		assert.Equal(t, []any{60.3, 114.3}, values(got))
	})

	t.Run("толщины по диаметру с запятой", func(t *testing.T) {
		got, err := e.GetCandidates(testutil.NewItem("2110", "P235GH", 0, 114.3, 0, 0, 0), item.ColumnS1, "de")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 3.6, got[0].Value)
		assert.Equal(t, "3,6", got[0].Label)
	})

	t.Run("второй диаметр тройника учитывает заполненные поля", func(t *testing.T) {
		got, err := e.GetCandidates(testutil.NewItem("3100", "P235GH", 0, 114.3, 3.6, 0, 0), item.ColumnDN2, "de")
		require.NoError(t, err)
		assert.Equal(t, []any{60.3, 76.1}, values(got))
	})

	t.Run("последующие поля не ограничивают выборку", func(t *testing.T) {
		// s1 уже заполнен, но при подсказке dn1 учитываются только поля до dn1
		got, err := e.GetCandidates(testutil.NewItem("2110", "P235GH", 0, 0, 2.9, 0, 0), item.ColumnDN1, "de")
		require.NoError(t, err)
		assert.Equal(t, []any{60.3, 114.3}, values(got))
	})

	t.Run("материалы группы раскрываются в марки", func(t *testing.T) {
		got, err := e.GetCandidates(&item.PipeFittingItem{TypeID: "4000"}, item.ColumnMaterial, "de")
		require.NoError(t, err)
		assert.Equal(t, []any{"16MO3", "P235GH", "P265GH", "1.4571", "1.4301"}, values(got))
	})

	t.Run("поле не относится к типу", func(t *testing.T) {
		got, err := e.GetCandidates(testutil.NewItem("2110", "P235GH", 0, 0, 0, 0, 0), item.ColumnDN2, "de")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("нет подходящих записей", func(t *testing.T) {
		got, err := e.GetCandidates(testutil.NewItem("5000", "1.4301", 0, 0, 0, 0, 0), item.ColumnDN1, "de")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestEngine_CustomRule(t *testing.T) {
	e := newTestEngine(t, labels.NewCatalogTranslator())

	t.Run("диаметры трубы с ручным вводом первым", func(t *testing.T) {
		got, err := e.GetCandidates(testutil.NewItem("1000", "P235GH", 0, 0, 0, 0, 0), item.ColumnDN1, "de")
		require.NoError(t, err)
		require.Len(t, got, 15)
		assert.Equal(t, GroupFreeEntry, got[0].Group)
		assert.Equal(t, "Freie Eingabe", got[0].Label)
		assert.Nil(t, got[0].Value)
		assert.Equal(t, 21.3, got[1].Value)
		assert.Equal(t, 323.9, got[14].Value)
	})

	t.Run("толщины в пределах диапазона включая границы", func(t *testing.T) {
		got, err := e.GetCandidates(testutil.NewItem("1000", "P235GH", 0, 114.3, 0, 0, 0), item.ColumnS1, "de")
		require.NoError(t, err)
		assert.Equal(t, []any{3.6, 4.0, 4.5, 5.0, 5.6, 6.3, 7.1, 8.0, 8.8}, values(got))
		assert.Equal(t, "3,6", got[0].Label)
		assert.Equal(t, "8,8", got[len(got)-1].Label)
	})

	t.Run("марки трубы", func(t *testing.T) {
		got, err := e.GetCandidates(&item.PipeFittingItem{TypeID: "1010"}, item.ColumnMaterial, "en")
		require.NoError(t, err)
		assert.Equal(t, []any{"16MO3", "P235GH", "P265GH", "1.4571", "1.4301"}, values(got))
		assert.Equal(t, "Carbon steel", got[0].GroupLabel)
	})
}

func TestEngine_Misc(t *testing.T) {
	e := newTestEngine(t, labels.NewCatalogTranslator())

	t.Run("количество вводится вручную", func(t *testing.T) {
		got, err := e.GetCandidates(testutil.NewItem("2110", "P235GH", 0, 114.3, 3.6, 0, 0), item.ColumnQuantity, "de")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("неизвестное поле", func(t *testing.T) {
		_, err := e.GetCandidates(&item.PipeFittingItem{}, item.Column("color"), "de")
		var validationErr *apierrors.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("неизвестный тип - полей нет", func(t *testing.T) {
		got, err := e.GetCandidates(&item.PipeFittingItem{TypeID: "9000"}, item.ColumnDN1, "de")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
