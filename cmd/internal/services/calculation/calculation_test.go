package calculation

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhukovvlad/fittings-go/cmd/internal/item"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/apierrors"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/effort"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/material"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/resolver"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/ruleset"
	"github.com/zhukovvlad/fittings-go/cmd/internal/testutil"
	"github.com/zhukovvlad/fittings-go/cmd/pkg/logging"
)

func newTestService(t *testing.T, opts Options) *CalculationService {
	t.Helper()
	logger := logging.NewNopLogger()
	ds := testutil.NewReferenceDataset(t)
	return NewCalculationService(
		resolver.NewResolver(ruleset.NewDispatcher(), ds, logger),
		material.NewCalculator(logger),
		effort.NewCalculator(logger),
		opts,
		logger,
	)
}

func TestCalculationService_CalculatePipeFitting(t *testing.T) {
	s := newTestService(t, Options{Workers: 2})

	t.Run("отвод: все атрибуты", func(t *testing.T) {
		it := testutil.NewItem("2110", "P235GH", 2, 114.3, 3.6, 0, 0)

		require.NoError(t, s.CalculatePipeFitting(it))

		a := it.Attributes
		require.NotNil(t, a.Weight)
		assert.InDelta(t, 4.0, *a.Weight, 1e-9)
		require.NotNil(t, a.Standard)
		assert.Equal(t, "EN 10253-2", *a.Standard)
		require.NotNil(t, a.PriceMaterial)
		assert.InDelta(t, 2.4*4.0*2, *a.PriceMaterial, 1e-9)
		require.NotNil(t, a.EffortHours)
		assert.InDelta(t, a.CalculationEffortHours.Total, *a.EffortHours, 1e-12)
		assert.Empty(t, a.Errors)
	})

	t.Run("труба по формуле", func(t *testing.T) {
		it := testutil.NewItem("1000", "P235GH", 12, 114.3, 3.6, 0, 0)
		require.NoError(t, s.CalculatePipeFitting(it))

		weight := 0.02466 * 3.6 * (114.3 - 3.6)
		assert.InDelta(t, weight, *it.Attributes.Weight, 1e-9)
		assert.Equal(t, "EN 10216-2", *it.Attributes.Standard)
		assert.InDelta(t, 1.5*weight*1.2*12, *it.Attributes.PriceMaterial, 1e-9)
	})

	t.Run("неполная позиция не рассчитывается", func(t *testing.T) {
		it := testutil.NewItem("4000", "P235GH", 1, 114.3, 3.6, 0, 0)
		err := s.CalculatePipeFitting(it)
		assert.ErrorIs(t, err, apierrors.ErrItemIncomplete)
		assert.Nil(t, it.Attributes.Weight)
	})

	t.Run("нулевое количество", func(t *testing.T) {
		it := testutil.NewItem("2110", "P235GH", 0, 114.3, 3.6, 0, 0)
		assert.ErrorIs(t, s.CalculatePipeFitting(it), apierrors.ErrItemIncomplete)
	})

	t.Run("старые атрибуты очищаются", func(t *testing.T) {
		it := testutil.NewItem("2110", "P235GH", 1, 168.3, 4.5, 0, 0)
		it.Attributes.AddError("старая ошибка")
		it.Attributes.PriceMaterial = new(float64)

		err := s.CalculatePipeFitting(it)
		assert.ErrorIs(t, err, apierrors.ErrPipeFittingNotFound)
		assert.Nil(t, it.Attributes.PriceMaterial)
		assert.Empty(t, it.Attributes.Errors)
	})
}

func TestCalculationService_Idempotent(t *testing.T) {
	s := newTestService(t, Options{Workers: 1})

	for _, it := range []*item.PipeFittingItem{
		testutil.NewItem("3150", "P265GH", 3, 114.3, 3.6, 60.3, 2.9),
		testutil.NewItem("1010", "1.4301", 18, 60.3, 2.0, 0, 0),
		testutil.NewItem("7000", "P265GH", 4, 114.3, 3.6, 0, 0),
	} {
		require.NoError(t, s.CalculatePipeFitting(it))
		first, err := json.Marshal(it)
		require.NoError(t, err)

		require.NoError(t, s.CalculatePipeFitting(it))
		second, err := json.Marshal(it)
		require.NoError(t, err)

		assert.Equal(t, string(first), string(second), "typeId %s", it.TypeID)
	}
}

type otherItem struct{}

func (otherItem) Category() item.Category { return "VALVE" }
func (otherItem) IsComplete() bool { return true }
func (otherItem) RelevantColumns() []item.Column { return nil }
func (otherItem) IsColumnAvailable(item.Column) bool { return false }

func TestCalculationService_CalculateItem(t *testing.T) {
	s := newTestService(t, Options{Workers: 1})

	t.Run("позиция трубопроводной арматуры", func(t *testing.T) {
		it := testutil.NewItem("5000", "P235GH", 1, 114.3, 3.6, 0, 0)
		require.NoError(t, s.CalculateItem(it))
		assert.NotNil(t, it.Attributes.EffortHours)
	})

	t.Run("неизвестная категория", func(t *testing.T) {
		err := s.CalculateItem(otherItem{})
		var validationErr *apierrors.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})
}

func TestCalculationService_CalculateBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("ошибки позиций не останавливают пакет", func(t *testing.T) {
		s := newTestService(t, Options{Workers: 3, MaxBatchSize: 10})
		items := []*item.PipeFittingItem{
			testutil.NewItem("2110", "P235GH", 1, 114.3, 3.6, 0, 0),
			testutil.NewItem("2110", "ST37", 1, 114.3, 3.6, 0, 0),
			testutil.NewItem("4000", "P235GH", 1, 114.3, 3.6, 0, 0),
			testutil.NewItem("6000", "P235GH", 2, 114.3, 0, 0, 0),
		}

		summary, err := s.CalculateBatch(ctx, items)
		require.NoError(t, err)
		assert.Equal(t, BatchSummary{Total: 4, Failed: 2}, summary)

		assert.Empty(t, items[0].Attributes.Errors)
		assert.NotNil(t, items[0].Attributes.PriceMaterial)
		require.Len(t, items[1].Attributes.Errors, 1)
		assert.Contains(t, items[1].Attributes.Errors[0], "not found")
		require.Len(t, items[2].Attributes.Errors, 1)
		assert.Contains(t, items[2].Attributes.Errors[0], "item incomplete")
		assert.Empty(t, items[3].Attributes.Errors)
	})

	t.Run("слишком большой пакет", func(t *testing.T) {
		s := newTestService(t, Options{Workers: 1, MaxBatchSize: 1})
		_, err := s.CalculateBatch(ctx, []*item.PipeFittingItem{{}, {}})
		var validationErr *apierrors.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("отменённый контекст", func(t *testing.T) {
		s := newTestService(t, Options{Workers: 1})
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := s.CalculateBatch(cctx, []*item.PipeFittingItem{testutil.NewItem("5000", "P235GH", 1, 114.3, 3.6, 0, 0)})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("пустой пакет", func(t *testing.T) {
		s := newTestService(t, Options{})
		summary, err := s.CalculateBatch(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, BatchSummary{}, summary)
	})
}
