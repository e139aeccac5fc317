package calculation

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/zhukovvlad/fittings-go/cmd/internal/item"
	"github.com/zhukovvlad/fittings-go/cmd/internal/metrics"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/apierrors"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/effort"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/material"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/resolver"
	"github.com/zhukovvlad/fittings-go/cmd/internal/util"
	"github.com/zhukovvlad/fittings-go/cmd/pkg/logging"
)

// Options - параметры пакетного расчёта.
type Options struct {
	Workers      int
	MaxBatchSize int
}

// BatchSummary - итог пакетного расчёта.
type BatchSummary struct {
	Total  int `json:"total"`
	Failed int `json:"failed"`
}

// CalculationService последовательно вычисляет атрибуты позиции:
// вес, стандарт, стоимость материала, трудозатраты.
type CalculationService struct {
	resolver *resolver.Resolver
	material *material.Calculator
	effort   *effort.Calculator
	opts     Options
	logger   *logging.Logger
}

// NewCalculationService создает новый экземпляр CalculationService
func NewCalculationService(
	res *resolver.Resolver,
	mat *material.Calculator,
	eff *effort.Calculator,
	opts Options,
	logger *logging.Logger,
) *CalculationService {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	return &CalculationService{
		resolver: res,
		material: mat,
		effort:   eff,
		opts:     opts,
		logger:   logger,
	}
}

// CalculateItem рассчитывает позицию любого вида.
func (s *CalculationService) CalculateItem(it item.Item) error {
	switch it.Category() {
	case item.CategoryPipeFitting:
		pf, ok := it.(*item.PipeFittingItem)
		if !ok {
			return apierrors.NewValidationError("позиция категории %s имеет тип %T", it.Category(), it)
		}
		return s.CalculatePipeFitting(pf)
	}
	return apierrors.NewValidationError("неизвестная категория позиции %q", it.Category())
}

// CalculatePipeFitting очищает атрибуты и заново вычисляет их. Повторный расчёт
// с теми же полями даёт тот же результат.
func (s *CalculationService) CalculatePipeFitting(it *item.PipeFittingItem) (err error) {
	started := time.Now()
	defer func() { metrics.ObserveCalculation(string(it.Family()), started, err) }()

	it.ClearAttributes()
	if !it.IsComplete() {
		return fmt.Errorf("%w: typeId %q, не заполнены %v", apierrors.ErrItemIncomplete, it.TypeID, it.MissingColumns())
	}

	weight, err := s.resolver.ResolveWeight(it)
	if err != nil {
		return err
	}
	it.Attributes.Weight = util.Float64Ptr(weight)

	standard, err := s.resolver.ResolveStandard(it)
	if err != nil {
		return err
	}
	it.Attributes.Standard = standard

	price, err := s.material.CalculateMaterialPrice(it)
	if err != nil {
		return err
	}
	it.Attributes.PriceMaterial = util.Float64Ptr(price)

	hours, err := s.effort.CalculateEffortHours(it)
	if err != nil {
		return err
	}
	it.Attributes.EffortHours = util.Float64Ptr(hours)
	return nil
}

// CalculateBatch рассчитывает позиции параллельно. Ошибка позиции записывается
// в её ERRORS и не останавливает остальные; ошибкой пакета считается только
// превышение размера или отмена контекста.
func (s *CalculationService) CalculateBatch(ctx context.Context, items []*item.PipeFittingItem) (BatchSummary, error) {
	logger := s.logger.WithField("method", "CalculateBatch")

	if s.opts.MaxBatchSize > 0 && len(items) > s.opts.MaxBatchSize {
		return BatchSummary{}, apierrors.NewValidationError("слишком много позиций: %d (максимум %d)", len(items), s.opts.MaxBatchSize)
	}
	metrics.BatchSize.Observe(float64(len(items)))

	var failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)

	for i, it := range items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := s.CalculatePipeFitting(it); err != nil {
				failed.Add(1)
				it.Attributes.AddError(err.Error())
				if apierrors.IsFatal(err) {
					logger.Errorf("Позиция %d: пробел в таблицах правил: %v", i, err)
				} else {
					logger.Debugf("Позиция %d: %v", i, err)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return BatchSummary{}, err
	}

	summary := BatchSummary{Total: len(items), Failed: int(failed.Load())}
	logger.Infof("Рассчитано позиций: %d, с ошибками: %d", summary.Total, summary.Failed)
	return summary, nil
}
