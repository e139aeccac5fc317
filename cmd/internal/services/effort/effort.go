package effort

import (
	"fmt"

	"github.com/zhukovvlad/fittings-go/cmd/internal/item"
	"github.com/zhukovvlad/fittings-go/cmd/internal/rules"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/apierrors"
	"github.com/zhukovvlad/fittings-go/cmd/pkg/logging"
)

// Названия шагов расчёта.
const (
	StepHandlingPipe      = "HANDLING_PIPE"
	StepLayingPipe        = "LAYING_PIPE"
	StepFitting2End       = "FITTING_2_END"
	StepFitting3End       = "FITTING_3_END"
	StepFlangedConnection = "FLANGED_CONNECTION"
	StepCircularWeld      = "CIRCULAR_WELD"
)

// Один кольцевой шов на каждые шесть метров трубы.
const pipeLengthPerWeld = 6.0

type stepsFunc func(it *item.PipeFittingItem) ([]item.EffortStep, error)

// Calculator считает трудозатраты позиции по шагам.
type Calculator struct {
	table  *rules.Table[stepsFunc]
	logger *logging.Logger
}

func NewCalculator(logger *logging.Logger) *Calculator {
	return &Calculator{
		table:  effortTable,
		logger: logger,
	}
}

// CalculateEffortHours возвращает трудозатраты на всё количество позиции, ч,
// и записывает пошаговую расшифровку в атрибуты.
func (c *Calculator) CalculateEffortHours(it *item.PipeFittingItem) (float64, error) {
	code, err := it.TypeCode()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apierrors.ErrCalculationConditionNotFound, err)
	}
	entry, ok := c.table.Resolve(code)
	if !ok {
		return 0, fmt.Errorf("%w: нет правила трудозатрат для typeId %d", apierrors.ErrCalculationConditionNotFound, code)
	}

	steps, err := entry.Handler(it)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, s := range steps {
		total += s.Hours()
	}
	it.Attributes.CalculationEffortHours = &item.EffortCalculation{Steps: steps, Total: total}
	c.logger.Debugf("Трудозатраты typeId %d (%s): %d шагов, %g ч", code, entry.Name, len(steps), total)
	return total, nil
}

// Describe возвращает описание таблицы трудозатрат построчно.
func (c *Calculator) Describe() []string {
	return c.table.Describe()
}

var effortTable = rules.MustTable("effort hours",
	rules.Entry[stepsFunc]{Name: "pipe", Condition: rules.Between(1000, 1999), Handler: pipeSteps},
	rules.Entry[stepsFunc]{Name: "elbow", Condition: rules.Between(2000, 2999), Handler: fittingSteps(StepFitting2End, Fitting2End, 2)},
	rules.Entry[stepsFunc]{Name: "tee", Condition: rules.Between(3000, 3099), Handler: fittingSteps(StepFitting3End, Fitting3End, 3)},
	rules.Entry[stepsFunc]{Name: "reducing tee", Condition: rules.Between(3100, 3199), Handler: reducingTeeSteps},
	rules.Entry[stepsFunc]{Name: "reducer", Condition: rules.Between(4000, 4999), Handler: reducerSteps},
	rules.Entry[stepsFunc]{Name: "cap", Condition: rules.Between(5000, 5999), Handler: capSteps},
	rules.Entry[stepsFunc]{Name: "blind flange", Condition: rules.Between(6000, 6999), Handler: blindFlangeSteps},
	rules.Entry[stepsFunc]{Name: "weld neck flange", Condition: rules.Between(7000, 7999), Handler: weldNeckFlangeSteps},
)

// end - размеры одного конца фитинга.
type end struct {
	dn, s float64
}

func (e end) size() string {
	return fmt.Sprintf("%g x %g", e.dn, e.s)
}

func endOf(it *item.PipeFittingItem, dnCol, sCol item.Column) (end, error) {
	dn, okD := it.Float(dnCol)
	s, okS := it.Float(sCol)
	if !okD || !okS {
		return end{}, fmt.Errorf("%w: не заполнены %s/%s", apierrors.ErrItemIncomplete, dnCol, sCol)
	}
	return end{dn: dn, s: s}, nil
}

func diameterOf(it *item.PipeFittingItem) (float64, error) {
	dn, ok := it.Float(item.ColumnDN1)
	if !ok {
		return 0, fmt.Errorf("%w: не заполнен %s", apierrors.ErrItemIncomplete, item.ColumnDN1)
	}
	return dn, nil
}

func weldStep(it *item.PipeFittingItem, e end, quantity float64) (item.EffortStep, error) {
	perUnit, err := CircularWeld(e.dn, e.s, it.MaterialGrade())
	if err != nil {
		return item.EffortStep{}, err
	}
	return item.EffortStep{Name: StepCircularWeld, EffortPerUnit: perUnit, Quantity: quantity, Size: e.size()}, nil
}

func pipeSteps(it *item.PipeFittingItem) ([]item.EffortStep, error) {
	e, err := endOf(it, item.ColumnDN1, item.ColumnS1)
	if err != nil {
		return nil, err
	}
	q := it.QuantityValue()
	weld, err := weldStep(it, e, q/pipeLengthPerWeld)
	if err != nil {
		return nil, err
	}
	return []item.EffortStep{
		{Name: StepHandlingPipe, EffortPerUnit: HandlingPipe(e.dn), Quantity: q, Size: fmt.Sprintf("%g", e.dn)},
		{Name: StepLayingPipe, EffortPerUnit: LayingPipe(e.dn, e.s), Quantity: q, Size: e.size()},
		weld,
	}, nil
}

// fittingSteps - установка фитинга и welds одинаковых швов по dn1/s1 на единицу.
func fittingSteps(name string, install func(float64) float64, welds float64) stepsFunc {
	return func(it *item.PipeFittingItem) ([]item.EffortStep, error) {
		e, err := endOf(it, item.ColumnDN1, item.ColumnS1)
		if err != nil {
			return nil, err
		}
		q := it.QuantityValue()
		weld, err := weldStep(it, e, welds*q)
		if err != nil {
			return nil, err
		}
		return []item.EffortStep{
			{Name: name, EffortPerUnit: install(e.dn), Quantity: q, Size: fmt.Sprintf("%g", e.dn)},
			weld,
		}, nil
	}
}

func reducingTeeSteps(it *item.PipeFittingItem) ([]item.EffortStep, error) {
	run, err := endOf(it, item.ColumnDN1, item.ColumnS1)
	if err != nil {
		return nil, err
	}
	branch, err := endOf(it, item.ColumnDN2, item.ColumnS2)
	if err != nil {
		return nil, err
	}
	q := it.QuantityValue()
	runWeld, err := weldStep(it, run, 2*q)
	if err != nil {
		return nil, err
	}
	branchWeld, err := weldStep(it, branch, q)
	if err != nil {
		return nil, err
	}
	return []item.EffortStep{
		{Name: StepFitting3End, EffortPerUnit: Fitting3End(run.dn), Quantity: q, Size: fmt.Sprintf("%g", run.dn)},
		runWeld,
		branchWeld,
	}, nil
}

func reducerSteps(it *item.PipeFittingItem) ([]item.EffortStep, error) {
	large, err := endOf(it, item.ColumnDN1, item.ColumnS1)
	if err != nil {
		return nil, err
	}
	small, err := endOf(it, item.ColumnDN2, item.ColumnS2)
	if err != nil {
		return nil, err
	}
	q := it.QuantityValue()
	largeWeld, err := weldStep(it, large, q)
	if err != nil {
		return nil, err
	}
	smallWeld, err := weldStep(it, small, q)
	if err != nil {
		return nil, err
	}
	return []item.EffortStep{
		{Name: StepFitting2End, EffortPerUnit: Fitting2End(large.dn), Quantity: q, Size: fmt.Sprintf("%g", large.dn)},
		largeWeld,
		smallWeld,
	}, nil
}

func capSteps(it *item.PipeFittingItem) ([]item.EffortStep, error) {
	e, err := endOf(it, item.ColumnDN1, item.ColumnS1)
	if err != nil {
		return nil, err
	}
	weld, err := weldStep(it, e, it.QuantityValue())
	if err != nil {
		return nil, err
	}
	return []item.EffortStep{weld}, nil
}

// Фланцевое соединение собирается из двух фланцев, поэтому половина количества.
func flangedConnectionStep(dn, quantity float64) item.EffortStep {
	return item.EffortStep{
		Name:          StepFlangedConnection,
		EffortPerUnit: FlangedConnection(dn),
		Quantity:      quantity / 2,
		Size:          fmt.Sprintf("%g", dn),
	}
}

func blindFlangeSteps(it *item.PipeFittingItem) ([]item.EffortStep, error) {
	dn, err := diameterOf(it)
	if err != nil {
		return nil, err
	}
	return []item.EffortStep{flangedConnectionStep(dn, it.QuantityValue())}, nil
}

func weldNeckFlangeSteps(it *item.PipeFittingItem) ([]item.EffortStep, error) {
	e, err := endOf(it, item.ColumnDN1, item.ColumnS1)
	if err != nil {
		return nil, err
	}
	q := it.QuantityValue()
	weld, err := weldStep(it, e, q)
	if err != nil {
		return nil, err
	}
	return []item.EffortStep{flangedConnectionStep(e.dn, q), weld}, nil
}
