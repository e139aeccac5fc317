package dataset

import (
	"context"
	"fmt"
	"time"

	"github.com/zhukovvlad/fittings-go/cmd/internal/metrics"
	"github.com/zhukovvlad/fittings-go/cmd/pkg/logging"
)

//go:generate mockgen -source=source.go -destination=mocks/mock_record_source.go -package=mocks

// RecordSource отдаёт записи справочника в исходном порядке.
type RecordSource interface {
	Records(ctx context.Context) ([]Record, error)
}

// Load читает записи из источника и строит справочник. Вызывается один раз при старте.
func Load(ctx context.Context, src RecordSource, builder *Builder, logger *logging.Logger) (*Dataset, error) {
	started := time.Now()
	defer func() {
		metrics.DatasetLoadDuration.Observe(time.Since(started).Seconds())
	}()

	records, err := src.Records(ctx)
	if err != nil {
		logger.Errorf("Не удалось прочитать записи справочника: %v", err)
		return nil, err
	}

	ds, err := builder.Build(records)
	if err != nil {
		return nil, err
	}

	for code, n := range ds.Stats().PerType {
		metrics.DatasetRecords.WithLabelValues(fmt.Sprint(code)).Set(float64(n))
	}
	logger.Infof("Справочник загружен за %s, отпечаток %s", time.Since(started).Round(time.Millisecond), ds.fingerprint)
	return ds, nil
}
