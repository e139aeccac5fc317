package dataset_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/zhukovvlad/fittings-go/cmd/internal/services/apierrors"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/dataset"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/dataset/mocks"
	"github.com/zhukovvlad/fittings-go/cmd/internal/testutil"
	"github.com/zhukovvlad/fittings-go/cmd/pkg/logging"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("строит справочник из источника", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		src := mocks.NewMockRecordSource(ctrl)
		src.EXPECT().Records(gomock.Any()).Return(testutil.ReferenceRecords(t), nil).Times(1)

		ds, err := dataset.Load(ctx, src, newBuilder(), logging.NewNopLogger())
		require.NoError(t, err)
		assert.Equal(t, testutil.NewReferenceDataset(t).Stats(), ds.Stats())
	})

	t.Run("ошибка источника возвращается как есть", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		src := mocks.NewMockRecordSource(ctrl)
		sourceErr := errors.New("db is down")
		src.EXPECT().Records(gomock.Any()).Return(nil, sourceErr)

		ds, err := dataset.Load(ctx, src, newBuilder(), logging.NewNopLogger())
		assert.Nil(t, ds)
		assert.ErrorIs(t, err, sourceErr)
	})

	t.Run("ошибка классификации прерывает загрузку", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		src := mocks.NewMockRecordSource(ctrl)
		src.EXPECT().Records(gomock.Any()).Return([]dataset.Record{
			{"id": "9000", "materialId": "P235GH", "weight": "1"},
		}, nil)

		_, err := dataset.Load(ctx, src, newBuilder(), logging.NewNopLogger())
		assert.ErrorIs(t, err, apierrors.ErrRulesetNotFound)
	})
}
