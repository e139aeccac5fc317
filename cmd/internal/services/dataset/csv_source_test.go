package dataset_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhukovvlad/fittings-go/cmd/internal/services/dataset"
)

func TestCSVSource_Records(t *testing.T) {
	t.Run("заголовок и разделитель по умолчанию", func(t *testing.T) {
		src := dataset.NewCSVReaderSource(strings.NewReader("id;materialId;weight\n2110;P235GH;4.0\n3000; P235GH;5.3\n"), "")
		records, err := src.Records(context.Background())
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, dataset.Record{"id": "2110", "materialId": "P235GH", "weight": "4.0"}, records[0])
		assert.Equal(t, "P235GH", records[1]["materialId"])
	})

	t.Run("BOM в заголовке", func(t *testing.T) {
		src := dataset.NewCSVReaderSource(strings.NewReader("\ufeffid;weight\n2110;4.0\n"), ";")
		records, err := src.Records(context.Background())
		require.NoError(t, err)
		v, ok := records[0].Value("id")
		assert.True(t, ok)
		assert.Equal(t, "2110", v)
	})

	t.Run("короткая строка", func(t *testing.T) {
		src := dataset.NewCSVReaderSource(strings.NewReader("id;d1;d2\n3000;114.3\n"), ";")
		records, err := src.Records(context.Background())
		require.NoError(t, err)
		_, ok := records[0].Value("d2")
		assert.False(t, ok)
	})

	t.Run("запятая как разделитель", func(t *testing.T) {
		src := dataset.NewCSVReaderSource(strings.NewReader("id,weight\n2110,4.0\n"), ",")
		records, err := src.Records(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "4.0", records[0]["weight"])
	})

	t.Run("пустой поток", func(t *testing.T) {
		records, err := dataset.NewCSVReaderSource(strings.NewReader(""), ";").Records(context.Background())
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("файл", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fittings.csv")
		require.NoError(t, os.WriteFile(path, []byte("id;weight\n5000;0.9\n"), 0o600))

		records, err := dataset.NewCSVSource(path, ";").Records(context.Background())
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "5000", records[0]["id"])
	})

	t.Run("файл не найден", func(t *testing.T) {
		_, err := dataset.NewCSVSource(filepath.Join(t.TempDir(), "missing.csv"), ";").Records(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "не удалось открыть файл справочника")
	})

	t.Run("отменённый контекст", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := dataset.NewCSVReaderSource(strings.NewReader("id\n1\n"), ";").Records(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestRecord_Value(t *testing.T) {
	rec := dataset.Record{"id": " 2110 ", "weight": ""}

	v, ok := rec.Value("id")
	assert.True(t, ok)
	assert.Equal(t, "2110", v)

	_, ok = rec.Value("weight")
	assert.False(t, ok)

	_, ok = rec.Value("standard")
	assert.False(t, ok)
}
