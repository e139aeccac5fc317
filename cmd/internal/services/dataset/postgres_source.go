package dataset

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/sqlc-dev/pqtype"

	"github.com/zhukovvlad/fittings-go/cmd/internal/services/ruleset"
	"github.com/zhukovvlad/fittings-go/cmd/internal/util"
)

const selectReferenceRecords = `SELECT id, standard, material_id, d1, d2, thickness1, thickness2, weight, extra FROM fitting_reference ORDER BY position`

// PostgresSource читает справочник из таблицы fitting_reference.
// Колонка extra (jsonb) дополняет запись полями, которых нет среди основных колонок.
type PostgresSource struct {
	db *sql.DB
}

func NewPostgresSource(db *sql.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

type referenceRow struct {
	ID         sql.NullString
	Standard   sql.NullString
	MaterialID sql.NullString
	D1         sql.NullString
	D2         sql.NullString
	Thickness1 sql.NullString
	Thickness2 sql.NullString
	Weight     sql.NullString
	Extra      pqtype.NullRawMessage
}

func (s *PostgresSource) Records(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, selectReferenceRecords)
	if err != nil {
		return nil, fmt.Errorf("не удалось выполнить запрос справочника: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r referenceRow
		if err := rows.Scan(
			&r.ID,
			&r.Standard,
			&r.MaterialID,
			&r.D1,
			&r.D2,
			&r.Thickness1,
			&r.Thickness2,
			&r.Weight,
			&r.Extra,
		); err != nil {
			return nil, fmt.Errorf("не удалось прочитать строку справочника: %w", err)
		}
		rec, err := r.toRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при чтении справочника: %w", err)
	}
	return records, nil
}

func (r referenceRow) toRecord() (Record, error) {
	rec := Record{
		ruleset.FieldID:         util.NullStringValue(r.ID),
		ruleset.FieldStandard:   util.NullStringValue(r.Standard),
		ruleset.FieldMaterialID: util.NullStringValue(r.MaterialID),
		ruleset.FieldD1:         util.NullStringValue(r.D1),
		ruleset.FieldD2:         util.NullStringValue(r.D2),
		ruleset.FieldThickness1: util.NullStringValue(r.Thickness1),
		ruleset.FieldThickness2: util.NullStringValue(r.Thickness2),
		ruleset.FieldWeight:     util.NullStringValue(r.Weight),
	}
	if !r.Extra.Valid || len(r.Extra.RawMessage) == 0 {
		return rec, nil
	}

	var extra map[string]any
	dec := json.NewDecoder(bytes.NewReader(r.Extra.RawMessage))
	dec.UseNumber()
	if err := dec.Decode(&extra); err != nil {
		return nil, fmt.Errorf("запись %s: некорректный extra: %w", rec[ruleset.FieldID], err)
	}
	for k, v := range extra {
		if _, ok := rec.Value(k); ok {
			continue
		}
		switch val := v.(type) {
		case string:
			rec[k] = val
		case json.Number:
			rec[k] = val.String()
		case bool:
			rec[k] = fmt.Sprint(val)
		}
	}
	return rec, nil
}
