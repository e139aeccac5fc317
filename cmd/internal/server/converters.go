package server

import (
	"errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/zhukovvlad/fittings-go/cmd/internal/api_models"
	"github.com/zhukovvlad/fittings-go/cmd/internal/item"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/apierrors"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/dataset"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/suggestion"
)

// itemFromPayload собирает позицию из полей запроса. Неизвестное поле или
// неразборчивое значение - ошибка валидации. Поле "attributes" игнорируется:
// атрибуты всегда вычисляются заново.
func itemFromPayload(p api_models.ItemPayload) (*item.PipeFittingItem, error) {
	it := &item.PipeFittingItem{}
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if key == "attributes" {
			continue
		}
		col, ok := item.ParseColumn(key)
		if !ok {
			return nil, apierrors.NewValidationError("неизвестное поле позиции %q", key)
		}
		if err := it.Set(col, p[key]); err != nil {
			return nil, apierrors.NewValidationError("поле %s: %v", key, err)
		}
	}
	return it, nil
}

func newCandidateDTOs(candidates []suggestion.Candidate) []api_models.CandidateDTO {
	out := make([]api_models.CandidateDTO, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, api_models.CandidateDTO{
			Label:      c.Label,
			Value:      c.Value,
			Group:      c.Group,
			GroupLabel: c.GroupLabel,
		})
	}
	return out
}

func newDatasetStats(st dataset.Stats) api_models.DatasetStats {
	perType := make(map[string]int, len(st.PerType))
	for code, n := range st.PerType {
		perType[strconv.Itoa(code)] = n
	}
	return api_models.DatasetStats{
		Groups:      st.Groups,
		Records:     st.Records,
		Fingerprint: st.Fingerprint,
		PerType:     perType,
	}
}

// statusFor переводит ошибку сервисного слоя в HTTP-статус.
func statusFor(err error) int {
	var validationErr *apierrors.ValidationError
	var notFoundErr *apierrors.NotFoundError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr), errors.Is(err, apierrors.ErrPipeFittingNotFound):
		return http.StatusNotFound
	case apierrors.IsClientError(err):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
