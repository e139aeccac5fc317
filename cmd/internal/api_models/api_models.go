package api_models

import (
	"github.com/zhukovvlad/fittings-go/cmd/internal/item"
)

// ItemPayload - поля позиции в том виде, в каком их присылает клиент.
// Числа допускаются как JSON-числа и как строки ("114,3", "1.5e2").
type ItemPayload map[string]any

// CalculateRequest принимает либо одну позицию, либо пакет.
type CalculateRequest struct {
	Item  ItemPayload   `json:"item,omitempty"`
	Items []ItemPayload `json:"items,omitempty"`
}

// CalculateItemResponse - результат расчёта одной позиции.
type CalculateItemResponse struct {
	Item  *item.PipeFittingItem `json:"item"`
	Error *string               `json:"error,omitempty"`
}

// CalculateBatchResponse - результат пакетного расчёта.
type CalculateBatchResponse struct {
	Items  []*item.PipeFittingItem `json:"items"`
	Total  int                     `json:"total"`
	Failed int                     `json:"failed"`
}

// CandidatesRequest - запрос подсказок для поля позиции.
type CandidatesRequest struct {
	Item   ItemPayload `json:"item"`
	Column string      `json:"column" binding:"required"`
	Locale string      `json:"locale,omitempty"`
}

// CandidateDTO - один вариант значения поля.
type CandidateDTO struct {
	Label      string `json:"label"`
	Value      any    `json:"value"`
	Group      string `json:"group,omitempty"`
	GroupLabel string `json:"group_label,omitempty"`
}

type CandidatesResponse struct {
	Column     string         `json:"column"`
	Candidates []CandidateDTO `json:"candidates"`
}

// TypeCodeDTO - код типа и его категория.
type TypeCodeDTO struct {
	Code          string `json:"code"`
	Label         string `json:"label"`
	Category      string `json:"category"`
	CategoryLabel string `json:"category_label"`
}

// StatsResponse - состояние справочника и действующие таблицы правил.
type StatsResponse struct {
	Dataset DatasetStats `json:"dataset"`
	Rules   RulesStats   `json:"rules"`
	Message string       `json:"message"`
}

type DatasetStats struct {
	Groups      int            `json:"groups"`
	Records     int            `json:"records"`
	Fingerprint string         `json:"fingerprint"`
	PerType     map[string]int `json:"per_type"`
}

type RulesStats struct {
	Classification []string `json:"classification"`
	MaterialPrice  []string `json:"material_price"`
	EffortHours    []string `json:"effort_hours"`
}
