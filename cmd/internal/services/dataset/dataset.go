package dataset

import (
	"fmt"
	"slices"
	"strings"

	"github.com/zhukovvlad/fittings-go/cmd/internal/item"
	"github.com/zhukovvlad/fittings-go/cmd/internal/util"
)

// Record - плоская запись справочника: имя колонки -> значение.
// Отсутствующее поле и пустая строка означают «не задано».
type Record map[string]string

// Value возвращает значение поля без пробелов по краям.
func (r Record) Value(field string) (string, bool) {
	v := strings.TrimSpace(r[field])
	return v, v != ""
}

// Dataset - справочник фитингов, сгруппированный по коду типа.
// После Build не изменяется, поэтому безопасен для одновременного чтения.
// Записи, которые возвращают методы, изменять нельзя.
type Dataset struct {
	groups      map[int][]*item.PipeFittingItem
	codes       []int
	size        int
	fingerprint string
}

// Stats - сводка по справочнику для /api/stats и логов.
type Stats struct {
	Groups      int         `json:"groups"`
	Records     int         `json:"records"`
	Fingerprint string      `json:"fingerprint"`
	PerType     map[int]int `json:"per_type"`
}

func newDataset(groups map[int][]*item.PipeFittingItem) *Dataset {
	d := &Dataset{groups: groups}
	for code, rows := range groups {
		d.codes = append(d.codes, code)
		d.size += len(rows)
	}
	slices.Sort(d.codes)
	d.fingerprint = d.computeFingerprint()
	return d
}

// Group возвращает записи группы кода типа в порядке загрузки.
func (d *Dataset) Group(code int) []*item.PipeFittingItem {
	return slices.Clone(d.groups[code])
}

// HasGroup сообщает, есть ли в справочнике записи с кодом типа.
func (d *Dataset) HasGroup(code int) bool {
	return len(d.groups[code]) > 0
}

// All возвращает все записи: группы по возрастанию кода, внутри группы - порядок загрузки.
func (d *Dataset) All() []*item.PipeFittingItem {
	out := make([]*item.PipeFittingItem, 0, d.size)
	for _, code := range d.codes {
		out = append(out, d.groups[code]...)
	}
	return out
}

// TypeCodes возвращает коды типов, для которых есть записи.
func (d *Dataset) TypeCodes() []int {
	return slices.Clone(d.codes)
}

func (d *Dataset) Len() int {
	return d.size
}

func (d *Dataset) Stats() Stats {
	perType := make(map[int]int, len(d.groups))
	for code, rows := range d.groups {
		perType[code] = len(rows)
	}
	return Stats{
		Groups:      len(d.codes),
		Records:     d.size,
		Fingerprint: d.fingerprint,
		PerType:     perType,
	}
}

func (d *Dataset) computeFingerprint() string {
	parts := make([]string, 0, d.size)
	for _, row := range d.All() {
		parts = append(parts, fmt.Sprintf("%s|%s|%s|%s|%s|%s|%s|%s",
			row.TypeID,
			util.Deref(row.Material),
			util.FloatPtrString(row.DN1),
			util.FloatPtrString(row.S1),
			util.FloatPtrString(row.DN2),
			util.FloatPtrString(row.S2),
			util.FloatPtrString(row.Attributes.Weight),
			util.Deref(row.Attributes.Standard),
		))
	}
	return util.Fingerprint(parts...)
}
