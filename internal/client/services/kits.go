package services

import (
	"context"
	"time"

	"github.com/thronos/careerforge/internal/client/models"
)

// FilterAll selects every kit kind.
const FilterAll = "all"

type KitsAPI interface {
	ListKits(ctx context.Context) ([]models.Kit, error)
}

// KitsView is the "my kits" page.
type KitsView struct {
	api KitsAPI
	tr  Translator
	now func() time.Time

	Kits   []models.Kit
	Filter string
	Err    string
}

func NewKitsView(api KitsAPI, tr Translator) *KitsView {
	return &KitsView{api: api, tr: tr, now: time.Now, Filter: FilterAll}
}

func (v *KitsView) Load(ctx context.Context) error {
	kits, err := v.api.ListKits(ctx)
	if err != nil {
		v.Err = errText(err)
		return err
	}
	v.Kits, v.Err = kits, ""
	return nil
}

// SetFilter selects "all" or one kit kind. Unknown values fall back to "all".
func (v *KitsView) SetFilter(f string) {
	if f != FilterAll && !models.KitKind(f).Valid() {
		f = FilterAll
	}
	v.Filter = f
}

func (v *KitsView) Filtered() []models.Kit {
	if v.Filter == FilterAll || v.Filter == "" {
		return v.Kits
	}
	out := make([]models.Kit, 0, len(v.Kits))
	for _, k := range v.Kits {
		if string(k.Kind) == v.Filter {
			out = append(out, k)
		}
	}
	return out
}

// TotalCredits sums credits over all kits, regardless of the filter.
func (v *KitsView) TotalCredits() int {
	total := 0
	for _, k := range v.Kits {
		total += k.CreditsCharged
	}
	return total
}

// ThisMonth counts kits created in the current calendar month (local time).
func (v *KitsView) ThisMonth() int {
	now := v.now()
	n := 0
	for _, k := range v.Kits {
		t := time.Unix(k.CreatedAt, 0).In(now.Location())
		if t.Year() == now.Year() && t.Month() == now.Month() {
			n++
		}
	}
	return n
}

// Label returns the localized name of a kit kind.
func (v *KitsView) Label(kind models.KitKind) string {
	if !kind.Valid() {
		return v.tr.T("kind_unknown")
	}
	return v.tr.T("kind_" + string(kind))
}
