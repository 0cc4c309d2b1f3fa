package models

import (
	"encoding/json"
	"math"

	"github.com/magabrotheeeer/siteplan-view/internal/lib/day"
)

// RawPlan — запись тарифного плана сайта в том виде, в каком её отдаёт API.
// Флаги и числовые поля приходят строкой, числом или bool, поэтому имеют тип any.
// Отсутствующие поля остаются nil.
type RawPlan struct {
	ProductSlug       *string `json:"product_slug,omitempty"`
	CanStartTrial     any     `json:"can_start_trial,omitempty"`
	CurrentPlan       any     `json:"current_plan,omitempty"`
	CurrencyCode      *string `json:"currency_code,omitempty"`
	DiscountReason    any     `json:"discount_reason,omitempty"`
	Expiry            *string `json:"expiry,omitempty"`
	FormattedDiscount *string `json:"formatted_discount,omitempty"`
	FormattedPrice    *string `json:"formatted_price,omitempty"`
	FreeTrial         any     `json:"free_trial,omitempty"`
	HasDomainCredit   any     `json:"has_domain_credit,omitempty"`
	ID                any     `json:"id,omitempty"`
	Interval          any     `json:"interval,omitempty"`
	ProductName       *string `json:"product_name,omitempty"`
	RawDiscount       any     `json:"raw_discount,omitempty"`
	RawPrice          any     `json:"raw_price,omitempty"`
	SubscribedDate    *string `json:"subscribed_date,omitempty"`
	UserFacingExpiry  *string `json:"user_facing_expiry,omitempty"`
	UserIsOwner       any     `json:"user_is_owner,omitempty"`
}

// Overlay возвращает копию p, в которой заданные (не nil) поля patch
// заменяют одноимённые поля p.
func (p RawPlan) Overlay(patch RawPlan) RawPlan {
	out := p
	overlayString(&out.ProductSlug, patch.ProductSlug)
	overlayAny(&out.CanStartTrial, patch.CanStartTrial)
	overlayAny(&out.CurrentPlan, patch.CurrentPlan)
	overlayString(&out.CurrencyCode, patch.CurrencyCode)
	overlayAny(&out.DiscountReason, patch.DiscountReason)
	overlayString(&out.Expiry, patch.Expiry)
	overlayString(&out.FormattedDiscount, patch.FormattedDiscount)
	overlayString(&out.FormattedPrice, patch.FormattedPrice)
	overlayAny(&out.FreeTrial, patch.FreeTrial)
	overlayAny(&out.HasDomainCredit, patch.HasDomainCredit)
	overlayAny(&out.ID, patch.ID)
	overlayAny(&out.Interval, patch.Interval)
	overlayString(&out.ProductName, patch.ProductName)
	overlayAny(&out.RawDiscount, patch.RawDiscount)
	overlayAny(&out.RawPrice, patch.RawPrice)
	overlayString(&out.SubscribedDate, patch.SubscribedDate)
	overlayString(&out.UserFacingExpiry, patch.UserFacingExpiry)
	overlayAny(&out.UserIsOwner, patch.UserIsOwner)
	return out
}

func overlayString(dst **string, src *string) {
	if src != nil {
		*dst = src
	}
}

func overlayAny(dst *any, src any) {
	if src != nil {
		*dst = src
	}
}

// SitePlan — нормализованный тарифный план сайта.
// Нулевое значение — пустой план (IsEmpty() == true), кодируется в JSON как {}.
type SitePlan struct {
	CanStartTrial          bool       `json:"canStartTrial"`
	CurrentPlan            bool       `json:"currentPlan"`
	CurrencyCode           *string    `json:"currencyCode,omitempty"`
	DiscountReason         any        `json:"discountReason,omitempty"`
	Expiry                 *string    `json:"expiry,omitempty"`
	ExpiryMoment           day.Moment `json:"expiryMoment"`
	FormattedDiscount      *string    `json:"formattedDiscount,omitempty"`
	FormattedPrice         *string    `json:"formattedPrice,omitempty"`
	FreeTrial              bool       `json:"freeTrial"`
	HasDomainCredit        bool       `json:"hasDomainCredit"`
	ID                     Number     `json:"id"`
	Interval               Number     `json:"interval"`
	ProductName            *string    `json:"productName,omitempty"`
	ProductSlug            *string    `json:"productSlug,omitempty"`
	RawDiscount            any        `json:"rawDiscount,omitempty"`
	RawPrice               any        `json:"rawPrice,omitempty"`
	SubscribedDate         *string    `json:"subscribedDate,omitempty"`
	SubscribedDayMoment    day.Moment `json:"subscribedDayMoment"`
	UserFacingExpiry       *string    `json:"userFacingExpiry,omitempty"`
	UserFacingExpiryMoment day.Moment `json:"userFacingExpiryMoment"`
	UserIsOwner            bool       `json:"userIsOwner"`

	populated bool
}

// Populated помечает план как собранный из записи.
func (p SitePlan) Populated() SitePlan {
	p.populated = true
	return p
}

// IsEmpty сообщает, что план собран из отсутствующей записи.
func (p SitePlan) IsEmpty() bool {
	return !p.populated
}

// MarshalJSON кодирует пустой план как {}.
func (p SitePlan) MarshalJSON() ([]byte, error) {
	if p.IsEmpty() {
		return []byte("{}"), nil
	}
	type plain SitePlan
	return json.Marshal(plain(p))
}

// Number — результат числового приведения; NaN означает, что значение
// не удалось привести к числу. NaN и бесконечности кодируются в JSON как null.
// NaN не равен себе, поэтому планы с невалидными числами сравнивают через
// Valid() или по JSON, а не reflect.DeepEqual.
type Number float64

// Valid сообщает, что число конечно.
func (n Number) Valid() bool {
	f := float64(n)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Int64 возвращает целую часть числа и признак валидности.
func (n Number) Int64() (int64, bool) {
	if !n.Valid() {
		return 0, false
	}
	return int64(n), true
}

// MarshalJSON кодирует невалидное число как null.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(n))
}
