// Package plans собирает нормализованный тарифный план сайта из записи API.
package plans

import (
	"math"
	"time"

	"github.com/magabrotheeeer/siteplan-view/internal/lib/day"
	"github.com/magabrotheeeer/siteplan-view/internal/lib/truthy"
	"github.com/magabrotheeeer/siteplan-view/internal/models"
)

// Assembler преобразует RawPlan в SitePlan. Даты обрезаются до начала дня
// в часовом поясе loc.
type Assembler struct {
	loc     *time.Location
	observe func(personal bool)
}

// NewAssembler создаёт Assembler. nil loc означает time.Local.
// observe, если не nil, вызывается для каждой непустой записи.
func NewAssembler(loc *time.Location, observe func(personal bool)) *Assembler {
	if loc == nil {
		loc = time.Local
	}
	return &Assembler{loc: loc, observe: observe}
}

// CreateSitePlanObject собирает SitePlan. Для nil записи возвращается пустой
// план. Ошибок нет: непарсируемые даты дают невалидный day.Moment, нечисловые
// или отсутствующие id и interval дают NaN.
func (a *Assembler) CreateSitePlanObject(raw *models.RawPlan) models.SitePlan {
	if raw == nil {
		return models.SitePlan{}
	}

	plan := *raw
	personal := plan.ProductSlug != nil && *plan.ProductSlug == PlanPersonal
	if personal {
		plan = plan.Overlay(PersonalPlan)
	}
	if a.observe != nil {
		a.observe(personal)
	}

	return models.SitePlan{
		CanStartTrial:          truthy.Bool(plan.CanStartTrial),
		CurrentPlan:            truthy.Bool(plan.CurrentPlan),
		CurrencyCode:           cloneString(plan.CurrencyCode),
		DiscountReason:         plan.DiscountReason,
		Expiry:                 cloneString(plan.Expiry),
		ExpiryMoment:           day.Parse(plan.Expiry, a.loc).StartOfDay(),
		FormattedDiscount:      cloneString(plan.FormattedDiscount),
		FormattedPrice:         cloneString(plan.FormattedPrice),
		FreeTrial:              truthy.Bool(plan.FreeTrial),
		HasDomainCredit:        truthy.Bool(plan.HasDomainCredit),
		ID:                     number(plan.ID),
		Interval:               number(plan.Interval),
		ProductName:            cloneString(plan.ProductName),
		ProductSlug:            cloneString(plan.ProductSlug),
		RawDiscount:            plan.RawDiscount,
		RawPrice:               plan.RawPrice,
		SubscribedDate:         cloneString(plan.SubscribedDate),
		SubscribedDayMoment:    day.Parse(plan.SubscribedDate, a.loc).StartOfDay(),
		UserFacingExpiry:       cloneString(plan.UserFacingExpiry),
		UserFacingExpiryMoment: day.Parse(plan.UserFacingExpiry, a.loc).StartOfDay(),
		UserIsOwner:            truthy.Bool(plan.UserIsOwner),
	}.Populated()
}

var defaultAssembler = NewAssembler(nil, nil)

// CreateSitePlanObject собирает SitePlan в локальном часовом поясе процесса.
func CreateSitePlanObject(raw *models.RawPlan) models.SitePlan {
	return defaultAssembler.CreateSitePlanObject(raw)
}

// number приводит поле записи к числу; отсутствующее поле даёт NaN.
func number(v any) models.Number {
	if v == nil {
		return models.Number(math.NaN())
	}
	return models.Number(truthy.Number(v))
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
