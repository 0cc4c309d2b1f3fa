package plans

import "github.com/magabrotheeeer/siteplan-view/internal/models"

// PlanPersonal — product_slug плана Personal.
const PlanPersonal = "personal-bundle"

// PersonalPlan — поля плана Personal, которые API отдаёт ненадёжно.
// Накладываются поверх записи с product_slug == PlanPersonal.
var PersonalPlan = models.RawPlan{
	ProductSlug: strPtr(PlanPersonal),
	ProductName: strPtr("Personal"),
}

func strPtr(s string) *string {
	return &s
}
