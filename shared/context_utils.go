package shared

import (
	"github.com/pep-un/Oxomium/database/models"
)

// typed accessors for the entities router middlewares resolve from slugs
// and store on the request context.

func SetOrganization(ctx Context, organization models.Organization) {
	ctx.Set("organization", organization)
}

func GetOrganization(ctx Context) models.Organization {
	return ctx.Get("organization").(models.Organization)
}

func SetFramework(ctx Context, framework models.Framework) {
	ctx.Set("framework", framework)
}

func GetFramework(ctx Context) models.Framework {
	return ctx.Get("framework").(models.Framework)
}

func SetConformity(ctx Context, conformity models.Conformity) {
	ctx.Set("conformity", conformity)
}

func GetConformity(ctx Context) models.Conformity {
	return ctx.Get("conformity").(models.Conformity)
}
