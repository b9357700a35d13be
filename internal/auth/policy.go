package auth

import "clanPortal/models"

// The review policy is a static table, not a hierarchy: a gangmode reviewer
// cannot see faction applications. developer and founder get blanket read
// access across every category.
var listRoles = map[models.Category][]models.Role{
	models.CategoryGang:      {models.RoleGangMode, models.RoleDeveloper, models.RoleFounder},
	models.CategoryFaction:   {models.RoleFactionMode, models.RoleDeveloper, models.RoleFounder},
	models.CategoryWhitelist: {models.RoleWhitelistMode, models.RoleDeveloper, models.RoleFounder},
	models.CategoryAdmin:     {models.RoleAdminPersonel, models.RoleDeveloper, models.RoleFounder},
}

// BulletinPosterRoles may post patch notes and announcements.
var BulletinPosterRoles = []models.Role{models.RoleDeveloper, models.RoleFounder}

// CanListCategory reports whether role may review the category's
// applications.
func CanListCategory(role models.Role, category models.Category) bool {
	for _, r := range listRoles[category] {
		if r == role {
			return true
		}
	}
	return false
}
