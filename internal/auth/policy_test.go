package auth

import (
	"testing"

	"clanPortal/models"
)

var allRoles = []models.Role{
	models.RoleWhitelistMode, models.RoleGangMode, models.RoleFactionMode,
	models.RoleAdminPersonel, models.RoleDeveloper, models.RoleFounder,
}

func TestCanListCategory_ExactTable(t *testing.T) {
	allowed := map[models.Category]map[models.Role]bool{
		models.CategoryGang:      {models.RoleGangMode: true, models.RoleDeveloper: true, models.RoleFounder: true},
		models.CategoryFaction:   {models.RoleFactionMode: true, models.RoleDeveloper: true, models.RoleFounder: true},
		models.CategoryWhitelist: {models.RoleWhitelistMode: true, models.RoleDeveloper: true, models.RoleFounder: true},
		models.CategoryAdmin:     {models.RoleAdminPersonel: true, models.RoleDeveloper: true, models.RoleFounder: true},
	}

	for _, cat := range models.Categories {
		for _, role := range allRoles {
			got := CanListCategory(role, cat)
			if want := allowed[cat][role]; got != want {
				t.Errorf("CanListCategory(%s, %s) = %v, want %v", role, cat, got, want)
			}
		}
	}
}

func TestCanListCategory_NoBlanketAccessForCategoryRoles(t *testing.T) {
	// A category reviewer sees only their own category.
	if CanListCategory(models.RoleGangMode, models.CategoryFaction) {
		t.Error("gangmode must not see faction applications")
	}
	if CanListCategory(models.RoleWhitelistMode, models.CategoryGang) {
		t.Error("whitelistmode must not see gang applications")
	}
}

func TestBulletinPosterRoles(t *testing.T) {
	want := map[models.Role]bool{models.RoleDeveloper: true, models.RoleFounder: true}
	if len(BulletinPosterRoles) != 2 {
		t.Fatalf("unexpected poster roles: %v", BulletinPosterRoles)
	}
	for _, r := range BulletinPosterRoles {
		if !want[r] {
			t.Fatalf("unexpected poster role %q", r)
		}
	}
}
