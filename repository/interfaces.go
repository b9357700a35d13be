package repository

import (
	"context"

	"clanPortal/models"
)

// UserRepositoryI defines operations on user accounts.
type UserRepositoryI interface {
	UsernameExists(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, username, password string, role models.Role) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
}

// ApplicationRepositoryI defines operations on the per-category application
// collections.
type ApplicationRepositoryI interface {
	Submit(ctx context.Context, category models.Category, username string, content any) (*models.Application, error)
	List(ctx context.Context, category models.Category) ([]models.Application, error)
}

// BulletinRepositoryI defines operations on the public boards.
type BulletinRepositoryI interface {
	PatchNotes(ctx context.Context) ([]models.PatchNote, error)
	AddPatchNote(ctx context.Context, note string) (*models.PatchNote, error)
	Announcements(ctx context.Context) ([]models.Announcement, error)
	AddAnnouncement(ctx context.Context, text string) (*models.Announcement, error)
}
