package repository

import (
	"context"
	"time"

	"clanPortal/internal/store"
	"clanPortal/models"
)

const (
	patchNotesCollection    = "patchnotes"
	announcementsCollection = "announcements"
)

// BulletinRepository stores the two public boards: patch notes and
// announcements. Reads are public; the poster gate lives in the HTTP layer.
type BulletinRepository struct {
	patchNotes    *store.Collection
	announcements *store.Collection
	now           func() time.Time
}

func NewBulletinRepository(s *store.Store) *BulletinRepository {
	return &BulletinRepository{
		patchNotes:    s.Collection(patchNotesCollection),
		announcements: s.Collection(announcementsCollection),
		now:           time.Now,
	}
}

// PatchNotes returns every patch note in posting order.
func (r *BulletinRepository) PatchNotes(ctx context.Context) ([]models.PatchNote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return store.Load[models.PatchNote](r.patchNotes)
}

// AddPatchNote appends a note stamped with the current time.
func (r *BulletinRepository) AddPatchNote(ctx context.Context, note string) (*models.PatchNote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	item := models.PatchNote{Note: note, Date: r.now().UTC()}
	if err := store.Append(r.patchNotes, item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Announcements returns every announcement in posting order.
func (r *BulletinRepository) Announcements(ctx context.Context) ([]models.Announcement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return store.Load[models.Announcement](r.announcements)
}

// AddAnnouncement appends an announcement stamped with the current time.
func (r *BulletinRepository) AddAnnouncement(ctx context.Context, text string) (*models.Announcement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	item := models.Announcement{Announcement: text, Date: r.now().UTC()}
	if err := store.Append(r.announcements, item); err != nil {
		return nil, err
	}
	return &item, nil
}

// EnsureCollections creates every collection file the portal uses so first
// requests never have to create them.
func EnsureCollections(s *store.Store) error {
	names := []string{usersCollection, patchNotesCollection, announcementsCollection}
	for _, name := range categoryCollections {
		names = append(names, name)
	}
	for _, name := range names {
		if err := s.Collection(name).Ensure(); err != nil {
			return err
		}
	}
	return nil
}
