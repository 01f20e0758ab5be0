package usecase

import (
	"context"

	"github.com/linktower/linktower/internal/domain/models"
	"github.com/linktower/linktower/internal/infra/adapters/postgres/repository"
	"github.com/linktower/linktower/internal/linkform"
)

// In-memory repositories backing the usecase tests. They share one store so
// cross-table queries (doors, domain filters) behave like the real schema.
type fakeStore struct {
	rooms []models.Room
	links []models.Link

	nextRoomID int64
	nextLinkID int64

	titleUpdates    int
	floorUpdates    int
	passwordUpdates int
}

type fakeRoomRepo struct {
	s *fakeStore
}

type fakeLinkRepo struct {
	s *fakeStore
}

func newFakeRepos() (*fakeRoomRepo, *fakeLinkRepo, *fakeStore) {
	s := &fakeStore{nextRoomID: 1, nextLinkID: 1}
	return &fakeRoomRepo{s: s}, &fakeLinkRepo{s: s}, s
}

var _ repository.RoomRepository = (*fakeRoomRepo)(nil)
var _ repository.LinkRepository = (*fakeLinkRepo)(nil)

func (f *fakeRoomRepo) Create(_ context.Context, room *models.Room) error {
	room.ID = f.s.nextRoomID
	f.s.nextRoomID++
	f.s.rooms = append(f.s.rooms, *room)
	return nil
}

func (f *fakeRoomRepo) GetBySlug(_ context.Context, slug string) (*models.Room, error) {
	for _, r := range f.s.rooms {
		if r.Slug == slug {
			room := r
			return &room, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeRoomRepo) GetByFloor(_ context.Context, floorName string) ([]models.Room, error) {
	var rooms []models.Room
	for _, r := range f.s.rooms {
		if r.FloorName == floorName {
			rooms = append(rooms, r)
		}
	}
	return rooms, nil
}

func (f *fakeRoomRepo) UpdateTitle(_ context.Context, roomID int64, title string) error {
	f.s.titleUpdates++
	for i := range f.s.rooms {
		if f.s.rooms[i].ID == roomID {
			f.s.rooms[i].Title = title
		}
	}
	return nil
}

func (f *fakeRoomRepo) UpdateFloorName(_ context.Context, roomID int64, floorName string) error {
	f.s.floorUpdates++
	for i := range f.s.rooms {
		if f.s.rooms[i].ID == roomID {
			f.s.rooms[i].FloorName = floorName
		}
	}
	return nil
}

func (f *fakeRoomRepo) UpdatePasswordHash(_ context.Context, roomID int64, passwordHash string) error {
	f.s.passwordUpdates++
	for i := range f.s.rooms {
		if f.s.rooms[i].ID == roomID {
			f.s.rooms[i].PasswordHash = passwordHash
		}
	}
	return nil
}

func (f *fakeRoomRepo) Delete(_ context.Context, roomID int64) error {
	var links []models.Link
	for _, l := range f.s.links {
		if l.RoomID != roomID {
			links = append(links, l)
		}
	}
	f.s.links = links

	var rooms []models.Room
	for _, r := range f.s.rooms {
		if r.ID != roomID {
			rooms = append(rooms, r)
		}
	}
	f.s.rooms = rooms
	return nil
}

func (f *fakeRoomRepo) Slugs(_ context.Context) ([]string, error) {
	var slugs []string
	for _, r := range f.s.rooms {
		slugs = append(slugs, r.Slug)
	}
	return slugs, nil
}

func (f *fakeRoomRepo) roomLinksToDomain(roomID int64, domain string) bool {
	if domain == "" {
		return true
	}
	for _, l := range f.s.links {
		if l.RoomID == roomID && l.DomainName == domain {
			return true
		}
	}
	return false
}

func (f *fakeRoomRepo) Random(_ context.Context, n int, domain string) ([]models.Room, error) {
	var rooms []models.Room
	for _, r := range f.s.rooms {
		if len(rooms) == n {
			break
		}
		if f.roomLinksToDomain(r.ID, domain) {
			rooms = append(rooms, r)
		}
	}
	return rooms, nil
}

func (f *fakeRoomRepo) RandomFloors(_ context.Context, n int, domain string) ([]string, error) {
	seen := make(map[string]struct{})
	var floors []string
	for _, r := range f.s.rooms {
		if len(floors) == n {
			break
		}
		if _, ok := seen[r.FloorName]; ok {
			continue
		}
		if f.roomLinksToDomain(r.ID, domain) {
			seen[r.FloorName] = struct{}{}
			floors = append(floors, r.FloorName)
		}
	}
	return floors, nil
}

func (f *fakeRoomRepo) RoomsLinkingTo(_ context.Context, url, excludeSlug string) ([]models.Room, error) {
	byID := make(map[int64]models.Room)
	for _, r := range f.s.rooms {
		byID[r.ID] = r
	}

	seen := make(map[int64]struct{})
	var rooms []models.Room
	for _, l := range f.s.links {
		if l.URL != url {
			continue
		}
		room, ok := byID[l.RoomID]
		if !ok || room.Slug == excludeSlug {
			continue
		}
		if _, dup := seen[room.ID]; dup {
			continue
		}
		seen[room.ID] = struct{}{}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

func (f *fakeLinkRepo) Insert(_ context.Context, link *models.Link) error {
	link.ID = f.s.nextLinkID
	f.s.nextLinkID++
	link.DomainName = linkform.DomainName(link.URL)
	f.s.links = append(f.s.links, *link)
	return nil
}

func (f *fakeLinkRepo) GetByRoom(_ context.Context, roomID int64) ([]models.Link, error) {
	var links []models.Link
	for _, l := range f.s.links {
		if l.RoomID == roomID {
			links = append(links, l)
		}
	}
	return links, nil
}

func (f *fakeLinkRepo) DeleteByRoomAndURL(_ context.Context, roomID int64, url string) error {
	var links []models.Link
	for _, l := range f.s.links {
		if l.RoomID == roomID && l.URL == url {
			continue
		}
		links = append(links, l)
	}
	f.s.links = links
	return nil
}

func (f *fakeLinkRepo) Random(_ context.Context, n int, domain string) ([]models.Link, error) {
	var links []models.Link
	for _, l := range f.s.links {
		if len(links) == n {
			break
		}
		if domain == "" || l.DomainName == domain {
			links = append(links, l)
		}
	}
	return links, nil
}
