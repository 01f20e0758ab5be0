package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/linktower/linktower/internal/application/config"
	"github.com/linktower/linktower/internal/application/metric"
	"github.com/linktower/linktower/internal/domain/input"
	"github.com/linktower/linktower/internal/domain/models"
	"github.com/linktower/linktower/internal/infra/adapters/postgres/repository"
	"github.com/linktower/linktower/internal/linkform"
)

const slugLength = 8

const slugLetters = "abcdefghijklmnopqrstuvwxyz"

// RoomPage is everything the room view needs: the room, its links grouped by
// label, and the doors leading here from other rooms.
type RoomPage struct {
	Room   *models.Room
	Groups []linkform.LabelGroup
	Doors  []models.Room
}

// EditPage prefills the edit form by rendering the stored links back into
// form text.
type EditPage struct {
	Room      *models.Room
	LinksText string
}

// RoomUsecase implements room creation, viewing, editing and deletion.
//
// Create and Update return the validation errors as an ordered list of
// human-readable strings. A non-empty list means nothing was persisted and
// the caller should re-render the form with the preserved input. The error
// return carries infrastructure failures only; repository.ErrNotFound is
// passed through for unknown slugs.
type RoomUsecase interface {
	CreateRoom(ctx context.Context, form input.RoomForm) (slug string, formErrors []string, err error)
	ViewRoom(ctx context.Context, slug string) (*RoomPage, error)
	EditForm(ctx context.Context, slug string) (*EditPage, error)
	UpdateRoom(ctx context.Context, slug string, form input.RoomForm) (formErrors []string, err error)
	DeleteRoom(ctx context.Context, slug, password string) (ok bool, err error)
	RoomBySlug(ctx context.Context, slug string) (*models.Room, error)

	RoomsOnFloor(ctx context.Context, floorName string) ([]models.Room, error)
	VerifyFloorAccess(ctx context.Context, floorName, password string) (bool, error)
}

type roomUsecase struct {
	cfg *config.Config

	roomRepo repository.RoomRepository
	linkRepo repository.LinkRepository
}

func NewRoomUsecase(cfg *config.Config, roomRepo repository.RoomRepository, linkRepo repository.LinkRepository) RoomUsecase {
	return &roomUsecase{
		cfg:      cfg,
		roomRepo: roomRepo,
		linkRepo: linkRepo,
	}
}

func (uc *roomUsecase) CreateRoom(ctx context.Context, form input.RoomForm) (string, []string, error) {
	links, badLinks := linkform.Parse(form.Links)

	fieldErrors, err := uc.validateForm(ctx, form)
	if err != nil {
		return "", nil, err
	}

	if len(badLinks) > 0 || len(fieldErrors) > 0 {
		return "", append(badLinks, fieldErrors...), nil
	}

	slug, err := uc.newSlug(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("generate slug: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	room := &models.Room{
		Title:        form.Title,
		FloorName:    form.FloorName,
		Slug:         slug,
		PasswordHash: string(passwordHash),
	}

	if err := uc.roomRepo.Create(ctx, room); err != nil {
		return "", nil, fmt.Errorf("insert room: %w", err)
	}

	for _, group := range linkform.GroupByLabel(links) {
		for _, link := range group.Links {
			link.RoomID = room.ID
			if err := uc.linkRepo.Insert(ctx, &link); err != nil {
				return "", nil, fmt.Errorf("insert link: %w", err)
			}
		}
	}

	metric.IncrementRoomsCreated()

	return slug, nil, nil
}

func (uc *roomUsecase) ViewRoom(ctx context.Context, slug string) (*RoomPage, error) {
	room, err := uc.roomRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	links, err := uc.linkRepo.GetByRoom(ctx, room.ID)
	if err != nil {
		return nil, fmt.Errorf("load links: %w", err)
	}

	doors, err := uc.roomRepo.RoomsLinkingTo(ctx, uc.canonicalURL(slug), slug)
	if err != nil {
		return nil, fmt.Errorf("load doors: %w", err)
	}

	return &RoomPage{
		Room:   room,
		Groups: linkform.GroupByLabel(links),
		Doors:  doors,
	}, nil
}

func (uc *roomUsecase) EditForm(ctx context.Context, slug string) (*EditPage, error) {
	room, err := uc.roomRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	links, err := uc.linkRepo.GetByRoom(ctx, room.ID)
	if err != nil {
		return nil, fmt.Errorf("load links: %w", err)
	}

	return &EditPage{
		Room:      room,
		LinksText: linkform.Render(linkform.GroupByLabel(links)),
	}, nil
}

func (uc *roomUsecase) UpdateRoom(ctx context.Context, slug string, form input.RoomForm) ([]string, error) {
	room, err := uc.roomRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	newLinks, badLinks := linkform.Parse(form.Links)

	fieldErrors, err := uc.validateForm(ctx, form)
	if err != nil {
		return nil, err
	}

	if len(badLinks) > 0 || len(fieldErrors) > 0 {
		return append(badLinks, fieldErrors...), nil
	}

	oldLinks, err := uc.linkRepo.GetByRoom(ctx, room.ID)
	if err != nil {
		return nil, fmt.Errorf("load links: %w", err)
	}

	added, removed := linkform.Diff(oldLinks, newLinks)

	if form.Title != room.Title {
		if err := uc.roomRepo.UpdateTitle(ctx, room.ID, form.Title); err != nil {
			return nil, fmt.Errorf("update title: %w", err)
		}
	}

	if form.FloorName != room.FloorName {
		if err := uc.roomRepo.UpdateFloorName(ctx, room.ID, form.FloorName); err != nil {
			return nil, fmt.Errorf("update floor name: %w", err)
		}
	}

	if form.NewPassword != "" {
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(form.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		if err := uc.roomRepo.UpdatePasswordHash(ctx, room.ID, string(passwordHash)); err != nil {
			return nil, fmt.Errorf("update password: %w", err)
		}
	}

	for _, link := range removed {
		if err := uc.linkRepo.DeleteByRoomAndURL(ctx, room.ID, link.URL); err != nil {
			return nil, fmt.Errorf("delete link: %w", err)
		}
	}

	for _, link := range added {
		link.RoomID = room.ID
		if err := uc.linkRepo.Insert(ctx, &link); err != nil {
			return nil, fmt.Errorf("insert link: %w", err)
		}
	}

	return nil, nil
}

func (uc *roomUsecase) DeleteRoom(ctx context.Context, slug, password string) (bool, error) {
	room, err := uc.roomRepo.GetBySlug(ctx, slug)
	if err != nil {
		return false, err
	}

	if bcrypt.CompareHashAndPassword([]byte(room.PasswordHash), []byte(password)) != nil {
		return false, nil
	}

	if err := uc.roomRepo.Delete(ctx, room.ID); err != nil {
		return false, fmt.Errorf("delete room: %w", err)
	}

	metric.IncrementRoomsDeleted()

	return true, nil
}

func (uc *roomUsecase) RoomBySlug(ctx context.Context, slug string) (*models.Room, error) {
	return uc.roomRepo.GetBySlug(ctx, slug)
}

func (uc *roomUsecase) RoomsOnFloor(ctx context.Context, floorName string) ([]models.Room, error) {
	rooms, err := uc.roomRepo.GetByFloor(ctx, floorName)
	if err != nil {
		return nil, err
	}

	if len(rooms) == 0 {
		return nil, repository.ErrNotFound
	}

	return rooms, nil
}

// VerifyFloorAccess grants access to a floor with no rooms: the caller is
// establishing a new floor and sets its password through the room's own.
// Otherwise the supplied password must match the hash of the first room on
// the floor; all rooms on one floor share a password by this check.
func (uc *roomUsecase) VerifyFloorAccess(ctx context.Context, floorName, password string) (bool, error) {
	rooms, err := uc.roomRepo.GetByFloor(ctx, floorName)
	if err != nil {
		return false, fmt.Errorf("load floor: %w", err)
	}

	if len(rooms) == 0 {
		return true, nil
	}

	return bcrypt.CompareHashAndPassword([]byte(rooms[0].PasswordHash), []byte(password)) == nil, nil
}

// validateForm collects every field problem instead of stopping at the first
// one. A non-empty result blocks persistence entirely.
func (uc *roomUsecase) validateForm(ctx context.Context, form input.RoomForm) ([]string, error) {
	var errs []string

	if form.Title == "" {
		errs = append(errs, "Title field is empty")
	}
	if form.FloorName == "" {
		errs = append(errs, "Floor Name field is empty")
	}
	if form.Password == "" {
		errs = append(errs, "Password field is empty")
	}
	if form.Links == "" {
		errs = append(errs, "Links field is empty")
	}

	if illegal := illegalFloorChars(form.FloorName); illegal != "" {
		errs = append(errs, fmt.Sprintf("Floor name must be ascii letters and numbers only, %q not allowed", illegal))
	}

	if len(form.FloorName) > 100 {
		errs = append(errs, "Floor name must be 100 characters or fewer")
	}

	granted, err := uc.VerifyFloorAccess(ctx, form.FloorName, form.Password)
	if err != nil {
		return nil, err
	}
	if !granted {
		errs = append(errs, fmt.Sprintf("Incorrect password for floor %s", form.FloorName))
	}

	return errs, nil
}

// illegalFloorChars returns the distinct characters of floorName outside
// [A-Za-z0-9], sorted for a stable error message.
func illegalFloorChars(floorName string) string {
	seen := make(map[rune]struct{})
	var illegal []rune

	for _, r := range floorName {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		if isLetter || isDigit {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		illegal = append(illegal, r)
	}

	sort.Slice(illegal, func(i, j int) bool { return illegal[i] < illegal[j] })

	return string(illegal)
}

// newSlug picks a random 8-letter slug not yet taken. A collision is
// astronomically unlikely; the store's unique constraint on slug backstops
// concurrent creations.
func (uc *roomUsecase) newSlug(ctx context.Context) (string, error) {
	existing, err := uc.roomRepo.Slugs(ctx)
	if err != nil {
		return "", err
	}

	taken := make(map[string]struct{}, len(existing))
	for _, s := range existing {
		taken[s] = struct{}{}
	}

	for {
		slug := randomSlug()
		if _, ok := taken[slug]; !ok {
			return slug, nil
		}
	}
}

func randomSlug() string {
	b := make([]byte, slugLength)
	for i := range b {
		b[i] = slugLetters[rand.Intn(len(slugLetters))]
	}

	return string(b)
}

func (uc *roomUsecase) canonicalURL(slug string) string {
	return strings.TrimSuffix(uc.cfg.Domain, "/") + "/room/" + slug
}
