package usecase

import (
	"context"
	"fmt"

	"github.com/linktower/linktower/internal/domain/models"
	"github.com/linktower/linktower/internal/infra/adapters/postgres/repository"
)

// discoverCount is how many floors, rooms and links the discover page shows.
const discoverCount = 10

type DiscoverPage struct {
	Count  int
	Domain string
	Floors []string
	Rooms  []models.Room
	Links  []models.Link
}

// DiscoverUsecase samples random floors, rooms and links, optionally
// restricted to rooms that link to a given domain name.
type DiscoverUsecase interface {
	Discover(ctx context.Context, domain string) (*DiscoverPage, error)
}

type discoverUsecase struct {
	roomRepo repository.RoomRepository
	linkRepo repository.LinkRepository
}

func NewDiscoverUsecase(roomRepo repository.RoomRepository, linkRepo repository.LinkRepository) DiscoverUsecase {
	return &discoverUsecase{
		roomRepo: roomRepo,
		linkRepo: linkRepo,
	}
}

func (uc *discoverUsecase) Discover(ctx context.Context, domain string) (*DiscoverPage, error) {
	floors, err := uc.roomRepo.RandomFloors(ctx, discoverCount, domain)
	if err != nil {
		return nil, fmt.Errorf("random floors: %w", err)
	}

	rooms, err := uc.roomRepo.Random(ctx, discoverCount, domain)
	if err != nil {
		return nil, fmt.Errorf("random rooms: %w", err)
	}

	links, err := uc.linkRepo.Random(ctx, discoverCount, domain)
	if err != nil {
		return nil, fmt.Errorf("random links: %w", err)
	}

	return &DiscoverPage{
		Count:  discoverCount,
		Domain: domain,
		Floors: floors,
		Rooms:  rooms,
		Links:  links,
	}, nil
}
