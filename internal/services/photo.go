package services

import (
	"context"
	"fmt"
	"time"

	"eventcollection/internal/domain"
)

type photoService struct {
	photoRepo      domain.PhotoRepository
	contextTimeout time.Duration
}

func NewPhotoService(photoRepo domain.PhotoRepository, timeout time.Duration) domain.PhotoService {
	return &photoService{
		photoRepo:      photoRepo,
		contextTimeout: timeout,
	}
}

func (s *photoService) ListPhotos(ctx context.Context) ([]*domain.EventPhoto, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.photoRepo.ListAll(ctx)
}

func (s *photoService) AddPhoto(ctx context.Context, p *domain.EventPhoto) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if p.PhotoID <= 0 {
		return invalidf("PhotoID is required and must be a positive integer")
	}
	return s.photoRepo.Create(ctx, p)
}

var photoUpdatableFields = []string{"EventID", "Description"}

func photoAssignments(fields map[string]any) ([]domain.FieldAssignment, error) {
	if len(fields) == 0 {
		return nil, invalidf("no update fields provided")
	}
	if err := checkKnownFields(fields, photoUpdatableFields); err != nil {
		return nil, err
	}
	var out []domain.FieldAssignment
	for _, name := range photoUpdatableFields {
		v, ok := fields[name]
		if !ok {
			continue
		}
		switch name {
		case "EventID":
			id, err := intValue(v)
			if err != nil || id <= 0 {
				return nil, invalidf("EventID must be a positive integer")
			}
			out = append(out, domain.FieldAssignment{Column: "event_id", Value: id})
		case "Description":
			d, err := stringValue(v)
			if err != nil {
				return nil, invalidf("Description must be a string")
			}
			out = append(out, domain.FieldAssignment{Column: "description", Value: d})
		}
	}
	return out, nil
}

func (s *photoService) UpdatePhoto(ctx context.Context, photoID int, fields map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	assignments, err := photoAssignments(fields)
	if err != nil {
		return err
	}
	affected, err := s.photoRepo.Update(ctx, photoID, assignments)
	if err != nil {
		return fmt.Errorf("update photo: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *photoService) DeletePhoto(ctx context.Context, photoID int) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.photoRepo.Delete(ctx, photoID)
}
