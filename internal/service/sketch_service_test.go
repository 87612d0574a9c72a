package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"roadsketch/internal/domain"
	"roadsketch/internal/service"
	mock_service "roadsketch/internal/service/mocks"
	"roadsketch/pkg/e"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validRequest() domain.SaveSketchRequest {
	return domain.SaveSketchRequest{
		Title: "  A12 crash  ",
		Incidents: []domain.Incident{{
			ID:       "inc-1",
			Type:     "car",
			Position: domain.LatLng{Lat: 52.09, Lng: 5.12},
			Rotation: -90,
			Scale:    10,
		}},
		DrawnLines: []domain.DrawnLine{{
			ID:        "line-1",
			Positions: []domain.LatLng{{Lat: 52.09, Lng: 5.12}, {Lat: 52.1, Lng: 5.13}},
			Color:     "#ff0000",
			Weight:    4,
		}},
	}
}

func TestSketchService_Create_NormalizesAndPublishes(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockSketchRepository(ctrl)
	events := mock_service.NewMockEventQueue(ctrl)

	owner := uuid.New()
	id := uuid.New()

	repo.EXPECT().
		Create(gomock.Any(), owner, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, s *domain.Sketch) (uuid.UUID, error) {
			if s.Title != "A12 crash" {
				t.Fatalf("title not trimmed: %q", s.Title)
			}
			if got := s.Incidents[0].Rotation; got != 270 {
				t.Fatalf("rotation = %d, want 270", got)
			}
			if got := s.Incidents[0].Scale; got != domain.MaxScale {
				t.Fatalf("scale = %v, want %v", got, domain.MaxScale)
			}
			return id, nil
		})
	events.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev domain.SketchEvent) error {
			if ev.SketchID != id || ev.OwnerID != owner || ev.Kind != domain.SketchCreated {
				t.Fatalf("unexpected event: %+v", ev)
			}
			return nil
		})

	svc := service.NewSketchService(repo, events, discard(), nil)

	got, err := svc.Create(context.Background(), owner, validRequest())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != id {
		t.Fatalf("id = %s, want %s", got, id)
	}
}

func TestSketchService_Create_BlankTitle(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockSketchRepository(ctrl)
	repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	svc := service.NewSketchService(repo, nil, discard(), nil)

	req := validRequest()
	req.Title = "   "
	_, err := svc.Create(context.Background(), uuid.New(), req)
	if !errors.Is(err, e.ErrTitleRequired) {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}
}

func TestSketchService_Create_ShortLine(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockSketchRepository(ctrl)
	svc := service.NewSketchService(repo, nil, discard(), nil)

	req := validRequest()
	req.DrawnLines[0].Positions = req.DrawnLines[0].Positions[:1]
	_, err := svc.Create(context.Background(), uuid.New(), req)
	if !errors.Is(err, e.ErrTooFewPoints) {
		t.Fatalf("expected ErrTooFewPoints, got %v", err)
	}
}

func TestSketchService_Create_EnqueueFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockSketchRepository(ctrl)
	events := mock_service.NewMockEventQueue(ctrl)

	id := uuid.New()
	repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(id, nil)
	events.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	svc := service.NewSketchService(repo, events, discard(), nil)

	got, err := svc.Create(context.Background(), uuid.New(), validRequest())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != id {
		t.Fatalf("id = %s, want %s", got, id)
	}
}

func TestSketchService_Update_NotFoundSkipsEvent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockSketchRepository(ctrl)
	events := mock_service.NewMockEventQueue(ctrl)

	repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(e.ErrNotFound)
	events.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Times(0)

	svc := service.NewSketchService(repo, events, discard(), nil)

	err := svc.Update(context.Background(), uuid.New(), uuid.New(), validRequest())
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSketchService_Delete_PublishesDeleted(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockSketchRepository(ctrl)
	events := mock_service.NewMockEventQueue(ctrl)

	owner, id := uuid.New(), uuid.New()
	gomock.InOrder(
		repo.EXPECT().Delete(gomock.Any(), owner, id).Return(nil),
		events.EXPECT().
			Enqueue(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev domain.SketchEvent) error {
				if ev.Kind != domain.SketchDeleted {
					t.Fatalf("kind = %s, want deleted", ev.Kind)
				}
				return nil
			}),
	)

	svc := service.NewSketchService(repo, events, discard(), nil)
	if err := svc.Delete(context.Background(), owner, id); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestSketchService_List_Delegates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockSketchRepository(ctrl)
	owner := uuid.New()
	want := []domain.SketchSummary{{Title: "one"}, {Title: "two"}}

	repo.EXPECT().List(gomock.Any(), owner, 2, 10).Return(want, int64(12), nil)

	svc := service.NewSketchService(repo, nil, discard(), nil)

	got, total, err := svc.List(context.Background(), owner, 2, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if total != 12 || len(got) != 2 {
		t.Fatalf("unexpected page: total=%d items=%d", total, len(got))
	}
}

func TestSketchService_Create_ZoomOutOfRange(t *testing.T) {
	t.Parallel()

	for _, z := range []float64{-2, 23, 64} {
		zoom := z
		t.Run("", func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mock_service.NewMockSketchRepository(ctrl)
			repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			svc := service.NewSketchService(repo, nil, discard(), nil)

			req := validRequest()
			req.Metadata.Zoom = &zoom
			_, err := svc.Create(context.Background(), uuid.New(), req)
			if !errors.Is(err, e.ErrInvalidInput) {
				t.Fatalf("zoom %v: expected ErrInvalidInput, got %v", zoom, err)
			}
		})
	}
}
