package editor

import (
	"context"
	"errors"
	"testing"

	"roadsketch/internal/domain"
	"roadsketch/pkg/e"

	mock_editor "roadsketch/internal/editor/mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
)

func TestPersistence_SaveCreatesThenUpdates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	id := uuid.New()
	store := mock_editor.NewMockStore(ctrl)

	gomock.InOrder(
		store.EXPECT().
			Create(gomock.Any(), owner, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, s *domain.Sketch) (uuid.UUID, error) {
				if s.ID != nil {
					t.Fatalf("create got id %v", s.ID)
				}
				return id, nil
			}),
		store.EXPECT().
			Update(gomock.Any(), owner, id, gomock.Any()).
			Return(nil),
	)

	p := NewPersistence(store, owner)
	s := &domain.Sketch{Title: "Crossing"}

	got, err := p.Save(context.Background(), s)
	if err != nil || got != id {
		t.Fatalf("Save = %v, %v", got, err)
	}
	if s.ID != nil {
		t.Fatalf("Save mutated the input")
	}

	s.ID = &id
	if _, err := p.Save(context.Background(), s); err != nil {
		t.Fatalf("second Save: %v", err)
	}
}

func TestPersistence_SaveValidatesBeforeStore(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_editor.NewMockStore(ctrl)

	p := NewPersistence(store, uuid.New())
	for _, title := range []string{"", "  \t"} {
		_, err := p.Save(context.Background(), &domain.Sketch{Title: title})
		if !errors.Is(err, e.ErrTitleRequired) {
			t.Fatalf("title %q: err = %v", title, err)
		}
	}
	if _, err := p.Save(context.Background(), nil); !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("nil sketch: err = %v", err)
	}
}

func TestPersistence_LoadFillsMissingID(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner, id := uuid.New(), uuid.New()
	store := mock_editor.NewMockStore(ctrl)
	store.EXPECT().
		Get(gomock.Any(), owner, id).
		Return(&domain.Sketch{Title: "x"}, nil)

	s, err := NewPersistence(store, owner).Load(context.Background(), id)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.ID == nil || *s.ID != id {
		t.Fatalf("id = %v", s.ID)
	}
}

func TestPersistence_ErrorsKeepCause(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner, id := uuid.New(), uuid.New()
	store := mock_editor.NewMockStore(ctrl)
	store.EXPECT().List(gomock.Any(), owner, 1, 10).Return(nil, int64(0), e.ErrUnavailable)
	store.EXPECT().Delete(gomock.Any(), owner, id).Return(e.ErrNotFound)

	p := NewPersistence(store, owner)
	if _, _, err := p.List(context.Background(), 1, 10); !errors.Is(err, e.ErrUnavailable) {
		t.Fatalf("List err = %v", err)
	}
	if err := p.Delete(context.Background(), id); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("Delete err = %v", err)
	}
}
