package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"career-compass/internal/domain/roadmap"
	"career-compass/internal/domain/user"
)

type mockRoadmapRepo struct {
	records map[uuid.UUID]roadmap.Record
	saveErr error
}

func newMockRoadmapRepo() *mockRoadmapRepo {
	return &mockRoadmapRepo{records: make(map[uuid.UUID]roadmap.Record)}
}

func (m *mockRoadmapRepo) Save(_ context.Context, rec roadmap.Record) (roadmap.Record, error) {
	if m.saveErr != nil {
		return roadmap.Record{}, m.saveErr
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	m.records[rec.ID] = rec
	return rec, nil
}

func (m *mockRoadmapRepo) GetByID(_ context.Context, id uuid.UUID) (roadmap.Record, error) {
	rec, ok := m.records[id]
	if !ok {
		return roadmap.Record{}, roadmap.ErrNotFound
	}
	return rec, nil
}

func (m *mockRoadmapRepo) ListByUserID(_ context.Context, userID uuid.UUID) ([]roadmap.Record, error) {
	out := make([]roadmap.Record, 0)
	for _, rec := range m.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *mockRoadmapRepo) UpdateProgress(_ context.Context, id uuid.UUID, completed []int) (roadmap.Record, error) {
	rec, ok := m.records[id]
	if !ok {
		return roadmap.Record{}, roadmap.ErrNotFound
	}
	rec.CompletedPhases = completed
	m.records[id] = rec
	return rec, nil
}

func (m *mockRoadmapRepo) Delete(_ context.Context, id uuid.UUID, userID uuid.UUID) error {
	rec, ok := m.records[id]
	if !ok || rec.UserID != userID {
		return roadmap.ErrNotFound
	}
	delete(m.records, id)
	return nil
}

type mockProfileRepo struct {
	profiles map[uuid.UUID]user.Profile
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{profiles: make(map[uuid.UUID]user.Profile)}
}

func (m *mockProfileRepo) Upsert(_ context.Context, p user.Profile) (user.Profile, error) {
	m.profiles[p.UserID] = p
	return p, nil
}

func (m *mockProfileRepo) GetByUserID(_ context.Context, userID uuid.UUID) (user.Profile, error) {
	p, ok := m.profiles[userID]
	if !ok {
		return user.Profile{}, user.ErrProfileNotFound
	}
	return p, nil
}

func TestRoadmapGenerate_ExplicitInput(t *testing.T) {
	repo := newMockRoadmapRepo()
	uc := NewRoadmapUsecase(repo, newMockProfileRepo(), nil, nil)
	userID := uuid.New()

	rec, err := uc.Generate(context.Background(), userID, GenerateRoadmapInput{
		Goal:          "Data Scientist",
		CurrentSkills: []string{"Python", "SQL"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rec.UserID != userID {
		t.Fatalf("record not bound to user")
	}
	if rec.CareerGoal != "Data Scientist" {
		t.Fatalf("unexpected goal %q", rec.CareerGoal)
	}
	if len(rec.Roadmap.Phases) == 0 {
		t.Fatalf("expected phases to be generated")
	}
	if _, ok := repo.records[rec.ID]; !ok {
		t.Fatalf("record not persisted")
	}
}

func TestRoadmapGenerate_FallsBackToProfile(t *testing.T) {
	profiles := newMockProfileRepo()
	userID := uuid.New()
	profiles.profiles[userID] = user.Profile{
		UserID:        userID,
		CareerGoal:    "Backend Developer",
		CurrentSkills: []string{"Python"},
	}

	uc := NewRoadmapUsecase(newMockRoadmapRepo(), profiles, nil, nil)

	rec, err := uc.Generate(context.Background(), userID, GenerateRoadmapInput{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rec.CareerGoal != "Backend Developer" {
		t.Fatalf("expected goal from profile, got %q", rec.CareerGoal)
	}
}

func TestRoadmapGenerate_NoGoalAnywhere(t *testing.T) {
	uc := NewRoadmapUsecase(newMockRoadmapRepo(), newMockProfileRepo(), nil, nil)

	_, err := uc.Generate(context.Background(), uuid.New(), GenerateRoadmapInput{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRoadmapGet_OtherUsersRoadmapIsForbidden(t *testing.T) {
	repo := newMockRoadmapRepo()
	uc := NewRoadmapUsecase(repo, newMockProfileRepo(), nil, nil)

	owner := uuid.New()
	rec, err := uc.Generate(context.Background(), owner, GenerateRoadmapInput{Goal: "DevOps Engineer"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	_, err = uc.Get(context.Background(), uuid.New(), rec.ID)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRoadmapGet_Missing(t *testing.T) {
	uc := NewRoadmapUsecase(newMockRoadmapRepo(), newMockProfileRepo(), nil, nil)

	_, err := uc.Get(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, ErrRoadmapNotFound) {
		t.Fatalf("expected ErrRoadmapNotFound, got %v", err)
	}
}

func TestRoadmapUpdateProgress_ValidatesPhaseNumbers(t *testing.T) {
	repo := newMockRoadmapRepo()
	uc := NewRoadmapUsecase(repo, newMockProfileRepo(), nil, nil)

	userID := uuid.New()
	rec, err := uc.Generate(context.Background(), userID, GenerateRoadmapInput{
		Goal: "DevOps Engineer",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	total := len(rec.Roadmap.Phases)

	_, err = uc.UpdateProgress(context.Background(), userID, rec.ID, []int{total + 1})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for out-of-range phase, got %v", err)
	}

	updated, err := uc.UpdateProgress(context.Background(), userID, rec.ID, []int{1, 1, 2})
	if err != nil {
		t.Fatalf("update progress: %v", err)
	}
	if got := updated.CompletedPhases; len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("expected deduplicated [1 2], got %v", got)
	}

	progress := updated.Progress()
	if progress.TotalPhases != total {
		t.Fatalf("expected %d total phases, got %d", total, progress.TotalPhases)
	}
	want := float64(2) / float64(total) * 100
	if progress.PercentComplete != want {
		t.Fatalf("expected %.2f%% complete, got %.2f%%", want, progress.PercentComplete)
	}
}

func TestRoadmapDelete(t *testing.T) {
	repo := newMockRoadmapRepo()
	uc := NewRoadmapUsecase(repo, newMockProfileRepo(), nil, nil)

	userID := uuid.New()
	rec, err := uc.Generate(context.Background(), userID, GenerateRoadmapInput{Goal: "Frontend Developer"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if err := uc.Delete(context.Background(), userID, rec.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := uc.Delete(context.Background(), userID, rec.ID); !errors.Is(err, ErrRoadmapNotFound) {
		t.Fatalf("expected ErrRoadmapNotFound on second delete, got %v", err)
	}
}
