package usecase

import (
	"errors"
	"reflect"
	"testing"
)

func TestCareerNormalizeSkills(t *testing.T) {
	uc := NewCareerUsecase()

	got := uc.NormalizeSkills([]string{"PyTorch", "react", "Obscure Skill"})
	want := []string{"Deep Learning", "Frontend Framework", "Obscure Skill"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCareerAnalyzeGaps_BlankGoal(t *testing.T) {
	uc := NewCareerUsecase()

	if _, err := uc.AnalyzeGaps("   ", []string{"Python"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCareerMatch_BlankGoal(t *testing.T) {
	uc := NewCareerUsecase()

	if _, err := uc.Match("", []string{"python"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCareerRecommendResources_BlankSkill(t *testing.T) {
	uc := NewCareerUsecase()

	if _, err := uc.RecommendResources(""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
