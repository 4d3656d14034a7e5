package service

import (
	"context"

	"career-passport/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockKeyValueStore ---
type MockKeyValueStore struct {
	mock.Mock
}

func (m *MockKeyValueStore) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockKeyValueStore) Set(ctx context.Context, key string, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockKeyValueStore) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// --- MockQuizContent ---
type MockQuizContent struct {
	mock.Mock
}

func (m *MockQuizContent) Interests(ctx context.Context) ([]domain.Interest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Interest), args.Error(1)
}

func (m *MockQuizContent) QuizBank(ctx context.Context) (domain.QuizBank, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.QuizBank), args.Error(1)
}

// --- MockCatalogContent ---
type MockCatalogContent struct {
	mock.Mock
}

func (m *MockCatalogContent) Careers(ctx context.Context) ([]domain.Career, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Career), args.Error(1)
}

func (m *MockCatalogContent) Library(ctx context.Context) (domain.LibraryCatalog, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.LibraryCatalog), args.Error(1)
}

func (m *MockCatalogContent) Stories(ctx context.Context) ([]domain.Story, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Story), args.Error(1)
}

func (m *MockCatalogContent) Multimedia(ctx context.Context) (domain.MultimediaLibrary, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.MultimediaLibrary), args.Error(1)
}

func (m *MockCatalogContent) InterviewTips(ctx context.Context) (domain.InterviewTips, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.InterviewTips), args.Error(1)
}

func (m *MockCatalogContent) ResumeGuidelines(ctx context.Context) (domain.ResumeGuidelines, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.ResumeGuidelines), args.Error(1)
}

func (m *MockCatalogContent) StreamSelection(ctx context.Context) (domain.StreamSelectionGuide, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.StreamSelectionGuide), args.Error(1)
}

func (m *MockCatalogContent) StudyAbroad(ctx context.Context) (domain.StudyAbroadGuide, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.StudyAbroadGuide), args.Error(1)
}
