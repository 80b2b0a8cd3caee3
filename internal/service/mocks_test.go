package service

import (
	"context"
	"time"

	"problem-bank/internal/domain"
)

// --- Manual Mocks ---

// MockUserRepository
type MockUserRepository struct {
	CreateUserFunc     func(ctx context.Context, user *domain.User) error
	GetUserByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	GetUserByUUIDFunc  func(ctx context.Context, uuid string) (*domain.User, error)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, user)
	}
	panic("MockUserRepository.CreateUserFunc not implemented")
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetUserByEmailFunc != nil {
		return m.GetUserByEmailFunc(ctx, email)
	}
	panic("MockUserRepository.GetUserByEmailFunc not implemented")
}

func (m *MockUserRepository) GetUserByUUID(ctx context.Context, uuid string) (*domain.User, error) {
	if m.GetUserByUUIDFunc != nil {
		return m.GetUserByUUIDFunc(ctx, uuid)
	}
	panic("MockUserRepository.GetUserByUUIDFunc not implemented")
}

// MockCategoryRepository
type MockCategoryRepository struct {
	GetAllCategoriesFunc func(ctx context.Context) ([]domain.Category, error)
	SaveCategoryFunc     func(ctx context.Context, category *domain.Category) error
}

func (m *MockCategoryRepository) GetAllCategories(ctx context.Context) ([]domain.Category, error) {
	if m.GetAllCategoriesFunc != nil {
		return m.GetAllCategoriesFunc(ctx)
	}
	panic("MockCategoryRepository.GetAllCategoriesFunc not implemented")
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category *domain.Category) error {
	if m.SaveCategoryFunc != nil {
		return m.SaveCategoryFunc(ctx, category)
	}
	panic("MockCategoryRepository.SaveCategoryFunc not implemented")
}

// MockProblemRepository
type MockProblemRepository struct {
	SaveProblemFunc      func(ctx context.Context, problem *domain.Problem) error
	ListProblemsFunc     func(ctx context.Context, offset, limit int) ([]domain.Problem, int64, error)
	GetProblemByUUIDFunc func(ctx context.Context, uuid string) (*domain.Problem, error)
	GetAdjacentUUIDsFunc func(ctx context.Context, id int64) (*domain.AdjacentUUIDs, error)
}

func (m *MockProblemRepository) SaveProblem(ctx context.Context, problem *domain.Problem) error {
	if m.SaveProblemFunc != nil {
		return m.SaveProblemFunc(ctx, problem)
	}
	panic("MockProblemRepository.SaveProblemFunc not implemented")
}

func (m *MockProblemRepository) ListProblems(ctx context.Context, offset, limit int) ([]domain.Problem, int64, error) {
	if m.ListProblemsFunc != nil {
		return m.ListProblemsFunc(ctx, offset, limit)
	}
	panic("MockProblemRepository.ListProblemsFunc not implemented")
}

func (m *MockProblemRepository) GetProblemByUUID(ctx context.Context, uuid string) (*domain.Problem, error) {
	if m.GetProblemByUUIDFunc != nil {
		return m.GetProblemByUUIDFunc(ctx, uuid)
	}
	panic("MockProblemRepository.GetProblemByUUIDFunc not implemented")
}

func (m *MockProblemRepository) GetAdjacentUUIDs(ctx context.Context, id int64) (*domain.AdjacentUUIDs, error) {
	if m.GetAdjacentUUIDsFunc != nil {
		return m.GetAdjacentUUIDsFunc(ctx, id)
	}
	panic("MockProblemRepository.GetAdjacentUUIDsFunc not implemented")
}

// MockCourseRepository
type MockCourseRepository struct {
	SaveCourseFunc               func(ctx context.Context, course *domain.Course) error
	ListPublishedCoursesFunc     func(ctx context.Context, offset, limit int) ([]domain.Course, int64, error)
	GetPublishedCourseByUUIDFunc func(ctx context.Context, uuid string) (*domain.Course, error)
}

func (m *MockCourseRepository) SaveCourse(ctx context.Context, course *domain.Course) error {
	if m.SaveCourseFunc != nil {
		return m.SaveCourseFunc(ctx, course)
	}
	panic("MockCourseRepository.SaveCourseFunc not implemented")
}

func (m *MockCourseRepository) ListPublishedCourses(ctx context.Context, offset, limit int) ([]domain.Course, int64, error) {
	if m.ListPublishedCoursesFunc != nil {
		return m.ListPublishedCoursesFunc(ctx, offset, limit)
	}
	panic("MockCourseRepository.ListPublishedCoursesFunc not implemented")
}

func (m *MockCourseRepository) GetPublishedCourseByUUID(ctx context.Context, uuid string) (*domain.Course, error) {
	if m.GetPublishedCourseByUUIDFunc != nil {
		return m.GetPublishedCourseByUUIDFunc(ctx, uuid)
	}
	panic("MockCourseRepository.GetPublishedCourseByUUIDFunc not implemented")
}

// MockCache is an in-memory domain.Cache used to observe cache traffic.
type MockCache struct {
	store    map[string]string
	GetErr   error
	SetErr   error
	Deletes  []string
	SetCalls int
}

func NewMockCache() *MockCache {
	return &MockCache{store: map[string]string{}}
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetErr != nil {
		return "", m.GetErr
	}
	val, ok := m.store[key]
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return val, nil
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.SetCalls++
	m.store[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	m.Deletes = append(m.Deletes, key)
	delete(m.store, key)
	return nil
}

func (m *MockCache) Ping(ctx context.Context) error {
	return nil
}
