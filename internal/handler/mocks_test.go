package handler

import (
	"context"

	"problem-bank/internal/dto"
)

// Function-field service mocks shared by the handler tests.

type MockAuthService struct {
	SignupFunc      func(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error)
	LoginFunc       func(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	CreateJWTFunc   func(ctx context.Context, email string) (string, error)
	ValidateJWTFunc func(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
}

func (m *MockAuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, req)
	}
	panic("MockAuthService.SignupFunc not implemented")
}

func (m *MockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	panic("MockAuthService.LoginFunc not implemented")
}

func (m *MockAuthService) CreateJWT(ctx context.Context, email string) (string, error) {
	if m.CreateJWTFunc != nil {
		return m.CreateJWTFunc(ctx, email)
	}
	panic("MockAuthService.CreateJWTFunc not implemented")
}

func (m *MockAuthService) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	if m.ValidateJWTFunc != nil {
		return m.ValidateJWTFunc(ctx, tokenString)
	}
	panic("MockAuthService.ValidateJWTFunc not implemented")
}

type MockCategoryService struct {
	GetAllCategoriesFunc func(ctx context.Context) (*dto.CategoryListResponse, error)
	AddCategoryFunc      func(ctx context.Context, req *dto.AddCategoryRequest) (*dto.CategoryResponse, error)
}

func (m *MockCategoryService) GetAllCategories(ctx context.Context) (*dto.CategoryListResponse, error) {
	if m.GetAllCategoriesFunc != nil {
		return m.GetAllCategoriesFunc(ctx)
	}
	panic("MockCategoryService.GetAllCategoriesFunc not implemented")
}

func (m *MockCategoryService) AddCategory(ctx context.Context, req *dto.AddCategoryRequest) (*dto.CategoryResponse, error) {
	if m.AddCategoryFunc != nil {
		return m.AddCategoryFunc(ctx, req)
	}
	panic("MockCategoryService.AddCategoryFunc not implemented")
}

type MockProblemService struct {
	ListProblemsFunc     func(ctx context.Context, pagination dto.Pagination) (*dto.ProblemListResponse, error)
	GetProblemDetailFunc func(ctx context.Context, uuid string) (*dto.ProblemDetailResponse, error)
	AddProblemFunc       func(ctx context.Context, req *dto.AddProblemRequest, createdBy string) (*dto.AddResourceResponse, error)
}

func (m *MockProblemService) ListProblems(ctx context.Context, pagination dto.Pagination) (*dto.ProblemListResponse, error) {
	if m.ListProblemsFunc != nil {
		return m.ListProblemsFunc(ctx, pagination)
	}
	panic("MockProblemService.ListProblemsFunc not implemented")
}

func (m *MockProblemService) GetProblemDetail(ctx context.Context, uuid string) (*dto.ProblemDetailResponse, error) {
	if m.GetProblemDetailFunc != nil {
		return m.GetProblemDetailFunc(ctx, uuid)
	}
	panic("MockProblemService.GetProblemDetailFunc not implemented")
}

func (m *MockProblemService) AddProblem(ctx context.Context, req *dto.AddProblemRequest, createdBy string) (*dto.AddResourceResponse, error) {
	if m.AddProblemFunc != nil {
		return m.AddProblemFunc(ctx, req, createdBy)
	}
	panic("MockProblemService.AddProblemFunc not implemented")
}

type MockCourseService struct {
	ListCoursesFunc     func(ctx context.Context, pagination dto.Pagination) (*dto.CourseListResponse, error)
	GetCourseDetailFunc func(ctx context.Context, uuid string) (*dto.CourseDetailResponse, error)
	AddCourseFunc       func(ctx context.Context, req *dto.AddCourseRequest, createdBy string) (*dto.AddResourceResponse, error)
}

func (m *MockCourseService) ListCourses(ctx context.Context, pagination dto.Pagination) (*dto.CourseListResponse, error) {
	if m.ListCoursesFunc != nil {
		return m.ListCoursesFunc(ctx, pagination)
	}
	panic("MockCourseService.ListCoursesFunc not implemented")
}

func (m *MockCourseService) GetCourseDetail(ctx context.Context, uuid string) (*dto.CourseDetailResponse, error) {
	if m.GetCourseDetailFunc != nil {
		return m.GetCourseDetailFunc(ctx, uuid)
	}
	panic("MockCourseService.GetCourseDetailFunc not implemented")
}

func (m *MockCourseService) AddCourse(ctx context.Context, req *dto.AddCourseRequest, createdBy string) (*dto.AddResourceResponse, error) {
	if m.AddCourseFunc != nil {
		return m.AddCourseFunc(ctx, req, createdBy)
	}
	panic("MockCourseService.AddCourseFunc not implemented")
}
