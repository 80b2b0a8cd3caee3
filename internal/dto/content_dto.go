package dto

import "time"

// --- Pagination DTOs ---

// Pagination defines parameters for paginated list requests.
// Page is 1-based; Size is the number of items per page.
type Pagination struct {
	Page int `query:"page"`
	Size int `query:"size"`
}

// PaginationInfo defines pagination details echoed in list responses.
type PaginationInfo struct {
	TotalItems int64 `json:"total_items"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalPages int   `json:"total_pages"`
}

// --- Category DTOs ---

type AddCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type CategoryResponse struct {
	UUID       string    `json:"uuid"`
	Name       string    `json:"name"`
	CreateTime time.Time `json:"create_time"`
}

type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// --- Problem DTOs ---

type AddProblemRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"required"`
	ProblemType int    `json:"problemType" validate:"gte=0"`
	Difficulty  int    `json:"difficulty" validate:"gte=0,lte=10"`
	Categories  string `json:"categories" validate:"required"`
	Answer      string `json:"answer" validate:"required"`
}

type ProblemSummary struct {
	UUID        string    `json:"uuid"`
	Title       string    `json:"title"`
	ProblemType int       `json:"problem_type"`
	Difficulty  int       `json:"difficulty"`
	Categories  string    `json:"categories"`
	CreateTime  time.Time `json:"create_time"`
}

type ProblemListResponse struct {
	Problems       []ProblemSummary `json:"problems"`
	PaginationInfo PaginationInfo   `json:"pagination_info"`
}

// ProblemDetailResponse is the full problem view plus prev/next navigation.
// PrevUUID/NextUUID are adjacency in insertion order and empty at the edges.
type ProblemDetailResponse struct {
	UUID        string    `json:"uuid"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ProblemType int       `json:"problem_type"`
	Difficulty  int       `json:"difficulty"`
	Categories  string    `json:"categories"`
	Answer      string    `json:"answer"`
	CreatedBy   string    `json:"created_by"`
	CreateTime  time.Time `json:"create_time"`
	PrevUUID    string    `json:"prev_uuid,omitempty"`
	NextUUID    string    `json:"next_uuid,omitempty"`
}

// AddResourceResponse confirms an insert of a problem or course.
type AddResourceResponse struct {
	Message string `json:"message"`
	UUID    string `json:"uuid"`
}

// --- Course DTOs ---

type AddCourseRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"required"`
	Categories  string `json:"categories" validate:"required"`
	Difficulty  int    `json:"difficulty" validate:"gte=0,lte=10"`
	IsPublished bool   `json:"isPublished"`
}

type CourseSummary struct {
	UUID       string    `json:"uuid"`
	Title      string    `json:"title"`
	Categories string    `json:"categories"`
	Difficulty int       `json:"difficulty"`
	CreateTime time.Time `json:"create_time"`
}

type CourseListResponse struct {
	Courses        []CourseSummary `json:"courses"`
	PaginationInfo PaginationInfo  `json:"pagination_info"`
}

type CourseDetailResponse struct {
	UUID        string    `json:"uuid"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Categories  string    `json:"categories"`
	Difficulty  int       `json:"difficulty"`
	CreatedBy   string    `json:"created_by"`
	CreateTime  time.Time `json:"create_time"`
}
