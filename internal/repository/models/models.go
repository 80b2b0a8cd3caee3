package models

import (
	"database/sql"
	"time"
)

// Row structs decoded at the gateway boundary. Every table shares the same
// spine: surrogate id for ordering, public uuid, create_time, del_flag.

// User is a row of t_user.
type User struct {
	ID         int64        `db:"id"`
	UUID       string       `db:"uuid"`
	Username   string       `db:"username"`
	Password   string       `db:"password"` // bcrypt digest
	Email      string       `db:"email"`
	CreateTime time.Time    `db:"create_time"`
	DelFlag    sql.NullBool `db:"del_flag"`
}

// Category is a row of t_problem_category.
type Category struct {
	ID         int64        `db:"id"`
	UUID       string       `db:"uuid"`
	Name       string       `db:"name"`
	CreateTime time.Time    `db:"create_time"`
	DelFlag    sql.NullBool `db:"del_flag"`
}

// Problem is a row of t_problem.
type Problem struct {
	ID          int64        `db:"id"`
	UUID        string       `db:"uuid"`
	Title       string       `db:"title"`
	Description string       `db:"description"`
	ProblemType int          `db:"problem_type"`
	Difficulty  int          `db:"difficulty"`
	Categories  string       `db:"categories"`
	Answer      string       `db:"answer"`
	CreatedBy   string       `db:"created_by"`
	CreateTime  time.Time    `db:"create_time"`
	DelFlag     sql.NullBool `db:"del_flag"`
}

// Course is a row of t_course.
type Course struct {
	ID          int64        `db:"id"`
	UUID        string       `db:"uuid"`
	Title       string       `db:"title"`
	Description string       `db:"description"`
	Categories  string       `db:"categories"`
	Difficulty  int          `db:"difficulty"`
	CreatedBy   string       `db:"created_by"`
	IsPublished bool         `db:"is_published"`
	CreateTime  time.Time    `db:"create_time"`
	DelFlag     sql.NullBool `db:"del_flag"`
}
