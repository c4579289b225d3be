package models

// Course is a catalog entry ('courses' table)
type Course struct {
	ID   int64  `json:"course_id" db:"course_id"`
	Name string `json:"course_name" db:"course_name"`
}

// Enrollment links a user to a course ('enrollments' table)
type Enrollment struct {
	UserID   int64 `json:"userid" db:"userid"`
	CourseID int64 `json:"course_id" db:"course_id"`
}
