package models

// StudyGroup defines a study group based on the 'study_groups' table
type StudyGroup struct {
	GroupID   int64  `json:"groupid" db:"groupid"`
	GroupName string `json:"group_name" db:"group_name"`
}

// GroupMembership links a student to a study group ('group_students' table)
type GroupMembership struct {
	GroupID   int64 `json:"groupid" db:"groupid"`
	StudentID int64 `json:"studentid" db:"studentid"`
}
