package models

// Resource defines a study resource based on the 'resources' table
type Resource struct {
	ID   int64  `json:"resourceid" db:"resourceid"`
	Link string `json:"resource_link" db:"resource_link"`
	Type string `json:"resource_type" db:"resource_type"`
}
