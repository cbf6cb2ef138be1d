package models

// Tag is one entry of the curated tag registry. Names are stored lowercase
// and are unique across the registry.
type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null;uniqueIndex" json:"name"`
}

// TagCount pairs a registered tag with the number of posts carrying it.
// Tags with no matching posts are not reported.
type TagCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}
