package model

// News maps to the news table.
type News struct {
	NewsID  string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"news_id"`
	Content string  `gorm:"type:text;not null"                             json:"content"`
	Image   *string `gorm:"type:varchar(500)"                              json:"image,omitempty"`
	SoftDeleteModel
}

// TableName sets the table name.
func (News) TableName() string { return "news" }
