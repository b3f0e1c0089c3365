package model

import "gorm.io/gorm"

// SitePhoto is one uploaded photo or document. The backend only promises a
// URL string per artifact; where the bytes actually live is the storage
// layer's business.
type SitePhoto struct {
	gorm.Model
	WorkerID  uint   `json:"worker_id" gorm:"not null;index"`
	ProjectID uint   `json:"project_id" gorm:"not null;index"`
	Date      string `json:"date" gorm:"type:varchar(10);not null;index"`
	ObjectKey string `json:"object_key" gorm:"size:64;unique;not null"`
	URL       string `json:"url" gorm:"size:255;not null"`
	Caption   string `json:"caption" gorm:"size:255"`
}
