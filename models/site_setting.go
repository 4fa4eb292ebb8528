package models

import "time"

// SiteSetting is a flat key -> value configuration row (hero images,
// contact info, social links, theme choice). Keys are read individually by
// convention, e.g. "hero_image", "contact_phone".
type SiteSetting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"column:setting_key;uniqueIndex;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
