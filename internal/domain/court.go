package domain

import "time"

// Court is a bookable field. PricePerHour is kept in IDR minor units as an
// integer; never store money as floating point.
type Court struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	SportType    string    `json:"sport_type"`
	PricePerHour int64     `json:"price_per_hour"`
	Description  string    `json:"description,omitempty" gorm:"type:text"`
	ImageURL     string    `json:"image_url,omitempty"`
	Facilities   string    `json:"facilities,omitempty" gorm:"type:text"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
