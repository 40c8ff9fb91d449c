package courts

type CreateCourtRequest struct {
	Name         string `json:"name" binding:"required"`
	Location     string `json:"location" binding:"required"`
	SportType    string `json:"sport_type" binding:"required"`
	PricePerHour int64  `json:"price_per_hour" binding:"required,gt=0"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
	Facilities   string `json:"facilities"`
}

// UpdateCourtRequest patches a court; omitted fields keep their values.
type UpdateCourtRequest struct {
	Name         *string `json:"name"`
	Location     *string `json:"location"`
	SportType    *string `json:"sport_type"`
	PricePerHour *int64  `json:"price_per_hour"`
	Description  *string `json:"description"`
	ImageURL     *string `json:"image_url"`
	Facilities   *string `json:"facilities"`
	IsActive     *bool   `json:"is_active"`
}
