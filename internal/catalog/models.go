package catalog

type City struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Country     string `json:"country"`
	Region      string `json:"region"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Popularity  int    `json:"popularity"`
}

type Activity struct {
	ID            string  `json:"id"`
	CityID        string  `json:"city_id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Cost          float64 `json:"cost"`
	DurationHours float64 `json:"duration_hours"`
	Description   string  `json:"description"`
}
