package models

// Helpline holds the structure for the helpline_numbers collection
type Helpline struct {
	ID              string `json:"id" bson:"_id"`
	Name            string `json:"name" bson:"name"`
	Phone           string `json:"phone" bson:"phone"`
	Description     string `json:"description" bson:"description"`
	Category        string `json:"category" bson:"category"`
	AvailableHours  string `json:"available_hours" bson:"availableHours"`
	LanguageSupport string `json:"language_support" bson:"languageSupport"`
	IsTollFree      bool   `json:"is_toll_free" bson:"isTollFree"`
	CountryCode     string `json:"country_code" bson:"countryCode"`
	DisplayOrder    int    `json:"display_order" bson:"displayOrder"`
	IsActive        bool   `json:"-" bson:"isActive"`
}
