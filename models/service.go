package models

// Supported content languages for services.
const (
	LanguageEnglish   = "ENG"
	LanguageMongolian = "MON"
)

// Service defines an offerable treatment. Duration seeds the default slot
// length when generating the offering grid; changing it never alters the
// stored end time of existing bookings.
type Service struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description,omitempty" json:"description"`
	Price       float64 `bson:"price" json:"price"`
	Duration    int     `bson:"duration" json:"duration"` // minutes
	Language    string  `bson:"language" json:"language"` // ENG or MON
}

// EmailTemplate is an operator-editable message body with {placeholder}
// substitution, keyed by name (e.g. "booking_confirmation").
type EmailTemplate struct {
	ID      string `bson:"id" json:"id"`
	Name    string `bson:"name" json:"name"`
	Subject string `bson:"subject" json:"subject"`
	Body    string `bson:"body" json:"body"`
}
