package domain

// EventData is the extraction contract: the fields pulled out of an official
// document or schedule. Every key is always present in the JSON form, a nil
// pointer marshals as null when the model could not find the value.
type EventData struct {
	Date              *string `json:"date"`
	Time              *string `json:"time"`
	EventName         *string `json:"event_name"`
	Location          *string `json:"location"`
	PresidentName     *string `json:"president_name"`
	PresidentPosition *string `json:"president_position"`
	Participants      *string `json:"participants"`
}
