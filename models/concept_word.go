package models

// ConceptWord is one entry of the concept name search index.
type ConceptWord struct {
	ConceptUUID     string `json:"concept_uuid"`
	ConceptNameUUID string `json:"concept_name_uuid"`
	Word            string `json:"word"`
	Locale          string `json:"locale"`
}
