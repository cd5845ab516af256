package dnd5e

// CharacterRequest holds the validated attributes a character is generated
// from. Construct one per invocation and validate it before any external
// call is made.
type CharacterRequest struct {
	RaceID      string `json:"race_id"`
	ClassID     string `json:"class_id"`
	AlignmentID string `json:"alignment_id"`
	Level       int    `json:"level"`
	MethodID    string `json:"method_id"`
	Detail      int    `json:"detail"`
}
