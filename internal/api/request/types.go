package request

// TeamSpec describes one team in a create-game request
type TeamSpec struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

// CreateGameRequest is the request body for creating a game
type CreateGameRequest struct {
	Teams       []TeamSpec `json:"teams"`
	TotalRounds int        `json:"total_rounds,omitempty"`
}

// SpinRequest is the request body for entering a wheel result
type SpinRequest struct {
	Result string `json:"result"`
	Amount int    `json:"amount,omitempty"`
	Prize  string `json:"prize,omitempty"`
}

// GuessRequest is the request body for guessing a consonant
type GuessRequest struct {
	Letter string `json:"letter"`
}

// VowelRequest is the request body for buying a vowel
type VowelRequest struct {
	Vowel string `json:"vowel"`
}

// SolveRequest is the request body for a solve attempt
type SolveRequest struct {
	Solution string `json:"solution"`
}
