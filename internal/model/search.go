package model

// SearchResult is a single row of a search response. Registered users carry
// their account id; contact-derived results have a null id and never an
// email. Email on a registered result is only present when the mutual
// contact rule allows disclosure to the requester.
type SearchResult struct {
	ID             *int    `json:"id"`
	Name           string  `json:"name"`
	PhoneNumber    string  `json:"phone_number"`
	SpamLikelihood float64 `json:"spam_likelihood"`
	Email          *string `json:"email"`
}
