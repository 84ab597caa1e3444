package model

// User is the gateway's static reference record. It is seeded at process
// start and never mutated through any exposed operation.
type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}
