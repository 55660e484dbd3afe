package models

type GuestContact struct {
	Phone string `bson:"phone" json:"phone"`
	Email string `bson:"email" json:"email"`
}

// Reservation is the persisted document. ArrivalTime is kept in the stored
// UTC layout so range queries compare it as a string.
type Reservation struct {
	ID           string       `bson:"_id" json:"id"`
	GuestName    string       `bson:"guestName" json:"guestName"`
	GuestContact GuestContact `bson:"guestContact" json:"guestContact"`
	ArrivalTime  string       `bson:"arrivalTime" json:"arrivalTime"`
	TableSize    int          `bson:"tableSize" json:"tableSize"`
	Status       string       `bson:"status" json:"status"`
}
