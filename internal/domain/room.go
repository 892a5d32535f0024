package domain

import (
	"slices"
	"time"
)

type Room struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	CreatorID       string    `json:"creatorId"`
	CreatorUsername string    `json:"creatorUsername"`
	Members         []string  `json:"members"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (r Room) HasMember(userID string) bool {
	return slices.Contains(r.Members, userID)
}
