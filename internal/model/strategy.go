// internal/model/strategy.go
package model

import "time"

type Strategy struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"userId"`
	Name      string    `db:"name" json:"name"`
	Goal      string    `db:"goal" json:"goal"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
