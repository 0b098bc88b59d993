package model

import "time"

// TrainingFile is a recorded ride stored by the overlay
type TrainingFile struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// TrainingFileData is the raw GPX content of a training file
type TrainingFileData struct {
	Name string `json:"name"`
	Data []byte `json:"data"`
}
