package dto

import "github.com/google/uuid"

type CreateTagRequest struct {
	Name string `json:"name" validate:"required,max=64"`
}

type TagResponse struct {
	Id   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
