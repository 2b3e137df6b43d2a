package dto

type DishRequest struct {
	City string `json:"city"`
}

type DishResponse struct {
	Dishes string `json:"dishes"`
}
