package models

type Customer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
}

// CustomerField is the short shape the invoice form selector needs.
type CustomerField struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
