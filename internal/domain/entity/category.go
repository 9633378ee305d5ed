package entity

// Category agrupa productos en la tabla de precios. Color es solo de presentación.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}
