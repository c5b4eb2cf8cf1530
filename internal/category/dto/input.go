package dto

type CreateCategoryInput struct {
	Name string `json:"name"`
}

type UpdateCategoryInput struct {
	ID   string `json:"-"`
	Name string `json:"name"`
}
