package api

// RegisterUserRequest is the body of POST /users.
type RegisterUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// MealRequest is the body of POST /meals and PUT /meals/:id. IsOnDiet is a
// pointer so a missing flag is rejected instead of defaulting to false.
type MealRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	Hour        string `json:"hour" binding:"required"`
	IsOnDiet    *bool  `json:"isOnDiet" binding:"required"`
}
