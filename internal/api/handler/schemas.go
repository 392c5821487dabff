package handler

import (
	"github.com/99minutos/user-catalog-api/internal/core/domain"
	"github.com/99minutos/user-catalog-api/internal/core/ports"
)

// --- Account / user requests ---

type userRequest struct {
	Name     string `json:"name" form:"name" validate:"required,max=255"`
	Email    string `json:"email" form:"email" validate:"required,email,max=255"`
	Role     string `json:"role" form:"role" validate:"required,max=64"`
	Password string `json:"password" form:"password" validate:"required,bcryptmax"`
}

func (r userRequest) toInput() ports.UserInput {
	return ports.UserInput{
		Name:     r.Name,
		Email:    r.Email,
		Role:     r.Role,
		Password: r.Password,
	}
}

// tokenRequest is the OAuth2 password form; username carries the email.
type tokenRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type verifyTokenResponse struct {
	Valid bool               `json:"valid"`
	User  domain.UserSummary `json:"user"`
}

type messageResponse struct {
	Detail string `json:"detail"`
}

// --- Product requests ---

type productRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description string  `json:"description" validate:"max=2000"`
	Price       float64 `json:"price" validate:"gte=0"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
}

// productPatchRequest leaves zero-valued fields unchanged on update.
type productPatchRequest struct {
	Name        string  `json:"name" validate:"max=255"`
	Description string  `json:"description" validate:"max=2000"`
	Price       float64 `json:"price" validate:"gte=0"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
}

func (r productRequest) toDomain() domain.Product {
	return domain.Product{Name: r.Name, Description: r.Description, Price: r.Price, Quantity: r.Quantity}
}

func (r productPatchRequest) toDomain() domain.Product {
	return domain.Product{Name: r.Name, Description: r.Description, Price: r.Price, Quantity: r.Quantity}
}

type productErrorResponse struct {
	Error string `json:"error"`
}
