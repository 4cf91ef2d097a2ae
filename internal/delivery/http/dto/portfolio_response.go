package dto

import (
	"time"

	"career-compass/internal/domain/portfolio"
)

type PortfolioResponse struct {
	ID        string    `json:"id"`
	Theme     string    `json:"theme"`
	HTML      string    `json:"html_content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromPortfolio(rec portfolio.Record) PortfolioResponse {
	return PortfolioResponse{
		ID:        rec.ID.String(),
		Theme:     rec.Theme,
		HTML:      rec.HTML,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}
