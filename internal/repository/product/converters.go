package product

import (
	"storefront/internal/entities"
)

func ToDomain(p *ProductDB) *entities.Product {
	if p == nil {
		return nil
	}

	return &entities.Product{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func ToDomainList(productsDB []ProductDB) []entities.Product {
	if len(productsDB) == 0 {
		return []entities.Product{}
	}

	result := make([]entities.Product, len(productsDB))
	for i, productDB := range productsDB {
		result[i] = *ToDomain(&productDB)
	}
	return result
}
