package controllers

import (
	"net/http"
	"strings"

	"github.com/shoplite/shoplite-backend/api/responses"
	"github.com/shoplite/shoplite-backend/api/validators"
	productsvc "github.com/shoplite/shoplite-backend/internal/products"
	"github.com/shoplite/shoplite-backend/pkg/enums"
	pkgerrors "github.com/shoplite/shoplite-backend/pkg/errors"
	"github.com/shoplite/shoplite-backend/pkg/logger"
)

// ListProducts returns the whole catalog.
func ListProducts(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.List(r.Context()))
	}
}

// GetProduct returns one product by id.
func GetProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.PathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		product, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// CreateProduct handles catalog creation.
func CreateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toCreateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteCreated(w, product)
	}
}

// UpdateProduct applies a whitelisted partial update.
func UpdateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.PathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toUpdateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// DeleteProduct removes a product. Routed for both DELETE /{id} and the
// POST /{id}/delete fallback used by clients that cannot send DELETE.
func DeleteProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.PathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}

type priceRequest struct {
	Type     string `json:"type" validate:"required"`
	Amount   int64  `json:"amount" validate:"min=0"`
	Currency string `json:"currency"`
	Interval string `json:"interval,omitempty"`
}

type createProductRequest struct {
	Name        string         `json:"name" validate:"required"`
	Description string         `json:"description"`
	Prices      []priceRequest `json:"prices"`
	Metadata    map[string]any `json:"metadata"`
}

type updateProductRequest struct {
	Name        *string         `json:"name,omitempty"`
	Description *string         `json:"description,omitempty"`
	Prices      *[]priceRequest `json:"prices,omitempty"`
	Metadata    *map[string]any `json:"metadata,omitempty"`
}

func parsePrices(raw []priceRequest) ([]productsvc.Price, error) {
	prices := make([]productsvc.Price, 0, len(raw))
	for _, price := range raw {
		priceType, err := enums.ParsePriceType(strings.TrimSpace(price.Type))
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid price type")
		}
		prices = append(prices, productsvc.Price{
			Type:     priceType,
			Amount:   price.Amount,
			Currency: price.Currency,
			Interval: price.Interval,
		})
	}
	return prices, nil
}

func (r createProductRequest) toCreateInput() (productsvc.CreateInput, error) {
	prices, err := parsePrices(r.Prices)
	if err != nil {
		return productsvc.CreateInput{}, err
	}
	return productsvc.CreateInput{
		Name:        strings.TrimSpace(r.Name),
		Description: r.Description,
		Prices:      prices,
		Metadata:    r.Metadata,
	}, nil
}

func (r updateProductRequest) toUpdateInput() (productsvc.UpdateInput, error) {
	input := productsvc.UpdateInput{
		Name:        r.Name,
		Description: r.Description,
		Metadata:    r.Metadata,
	}
	if r.Prices != nil {
		prices, err := parsePrices(*r.Prices)
		if err != nil {
			return productsvc.UpdateInput{}, err
		}
		input.Prices = &prices
	}
	return input, nil
}
