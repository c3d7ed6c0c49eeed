package prices

import "folio/internal/domain"

type PriceClient interface {
	GetLatestPrice(ticker string) (*domain.StockPrice, error)
}
