package prices

import (
	"encoding/json"
	"fmt"
	"folio/internal/domain"
	"folio/internal/util"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const alphaVantageURL = "https://www.alphavantage.co/query"

type AlphaVantageClient struct {
	HttpClient *http.Client
	ApiKey     string
	BaseURL    string
	// RateLimitWait is how long to back off when the free tier
	// limit is hit. Zero means a minute
	RateLimitWait time.Duration
	MaxRetries    int
	Logger        zerolog.Logger
}

type alphaVantageQuoteResult struct {
	GlobalQuote struct {
		Symbol           string `json:"symbol"`
		Open             string `json:"open"`
		High             string `json:"high"`
		Low              string `json:"low"`
		Price            string `json:"price"`
		Volume           string `json:"volume"`
		LatestTradingDay string `json:"latest trading day"`
		PreviousClose    string `json:"previous close"`
		Change           string `json:"change"`
		ChangePercent    string `json:"change percent"`
	} `json:"Global Quote"`
	Note string `json:"Note"`
}

func (c AlphaVantageClient) GetLatestPrice(ticker string) (*domain.StockPrice, error) {
	for attempt := 0; ; attempt++ {
		result, err := c.quote(ticker)
		if err != nil {
			return nil, err
		}
		if !strings.Contains(result.Note, "API call frequency") {
			return quoteToPrice(ticker, result)
		}
		if attempt >= c.MaxRetries {
			return nil, fmt.Errorf("alpha vantage rate limit hit for %s after %d retries", ticker, attempt)
		}

		wait := c.RateLimitWait
		if wait == 0 {
			wait = time.Minute
		}
		c.Logger.Warn().Str("ticker", ticker).Dur("wait", wait).Msg("alpha vantage rate limit hit, waiting")
		time.Sleep(wait)
	}
}

func (c AlphaVantageClient) quote(ticker string) (*alphaVantageQuoteResult, error) {
	base := c.BaseURL
	if base == "" {
		base = alphaVantageURL
	}
	query := url.Values{}
	query.Set("function", "GLOBAL_QUOTE")
	query.Set("symbol", ticker)
	query.Set("apikey", c.ApiKey)

	req, err := http.NewRequest(http.MethodGet, base+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s quote: %w", ticker, err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("alpha vantage returned status %d for %s", response.StatusCode, ticker)
	}

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	// API uses odd format which includes numbers in JSON keys
	var result alphaVantageQuoteResult
	err = json.Unmarshal(cleanResponseBody(responseBytes), &result)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s quote: %w", ticker, err)
	}
	return &result, nil
}

func quoteToPrice(ticker string, result *alphaVantageQuoteResult) (*domain.StockPrice, error) {
	if result.GlobalQuote.Symbol == "" {
		return nil, fmt.Errorf("alpha vantage has no quote for %s", ticker)
	}
	price, err := decimal.NewFromString(result.GlobalQuote.Price)
	if err != nil {
		return nil, fmt.Errorf("could not parse %s price %q: %w", ticker, result.GlobalQuote.Price, err)
	}
	latestTradingDay, err := util.ParseDate(result.GlobalQuote.LatestTradingDay)
	if err != nil {
		return nil, fmt.Errorf("could not parse latest trading day from Alpha Vantage response: %w", err)
	}

	return &domain.StockPrice{
		Ticker: result.GlobalQuote.Symbol,
		Date:   latestTradingDay,
		Value:  price,
	}, nil
}

var numberedKey = regexp.MustCompile("\"[0-9]+\\. ")

func cleanResponseBody(bytes []byte) []byte {
	return numberedKey.ReplaceAll(bytes, []byte("\""))
}
