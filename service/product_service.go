package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

var ErrProductAPIKeyNotSet = errors.New("product lookup unavailable: FOOD_SAFETY_API_KEY not configured")

const productAPIBase = "http://openapi.foodsafetykorea.go.kr/api"

// RegisteredProduct is one item report record from the 식품안전나라 I1250
// open-data service.
type RegisteredProduct struct {
	Name         string `json:"name"`
	FoodType     string `json:"food_type"`
	Manufacturer string `json:"manufacturer"`
	ReportNo     string `json:"report_no"`
	ReportDate   string `json:"report_date"`
}

// ProductService looks up registered product reports from the
// 식품안전나라 open API.
type ProductService struct {
	apiKey string
	client *http.Client
}

// ProductServiceOption is a functional option for ProductService.
type ProductServiceOption func(*ProductService)

// ProductWithAPIKey sets the open API key.
func ProductWithAPIKey(key string) ProductServiceOption {
	return func(s *ProductService) {
		s.apiKey = key
	}
}

// ProductWithHTTPClient overrides the HTTP client.
func ProductWithHTTPClient(client *http.Client) ProductServiceOption {
	return func(s *ProductService) {
		s.client = client
	}
}

// NewProductService creates a new product service.
func NewProductService(opts ...ProductServiceOption) *ProductService {
	s := &ProductService{
		client: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type productAPIResponse struct {
	I1250 struct {
		Row []struct {
			PrdlstNm     string `json:"PRDLST_NM"`
			PrdlstDcnm   string `json:"PRDLST_DCNM"`
			BsshNm       string `json:"BSSH_NM"`
			PrdlstReport string `json:"PRDLST_REPORT_NO"`
			PrmsDt       string `json:"PRMS_DT"`
		} `json:"row"`
	} `json:"I1250"`
}

// Lookup fetches registered products, filtered by food type when given.
// The open API's attribute filter rejects some category names, so a
// filtered request that returns nothing falls back to an unfiltered one.
func (s *ProductService) Lookup(ctx context.Context, foodType string, max int) ([]RegisteredProduct, error) {
	if s.apiKey == "" {
		return nil, ErrProductAPIKeyNotSet
	}
	if max <= 0 || max > 100 {
		max = 10
	}

	if foodType != "" {
		products, err := s.fetch(ctx, max, "/PRDLST_DCNM="+url.PathEscape(foodType))
		if err != nil {
			return nil, err
		}
		if len(products) > 0 {
			return products, nil
		}
	}
	return s.fetch(ctx, max, "")
}

func (s *ProductService) fetch(ctx context.Context, max int, filter string) ([]RegisteredProduct, error) {
	endpoint := fmt.Sprintf("%s/%s/I1250/json/1/%d%s", productAPIBase, s.apiKey, max, filter)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build product request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("product API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("product API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read product response: %w", err)
	}

	var parsed productAPIResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode product response: %w", err)
	}

	products := make([]RegisteredProduct, 0, len(parsed.I1250.Row))
	for _, row := range parsed.I1250.Row {
		products = append(products, RegisteredProduct{
			Name:         row.PrdlstNm,
			FoodType:     row.PrdlstDcnm,
			Manufacturer: row.BsshNm,
			ReportNo:     row.PrdlstReport,
			ReportDate:   row.PrmsDt,
		})
	}
	return products, nil
}
