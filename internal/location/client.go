package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to the public Vietnam administrative units API
// (provinces.open-api.vn or a compatible mirror).
type Client interface {
	ProvincesWithDistricts(ctx context.Context) ([]Province, error)
	WardsByDistrict(ctx context.Context, districtCode int) ([]Ward, error)
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) Client {
	return &client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("location api returned %d for %s", resp.StatusCode, path)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// ProvincesWithDistricts fetches every province with its districts in one
// call (depth=2). Districts come back without wards.
func (c *client) ProvincesWithDistricts(ctx context.Context) ([]Province, error) {
	var provinces []Province
	if err := c.get(ctx, "/?depth=2", &provinces); err != nil {
		return nil, err
	}

	for i := range provinces {
		if provinces[i].Districts == nil {
			provinces[i].Districts = []District{}
		}
	}
	return provinces, nil
}

// WardsByDistrict fetches wards for one district. The upstream endpoint can
// return wards of other districts too, so the result is filtered by code.
func (c *client) WardsByDistrict(ctx context.Context, districtCode int) ([]Ward, error) {
	var wards []Ward
	if err := c.get(ctx, fmt.Sprintf("/w/?district_code=%d", districtCode), &wards); err != nil {
		return nil, err
	}

	filtered := []Ward{}
	for _, w := range wards {
		if w.DistrictCode == districtCode {
			filtered = append(filtered, w)
		}
	}
	return filtered, nil
}
