package location

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientProvincesWithDistricts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("depth"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"code": 1, "name": "Thành phố Hà Nội", "districts": [{"code": 5, "name": "Quận Ba Đình"}]},
			{"code": 79, "name": "Thành phố Hồ Chí Minh", "districts": null}
		]`))
	}))
	defer srv.Close()

	provinces, err := NewClient(srv.URL).ProvincesWithDistricts(context.Background())
	require.NoError(t, err)
	require.Len(t, provinces, 2)

	assert.Equal(t, "Thành phố Hà Nội", provinces[0].Name)
	require.Len(t, provinces[0].Districts, 1)
	assert.Equal(t, "Quận Ba Đình", provinces[0].Districts[0].Name)

	assert.NotNil(t, provinces[1].Districts, "null districts normalized to empty slice")
	assert.Empty(t, provinces[1].Districts)
}

func TestClientWardsByDistrict(t *testing.T) {
	t.Run("Filters wards from other districts", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "5", r.URL.Query().Get("district_code"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[
				{"code": 101, "name": "Phường Phúc Xá", "district_code": 5},
				{"code": 202, "name": "Phường Khác", "district_code": 6}
			]`))
		}))
		defer srv.Close()

		wards, err := NewClient(srv.URL).WardsByDistrict(context.Background(), 5)
		require.NoError(t, err)
		require.Len(t, wards, 1)
		assert.Equal(t, "Phường Phúc Xá", wards[0].Name)
	})

	t.Run("Upstream error propagates", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL).WardsByDistrict(context.Background(), 5)
		assert.Error(t, err)
	})
}
