package location

import "context"

type Service interface {
	ProvincesWithDistricts(ctx context.Context) ([]Province, error)
	WardsByDistrict(ctx context.Context, districtCode int) ([]Ward, error)
}

type service struct {
	client Client
	cache  Cache
}

func NewService(client Client, cache Cache) Service {
	return &service{client: client, cache: cache}
}

func (s *service) ProvincesWithDistricts(ctx context.Context) ([]Province, error) {
	if s.cache != nil {
		if provinces, ok := s.cache.GetProvinces(ctx); ok {
			return provinces, nil
		}
	}

	provinces, err := s.client.ProvincesWithDistricts(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetProvinces(ctx, provinces)
	}
	return provinces, nil
}

func (s *service) WardsByDistrict(ctx context.Context, districtCode int) ([]Ward, error) {
	if s.cache != nil {
		if wards, ok := s.cache.GetWards(ctx, districtCode); ok {
			return wards, nil
		}
	}

	wards, err := s.client.WardsByDistrict(ctx, districtCode)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetWards(ctx, districtCode, wards)
	}
	return wards, nil
}
